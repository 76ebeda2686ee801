package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/handler"
	"github.com/vaultpass/passcheck-go/internal/repository"
	"github.com/vaultpass/passcheck-go/internal/service"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	common, err := loadCommonPasswords(cfg.CommonPasswordsFile)
	if err != nil {
		slog.Error("loading common passwords failed", "file", cfg.CommonPasswordsFile, "error", err)
		os.Exit(1)
	}
	slog.Info("common passwords loaded", "count", common.Len())

	routerCfg := handler.RouterConfig{
		Analyzer:       service.NewAnalyzerService(common),
		Generator:      service.NewGeneratorService(),
		JWTSecret:      cfg.JWTSecret,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	// The vault needs both a secret and a database; without either it stays unmounted.
	var db *sql.DB
	if cfg.VaultEnabled() {
		routerCfg.Vault, db = setupVault(cfg)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "vault", routerCfg.Vault != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	if db != nil {
		db.Close()
	}

	slog.Info("server stopped")
}

func loadCommonPasswords(path string) (*strength.CommonPasswordSet, error) {
	set := strength.DefaultCommonPasswords()
	if path == "" {
		return set, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return strength.LoadCommonPasswords(set, f)
}

func setupVault(cfg config.Config) (*service.VaultService, *sql.DB) {
	if err := crypto.ValidateHash(cfg.VaultSecretHash); err != nil {
		slog.Warn("VAULT_SECRET_HASH is not a valid argon2id hash, vault disabled", "error", err)
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, vault disabled", "error", err)
		return nil, nil
	}

	repo := repository.NewVaultRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		slog.Warn("creating vault schema failed, vault disabled", "error", err)
		db.Close()
		return nil, nil
	}

	return service.NewVaultService(repo, cfg.VaultSecretHash, cfg.JWTSecret, cfg.JWTExpiry), db
}
