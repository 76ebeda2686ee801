package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	// VaultSecretHash is an Argon2id PHC hash. The vault is disabled when empty.
	VaultSecretHash string

	CORSAllowedOrigins  []string
	RateLimitRPS        float64
	RateLimitBurst      int
	CommonPasswordsFile string
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", "5000"),
		Env:                 getEnv("ENV", "development"),
		DatabaseDSN:         getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passcheck?parseTime=true"),
		JWTSecret:           getEnv("JWT_SECRET", defaultJWTSecret),
		VaultSecretHash:     os.Getenv("VAULT_SECRET_HASH"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CommonPasswordsFile: os.Getenv("COMMON_PASSWORDS_FILE"),
	}

	var errs []error

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "15m"))
	if err != nil || expiry <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRY: invalid duration %q", os.Getenv("JWT_EXPIRY")))
	}
	cfg.JWTExpiry = expiry

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil || rps < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS: invalid number %q", os.Getenv("RATE_LIMIT_RPS")))
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40"))
	if err != nil || burst < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST: invalid integer %q", os.Getenv("RATE_LIMIT_BURST")))
	}
	cfg.RateLimitBurst = burst

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret && cfg.VaultSecretHash != "" {
		errs = append(errs, errors.New("JWT_SECRET must be set in production when the vault is enabled"))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	if cfg.VaultSecretHash == "" {
		slog.Info("VAULT_SECRET_HASH not set, vault disabled")
	}

	return cfg, nil
}

// VaultEnabled reports whether a vault secret is configured.
func (c Config) VaultEnabled() bool {
	return c.VaultSecretHash != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
