package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/vaultpass/passcheck-go/internal/middleware"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// RouterConfig wires services into the HTTP router.
type RouterConfig struct {
	Analyzer  *service.AnalyzerService
	Generator *service.GeneratorService
	// Vault is optional; its routes are not mounted when nil.
	Vault     *service.VaultService
	JWTSecret string

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the API router.
func NewRouter(cfg RouterConfig) http.Handler {
	analyzeHandler := NewAnalyzeHandler(cfg.Analyzer)
	genHandler := NewGeneratorHandler(cfg.Generator)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}
		r.Post("/api/v1/analyze", analyzeHandler.HandleAnalyze)
		r.Get("/api/v1/generate", genHandler.HandleGenerateQuery)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	if cfg.Vault != nil {
		vaultHandler := NewVaultHandler(cfg.Vault)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/vault/unlock", vaultHandler.HandleUnlock)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.VaultAuth(cfg.JWTSecret))
			r.Get("/api/v1/vault/files", vaultHandler.HandleListFiles)
			r.Post("/api/v1/vault/files", vaultHandler.HandleUploadFile)
			r.Get("/api/v1/vault/files/{name}", vaultHandler.HandleGetFile)
		})
	}

	return r
}
