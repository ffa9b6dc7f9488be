package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"offerchain/internal/core/port"
	"offerchain/internal/identity"
)

// Services bundles the use cases the HTTP surface exposes.
type Services struct {
	Identity port.IdentityUseCase
	Ledger   port.LedgerUseCase
	Catalog  port.CatalogUseCase
	Stats    port.StatsUseCase
}

// Handler is the inbound HTTP adapter. It holds the use cases, the admin
// credential verifier and a structured logger, and registers every route
// on a chi.Router.
type Handler struct {
	svc      Services
	verifier port.CredentialVerifier
	env      identity.Environment
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Extra
// middlewares (tracing, when enabled) are appended after the baseline
// chain.
func NewHandler(svc Services, verifier port.CredentialVerifier, env identity.Environment, logger *slog.Logger, extra ...func(http.Handler) http.Handler) *Handler {
	h := &Handler{
		svc:      svc,
		verifier: verifier,
		env:      env,
		logger:   logger,
		validate: newValidator(),
	}
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	for _, mw := range extra {
		r.Use(mw)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/offers", h.handleListOffers)
		r.Post("/leads", h.handleResolveLead)
		r.Get("/leads", h.handleLookupLead)
		r.Post("/actions", h.handleRecordAction)
		r.Get("/actions", h.handleQueryActions)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/offers", h.handleAdminListOffers)
			r.Post("/offers", h.handleAdminCreateOffer)
			r.Put("/offers/reorder", h.handleAdminReorderOffers)
			r.Get("/offers/{id}", h.handleAdminGetOffer)
			r.Put("/offers/{id}", h.handleAdminUpdateOffer)
			r.Delete("/offers/{id}", h.handleAdminDeleteOffer)
			r.Get("/stats", h.handleAdminStats)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
