package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ulule/limiter/v3"

	"campaign-api/internal/core/port"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc        port.CampaignUseCase
	logger     *slog.Logger
	limiter    *limiter.Limiter
	trustProxy bool
	router     chi.Router
}

// Option customizes a Handler.
type Option func(*Handler)

// WithRateLimiter enables per-client rate limiting using l.
func WithRateLimiter(l *limiter.Limiter) Option {
	return func(h *Handler) { h.limiter = l }
}

// WithTrustedProxy takes the client address from X-Forwarded-For and
// X-Real-IP. Only enable it behind a proxy that overwrites those headers;
// otherwise clients pick their own address and escape the rate limit.
func WithTrustedProxy() Option {
	return func(h *Handler) { h.trustProxy = true }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	if h.trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	if h.limiter != nil {
		r.Use(h.rateLimit)
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.handleHealth)
	r.Get("/countries", h.handleListCountries)

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", h.handleListCampaigns)
		r.Post("/", h.handleCreateCampaign)
		r.Get("/search", h.handleSearchCampaigns)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Patch("/", h.handleUpdateCampaign)
			r.Delete("/", h.handleDeleteCampaign)
			r.Patch("/toggle", h.handleToggleCampaign)
			r.Get("/payouts", h.handleGetCampaignPayouts)
			r.Post("/payouts", h.handleCreatePayout)
		})
	})

	r.Route("/payouts", func(r chi.Router) {
		r.Get("/", h.handleListPayouts)
		r.Patch("/{id}", h.handleUpdatePayout)
		r.Delete("/{id}", h.handleDeletePayout)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "Campaign Management API",
		Version: Version,
	})
}
