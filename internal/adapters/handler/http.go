package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/api"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/go-chi/chi/v5"
)

type TransactionService interface {
	Transaction(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error)
	History(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error)
	Providers() []string
}

type TransactionHandler struct {
	service TransactionService
	logger  *slog.Logger
}

func NewTransactionHandler(service TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger,
	}
}

func (h *TransactionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/-/live", h.HandleLive)
	r.Route("/v1/providers/{provider}", func(r chi.Router) {
		r.With(h.configuredProvider).Post("/transactions", h.HandleTransaction)
		r.With(h.configuredProvider).Get("/transactions/{reference}", h.HandleHistory)
		r.Get("/error-codes/{code}", h.HandleErrorCode)
	})
}

func (h *TransactionHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"providers": h.service.Providers(),
	})
}

// configuredProvider answers 404 for providers the gateway has no
// credentials for, before anything is journaled.
func (h *TransactionHandler) configuredProvider(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		for _, name := range h.service.Providers() {
			if name == provider {
				next.ServeHTTP(w, r)
				return
			}
		}
		respondWithJSON(w, http.StatusNotFound, &APIError{
			Code:    "PROVIDER_NOT_FOUND",
			Message: "provider " + provider + " is not configured",
		})
	})
}

type RouterConfig struct {
	Validator      *api.Validator
	RequestTimeout time.Duration
}

// NewRouter builds the gateway's HTTP surface with its middleware chain.
func NewRouter(h *TransactionHandler, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(logger))
	r.Use(Recovery(logger))
	if cfg.RequestTimeout > 0 {
		r.Use(Timeout(cfg.RequestTimeout))
	}
	if cfg.Validator != nil {
		r.Use(ValidateRequests(cfg.Validator))
		api.RegisterDocsRoutes(r, cfg.Validator.Document())
	}

	h.RegisterRoutes(r)
	return r
}
