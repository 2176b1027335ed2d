package handler

import (
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/taxonomy"
	"github.com/go-chi/chi/v5"
)

func (h *TransactionHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	reference := chi.URLParam(r, "reference")

	entries, err := h.service.History(r.Context(), provider, reference)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if len(entries) == 0 {
		respondWithJSON(w, http.StatusNotFound, &APIError{
			Code:    "TRANSACTION_NOT_FOUND",
			Message: "no transactions recorded for reference " + reference,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

type ErrorCodeClassification struct {
	Provider     string               `json:"provider"`
	ProviderCode string               `json:"provider_code"`
	Mapped       bool                 `json:"mapped"`
	Category     domain.ErrorCategory `json:"category"`
	Code         domain.ErrorType     `json:"code"`
}

// HandleErrorCode explains how a raw provider code is classified. Unmapped
// codes are still answered, with mapped=false and the other/other fallback.
func (h *TransactionHandler) HandleErrorCode(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	code := chi.URLParam(r, "code")

	if taxonomy.Codes(provider) == nil {
		respondWithJSON(w, http.StatusNotFound, &APIError{
			Code:    "PROVIDER_NOT_FOUND",
			Message: "no error taxonomy for provider " + provider,
		})
		return
	}

	_, mapped := taxonomy.Lookup(provider, code)
	classified := taxonomy.Classify(provider, code, "")

	respondWithJSON(w, http.StatusOK, ErrorCodeClassification{
		Provider:     provider,
		ProviderCode: code,
		Mapped:       mapped,
		Category:     classified.Category,
		Code:         classified.Code,
	})
}
