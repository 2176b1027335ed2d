package handler

import (
	"io"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// HandleTransaction forwards one transaction to the provider named in the
// path. The request reference is the provider idempotency key.
func (h *TransactionHandler) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, domain.NewValidationError("unreadable request body: %v", err))
		return
	}

	var req domain.TransactionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithError(w, domain.NewValidationError("invalid request body: %v", err))
		return
	}

	resp, err := h.service.Transaction(r.Context(), chi.URLParam(r, "provider"), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}
