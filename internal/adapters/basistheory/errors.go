package basistheory

import (
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
)

// problem is the RFC 7807 body Basis Theory returns on API and proxy errors.
type problem struct {
	Title  string         `json:"title"`
	Status int            `json:"status"`
	Detail string         `json:"detail"`
	Errors map[string]any `json:"errors"`
}

type proxyErrorBody struct {
	ProxyError *problem `json:"proxy_error"`
}

// message picks the most specific text in the problem, falling back to the
// status text.
func (p *problem) message(status int) string {
	switch {
	case p.Detail != "":
		return p.Detail
	case p.Title != "":
		return p.Title
	}
	return http.StatusText(status)
}

// errorType classifies a Basis Theory HTTP status.
func errorType(status int) domain.ErrorType {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrBTUnauthenticated
	case http.StatusForbidden:
		return domain.ErrBTUnauthorized
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
		return domain.ErrBTRequestError
	default:
		return domain.ErrBTUnexpected
	}
}

func missingAPIKey() *domain.ErrorResponse {
	return &domain.ErrorResponse{
		ErrorCodes:     []domain.ErrorCode{domain.ErrBTUnauthenticated.Code()},
		ProviderErrors: []string{"The BT-API-KEY header is required"},
	}
}
