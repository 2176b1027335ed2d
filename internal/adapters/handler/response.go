package handler

import (
	"errors"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/service"
	"github.com/goccy/go-json"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code     string                `json:"code"`
	Category domain.ErrorCategory  `json:"category,omitempty"`
	Message  string                `json:"message"`
	Details  *domain.ErrorResponse `json:"details,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

// statusFor maps a canonical failure onto an HTTP status. Declines are the
// caller's problem (402); faults upstream of the gateway are 502.
func statusFor(code domain.ErrorCode) int {
	switch code.Category {
	case domain.CategoryValidation:
		return http.StatusBadRequest
	case domain.CategoryPaymentMethod, domain.CategoryFraudDecline:
		return http.StatusPaymentRequired
	case domain.CategoryProcessing:
		switch code.Code {
		case domain.ErrTimeout:
			return http.StatusGatewayTimeout
		case domain.ErrConnectionFailure:
			return http.StatusBadGateway
		}
		return http.StatusPaymentRequired
	default:
		return http.StatusBadGateway
	}
}

func respondWithError(w http.ResponseWriter, err error) {
	if errResp, ok := domain.IsErrorResponse(err); ok {
		primary := errResp.Primary()
		respondWithJSON(w, statusFor(primary), &APIError{
			Code:     string(primary.Code),
			Category: primary.Category,
			Message:  errResp.Error(),
			Details:  errResp,
		})
		return
	}

	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrJournalDisabled) {
		code = "JOURNAL_DISABLED"
		status = http.StatusNotImplemented
	}

	respondWithJSON(w, status, &APIError{
		Code:    code,
		Message: err.Error(),
	})
}
