package checkout

import (
	"fmt"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/payload"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/taxonomy"
	"github.com/goccy/go-json"
)

var statusCodes = map[string]domain.TransactionStatusCode{
	"Authorized":      domain.StatusAuthorized,
	"Pending":         domain.StatusPending,
	"Card Verified":   domain.StatusCardVerified,
	"Declined":        domain.StatusDeclined,
	"Retry Scheduled": domain.StatusRetryScheduled,
}

func statusCode(status string) domain.TransactionStatusCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return domain.StatusDeclined
}

func (c *Client) ParseResponse(req *domain.TransactionRequest, reply *ports.ProviderReply) (*domain.TransactionResponse, error) {
	raw, decodeErr := payload.ToMap(reply.Body)

	var resp paymentResponse
	if decodeErr == nil && len(reply.Body) > 0 {
		decodeErr = json.Unmarshal(reply.Body, &resp)
	}

	if code, ok := taxonomy.ClassifyHTTPStatus(reply.StatusCode); ok {
		if decodeErr != nil {
			raw = rawBody(reply)
		}
		return nil, &domain.ErrorResponse{
			ErrorCodes:           []domain.ErrorCode{code},
			ProviderErrors:       []string{statusText(reply.StatusCode)},
			FullProviderResponse: raw,
		}
	}

	if decodeErr != nil || len(reply.Body) == 0 {
		return nil, unreadableResponse(reply)
	}

	if reply.StatusCode < 200 || reply.StatusCode >= 300 {
		return nil, apiError(&resp, reply.StatusCode, raw)
	}

	if (resp.Approved != nil && !*resp.Approved) || resp.Status == "Declined" {
		return nil, declined(&resp, raw)
	}

	out := &domain.TransactionResponse{
		ID:        resp.ID,
		Reference: resp.Reference,
		Amount:    req.Amount,
		Status: domain.TransactionStatus{
			Code:         statusCode(resp.Status),
			ProviderCode: resp.Status,
		},
		Source: domain.TransactionSource{
			Type: req.Source.Type,
			ID:   req.Source.ID,
		},
		FullProviderResponse: raw,
		CreatedAt:            processedOn(resp.ProcessedOn),
	}

	if out.Reference == "" {
		out.Reference = req.Reference
	}
	if resp.Amount != nil {
		out.Amount = domain.Amount{Value: *resp.Amount, Currency: resp.Currency}
		if out.Amount.Currency == "" {
			out.Amount.Currency = req.Amount.Currency
		}
	}
	if resp.Processing != nil {
		out.NetworkTransactionID = resp.Processing.AcquirerTransactionID
	}
	if resp.ThreeDS != nil {
		out.ThreeDS = &domain.TransactionThreeDS{
			Downgraded: resp.ThreeDS.Downgraded,
			Enrolled:   resp.ThreeDS.Enrolled,
			ECI:        resp.ThreeDS.ECI,
		}
	}
	if req.Source.StoreWithProvider && resp.Source != nil && resp.Source.ID != "" {
		out.Source.Provisioned = &domain.ProvisionedSource{ID: resp.Source.ID}
	}

	return out, nil
}

// apiError classifies every entry of error_codes; the provider codes are
// echoed back verbatim.
func apiError(resp *paymentResponse, status int, raw map[string]any) *domain.ErrorResponse {
	if len(resp.ErrorCodes) == 0 {
		message := resp.ErrorType
		if message == "" {
			message = statusText(status)
		}
		return domain.NewErrorResponse(domain.ErrOther, message, raw)
	}

	codes := make([]domain.ErrorCode, 0, len(resp.ErrorCodes))
	for _, providerCode := range resp.ErrorCodes {
		codes = append(codes, taxonomy.Classify(domain.ProviderCheckout, providerCode, ""))
	}

	return &domain.ErrorResponse{
		ErrorCodes:           codes,
		ProviderErrors:       resp.ErrorCodes,
		FullProviderResponse: raw,
	}
}

func declined(resp *paymentResponse, raw map[string]any) *domain.ErrorResponse {
	message := resp.ResponseSummary
	if message == "" {
		message = resp.ResponseCode
	}
	if message == "" {
		message = resp.Status
	}

	return &domain.ErrorResponse{
		ErrorCodes:           []domain.ErrorCode{taxonomy.Classify(domain.ProviderCheckout, resp.ResponseCode, resp.ResponseSummary)},
		ProviderErrors:       []string{message},
		FullProviderResponse: raw,
	}
}

func processedOn(s string) time.Time {
	if s != "" {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

func statusText(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func rawBody(reply *ports.ProviderReply) map[string]any {
	return map[string]any{"status": reply.StatusCode, "body": string(reply.Body)}
}

func unreadableResponse(reply *ports.ProviderReply) *domain.ErrorResponse {
	return domain.NewErrorResponse(
		domain.ErrOther,
		fmt.Sprintf("checkout returned an unreadable response (status %d)", reply.StatusCode),
		rawBody(reply),
	)
}
