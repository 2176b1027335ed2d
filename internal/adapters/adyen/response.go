package adyen

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
	"Authorised":          domain.StatusAuthorized,
	"Pending":             domain.StatusPending,
	"Error":               domain.StatusDeclined,
	"Refused":             domain.StatusDeclined,
	"Cancelled":           domain.StatusCancelled,
	"ChallengeShopper":    domain.StatusChallengeShopper,
	"IdentifyShopper":     domain.StatusChallengeShopper,
	"RedirectShopper":     domain.StatusChallengeShopper,
	"PresentToShopper":    domain.StatusPending,
	"Received":            domain.StatusReceived,
	"PartiallyAuthorised": domain.StatusPartiallyAuthorized,
}

// refusalResults are result codes Adyen returns with HTTP 200 that still mean
// the payment did not go through.
var refusalResults = map[string]bool{
	"Refused":   true,
	"Error":     true,
	"Cancelled": true,
}

func statusCode(resultCode string) domain.TransactionStatusCode {
	if code, ok := statusCodes[resultCode]; ok {
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
			ProviderErrors:       providerMessages(&resp, reply.StatusCode),
			FullProviderResponse: raw,
		}
	}

	if decodeErr != nil || len(reply.Body) == 0 {
		return nil, unreadableResponse(reply)
	}

	if reply.StatusCode < 200 || reply.StatusCode >= 300 || refusalResults[resp.ResultCode] {
		return nil, &domain.ErrorResponse{
			ErrorCodes:           []domain.ErrorCode{taxonomy.Classify(domain.ProviderAdyen, resp.RefusalReasonCode, resp.RefusalReason)},
			ProviderErrors:       providerMessages(&resp, reply.StatusCode),
			FullProviderResponse: raw,
		}
	}

	out := &domain.TransactionResponse{
		ID:        resp.PSPReference,
		Reference: resp.MerchantReference,
		Amount:    req.Amount,
		Status: domain.TransactionStatus{
			Code:         statusCode(resp.ResultCode),
			ProviderCode: resp.ResultCode,
		},
		Source: domain.TransactionSource{
			Type: req.Source.Type,
			ID:   req.Source.ID,
		},
		NetworkTransactionID: resp.additional("networkTxReference"),
		FullProviderResponse: raw,
		CreatedAt:            time.Now().UTC(),
	}

	if out.Reference == "" {
		out.Reference = req.Reference
	}
	if resp.Amount != nil {
		out.Amount = domain.Amount{Value: resp.Amount.Value, Currency: resp.Amount.Currency}
	}

	if req.Source.StoreWithProvider {
		if id := provisionedID(&resp); id != "" {
			out.Source.Provisioned = &domain.ProvisionedSource{ID: id}
		}
	}

	return out, nil
}

func provisionedID(resp *paymentResponse) string {
	if resp.PaymentMethod != nil && resp.PaymentMethod.StoredPaymentMethodID != "" {
		return resp.PaymentMethod.StoredPaymentMethodID
	}
	return resp.additional("recurring.recurringDetailReference")
}

// providerMessages returns exactly one message, paired with the single
// error code Adyen failures carry.
func providerMessages(resp *paymentResponse, status int) []string {
	switch {
	case resp.RefusalReason != "":
		return []string{resp.RefusalReason}
	case resp.Message != "":
		return []string{resp.Message}
	case resp.ResultCode != "":
		return []string{resp.ResultCode}
	}
	return []string{statusText(status)}
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
		fmt.Sprintf("adyen returned an unreadable response (status %d)", reply.StatusCode),
		rawBody(reply),
	)
}
