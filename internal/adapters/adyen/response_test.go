package adyen_test

import (
	"net/http"
	"testing"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(status int, body string) *ports.ProviderReply {
	return &ports.ProviderReply{StatusCode: status, Header: http.Header{}, Body: []byte(body)}
}

func baseRequest() *domain.TransactionRequest {
	return &domain.TransactionRequest{
		Reference: "order-1",
		Type:      domain.RecurringTypeCardOnFile,
		Amount:    domain.Amount{Value: 1000, Currency: "USD"},
		Source:    domain.Source{Type: domain.SourceTypeBasisTheoryToken, ID: "tok_1"},
		Customer:  &domain.Customer{Reference: "shopper-1"},
	}
}

func TestClient_ParseResponse(t *testing.T) {
	t.Run("authorised", func(t *testing.T) {
		req := baseRequest()
		req.Source.StoreWithProvider = true

		resp, err := newClient().ParseResponse(req, reply(http.StatusOK, `{
			"pspReference": "NC6HT9CRT65ZGN82",
			"resultCode": "Authorised",
			"merchantReference": "order-1",
			"amount": {"currency": "USD", "value": 1000},
			"paymentMethod": {"type": "scheme", "brand": "visa", "storedPaymentMethodId": "M5N7TQ4TG5PFWR50"},
			"additionalData": {"networkTxReference": "MCC123456789"}
		}`))

		require.NoError(t, err)
		assert.Equal(t, "NC6HT9CRT65ZGN82", resp.ID)
		assert.Equal(t, "order-1", resp.Reference)
		assert.Equal(t, domain.Amount{Value: 1000, Currency: "USD"}, resp.Amount)
		assert.Equal(t, domain.TransactionStatus{Code: domain.StatusAuthorized, ProviderCode: "Authorised"}, resp.Status)
		assert.Equal(t, domain.SourceTypeBasisTheoryToken, resp.Source.Type)
		assert.Equal(t, "tok_1", resp.Source.ID)
		require.NotNil(t, resp.Source.Provisioned)
		assert.Equal(t, "M5N7TQ4TG5PFWR50", resp.Source.Provisioned.ID)
		assert.Equal(t, "MCC123456789", resp.NetworkTransactionID)
		assert.Equal(t, "NC6HT9CRT65ZGN82", resp.FullProviderResponse["pspReference"])
		assert.False(t, resp.CreatedAt.IsZero())
	})

	t.Run("provisioned id from recurring detail reference", func(t *testing.T) {
		req := baseRequest()
		req.Source.StoreWithProvider = true

		resp, err := newClient().ParseResponse(req, reply(http.StatusOK, `{
			"pspReference": "P1", "resultCode": "Authorised",
			"additionalData": {"recurring.recurringDetailReference": "8415718415172200"}
		}`))

		require.NoError(t, err)
		require.NotNil(t, resp.Source.Provisioned)
		assert.Equal(t, "8415718415172200", resp.Source.Provisioned.ID)
	})

	t.Run("provisioned id is hidden when storage was not requested", func(t *testing.T) {
		resp, err := newClient().ParseResponse(baseRequest(), reply(http.StatusOK, `{
			"pspReference": "P1", "resultCode": "Authorised",
			"paymentMethod": {"storedPaymentMethodId": "M5N7TQ4TG5PFWR50"}
		}`))

		require.NoError(t, err)
		assert.Nil(t, resp.Source.Provisioned)
	})

	t.Run("missing reference and amount fall back to the request", func(t *testing.T) {
		resp, err := newClient().ParseResponse(baseRequest(), reply(http.StatusOK, `{"pspReference": "P1", "resultCode": "Pending"}`))

		require.NoError(t, err)
		assert.Equal(t, "order-1", resp.Reference)
		assert.Equal(t, domain.Amount{Value: 1000, Currency: "USD"}, resp.Amount)
		assert.Equal(t, domain.StatusPending, resp.Status.Code)
	})

	t.Run("status vocabulary", func(t *testing.T) {
		cases := map[string]domain.TransactionStatusCode{
			"ChallengeShopper":    domain.StatusChallengeShopper,
			"Received":            domain.StatusReceived,
			"PartiallyAuthorised": domain.StatusPartiallyAuthorized,
			"RedirectShopper":     domain.StatusChallengeShopper,
			"IdentifyShopper":     domain.StatusChallengeShopper,
			"PresentToShopper":    domain.StatusPending,
			"SomethingNew":        domain.StatusDeclined,
		}
		for providerCode, want := range cases {
			resp, err := newClient().ParseResponse(baseRequest(), reply(http.StatusOK, `{"pspReference":"P","resultCode":"`+providerCode+`"}`))
			require.NoError(t, err)
			assert.Equal(t, want, resp.Status.Code, providerCode)
			assert.Equal(t, providerCode, resp.Status.ProviderCode)
		}
	})

	t.Run("refused expired card", func(t *testing.T) {
		_, err := newClient().ParseResponse(baseRequest(), reply(http.StatusOK, `{
			"pspReference": "P1",
			"resultCode": "Refused",
			"refusalReason": "Expired Card",
			"refusalReasonCode": "6",
			"merchantReference": "order-1"
		}`))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, []domain.ErrorCode{{Category: domain.CategoryPaymentMethod, Code: domain.ErrExpiredCard}}, errResp.ErrorCodes)
		assert.Equal(t, []string{"Expired Card"}, errResp.ProviderErrors)
		assert.Equal(t, "Refused", errResp.FullProviderResponse["resultCode"])
	})

	t.Run("refusal with unknown code", func(t *testing.T) {
		_, err := newClient().ParseResponse(baseRequest(), reply(http.StatusOK, `{"resultCode": "Error", "refusalReasonCode": "905"}`))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrorCode{Category: domain.CategoryOther, Code: domain.ErrOther}, errResp.Primary())
		assert.Equal(t, []string{"Error"}, errResp.ProviderErrors)
	})

	t.Run("unauthorized api key", func(t *testing.T) {
		_, err := newClient().ParseResponse(baseRequest(), reply(http.StatusUnauthorized, `{
			"status": 401, "errorCode": "000", "message": "HTTP Status Response - Unauthorized", "errorType": "security"
		}`))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrorCode{Category: domain.CategoryAuthentication, Code: domain.ErrInvalidAPIKey}, errResp.Primary())
		assert.Equal(t, []string{"HTTP Status Response - Unauthorized"}, errResp.ProviderErrors)
	})

	t.Run("forbidden with non-json body", func(t *testing.T) {
		_, err := newClient().ParseResponse(baseRequest(), reply(http.StatusForbidden, `<html>Forbidden</html>`))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrorCode{Category: domain.CategoryAuthentication, Code: domain.ErrUnauthorized}, errResp.Primary())
		assert.Equal(t, "<html>Forbidden</html>", errResp.FullProviderResponse["body"])
		assert.Equal(t, []string{"Forbidden"}, errResp.ProviderErrors)
	})

	t.Run("server error without message", func(t *testing.T) {
		_, err := newClient().ParseResponse(baseRequest(), reply(http.StatusInternalServerError, `{"status": 500, "errorType": "internal"}`))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Len(t, errResp.ProviderErrors, len(errResp.ErrorCodes))
		assert.Equal(t, []string{"Internal Server Error"}, errResp.ProviderErrors)
	})

	t.Run("validation error body", func(t *testing.T) {
		_, err := newClient().ParseResponse(baseRequest(), reply(http.StatusUnprocessableEntity, `{
			"status": 422, "errorCode": "14_012", "message": "The provided SDK token could not be parsed.", "errorType": "validation"
		}`))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrOther, errResp.Primary().Code)
		assert.Equal(t, []string{"The provided SDK token could not be parsed."}, errResp.ProviderErrors)
	})

	t.Run("unreadable success body", func(t *testing.T) {
		_, err := newClient().ParseResponse(baseRequest(), reply(http.StatusOK, `not json`))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrOther, errResp.Primary().Code)
	})
}
