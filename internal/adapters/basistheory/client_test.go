package basistheory_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/adapters/basistheory"
	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *basistheory.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return basistheory.NewClient(config.BasisTheoryConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, apiKey)
}

func TestClient_Resolve(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		client := newTestClient(t, "key_test_1", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/tokens/46f2f39e-6c33-457c-a64e-292c55c2ddc9", r.URL.Path)
			assert.Equal(t, "key_test_1", r.Header.Get("BT-API-KEY"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"46f2f39e-6c33-457c-a64e-292c55c2ddc9","type":"card"}`))
		})

		card, err := client.Resolve(context.Background(), domain.Source{Type: domain.SourceTypeBasisTheoryToken, ID: "46f2f39e-6c33-457c-a64e-292c55c2ddc9"})

		require.NoError(t, err)
		assert.Equal(t, &domain.Card{
			Number:      "{{ token: 46f2f39e-6c33-457c-a64e-292c55c2ddc9 | json: '$.data.number'}}",
			ExpiryMonth: "{{ token: 46f2f39e-6c33-457c-a64e-292c55c2ddc9 | json: '$.data.expiration_month'}}",
			ExpiryYear:  "{{ token: 46f2f39e-6c33-457c-a64e-292c55c2ddc9 | json: '$.data.expiration_year'}}",
			CVC:         "{{ token: 46f2f39e-6c33-457c-a64e-292c55c2ddc9 | json: '$.data.cvc'}}",
		}, card)
	})

	t.Run("token intent", func(t *testing.T) {
		client := newTestClient(t, "key_test_1", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/token-intents/ti_1", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"ti_1"}`))
		})

		card, err := client.Resolve(context.Background(), domain.Source{Type: domain.SourceTypeBasisTheoryTokenIntent, ID: "ti_1"})

		require.NoError(t, err)
		assert.Equal(t, "{{ token_intent: ti_1 | json: '$.data.cvc'}}", card.CVC)
	})

	t.Run("missing api key never calls out", func(t *testing.T) {
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request")
		})

		_, err := client.Resolve(context.Background(), domain.Source{Type: domain.SourceTypeBasisTheoryToken, ID: "tok"})

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrorCode{Category: domain.CategoryBasisTheory, Code: domain.ErrBTUnauthenticated}, errResp.Primary())
	})

	statusCases := []struct {
		status int
		want   domain.ErrorType
	}{
		{http.StatusUnauthorized, domain.ErrBTUnauthenticated},
		{http.StatusForbidden, domain.ErrBTUnauthorized},
		{http.StatusNotFound, domain.ErrBTRequestError},
		{http.StatusBadRequest, domain.ErrBTRequestError},
		{http.StatusInternalServerError, domain.ErrBTUnexpected},
	}
	for _, tc := range statusCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client := newTestClient(t, "key_test_1", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tc.status)
				_, _ = fmt.Fprintf(w, `{"title":"Problem","status":%d,"detail":"token lookup failed"}`, tc.status)
			})

			_, err := client.Resolve(context.Background(), domain.Source{Type: domain.SourceTypeBasisTheoryToken, ID: "tok"})

			errResp, ok := domain.IsErrorResponse(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, errResp.Primary().Code)
			assert.Equal(t, domain.CategoryBasisTheory, errResp.Primary().Category)
			assert.Equal(t, []string{"token lookup failed"}, errResp.ProviderErrors)
			assert.Equal(t, "Problem", errResp.FullProviderResponse["title"])
		})
	}

	t.Run("error without problem body", func(t *testing.T) {
		client := newTestClient(t, "key_test_1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})

		_, err := client.Resolve(context.Background(), domain.Source{Type: domain.SourceTypeBasisTheoryToken, ID: "tok"})

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrBTRequestError, errResp.Primary().Code)
		assert.Equal(t, []string{"Conflict"}, errResp.ProviderErrors)
	})

	t.Run("unreachable service", func(t *testing.T) {
		client := basistheory.NewClient(config.BasisTheoryConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, "key")

		_, err := client.Resolve(context.Background(), domain.Source{Type: domain.SourceTypeBasisTheoryToken, ID: "tok"})

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrBTUnexpected, errResp.Primary().Code)
		assert.Error(t, errResp.Err)
	})

	t.Run("processor token is rejected", func(t *testing.T) {
		client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request")
		})

		_, err := client.Resolve(context.Background(), domain.Source{Type: domain.SourceTypeProcessorToken, ID: "ptok"})

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrUnsupportedRequest, errResp.Primary().Code)
	})
}
