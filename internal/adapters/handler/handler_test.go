package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/api"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/service"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockTransactionService struct {
	transactionFn func(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error)
	historyFn     func(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error)
}

func (m *mockTransactionService) Transaction(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	return m.transactionFn(ctx, provider, req)
}

func (m *mockTransactionService) History(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error) {
	return m.historyFn(ctx, provider, reference)
}

func (m *mockTransactionService) Providers() []string {
	return []string{domain.ProviderAdyen, domain.ProviderCheckout}
}

func newTestRouter(t *testing.T, svc TransactionService) http.Handler {
	t.Helper()
	v, err := api.NewValidator(context.Background())
	require.NoError(t, err)
	return NewRouter(NewTransactionHandler(svc, discardLogger), RouterConfig{Validator: v, RequestTimeout: time.Second}, discardLogger)
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

const validBody = `{"reference":"order-123","amount":{"value":1000,"currency":"USD"},"source":{"type":"processor_token","id":"ptok_1"},"metadata":{"cart":"c-1"}}`

func TestHandleTransaction_Success(t *testing.T) {
	svc := &mockTransactionService{
		transactionFn: func(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
			assert.Equal(t, domain.ProviderAdyen, provider)
			assert.Equal(t, "order-123", req.Reference)
			assert.Equal(t, map[string]any{"cart": "c-1"}, req.Metadata)
			return &domain.TransactionResponse{
				ID:        "PSP-1",
				Reference: req.Reference,
				Amount:    req.Amount,
				Status:    domain.TransactionStatus{Code: domain.StatusAuthorized, ProviderCode: "Authorised"},
			}, nil
		},
	}

	rr := serve(newTestRouter(t, svc), http.MethodPost, "/v1/providers/adyen/transactions", validBody)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	resp := decode(t, rr)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "PSP-1", data["id"])
	assert.Equal(t, "Authorized", data["status"].(map[string]any)["code"])
}

func TestHandleTransaction_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.NewValidationError("bad"), http.StatusBadRequest},
		{"expired card", domain.NewErrorResponse(domain.ErrExpiredCard, "Expired Card", nil), http.StatusPaymentRequired},
		{"fraud", domain.NewErrorResponse(domain.ErrFraud, "FRAUD", nil), http.StatusPaymentRequired},
		{"refused", domain.NewErrorResponse(domain.ErrRefused, "Refused", nil), http.StatusPaymentRequired},
		{"timeout", domain.NewErrorResponse(domain.ErrTimeout, "deadline", nil), http.StatusGatewayTimeout},
		{"connection failure", domain.NewErrorResponse(domain.ErrConnectionFailure, "refused", nil), http.StatusBadGateway},
		{"invalid api key", domain.NewInvalidAPIKeyError(domain.ProviderCheckout), http.StatusBadGateway},
		{"tokenization", domain.NewErrorResponse(domain.ErrBTUnauthorized, "", nil), http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockTransactionService{
				transactionFn: func(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
					return nil, tt.err
				},
			}

			rr := serve(newTestRouter(t, svc), http.MethodPost, "/v1/providers/checkout/transactions", validBody)

			assert.Equal(t, tt.status, rr.Code)
			resp := decode(t, rr)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
		})
	}
}

func TestHandleTransaction_ErrorBodyCarriesCanonicalCodes(t *testing.T) {
	svc := &mockTransactionService{
		transactionFn: func(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
			return nil, &domain.ErrorResponse{
				ErrorCodes:           []domain.ErrorCode{domain.ErrExpiredCard.Code()},
				ProviderErrors:       []string{"Expired Card"},
				FullProviderResponse: map[string]any{"resultCode": "Refused"},
			}
		},
	}

	rr := serve(newTestRouter(t, svc), http.MethodPost, "/v1/providers/adyen/transactions", validBody)

	resp := decode(t, rr)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "expired_card", resp.Error.Code)
	assert.Equal(t, domain.CategoryPaymentMethod, resp.Error.Category)
	require.NotNil(t, resp.Error.Details)
	assert.Equal(t, []string{"Expired Card"}, resp.Error.Details.ProviderErrors)
	assert.Equal(t, "Refused", resp.Error.Details.FullProviderResponse["resultCode"])
}

func TestHandleTransaction_RejectedBeforeTheService(t *testing.T) {
	svc := &mockTransactionService{
		transactionFn: func(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
			t.Error("service must not be called")
			return nil, nil
		},
	}
	router := newTestRouter(t, svc)

	t.Run("unknown provider", func(t *testing.T) {
		rr := serve(router, http.MethodPost, "/v1/providers/stripe/transactions", validBody)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "PROVIDER_NOT_FOUND", decode(t, rr).Error.Code)
	})

	t.Run("contract violation", func(t *testing.T) {
		rr := serve(router, http.MethodPost, "/v1/providers/adyen/transactions", `{"reference":"r","amount":{"value":1,"currency":"USD"}}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid_request", decode(t, rr).Error.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rr := serve(NewRouter(NewTransactionHandler(svc, discardLogger), RouterConfig{}, discardLogger),
			http.MethodPost, "/v1/providers/adyen/transactions", `{"reference":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleHistory(t *testing.T) {
	entry := &domain.JournalEntry{
		ID:        uuid.New(),
		Provider:  domain.ProviderAdyen,
		Reference: "order-123",
		Outcome:   domain.OutcomeSucceeded,
		Amount:    domain.Amount{Value: 1000, Currency: "USD"},
		Status:    domain.StatusAuthorized,
	}

	t.Run("found", func(t *testing.T) {
		svc := &mockTransactionService{
			historyFn: func(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error) {
				assert.Equal(t, "order-123", reference)
				return []*domain.JournalEntry{entry}, nil
			},
		}

		rr := serve(newTestRouter(t, svc), http.MethodGet, "/v1/providers/adyen/transactions/order-123", "")

		require.Equal(t, http.StatusOK, rr.Code)
		data := decode(t, rr).Data.([]any)
		require.Len(t, data, 1)
		assert.Equal(t, entry.ID.String(), data[0].(map[string]any)["id"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockTransactionService{
			historyFn: func(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error) {
				return []*domain.JournalEntry{}, nil
			},
		}

		rr := serve(newTestRouter(t, svc), http.MethodGet, "/v1/providers/adyen/transactions/missing", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("journal disabled", func(t *testing.T) {
		svc := &mockTransactionService{
			historyFn: func(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error) {
				return nil, service.ErrJournalDisabled
			},
		}

		rr := serve(newTestRouter(t, svc), http.MethodGet, "/v1/providers/adyen/transactions/order-123", "")
		assert.Equal(t, http.StatusNotImplemented, rr.Code)
		assert.Equal(t, "JOURNAL_DISABLED", decode(t, rr).Error.Code)
	})
}

func TestHandleErrorCode(t *testing.T) {
	router := newTestRouter(t, &mockTransactionService{})

	t.Run("mapped checkout code", func(t *testing.T) {
		rr := serve(router, http.MethodGet, "/v1/providers/checkout/error-codes/20054", "")

		require.Equal(t, http.StatusOK, rr.Code)
		data := decode(t, rr).Data.(map[string]any)
		assert.Equal(t, true, data["mapped"])
		assert.Equal(t, "expired_card", data["code"])
		assert.Equal(t, "payment_method_error", data["category"])
	})

	t.Run("unmapped code falls back to other", func(t *testing.T) {
		rr := serve(router, http.MethodGet, "/v1/providers/adyen/error-codes/9999", "")

		require.Equal(t, http.StatusOK, rr.Code)
		data := decode(t, rr).Data.(map[string]any)
		assert.Equal(t, false, data["mapped"])
		assert.Equal(t, "other", data["code"])
	})

	t.Run("unknown provider", func(t *testing.T) {
		rr := serve(router, http.MethodGet, "/v1/providers/stripe/error-codes/1", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("live and docs", func(t *testing.T) {
		router := newTestRouter(t, &mockTransactionService{})

		rr := serve(router, http.MethodGet, "/-/live", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = serve(router, http.MethodGet, "/openapi.json", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("request id is propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/-/live", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rr := httptest.NewRecorder()

		newTestRouter(t, &mockTransactionService{}).ServeHTTP(rr, req)

		assert.Equal(t, "req-42", rr.Header().Get(RequestIDHeader))
	})

	t.Run("panic is recovered", func(t *testing.T) {
		svc := &mockTransactionService{
			transactionFn: func(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
				panic("provider mapper exploded")
			},
		}

		rr := serve(newTestRouter(t, svc), http.MethodPost, "/v1/providers/adyen/transactions", validBody)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "INTERNAL_ERROR", decode(t, rr).Error.Code)
	})
}
