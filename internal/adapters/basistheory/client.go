// Package basistheory talks to the Basis Theory tokenization service: it
// checks token references and routes card-bearing provider calls through
// the Basis Theory proxy.
package basistheory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/payload"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/goccy/go-json"
)

const apiKeyHeader = "BT-API-KEY"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.Tokenizer = (*Client)(nil)

func NewClient(cfg config.BasisTheoryConfig, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Resolve confirms the token (or token intent) is readable with the
// configured key and returns proxy expressions for its card fields. Card
// data itself never leaves Basis Theory.
func (c *Client) Resolve(ctx context.Context, source domain.Source) (*domain.Card, error) {
	if c.apiKey == "" {
		return nil, missingAPIKey()
	}

	var path, prefix string
	switch source.Type {
	case domain.SourceTypeBasisTheoryToken:
		path, prefix = "/tokens/", "token"
	case domain.SourceTypeBasisTheoryTokenIntent:
		path, prefix = "/token-intents/", "token_intent"
	default:
		return nil, domain.NewUnsupportedRequestError("source type %q is not a Basis Theory reference", source.Type)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+url.PathEscape(source.ID), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set(apiKeyHeader, c.apiKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.ErrorResponse{
			ErrorCodes:     []domain.ErrorCode{domain.ErrBTUnexpected.Code()},
			ProviderErrors: []string{"basis theory is unreachable"},
			Err:            err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ErrorResponse{
			ErrorCodes:     []domain.ErrorCode{domain.ErrBTUnexpected.Code()},
			ProviderErrors: []string{"error reading basis theory response"},
			Err:            err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	return cardExpressions(prefix, source.ID), nil
}

func apiError(status int, body []byte) *domain.ErrorResponse {
	var p problem
	_ = json.Unmarshal(body, &p)

	errResp := &domain.ErrorResponse{
		ErrorCodes:     []domain.ErrorCode{errorType(status).Code()},
		ProviderErrors: []string{p.message(status)},
	}
	if raw, err := payload.ToMap(body); err == nil {
		errResp.FullProviderResponse = raw
	}

	return errResp
}

func cardExpressions(prefix, id string) *domain.Card {
	expr := func(field string) string {
		return fmt.Sprintf("{{ %s: %s | json: '$.data.%s'}}", prefix, id, field)
	}
	return &domain.Card{
		Number:      expr("number"),
		ExpiryMonth: expr("expiration_month"),
		ExpiryYear:  expr("expiration_year"),
		CVC:         expr("cvc"),
	}
}
