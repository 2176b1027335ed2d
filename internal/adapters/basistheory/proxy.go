package basistheory

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/payload"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/goccy/go-json"
)

const proxyURLHeader = "BT-PROXY-URL"

// ProxyTransport sends proxied calls through the Basis Theory proxy, which
// substitutes token expressions before forwarding to the provider. Other
// calls go straight to next.
type ProxyTransport struct {
	next     ports.Transport
	proxyURL string
	apiKey   string
}

var _ ports.Transport = (*ProxyTransport)(nil)

func NewProxyTransport(next ports.Transport, proxyURL, apiKey string) *ProxyTransport {
	return &ProxyTransport{
		next:     next,
		proxyURL: proxyURL,
		apiKey:   apiKey,
	}
}

func (p *ProxyTransport) Do(ctx context.Context, call *ports.ProviderCall) (*ports.ProviderReply, error) {
	if !call.Proxied {
		return p.next.Do(ctx, call)
	}
	if p.apiKey == "" {
		return nil, missingAPIKey()
	}

	header := call.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set(apiKeyHeader, p.apiKey)
	header.Set(proxyURLHeader, call.URL)

	proxied := *call
	proxied.URL = p.proxyURL
	proxied.Header = header

	reply, err := p.next.Do(ctx, &proxied)
	if err != nil {
		return nil, err
	}

	if errResp := proxyError(reply); errResp != nil {
		return nil, errResp
	}
	return reply, nil
}

// proxyError detects failures raised by the proxy itself rather than by the
// destination. Those carry a top-level proxy_error object.
func proxyError(reply *ports.ProviderReply) *domain.ErrorResponse {
	if reply.StatusCode < 400 || len(reply.Body) == 0 {
		return nil
	}

	var body proxyErrorBody
	if err := json.Unmarshal(reply.Body, &body); err != nil || body.ProxyError == nil {
		return nil
	}

	status := body.ProxyError.Status
	if status == 0 {
		status = reply.StatusCode
	}

	raw, _ := payload.ToMap(reply.Body)
	return &domain.ErrorResponse{
		ErrorCodes:           []domain.ErrorCode{errorType(status).Code()},
		ProviderErrors:       []string{body.ProxyError.message(status)},
		FullProviderResponse: raw,
	}
}
