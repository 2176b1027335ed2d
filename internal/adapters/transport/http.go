// Package transport performs provider round trips over HTTP.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
)

type HTTPTransport struct {
	httpClient *http.Client
}

var _ ports.Transport = (*HTTPTransport)(nil)

func NewHTTPTransport(cfg config.TransportConfig) *HTTPTransport {
	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Do sends the call once. Any HTTP status is a reply; only failures to get
// a response at all are errors.
func (t *HTTPTransport) Do(ctx context.Context, call *ports.ProviderCall) (*ports.ProviderReply, error) {
	var bodyReader io.Reader
	if call.Body != nil {
		bodyReader = bytes.NewReader(call.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, call.Method, call.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	for key, values := range call.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Provider: call.Provider, TimedOut: isTimeout(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Provider: call.Provider, TimedOut: isTimeout(ctx, err), Err: fmt.Errorf("error reading response body: %w", err)}
	}

	return &ports.ProviderReply{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
