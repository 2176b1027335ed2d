package ports

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
)

// ProviderCall is a fully built provider request. Proxied calls carry
// tokenization expressions in Body and must be routed through the
// tokenization proxy.
type ProviderCall struct {
	Provider string
	Method   string
	URL      string
	Header   http.Header
	Body     []byte
	Proxied  bool
}

type ProviderReply struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs exactly one round trip per call. Timeouts and
// cancellation are owned by the implementation and ctx.
type Transport interface {
	Do(ctx context.Context, call *ProviderCall) (*ProviderReply, error)
}

// Tokenizer resolves tokenization references into a card representation a
// provider request can carry.
type Tokenizer interface {
	Resolve(ctx context.Context, source domain.Source) (*domain.Card, error)
}

// Provider is the capability set every supported processor implements: a
// request mapper and a response mapper bound to one provider configuration.
type Provider interface {
	Name() string
	// CheckCredentials fails fast when the configured credentials can never
	// authenticate.
	CheckCredentials() error
	Validate(req *domain.TransactionRequest) error
	BuildRequest(req *domain.TransactionRequest, inst *domain.Instrument) (*ProviderCall, error)
	ParseResponse(req *domain.TransactionRequest, reply *ProviderReply) (*domain.TransactionResponse, error)
}
