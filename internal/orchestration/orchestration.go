// Package orchestration assembles an orchestrator from an explicit
// configuration object. Nothing here is global; every caller builds its own.
package orchestration

import (
	"log/slog"

	"github.com/DanielPopoola/payment-orchestrator/internal/adapters/adyen"
	"github.com/DanielPopoola/payment-orchestrator/internal/adapters/basistheory"
	"github.com/DanielPopoola/payment-orchestrator/internal/adapters/checkout"
	"github.com/DanielPopoola/payment-orchestrator/internal/adapters/transport"
	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/service"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/source"
)

// Config is handed to New once. IsTest selects every provider's sandbox
// endpoint.
type Config struct {
	IsTest             bool
	TokenizationAPIKey string
	Providers          config.ProvidersConfig
	BasisTheory        config.BasisTheoryConfig
	Transport          config.TransportConfig
}

// FromConfig extracts the orchestration settings from the loaded process
// configuration.
func FromConfig(cfg *config.Config) Config {
	return Config{
		IsTest:             cfg.Orchestration.IsTest,
		TokenizationAPIKey: cfg.Orchestration.TokenizationAPIKey,
		Providers:          cfg.Providers,
		BasisTheory:        cfg.BasisTheory,
		Transport:          cfg.Transport,
	}
}

type Option func(*options)

type options struct {
	transport ports.Transport
	tokenizer ports.Tokenizer
}

// WithTransport replaces the HTTP transport. The Basis Theory proxy still
// wraps it.
func WithTransport(t ports.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

func WithTokenizer(t ports.Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = t
	}
}

// New wires the provider registry, the source resolver and the transport
// chain. Providers without a configuration section are not registered.
func New(cfg Config, logger *slog.Logger, opts ...Option) *service.Orchestrator {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.transport == nil {
		o.transport = transport.NewHTTPTransport(cfg.Transport)
	}
	if o.tokenizer == nil {
		o.tokenizer = basistheory.NewClient(cfg.BasisTheory, cfg.TokenizationAPIKey)
	}

	chain := basistheory.NewProxyTransport(o.transport, cfg.BasisTheory.ProxyURL, cfg.TokenizationAPIKey)

	var providers []ports.Provider
	if cfg.Providers.Adyen != nil {
		providers = append(providers, adyen.NewClient(*cfg.Providers.Adyen, cfg.IsTest))
	}
	if cfg.Providers.Checkout != nil {
		providers = append(providers, checkout.NewClient(*cfg.Providers.Checkout, cfg.IsTest))
	}

	logger.Info("orchestrator configured",
		"is_test", cfg.IsTest,
		"providers", len(providers),
		"tokenization", cfg.TokenizationAPIKey != "",
	)

	return service.NewOrchestrator(source.NewResolver(o.tokenizer), chain, logger, providers...)
}
