// Package service drives a canonical transaction through source resolution,
// provider request mapping, one provider round trip and response mapping.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/source"
)

type Stage string

const (
	StageValidating      Stage = "VALIDATING"
	StageResolvingSource Stage = "RESOLVING_SOURCE"
	StageBuildingRequest Stage = "BUILDING_REQUEST"
	StageCallingProvider Stage = "CALLING_PROVIDER"
	StageParsingResponse Stage = "PARSING_RESPONSE"
	StageSucceeded       Stage = "SUCCEEDED"
	StageFailed          Stage = "FAILED"
)

// Orchestrator holds a fixed provider registry. It keeps no per-call state
// and is safe for concurrent use.
type Orchestrator struct {
	providers map[string]ports.Provider
	resolver  *source.Resolver
	transport ports.Transport
	logger    *slog.Logger
}

func NewOrchestrator(resolver *source.Resolver, transport ports.Transport, logger *slog.Logger, providers ...ports.Provider) *Orchestrator {
	registry := make(map[string]ports.Provider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		providers: registry,
		resolver:  resolver,
		transport: transport,
		logger:    logger,
	}
}

// Providers lists the registered provider names.
func (o *Orchestrator) Providers() []string {
	names := make([]string, 0, len(o.providers))
	for name := range o.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProviderClient is a registry entry bound for chained calls such as
// o.Provider("adyen").Transaction(ctx, req).
type ProviderClient struct {
	orchestrator *Orchestrator
	name         string
}

func (o *Orchestrator) Provider(name string) *ProviderClient {
	return &ProviderClient{orchestrator: o, name: name}
}

func (c *ProviderClient) Transaction(ctx context.Context, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	return c.orchestrator.Transaction(ctx, c.name, req)
}

// Transaction runs one transaction against the named provider. The result is
// either a response or an *domain.ErrorResponse; failures before
// CALLING_PROVIDER never reach the network.
func (o *Orchestrator) Transaction(ctx context.Context, name string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	logger := o.logger.With("provider", name)
	if req != nil {
		logger = logger.With("reference", req.Reference, "amount", req.Amount.String())
	}

	resp, stage, err := o.run(ctx, logger, name, req)
	if err != nil {
		errResp := asErrorResponse(err)
		logger.Warn("transaction failed",
			"stage", stage,
			"error_codes", errResp.ErrorCodes,
			"provider_errors", errResp.ProviderErrors,
		)
		return nil, errResp
	}

	logger.Info("transaction succeeded",
		"id", resp.ID,
		"status", resp.Status.Code,
		"provider_status", resp.Status.ProviderCode,
	)
	return resp, nil
}

func (o *Orchestrator) run(ctx context.Context, logger *slog.Logger, name string, req *domain.TransactionRequest) (*domain.TransactionResponse, Stage, error) {
	stage := func(s Stage) Stage {
		logger.Debug("transaction stage", "stage", s)
		return s
	}

	current := stage(StageValidating)
	provider, ok := o.providers[name]
	if !ok {
		return nil, current, domain.NewConfigurationError("provider %q is not configured", name)
	}
	if err := provider.CheckCredentials(); err != nil {
		return nil, current, err
	}
	if err := domain.ValidateRequest(req); err != nil {
		return nil, current, err
	}
	if err := provider.Validate(req); err != nil {
		return nil, current, err
	}

	current = stage(StageResolvingSource)
	inst, err := o.resolver.Resolve(ctx, req.Source, name)
	if err != nil {
		return nil, current, err
	}

	current = stage(StageBuildingRequest)
	call, err := provider.BuildRequest(req, inst)
	if err != nil {
		return nil, current, err
	}

	current = stage(StageCallingProvider)
	reply, err := o.transport.Do(ctx, call)
	if err != nil {
		return nil, current, transportFailure(ctx, err)
	}

	current = stage(StageParsingResponse)
	resp, err := provider.ParseResponse(req, reply)
	if err != nil {
		return nil, current, err
	}

	stage(StageSucceeded)
	return resp, StageSucceeded, nil
}

type timeout interface {
	Timeout() bool
}

// transportFailure reports a call that produced no provider reply. Errors
// already in canonical form, such as tokenization proxy failures, pass
// through unchanged.
func transportFailure(ctx context.Context, err error) error {
	if errResp, ok := domain.IsErrorResponse(err); ok {
		return errResp
	}

	errType := domain.ErrConnectionFailure
	var t timeout
	if ctx.Err() != nil ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		(errors.As(err, &t) && t.Timeout()) {
		errType = domain.ErrTimeout
	}

	errResp := domain.NewErrorResponse(errType, err.Error(), nil)
	errResp.Err = err
	return errResp
}

func asErrorResponse(err error) *domain.ErrorResponse {
	if errResp, ok := domain.IsErrorResponse(err); ok {
		return errResp
	}
	errResp := domain.NewErrorResponse(domain.ErrOther, err.Error(), nil)
	errResp.Err = err
	return errResp
}
