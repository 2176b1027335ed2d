// Package source turns payment-source references into instruments a
// provider request mapper can consume.
package source

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
)

type Resolver struct {
	tokenizer ports.Tokenizer
}

func NewResolver(tokenizer ports.Tokenizer) *Resolver {
	return &Resolver{tokenizer: tokenizer}
}

// Resolve returns the instrument for src. Processor tokens pass straight
// through; tokenization references are delegated to the tokenizer and any
// failure there is reported in the basis_theory_error category.
func (r *Resolver) Resolve(ctx context.Context, src domain.Source, provider string) (*domain.Instrument, error) {
	switch {
	case src.Type == domain.SourceTypeProcessorToken:
		return &domain.Instrument{Source: src, ProcessorToken: src.ID}, nil
	case src.Type.IsTokenized():
		return r.resolveToken(ctx, src, provider)
	default:
		return nil, domain.NewUnsupportedRequestError("source type %q is not supported by %s", src.Type, provider)
	}
}

func (r *Resolver) resolveToken(ctx context.Context, src domain.Source, provider string) (*domain.Instrument, error) {
	if r.tokenizer == nil {
		return nil, domain.NewErrorResponse(domain.ErrBTUnauthenticated, "tokenization service is not configured", nil)
	}

	card, err := r.tokenizer.Resolve(ctx, src)
	if err != nil {
		if errResp, ok := domain.IsErrorResponse(err); ok {
			return nil, errResp
		}
		errResp := domain.NewErrorResponse(domain.ErrBTUnexpected, fmt.Sprintf("resolving %s %s for %s failed", src.Type, src.ID, provider), nil)
		errResp.Err = err
		return nil, errResp
	}
	if card == nil {
		return nil, domain.NewErrorResponse(domain.ErrBTUnexpected, fmt.Sprintf("tokenization service returned no card for %s", src.ID), nil)
	}

	return &domain.Instrument{Source: src, Card: card}, nil
}
