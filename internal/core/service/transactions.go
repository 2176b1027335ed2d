package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
)

var ErrJournalDisabled = errors.New("transaction journal is not configured")

// TransactionService is the gateway's entry point: it runs the orchestrator
// and keeps a journal of outcomes. The journal never changes a result.
type TransactionService struct {
	orchestrator *Orchestrator
	journal      ports.JournalRepository
	logger       *slog.Logger
}

// NewTransactionService builds the service. journal may be nil.
func NewTransactionService(orchestrator *Orchestrator, journal ports.JournalRepository, logger *slog.Logger) *TransactionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		orchestrator: orchestrator,
		journal:      journal,
		logger:       logger,
	}
}

func (s *TransactionService) Transaction(ctx context.Context, provider string, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	resp, err := s.orchestrator.Transaction(ctx, provider, req)

	if s.journal != nil && req != nil && !domain.IsCategory(err, domain.CategoryValidation) {
		entry := domain.NewJournalEntry(provider, req, resp, err)
		// The provider call already happened; a cancelled caller must not lose the record.
		if jerr := s.journal.Record(context.WithoutCancel(ctx), entry); jerr != nil {
			s.logger.Error("failed to record transaction",
				"provider", provider,
				"reference", req.Reference,
				"error", jerr,
			)
		}
	}

	return resp, err
}

// History returns journal entries for a reference, newest first.
func (s *TransactionService) History(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	return s.journal.FindByReference(ctx, provider, reference)
}

func (s *TransactionService) Providers() []string {
	return s.orchestrator.Providers()
}
