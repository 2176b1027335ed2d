package testhelpers

import (
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/google/uuid"
)

// DefaultTransactionRequest returns a valid one-time processor-token charge
// with a fresh reference.
func DefaultTransactionRequest() *domain.TransactionRequest {
	return &domain.TransactionRequest{
		Reference: "order-" + uuid.New().String(),
		Type:      domain.RecurringTypeOneTime,
		Amount:    domain.Amount{Value: 5000, Currency: "USD"},
		Source:    domain.Source{Type: domain.SourceTypeProcessorToken, ID: "ptok-" + uuid.New().String()},
	}
}

// SucceededEntry returns a journal entry for an authorized transaction.
func SucceededEntry(provider, reference string) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:                    uuid.New(),
		Provider:              provider,
		Reference:             reference,
		Outcome:               domain.OutcomeSucceeded,
		Amount:                domain.Amount{Value: 5000, Currency: "USD"},
		Status:                domain.StatusAuthorized,
		ProviderTransactionID: "psp-" + uuid.New().String(),
		CreatedAt:             time.Now().UTC().Truncate(time.Microsecond),
	}
}
