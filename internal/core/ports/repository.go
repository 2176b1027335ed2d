package ports

import (
	"context"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
)

// JournalRepository stores the outcome of every transaction the gateway
// forwards. It lives outside the orchestration core, which keeps no state.
type JournalRepository interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
	FindByReference(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error)
}
