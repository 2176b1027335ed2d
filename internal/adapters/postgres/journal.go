package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
)

var ErrDuplicateJournalEntry = errors.New("journal entry already exists")

type JournalRepository struct {
	q Executor
}

var _ ports.JournalRepository = (*JournalRepository)(nil)

func NewJournalRepository(db *DB) *JournalRepository {
	return &JournalRepository{q: db.Pool}
}

// WithExecutor returns a repository bound to q, typically a pgx.Tx.
func (r *JournalRepository) WithExecutor(q Executor) *JournalRepository {
	return &JournalRepository{q: q}
}

func (r *JournalRepository) Record(ctx context.Context, e *domain.JournalEntry) error {
	query := `
		INSERT INTO transaction_journal (
			id, provider, reference, outcome, amount_value, currency, status,
			provider_transaction_id, network_transaction_id, provisioned_source_id,
			error_codes, metadata, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13)
	`

	errorCodes := e.ErrorCodes
	if errorCodes == nil {
		errorCodes = []domain.ErrorCode{}
	}
	codesJSON, err := json.Marshal(errorCodes)
	if err != nil {
		return fmt.Errorf("failed to encode error codes: %w", err)
	}

	var metadataJSON []byte
	if e.Metadata != nil {
		metadataJSON, err = json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
	}

	_, err = r.q.Exec(ctx, query,
		e.ID,
		e.Provider,
		e.Reference,
		string(e.Outcome),
		e.Amount.Value,
		e.Amount.Currency,
		string(e.Status),
		e.ProviderTransactionID,
		e.NetworkTransactionID,
		e.ProvisionedSourceID,
		codesJSON,
		metadataJSON,
		e.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateJournalEntry, e.ID)
		}
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

// FindByReference returns the entries for a provider reference, newest first.
func (r *JournalRepository) FindByReference(ctx context.Context, provider, reference string) ([]*domain.JournalEntry, error) {
	query := `
		SELECT id, provider, reference, outcome, amount_value, currency,
		       COALESCE(status, ''), COALESCE(provider_transaction_id, ''),
		       COALESCE(network_transaction_id, ''), COALESCE(provisioned_source_id, ''),
		       error_codes, metadata, created_at
		FROM transaction_journal
		WHERE provider = $1 AND reference = $2
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, provider, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	entries := []*domain.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal rows: %w", err)
	}

	return entries, nil
}

func scanJournalEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e            domain.JournalEntry
		outcome      string
		status       string
		codesJSON    []byte
		metadataJSON []byte
	)

	err := row.Scan(
		&e.ID,
		&e.Provider,
		&e.Reference,
		&outcome,
		&e.Amount.Value,
		&e.Amount.Currency,
		&status,
		&e.ProviderTransactionID,
		&e.NetworkTransactionID,
		&e.ProvisionedSourceID,
		&codesJSON,
		&metadataJSON,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal entry: %w", err)
	}

	e.Outcome = domain.Outcome(outcome)
	e.Status = domain.TransactionStatusCode(status)
	e.CreatedAt = e.CreatedAt.UTC()

	if len(codesJSON) > 0 {
		if err := json.Unmarshal(codesJSON, &e.ErrorCodes); err != nil {
			return nil, fmt.Errorf("failed to decode error codes: %w", err)
		}
		if len(e.ErrorCodes) == 0 {
			e.ErrorCodes = nil
		}
	}
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &e.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}

	return &e, nil
}
