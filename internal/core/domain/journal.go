package domain

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSucceeded Outcome = "SUCCEEDED"
	OutcomeFailed    Outcome = "FAILED"
)

// JournalEntry is the gateway's record of one orchestrated transaction.
// Callers use it to recover provisioned ids and network transaction ids for
// later merchant-initiated charges.
type JournalEntry struct {
	ID                    uuid.UUID             `json:"id" yaml:"id"`
	Provider              string                `json:"provider" yaml:"provider"`
	Reference             string                `json:"reference" yaml:"reference"`
	Outcome               Outcome               `json:"outcome" yaml:"outcome"`
	Amount                Amount                `json:"amount" yaml:"amount"`
	Status                TransactionStatusCode `json:"status,omitempty" yaml:"status,omitempty"`
	ProviderTransactionID string                `json:"provider_transaction_id,omitempty" yaml:"provider_transaction_id,omitempty"`
	NetworkTransactionID  string                `json:"network_transaction_id,omitempty" yaml:"network_transaction_id,omitempty"`
	ProvisionedSourceID   string                `json:"provisioned_source_id,omitempty" yaml:"provisioned_source_id,omitempty"`
	ErrorCodes            []ErrorCode           `json:"error_codes,omitempty" yaml:"error_codes,omitempty"`
	Metadata              map[string]any        `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	CreatedAt             time.Time             `json:"created_at" yaml:"created_at"`
}

// NewJournalEntry captures the result of a transaction call. Exactly one of
// resp and err is expected to be non-nil.
func NewJournalEntry(provider string, req *TransactionRequest, resp *TransactionResponse, err error) *JournalEntry {
	entry := &JournalEntry{
		ID:        uuid.New(),
		Provider:  provider,
		Reference: req.Reference,
		Amount:    req.Amount,
		Metadata:  req.Metadata,
		CreatedAt: time.Now().UTC(),
	}

	if resp != nil {
		entry.Outcome = OutcomeSucceeded
		entry.Status = resp.Status.Code
		entry.ProviderTransactionID = resp.ID
		entry.NetworkTransactionID = resp.NetworkTransactionID
		if resp.Source.Provisioned != nil {
			entry.ProvisionedSourceID = resp.Source.Provisioned.ID
		}
		return entry
	}

	entry.Outcome = OutcomeFailed
	if errResp, ok := IsErrorResponse(err); ok {
		entry.ErrorCodes = errResp.ErrorCodes
	} else {
		entry.ErrorCodes = []ErrorCode{ErrOther.Code()}
	}
	return entry
}
