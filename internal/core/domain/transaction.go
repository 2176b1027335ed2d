package domain

import (
	"time"
)

type RecurringType string

const (
	RecurringTypeOneTime      RecurringType = "ONE_TIME"
	RecurringTypeCardOnFile   RecurringType = "CARD_ON_FILE"
	RecurringTypeSubscription RecurringType = "SUBSCRIPTION"
	RecurringTypeUnscheduled  RecurringType = "UNSCHEDULED"
)

// Normalize treats an unset recurring type as a one-time charge.
func (t RecurringType) Normalize() RecurringType {
	if t == "" {
		return RecurringTypeOneTime
	}
	return t
}

// AllowsStorage reports whether an instrument may be stored with the provider
// for this kind of transaction.
func (t RecurringType) AllowsStorage() bool {
	switch t {
	case RecurringTypeCardOnFile, RecurringTypeSubscription, RecurringTypeUnscheduled:
		return true
	}
	return false
}

type SourceType string

const (
	SourceTypeBasisTheoryToken       SourceType = "basis_theory_token"
	SourceTypeBasisTheoryTokenIntent SourceType = "basistheory_token_intent"
	SourceTypeProcessorToken         SourceType = "processor_token"
)

// IsTokenized reports whether the source must be resolved through the
// tokenization service before a provider can use it.
func (t SourceType) IsTokenized() bool {
	return t == SourceTypeBasisTheoryToken || t == SourceTypeBasisTheoryTokenIntent
}

type Amount struct {
	Value    int64  `json:"value" yaml:"value" validate:"gte=0"`
	Currency string `json:"currency" yaml:"currency" validate:"required,len=3"`
}

type Source struct {
	Type              SourceType `json:"type" yaml:"type" validate:"required,oneof=basis_theory_token basistheory_token_intent processor_token"`
	ID                string     `json:"id" yaml:"id" validate:"required"`
	StoreWithProvider bool       `json:"store_with_provider,omitempty" yaml:"store_with_provider,omitempty"`
	HolderName        string     `json:"holder_name,omitempty" yaml:"holder_name,omitempty"`
}

type Address struct {
	AddressLine1 string `json:"address_line1,omitempty" yaml:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty" yaml:"address_line2,omitempty"`
	City         string `json:"city,omitempty" yaml:"city,omitempty"`
	State        string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip          string `json:"zip,omitempty" yaml:"zip,omitempty"`
	Country      string `json:"country,omitempty" yaml:"country,omitempty"`
}

// IsZero reports whether no address field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

type Customer struct {
	Reference string   `json:"reference,omitempty" yaml:"reference,omitempty"`
	FirstName string   `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Email     string   `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Address   *Address `json:"address,omitempty" yaml:"address,omitempty"`
}

type StatementDescription struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	City string `json:"city,omitempty" yaml:"city,omitempty"`
}

// ThreeDS carries authentication evidence produced by a 3-D Secure flow.
type ThreeDS struct {
	ECI                 string `json:"eci,omitempty" yaml:"eci,omitempty"`
	AuthenticationValue string `json:"authentication_value,omitempty" yaml:"authentication_value,omitempty"`
	XID                 string `json:"xid,omitempty" yaml:"xid,omitempty"`
	Version             string `json:"version,omitempty" yaml:"version,omitempty"`
}

// TransactionRequest is the provider-agnostic description of a charge.
// Reference doubles as the idempotency key sent to the provider.
type TransactionRequest struct {
	Reference                    string                `json:"reference" yaml:"reference" validate:"required"`
	Type                         RecurringType         `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=ONE_TIME CARD_ON_FILE SUBSCRIPTION UNSCHEDULED"`
	Amount                       Amount                `json:"amount" yaml:"amount"`
	Source                       Source                `json:"source" yaml:"source"`
	Customer                     *Customer             `json:"customer,omitempty" yaml:"customer,omitempty"`
	StatementDescription         *StatementDescription `json:"statement_description,omitempty" yaml:"statement_description,omitempty"`
	ThreeDS                      *ThreeDS              `json:"three_ds,omitempty" yaml:"three_ds,omitempty"`
	MerchantInitiated            bool                  `json:"merchant_initiated,omitempty" yaml:"merchant_initiated,omitempty"`
	PreviousNetworkTransactionID string                `json:"previous_network_transaction_id,omitempty" yaml:"previous_network_transaction_id,omitempty"`
	OverrideProviderProperties   map[string]any        `json:"override_provider_properties,omitempty" yaml:"override_provider_properties,omitempty"`
	Metadata                     map[string]any        `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type TransactionStatusCode string

const (
	StatusAuthorized          TransactionStatusCode = "Authorized"
	StatusPending             TransactionStatusCode = "Pending"
	StatusCardVerified        TransactionStatusCode = "Card Verified"
	StatusDeclined            TransactionStatusCode = "Declined"
	StatusRetryScheduled      TransactionStatusCode = "Retry Scheduled"
	StatusCancelled           TransactionStatusCode = "Cancelled"
	StatusChallengeShopper    TransactionStatusCode = "ChallengeShopper"
	StatusReceived            TransactionStatusCode = "Received"
	StatusPartiallyAuthorized TransactionStatusCode = "PartiallyAuthorised"
)

// TransactionStatus keeps the provider's own status string next to the
// normalized one.
type TransactionStatus struct {
	Code         TransactionStatusCode `json:"code" yaml:"code"`
	ProviderCode string                `json:"provider_code" yaml:"provider_code"`
}

type ProvisionedSource struct {
	ID string `json:"id" yaml:"id"`
}

type TransactionSource struct {
	Type        SourceType         `json:"type" yaml:"type"`
	ID          string             `json:"id" yaml:"id"`
	Provisioned *ProvisionedSource `json:"provisioned,omitempty" yaml:"provisioned,omitempty"`
}

type TransactionThreeDS struct {
	Downgraded bool   `json:"downgraded" yaml:"downgraded"`
	Enrolled   string `json:"enrolled,omitempty" yaml:"enrolled,omitempty"`
	ECI        string `json:"eci,omitempty" yaml:"eci,omitempty"`
}

type TransactionResponse struct {
	ID                   string              `json:"id" yaml:"id"`
	Reference            string              `json:"reference" yaml:"reference"`
	Amount               Amount              `json:"amount" yaml:"amount"`
	Status               TransactionStatus   `json:"status" yaml:"status"`
	Source               TransactionSource   `json:"source" yaml:"source"`
	NetworkTransactionID string              `json:"network_transaction_id,omitempty" yaml:"network_transaction_id,omitempty"`
	ThreeDS              *TransactionThreeDS `json:"three_ds,omitempty" yaml:"three_ds,omitempty"`
	FullProviderResponse map[string]any      `json:"full_provider_response" yaml:"full_provider_response"`
	CreatedAt            time.Time           `json:"created_at" yaml:"created_at"`
}

// Card is the provider-facing card representation produced by the
// tokenization service. Each field holds a proxy expression, so the values
// only become card data when the call is routed through the proxy.
type Card struct {
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
}

// Instrument is the resolved payment source handed to a request mapper.
// Exactly one of ProcessorToken and Card is set.
type Instrument struct {
	Source         Source
	ProcessorToken string
	Card           *Card
}

// RequiresProxy reports whether the provider call must go through the
// tokenization proxy to detokenize card fields.
func (i *Instrument) RequiresProxy() bool {
	return i.Card != nil
}

// Supported provider names.
const (
	ProviderAdyen    = "adyen"
	ProviderCheckout = "checkout"
)
