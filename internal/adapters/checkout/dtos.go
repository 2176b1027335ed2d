package checkout

type billingAddress struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Country      string `json:"country,omitempty"`
}

type billingDescriptor struct {
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

type paymentSource struct {
	Type              string             `json:"type"`
	ID                string             `json:"id,omitempty"`
	Number            string             `json:"number,omitempty"`
	ExpiryMonth       string             `json:"expiry_month,omitempty"`
	ExpiryYear        string             `json:"expiry_year,omitempty"`
	CVV               string             `json:"cvv,omitempty"`
	Name              string             `json:"name,omitempty"`
	StoreForFutureUse *bool              `json:"store_for_future_use,omitempty"`
	BillingAddress    *billingAddress    `json:"billing_address,omitempty"`
	BillingDescriptor *billingDescriptor `json:"billing_descriptor,omitempty"`
}

type customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type threeDS struct {
	ECI        string `json:"eci,omitempty"`
	Cryptogram string `json:"cryptogram,omitempty"`
	XID        string `json:"xid,omitempty"`
	Version    string `json:"version,omitempty"`
}

type paymentRequest struct {
	Amount              int64         `json:"amount"`
	Currency            string        `json:"currency"`
	MerchantInitiated   bool          `json:"merchant_initiated"`
	PaymentType         string        `json:"payment_type"`
	ProcessingChannelID string        `json:"processing_channel_id"`
	Reference           string        `json:"reference"`
	Source              paymentSource `json:"source"`
	Customer            *customer     `json:"customer,omitempty"`
	ThreeDS             *threeDS      `json:"3ds,omitempty"`
	PreviousPaymentID   string        `json:"previous_payment_id,omitempty"`
}

type responseSource struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type responseThreeDS struct {
	Downgraded bool   `json:"downgraded"`
	Enrolled   string `json:"enrolled"`
	ECI        string `json:"eci"`
}

type processing struct {
	AcquirerTransactionID string `json:"acquirer_transaction_id"`
}

// paymentResponse covers both payment results and Checkout's error body.
type paymentResponse struct {
	ID              string           `json:"id"`
	Reference       string           `json:"reference"`
	Amount          *int64           `json:"amount"`
	Currency        string           `json:"currency"`
	Approved        *bool            `json:"approved"`
	Status          string           `json:"status"`
	ResponseCode    string           `json:"response_code"`
	ResponseSummary string           `json:"response_summary"`
	Source          *responseSource  `json:"source"`
	ThreeDS         *responseThreeDS `json:"3ds"`
	Processing      *processing      `json:"processing"`
	ProcessedOn     string           `json:"processed_on"`

	RequestID  string   `json:"request_id"`
	ErrorType  string   `json:"error_type"`
	ErrorCodes []string `json:"error_codes"`
}
