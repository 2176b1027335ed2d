package adyen

type amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

type paymentMethod struct {
	Type                  string `json:"type"`
	StoredPaymentMethodID string `json:"storedPaymentMethodId,omitempty"`
	Number                string `json:"number,omitempty"`
	ExpiryMonth           string `json:"expiryMonth,omitempty"`
	ExpiryYear            string `json:"expiryYear,omitempty"`
	CVC                   string `json:"cvc,omitempty"`
	HolderName            string `json:"holderName,omitempty"`
}

type shopperName struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type billingAddress struct {
	Street          string `json:"street,omitempty"`
	City            string `json:"city,omitempty"`
	StateOrProvince string `json:"stateOrProvince,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	Country         string `json:"country,omitempty"`
}

type threeDSecure struct {
	ECI                 string `json:"eci,omitempty"`
	AuthenticationValue string `json:"authenticationValue,omitempty"`
	XID                 string `json:"xid,omitempty"`
	ThreeDSVersion      string `json:"threeDSVersion,omitempty"`
}

type additionalData struct {
	ThreeDSecure       *threeDSecure `json:"threeDSecure,omitempty"`
	NetworkTxReference string        `json:"networkTxReference,omitempty"`
}

type paymentRequest struct {
	Amount                   amount          `json:"amount"`
	MerchantAccount          string          `json:"merchantAccount"`
	Reference                string          `json:"reference"`
	ShopperInteraction       string          `json:"shopperInteraction"`
	StorePaymentMethod       bool            `json:"storePaymentMethod"`
	RecurringProcessingModel string          `json:"recurringProcessingModel,omitempty"`
	PaymentMethod            paymentMethod   `json:"paymentMethod"`
	ShopperReference         string          `json:"shopperReference,omitempty"`
	ShopperName              *shopperName    `json:"shopperName,omitempty"`
	ShopperEmail             string          `json:"shopperEmail,omitempty"`
	BillingAddress           *billingAddress `json:"billingAddress,omitempty"`
	ShopperStatement         string          `json:"shopperStatement,omitempty"`
	AdditionalData           *additionalData `json:"additionalData,omitempty"`
}

type responsePaymentMethod struct {
	Type                  string `json:"type"`
	Brand                 string `json:"brand"`
	StoredPaymentMethodID string `json:"storedPaymentMethodId"`
}

// paymentResponse covers both /payments results and Adyen's service error body.
type paymentResponse struct {
	PSPReference      string                 `json:"pspReference"`
	ResultCode        string                 `json:"resultCode"`
	MerchantReference string                 `json:"merchantReference"`
	Amount            *amount                `json:"amount"`
	RefusalReason     string                 `json:"refusalReason"`
	RefusalReasonCode string                 `json:"refusalReasonCode"`
	PaymentMethod     *responsePaymentMethod `json:"paymentMethod"`
	AdditionalData    map[string]any         `json:"additionalData"`

	Status    int    `json:"status"`
	ErrorCode string `json:"errorCode"`
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

func (r *paymentResponse) additional(key string) string {
	if v, ok := r.AdditionalData[key].(string); ok {
		return v
	}
	return ""
}
