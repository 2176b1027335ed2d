// Package adyen maps canonical transactions onto the Adyen Checkout API.
package adyen

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/payload"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
)

const (
	testBaseURL = "https://checkout-test.adyen.com/v71"
	liveBaseURL = "https://%s-checkout-live.adyenpayments.com/checkout/v71"
)

var recurringProcessingModels = map[domain.RecurringType]string{
	domain.RecurringTypeCardOnFile:   "CardOnFile",
	domain.RecurringTypeSubscription: "Subscription",
	domain.RecurringTypeUnscheduled:  "UnscheduledCardOnFile",
}

type Client struct {
	cfg     config.AdyenConfig
	isTest  bool
	baseURL string
}

var _ ports.Provider = (*Client)(nil)

func NewClient(cfg config.AdyenConfig, isTest bool) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		if isTest {
			baseURL = testBaseURL
		} else {
			baseURL = fmt.Sprintf(liveBaseURL, cfg.ProductionPrefix)
		}
	}

	return &Client{
		cfg:     cfg,
		isTest:  isTest,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Name() string {
	return domain.ProviderAdyen
}

func (c *Client) CheckCredentials() error {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return domain.NewInvalidAPIKeyError(domain.ProviderAdyen)
	}
	if c.cfg.MerchantAccount == "" {
		return domain.NewConfigurationError("adyen merchant account is not configured")
	}
	if !c.isTest && c.cfg.BaseURL == "" && c.cfg.ProductionPrefix == "" {
		return domain.NewConfigurationError("adyen live endpoint requires a production prefix")
	}
	return nil
}

// Validate rejects requests Adyen cannot honour. Tokenized storage needs a
// shopper reference because Adyen binds stored details to a shopper.
func (c *Client) Validate(req *domain.TransactionRequest) error {
	if req.Source.StoreWithProvider && (req.Customer == nil || req.Customer.Reference == "") {
		return domain.NewValidationError("adyen requires customer.reference to store a payment method")
	}
	return nil
}

func (c *Client) BuildRequest(req *domain.TransactionRequest, inst *domain.Instrument) (*ports.ProviderCall, error) {
	body := c.toPaymentRequest(req, inst)

	raw, err := payload.Encode(body, req.OverrideProviderProperties)
	if err != nil {
		return nil, domain.NewValidationError("adyen payload: %v", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-API-Key", c.cfg.APIKey)
	header.Set("Idempotency-Key", req.Reference)

	return &ports.ProviderCall{
		Provider: domain.ProviderAdyen,
		Method:   http.MethodPost,
		URL:      c.baseURL + "/payments",
		Header:   header,
		Body:     raw,
		Proxied:  inst.RequiresProxy(),
	}, nil
}

func (c *Client) toPaymentRequest(req *domain.TransactionRequest, inst *domain.Instrument) *paymentRequest {
	body := &paymentRequest{
		Amount:             amount{Value: req.Amount.Value, Currency: req.Amount.Currency},
		MerchantAccount:    c.cfg.MerchantAccount,
		Reference:          req.Reference,
		ShopperInteraction: "Ecommerce",
		StorePaymentMethod: req.Source.StoreWithProvider,
	}

	if req.MerchantInitiated {
		body.ShopperInteraction = "ContAuth"
	}
	body.RecurringProcessingModel = recurringProcessingModels[req.Type.Normalize()]

	pm := paymentMethod{Type: "scheme", HolderName: req.Source.HolderName}
	if inst.Card != nil {
		pm.Number = inst.Card.Number
		pm.ExpiryMonth = inst.Card.ExpiryMonth
		pm.ExpiryYear = inst.Card.ExpiryYear
		pm.CVC = inst.Card.CVC
	} else {
		pm.StoredPaymentMethodID = inst.ProcessorToken
	}
	body.PaymentMethod = pm

	if cust := req.Customer; cust != nil {
		body.ShopperReference = cust.Reference
		body.ShopperEmail = cust.Email
		if cust.FirstName != "" || cust.LastName != "" {
			body.ShopperName = &shopperName{FirstName: cust.FirstName, LastName: cust.LastName}
		}
		if addr := cust.Address; addr != nil && !addr.IsZero() {
			body.BillingAddress = &billingAddress{
				Street:          addr.AddressLine1,
				City:            addr.City,
				StateOrProvince: addr.State,
				PostalCode:      addr.Zip,
				Country:         addr.Country,
			}
		}
	}

	// Adyen has no statement city field.
	if sd := req.StatementDescription; sd != nil {
		body.ShopperStatement = sd.Name
	}

	extra := &additionalData{}
	if tds := req.ThreeDS; tds != nil && *tds != (domain.ThreeDS{}) {
		extra.ThreeDSecure = &threeDSecure{
			ECI:                 tds.ECI,
			AuthenticationValue: tds.AuthenticationValue,
			XID:                 tds.XID,
			ThreeDSVersion:      tds.Version,
		}
	}
	if req.MerchantInitiated {
		extra.NetworkTxReference = req.PreviousNetworkTransactionID
	}
	if extra.ThreeDSecure != nil || extra.NetworkTxReference != "" {
		body.AdditionalData = extra
	}

	return body
}
