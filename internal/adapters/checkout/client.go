// Package checkout maps canonical transactions onto the Checkout.com
// payments API.
package checkout

import (
	"net/http"
	"strings"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/payload"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
)

const (
	sandboxBaseURL = "https://api.sandbox.checkout.com"
	liveBaseURL    = "https://api.checkout.com"
)

var paymentTypes = map[domain.RecurringType]string{
	domain.RecurringTypeOneTime:      "Regular",
	domain.RecurringTypeCardOnFile:   "CardOnFile",
	domain.RecurringTypeSubscription: "Recurring",
	domain.RecurringTypeUnscheduled:  "Unscheduled",
}

type Client struct {
	cfg     config.CheckoutConfig
	baseURL string
}

var _ ports.Provider = (*Client)(nil)

func NewClient(cfg config.CheckoutConfig, isTest bool) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = liveBaseURL
		if isTest {
			baseURL = sandboxBaseURL
		}
	}

	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Name() string {
	return domain.ProviderCheckout
}

// CheckCredentials rejects empty and public keys. A public key can never
// authorize a payment.
func (c *Client) CheckCredentials() error {
	key := strings.TrimSpace(c.cfg.PrivateKey)
	if key == "" || strings.HasPrefix(key, "pk_") {
		return domain.NewInvalidAPIKeyError(domain.ProviderCheckout)
	}
	if c.cfg.ProcessingChannel == "" {
		return domain.NewConfigurationError("checkout processing channel is not configured")
	}
	return nil
}

func (c *Client) Validate(req *domain.TransactionRequest) error {
	return nil
}

func (c *Client) BuildRequest(req *domain.TransactionRequest, inst *domain.Instrument) (*ports.ProviderCall, error) {
	body := c.toPaymentRequest(req, inst)

	raw, err := payload.Encode(body, req.OverrideProviderProperties)
	if err != nil {
		return nil, domain.NewValidationError("checkout payload: %v", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Authorization", "Bearer "+c.cfg.PrivateKey)
	header.Set("Cko-Idempotency-Key", req.Reference)

	return &ports.ProviderCall{
		Provider: domain.ProviderCheckout,
		Method:   http.MethodPost,
		URL:      c.baseURL + "/payments",
		Header:   header,
		Body:     raw,
		Proxied:  inst.RequiresProxy(),
	}, nil
}

func (c *Client) toPaymentRequest(req *domain.TransactionRequest, inst *domain.Instrument) *paymentRequest {
	body := &paymentRequest{
		Amount:              req.Amount.Value,
		Currency:            req.Amount.Currency,
		MerchantInitiated:   req.MerchantInitiated,
		PaymentType:         paymentTypes[req.Type.Normalize()],
		ProcessingChannelID: c.cfg.ProcessingChannel,
		Reference:           req.Reference,
	}

	if inst.Card != nil {
		store := req.Source.StoreWithProvider
		body.Source = paymentSource{
			Type:              "card",
			Number:            inst.Card.Number,
			ExpiryMonth:       inst.Card.ExpiryMonth,
			ExpiryYear:        inst.Card.ExpiryYear,
			CVV:               inst.Card.CVC,
			Name:              req.Source.HolderName,
			StoreForFutureUse: &store,
		}
	} else {
		body.Source = paymentSource{Type: "id", ID: inst.ProcessorToken}
	}

	if cust := req.Customer; cust != nil {
		name := strings.TrimSpace(cust.FirstName + " " + cust.LastName)
		if name != "" || cust.Email != "" {
			body.Customer = &customer{Name: name, Email: cust.Email}
		}
		if addr := cust.Address; addr != nil && !addr.IsZero() {
			body.Source.BillingAddress = &billingAddress{
				AddressLine1: addr.AddressLine1,
				AddressLine2: addr.AddressLine2,
				City:         addr.City,
				State:        addr.State,
				Zip:          addr.Zip,
				Country:      addr.Country,
			}
		}
	}

	if sd := req.StatementDescription; sd != nil && (sd.Name != "" || sd.City != "") {
		body.Source.BillingDescriptor = &billingDescriptor{Name: sd.Name, City: sd.City}
	}

	if tds := req.ThreeDS; tds != nil && *tds != (domain.ThreeDS{}) {
		body.ThreeDS = &threeDS{
			ECI:        tds.ECI,
			Cryptogram: tds.AuthenticationValue,
			XID:        tds.XID,
			Version:    tds.Version,
		}
	}

	if req.MerchantInitiated {
		body.PreviousPaymentID = req.PreviousNetworkTransactionID
	}

	return body
}
