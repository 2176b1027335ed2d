package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// ValidateRequest checks the request shape and the combinations every
// provider rejects. It never performs I/O.
func ValidateRequest(req *TransactionRequest) error {
	if req == nil {
		return NewValidationError("transaction request is required")
	}

	if err := validate.Struct(req); err != nil {
		return NewValidationError("%s", describeValidationErrors(err))
	}

	recurring := req.Type.Normalize()

	if req.Source.StoreWithProvider {
		if req.Source.Type == SourceTypeProcessorToken {
			return NewUnsupportedRequestError("processor_token sources are already stored and cannot set store_with_provider")
		}
		if !recurring.AllowsStorage() {
			return NewValidationError("store_with_provider requires a CARD_ON_FILE, SUBSCRIPTION or UNSCHEDULED transaction, got %s", recurring)
		}
	}

	if req.MerchantInitiated && recurring == RecurringTypeOneTime {
		return NewValidationError("merchant initiated transactions require a recurring type other than %s", RecurringTypeOneTime)
	}

	return nil
}

func describeValidationErrors(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "TransactionRequest.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
