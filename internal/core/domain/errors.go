package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCategory string

const (
	CategoryAuthentication ErrorCategory = "authentication_error"
	CategoryPaymentMethod  ErrorCategory = "payment_method_error"
	CategoryProcessing     ErrorCategory = "processing_error"
	CategoryValidation     ErrorCategory = "validation_error"
	CategoryBasisTheory    ErrorCategory = "basis_theory_error"
	CategoryFraudDecline   ErrorCategory = "fraud_decline"
	CategoryOther          ErrorCategory = "other"
)

// ErrorType is a canonical failure code. Every ErrorType is bound to exactly
// one category; the binding lives in errorCategories and nowhere else.
type ErrorType string

const (
	ErrRefused                    ErrorType = "refused"
	ErrReferral                   ErrorType = "referral"
	ErrAcquirerError              ErrorType = "acquirer_error"
	ErrBlockedCard                ErrorType = "blocked_card"
	ErrExpiredCard                ErrorType = "expired_card"
	ErrInvalidAmount              ErrorType = "invalid_amount"
	ErrInvalidCard                ErrorType = "invalid_card"
	ErrOther                      ErrorType = "other"
	ErrNotSupported               ErrorType = "not_supported"
	ErrAuthenticationFailure      ErrorType = "authentication_failure"
	ErrInsufficientFunds          ErrorType = "insufficient_funds"
	ErrFraud                      ErrorType = "fraud"
	ErrPaymentCancelled           ErrorType = "payment_cancelled"
	ErrPaymentCancelledByConsumer ErrorType = "payment_cancelled_by_consumer"
	ErrInvalidPin                 ErrorType = "invalid_pin"
	ErrPinTriesExceeded           ErrorType = "pin_tries_exceeded"
	ErrCVCInvalid                 ErrorType = "cvc_invalid"
	ErrRestrictedCard             ErrorType = "restricted_card"
	ErrStopPayment                ErrorType = "stop_payment"
	ErrAVSDecline                 ErrorType = "avs_decline"
	ErrPinRequired                ErrorType = "pin_required"
	ErrBankError                  ErrorType = "bank_error"
	ErrContactlessFallback        ErrorType = "contactless_fallback"
	ErrAuthenticationRequired     ErrorType = "authentication_required"
	ErrProcessorBlocked           ErrorType = "processor_blocked"
	ErrInvalidAPIKey              ErrorType = "invalid_api_key"
	ErrUnauthorized               ErrorType = "unauthorized"
	ErrConfigurationError         ErrorType = "configuration_error"
	ErrInvalidSourceToken         ErrorType = "invalid_source_token"
	ErrInvalidRequest             ErrorType = "invalid_request"
	ErrUnsupportedRequest         ErrorType = "unsupported_request"
	ErrTimeout                    ErrorType = "timeout"
	ErrConnectionFailure          ErrorType = "connection_failure"
	ErrBTUnauthenticated          ErrorType = "bt_unauthenticated"
	ErrBTUnauthorized             ErrorType = "bt_unauthorized"
	ErrBTRequestError             ErrorType = "bt_request_error"
	ErrBTUnexpected               ErrorType = "bt_unexpected"
)

var errorCategories = map[ErrorType]ErrorCategory{
	ErrRefused:                    CategoryProcessing,
	ErrReferral:                   CategoryProcessing,
	ErrAcquirerError:              CategoryOther,
	ErrBlockedCard:                CategoryPaymentMethod,
	ErrExpiredCard:                CategoryPaymentMethod,
	ErrInvalidAmount:              CategoryOther,
	ErrInvalidCard:                CategoryPaymentMethod,
	ErrOther:                      CategoryOther,
	ErrNotSupported:               CategoryProcessing,
	ErrAuthenticationFailure:      CategoryProcessing,
	ErrInsufficientFunds:          CategoryPaymentMethod,
	ErrFraud:                      CategoryFraudDecline,
	ErrPaymentCancelled:           CategoryOther,
	ErrPaymentCancelledByConsumer: CategoryProcessing,
	ErrInvalidPin:                 CategoryPaymentMethod,
	ErrPinTriesExceeded:           CategoryPaymentMethod,
	ErrCVCInvalid:                 CategoryPaymentMethod,
	ErrRestrictedCard:             CategoryProcessing,
	ErrStopPayment:                CategoryOther,
	ErrAVSDecline:                 CategoryProcessing,
	ErrPinRequired:                CategoryProcessing,
	ErrBankError:                  CategoryProcessing,
	ErrContactlessFallback:        CategoryProcessing,
	ErrAuthenticationRequired:     CategoryProcessing,
	ErrProcessorBlocked:           CategoryProcessing,
	ErrInvalidAPIKey:              CategoryAuthentication,
	ErrUnauthorized:               CategoryAuthentication,
	ErrConfigurationError:         CategoryOther,
	ErrInvalidSourceToken:         CategoryPaymentMethod,
	ErrInvalidRequest:             CategoryValidation,
	ErrUnsupportedRequest:         CategoryValidation,
	ErrTimeout:                    CategoryProcessing,
	ErrConnectionFailure:          CategoryProcessing,
	ErrBTUnauthenticated:          CategoryBasisTheory,
	ErrBTUnauthorized:             CategoryBasisTheory,
	ErrBTRequestError:             CategoryBasisTheory,
	ErrBTUnexpected:               CategoryBasisTheory,
}

// Category returns the category the type is bound to. Unknown types fall
// back to the other category.
func (t ErrorType) Category() ErrorCategory {
	if c, ok := errorCategories[t]; ok {
		return c
	}
	return CategoryOther
}

// Known reports whether t is one of the canonical error types.
func (t ErrorType) Known() bool {
	_, ok := errorCategories[t]
	return ok
}

// Code pairs the type with its bound category.
func (t ErrorType) Code() ErrorCode {
	return ErrorCode{Category: t.Category(), Code: t}
}

// ErrorTypes lists every canonical error type.
func ErrorTypes() []ErrorType {
	types := make([]ErrorType, 0, len(errorCategories))
	for t := range errorCategories {
		types = append(types, t)
	}
	return types
}

// ParseErrorType accepts either the canonical code or its upper-case name.
func ParseErrorType(s string) (ErrorType, bool) {
	t := ErrorType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Known()
}

type ErrorCode struct {
	Category ErrorCategory `json:"category" yaml:"category"`
	Code     ErrorType     `json:"code" yaml:"code"`
}

// ErrorResponse is the canonical failure result. ErrorCodes is never empty
// and ProviderErrors follows the same order.
type ErrorResponse struct {
	ErrorCodes           []ErrorCode    `json:"error_codes" yaml:"error_codes"`
	ProviderErrors       []string       `json:"provider_errors" yaml:"provider_errors"`
	FullProviderResponse map[string]any `json:"full_provider_response,omitempty" yaml:"full_provider_response,omitempty"`
	Err                  error          `json:"-" yaml:"-"`
}

func (e *ErrorResponse) Error() string {
	codes := make([]string, len(e.ErrorCodes))
	for i, c := range e.ErrorCodes {
		codes[i] = fmt.Sprintf("%s/%s", c.Category, c.Code)
	}
	msg := strings.Join(codes, ", ")
	if len(e.ProviderErrors) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.ProviderErrors, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ErrorResponse) Unwrap() error {
	return e.Err
}

// Primary returns the most specific error code.
func (e *ErrorResponse) Primary() ErrorCode {
	if len(e.ErrorCodes) == 0 {
		return ErrOther.Code()
	}
	return e.ErrorCodes[0]
}

// HasCode reports whether any of the codes matches t.
func (e *ErrorResponse) HasCode(t ErrorType) bool {
	for _, c := range e.ErrorCodes {
		if c.Code == t {
			return true
		}
	}
	return false
}

// NewErrorResponse builds a single-fault error response.
func NewErrorResponse(t ErrorType, providerError string, raw map[string]any) *ErrorResponse {
	return &ErrorResponse{
		ErrorCodes:           []ErrorCode{t.Code()},
		ProviderErrors:       []string{providerError},
		FullProviderResponse: raw,
	}
}

func NewValidationError(format string, args ...any) *ErrorResponse {
	return NewErrorResponse(ErrInvalidRequest, fmt.Sprintf(format, args...), nil)
}

func NewUnsupportedRequestError(format string, args ...any) *ErrorResponse {
	return NewErrorResponse(ErrUnsupportedRequest, fmt.Sprintf(format, args...), nil)
}

func NewConfigurationError(format string, args ...any) *ErrorResponse {
	return NewErrorResponse(ErrConfigurationError, fmt.Sprintf(format, args...), nil)
}

func NewInvalidAPIKeyError(provider string) *ErrorResponse {
	return NewErrorResponse(ErrInvalidAPIKey, fmt.Sprintf("%s API key is missing or malformed", provider), nil)
}

func IsErrorResponse(err error) (*ErrorResponse, bool) {
	var errResp *ErrorResponse
	ok := errors.As(err, &errResp)
	return errResp, ok
}

// IsCategory reports whether err is an ErrorResponse whose primary code
// belongs to category c.
func IsCategory(err error, c ErrorCategory) bool {
	errResp, ok := IsErrorResponse(err)
	return ok && errResp.Primary().Category == c
}
