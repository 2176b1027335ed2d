package taxonomy

import "github.com/DanielPopoola/payment-orchestrator/internal/core/domain"

// Checkout.com API error codes (error_codes on 4xx bodies) followed by
// authorization response codes (response_code on declined payments).
var checkoutEntries = []entry{
	{"card_authorization_failed", "", domain.ErrRefused},
	{"card_disabled", "", domain.ErrBlockedCard},
	{"card_expired", "", domain.ErrExpiredCard},
	{"card_expiry_month_invalid", "", domain.ErrInvalidCard},
	{"card_expiry_month_required", "", domain.ErrInvalidCard},
	{"card_expiry_year_invalid", "", domain.ErrInvalidCard},
	{"card_expiry_year_required", "", domain.ErrInvalidCard},
	{"expiry_date_format_invalid", "", domain.ErrInvalidCard},
	{"card_not_found", "", domain.ErrInvalidCard},
	{"card_number_invalid", "", domain.ErrInvalidCard},
	{"card_number_required", "", domain.ErrInvalidCard},
	{"issuer_network_unavailable", "", domain.ErrOther},
	{"card_not_eligible_domestic_money_transfer", "", domain.ErrNotSupported},
	{"card_not_eligible_cross_border_money_transfer", "", domain.ErrNotSupported},
	{"card_not_eligible_domestic_non_money_transfer", "", domain.ErrNotSupported},
	{"card_not_eligible_cross_border_non_money_transfer", "", domain.ErrNotSupported},
	{"card_not_eligible_domestic_online_gambling", "", domain.ErrNotSupported},
	{"card_not_eligible_cross_border_online_gambling", "", domain.ErrNotSupported},
	{"3ds_not_enabled_for_card", "", domain.ErrAuthenticationFailure},
	{"3ds_not_supported", "", domain.ErrAuthenticationFailure},
	{"amount_exceeds_balance", "", domain.ErrInsufficientFunds},
	{"amount_limit_exceeded", "", domain.ErrInsufficientFunds},
	{"payment_expired", "", domain.ErrPaymentCancelled},
	{"cvv_invalid", "", domain.ErrCVCInvalid},
	{"processing_error", "", domain.ErrRefused},
	{"velocity_amount_limit_exceeded", "", domain.ErrInsufficientFunds},
	{"velocity_count_limit_exceeded", "", domain.ErrInsufficientFunds},
	{"address_invalid", "", domain.ErrAVSDecline},
	{"city_invalid", "", domain.ErrAVSDecline},
	{"country_address_invalid", "", domain.ErrAVSDecline},
	{"country_invalid", "", domain.ErrAVSDecline},
	{"country_phone_code_invalid", "", domain.ErrAVSDecline},
	{"country_phone_code_length_invalid", "", domain.ErrAVSDecline},
	{"phone_number_invalid", "", domain.ErrAVSDecline},
	{"phone_number_length_invalid", "", domain.ErrAVSDecline},
	{"zip_invalid", "", domain.ErrAVSDecline},
	{"action_failure_limit_exceeded", "", domain.ErrProcessorBlocked},
	{"token_expired", "", domain.ErrOther},
	{"token_in_use", "", domain.ErrOther},
	{"token_invalid", "", domain.ErrOther},
	{"token_used", "", domain.ErrOther},
	{"capture_value_greater_than_authorized", "", domain.ErrOther},
	{"capture_value_greater_than_remaining_authorized", "", domain.ErrOther},
	{"card_holder_invalid", "", domain.ErrOther},
	{"previous_payment_id_invalid", "", domain.ErrOther},
	{"processing_channel_id_required", "", domain.ErrConfigurationError},
	{"success_url_required", "", domain.ErrConfigurationError},
	{"source_token_invalid", "", domain.ErrInvalidSourceToken},

	{"20001", "Refer to card issuer", domain.ErrReferral},
	{"20005", "Declined - Do not honour", domain.ErrRefused},
	{"20006", "Error / Invalid request parameters", domain.ErrOther},
	{"20012", "Invalid transaction", domain.ErrNotSupported},
	{"20013", "Invalid value/amount", domain.ErrInvalidAmount},
	{"20014", "Invalid account number (no such number)", domain.ErrInvalidCard},
	{"20041", "Lost card - Pick up", domain.ErrBlockedCard},
	{"20043", "Stolen card - Pick up", domain.ErrBlockedCard},
	{"20046", "Closed account", domain.ErrBlockedCard},
	{"20051", "Insufficient funds", domain.ErrInsufficientFunds},
	{"20054", "Expired card", domain.ErrExpiredCard},
	{"20055", "Incorrect PIN", domain.ErrInvalidPin},
	{"20057", "Transaction not permitted to cardholder", domain.ErrNotSupported},
	{"20059", "Suspected fraud", domain.ErrFraud},
	{"20061", "Activity amount limit exceeded", domain.ErrInsufficientFunds},
	{"20062", "Restricted card", domain.ErrRestrictedCard},
	{"20065", "Activity count limit exceeded", domain.ErrInsufficientFunds},
	{"20075", "Allowable number of PIN tries exceeded", domain.ErrPinTriesExceeded},
	{"20082", "Invalid CVV", domain.ErrCVCInvalid},
	{"20091", "Issuer unavailable", domain.ErrOther},
	{"20096", "System malfunction", domain.ErrAcquirerError},
	{"20150", "Card not 3D Secure enabled", domain.ErrAuthenticationFailure},
	{"20154", "3D Secure authentication required", domain.ErrAuthenticationRequired},
	{"40101", "Risk blocked transaction", domain.ErrFraud},
}
