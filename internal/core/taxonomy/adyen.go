package taxonomy

import "github.com/DanielPopoola/payment-orchestrator/internal/core/domain"

// Adyen refusal reason codes with their refusalReason texts.
var adyenEntries = []entry{
	{"2", "Refused", domain.ErrRefused},
	{"3", "Referral", domain.ErrReferral},
	{"4", "Acquirer Error", domain.ErrAcquirerError},
	{"5", "Blocked Card", domain.ErrBlockedCard},
	{"6", "Expired Card", domain.ErrExpiredCard},
	{"7", "Invalid Amount", domain.ErrInvalidAmount},
	{"8", "Invalid Card Number", domain.ErrInvalidCard},
	{"9", "Issuer Unavailable", domain.ErrOther},
	{"10", "Not supported", domain.ErrNotSupported},
	{"11", "3D Not Authenticated", domain.ErrAuthenticationFailure},
	{"12", "Not enough balance", domain.ErrInsufficientFunds},
	{"14", "Acquirer Fraud", domain.ErrFraud},
	{"15", "Cancelled", domain.ErrPaymentCancelled},
	{"16", "Shopper Cancelled", domain.ErrPaymentCancelledByConsumer},
	{"17", "Invalid Pin", domain.ErrInvalidPin},
	{"18", "Pin tries exceeded", domain.ErrPinTriesExceeded},
	{"19", "Pin validation not possible", domain.ErrOther},
	{"20", "FRAUD", domain.ErrFraud},
	{"21", "Not Submitted", domain.ErrOther},
	{"22", "FRAUD-CANCELLED", domain.ErrFraud},
	{"23", "Transaction Not Permitted", domain.ErrNotSupported},
	{"24", "CVC Declined", domain.ErrCVCInvalid},
	{"25", "Restricted Card", domain.ErrRestrictedCard},
	{"26", "Revocation Of Auth", domain.ErrStopPayment},
	{"27", "Declined Non Generic", domain.ErrRefused},
	{"28", "Withdrawal amount exceeded", domain.ErrInsufficientFunds},
	{"29", "Withdrawal count exceeded", domain.ErrInsufficientFunds},
	{"31", "Issuer Suspected Fraud", domain.ErrFraud},
	{"32", "AVS Declined", domain.ErrAVSDecline},
	{"33", "Card requires online pin", domain.ErrPinRequired},
	{"34", "No checking account available on Card", domain.ErrBankError},
	{"35", "No savings account available on Card", domain.ErrBankError},
	{"36", "Mobile pin required", domain.ErrPinRequired},
	{"37", "Contactless fallback", domain.ErrContactlessFallback},
	{"38", "Authentication required", domain.ErrAuthenticationRequired},
	{"39", "RReq not received from DS", domain.ErrAuthenticationFailure},
	{"40", "Current AID is in Penalty Box", domain.ErrOther},
	{"41", "CVM Required Restart Payment", domain.ErrPinRequired},
	{"42", "3DS Authentication Error", domain.ErrAuthenticationFailure},
	{"43", "Online PIN required", domain.ErrPinRequired},
	{"44", "Try another interface", domain.ErrOther},
	{"45", "Chip downgrade mode", domain.ErrOther},
	{"46", "Transaction blocked by Adyen to prevent excessive retry fees", domain.ErrProcessorBlocked},
}
