package payment

import "zentro/internal/models"

// reasonMessages are the user-facing messages for each failure reason.
var reasonMessages = map[models.FailureReason]string{
	models.ReasonInvalidMethod:     "Invalid payment method",
	models.ReasonInvalidCardNumber: "Invalid card number",
	models.ReasonInvalidCVV:        "Invalid CVV",
	models.ReasonMissingName:       "Cardholder name required",
	models.ReasonBankDeclined:      "Payment declined by bank. Please try a different card.",
	models.ReasonUnexpected:        "An unexpected error occurred. Please try again.",
}

// ReasonMessage returns the display message for a failure reason.
func ReasonMessage(reason models.FailureReason) string {
	if msg, ok := reasonMessages[reason]; ok {
		return msg
	}
	return reasonMessages[models.ReasonUnexpected]
}
