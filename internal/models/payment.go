package models

// MethodKind classifies how a payment method is settled.
type MethodKind string

const (
	MethodKindCard    MethodKind = "card"
	MethodKindDigital MethodKind = "digital"
	MethodKindBank    MethodKind = "bank"
)

// PaymentMethod is a static catalog entry. The catalog is loaded once at
// startup and never mutated.
type PaymentMethod struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Kind        MethodKind `json:"kind"`
	Description string     `json:"description"`
	LatencyMs   int        `json:"processing_time_ms"`
}

// CardDetails holds raw card input for a single payment attempt.
// It is never persisted.
type CardDetails struct {
	Number         string `json:"number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"name"`
}

// FailureReason identifies why a simulated payment attempt failed.
type FailureReason string

const (
	ReasonInvalidMethod     FailureReason = "invalid_method"
	ReasonInvalidCardNumber FailureReason = "invalid_card_number"
	ReasonInvalidCVV        FailureReason = "invalid_cvv"
	ReasonMissingName       FailureReason = "missing_name"
	ReasonBankDeclined      FailureReason = "bank_declined"
	ReasonUnexpected        FailureReason = "unexpected_error"
)

// PaymentResult is the outcome of one payment attempt. Failures are data,
// not errors: callers branch on Success and Reason.
type PaymentResult struct {
	Success          bool          `json:"success"`
	TransactionID    string        `json:"transaction_id,omitempty"`
	Reason           FailureReason `json:"reason,omitempty"`
	Message          string        `json:"message,omitempty"`
	ProcessingTimeMs int           `json:"processing_time_ms"`
}

// TransactionSummary crosses the checkout-to-confirmation boundary through
// the read-once handoff slot.
type TransactionSummary struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Items         int     `json:"items"`
}
