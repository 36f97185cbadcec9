package payment

import "zentro/internal/models"

// methodCatalog is the fixed set of payment methods the storefront offers.
// Latencies model each processor's round-trip and never change at runtime.
var methodCatalog = []models.PaymentMethod{
	{
		ID:          "visa",
		Name:        "Visa",
		Kind:        models.MethodKindCard,
		Description: "Credit or Debit Card",
		LatencyMs:   2000,
	},
	{
		ID:          "mastercard",
		Name:        "Mastercard",
		Kind:        models.MethodKindCard,
		Description: "Credit or Debit Card",
		LatencyMs:   2000,
	},
	{
		ID:          "amex",
		Name:        "American Express",
		Kind:        models.MethodKindCard,
		Description: "Credit Card",
		LatencyMs:   2500,
	},
	{
		ID:          "paypal",
		Name:        "PayPal",
		Kind:        models.MethodKindDigital,
		Description: "Pay with your PayPal account",
		LatencyMs:   1500,
	},
	{
		ID:          "apple-pay",
		Name:        "Apple Pay",
		Kind:        models.MethodKindDigital,
		Description: "Touch ID or Face ID",
		LatencyMs:   1000,
	},
	{
		ID:          "google-pay",
		Name:        "Google Pay",
		Kind:        models.MethodKindDigital,
		Description: "Pay with Google",
		LatencyMs:   1000,
	},
}
