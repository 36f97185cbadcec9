package models

import "time"

// Order is the record appended to the order log after a successful checkout.
// It exists only for the lifetime of the process.
type Order struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	TransactionID string     `json:"transaction_id"`
	PaymentMethod string     `json:"payment_method"`
	Items         []CartItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Shipping      float64    `json:"shipping"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	CreatedAt     time.Time  `json:"created_at"`
}
