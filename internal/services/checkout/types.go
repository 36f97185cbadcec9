package checkout

import "time"

// Step identifies a panel of the three-step checkout flow.
type Step int

const (
	StepContactShipping Step = 1
	StepPayment         Step = 2
	StepReview          Step = 3
)

// String names the step for display and logs.
func (s Step) String() string {
	switch s {
	case StepContactShipping:
		return "contact_shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// FormState holds every field the checkout form collects. It is created
// empty when a session starts and discarded with the session.
// Field names double as the keys of the validation error map, so the json
// tags deliberately match the form field names rather than the snake_case
// used elsewhere.
type FormState struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`

	PaymentMethod string `json:"paymentMethod"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	NameOnCard    string `json:"nameOnCard"`
	SaveInfo      bool   `json:"saveInfo"`
}

// Totals is the priced order summary shown on every step.
type Totals struct {
	Items    int     `json:"items"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Status is a point-in-time snapshot of a session, safe to serialize.
type Status struct {
	SessionID    string            `json:"session_id"`
	Step         Step              `json:"step"`
	Processing   bool              `json:"processing"`
	Progress     int               `json:"progress"`
	Phase        string            `json:"phase,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
	PaymentError string            `json:"payment_error,omitempty"`
	Completed    bool              `json:"completed"`
	Form         FormState         `json:"form"`
	Totals       Totals            `json:"totals"`
}

// Config tunes the checkout flow. The defaults mirror the demo storefront;
// none of these are business rules, so they stay configurable.
type Config struct {
	TaxRate          float64
	FreeShippingOver float64
	ShippingFee      float64
	ProgressTick     time.Duration
	DefaultMethod    string
}

// DefaultConfig returns the demo storefront's checkout tunables.
func DefaultConfig() Config {
	return Config{
		TaxRate:          0.08,
		FreeShippingOver: 50,
		ShippingFee:      9.99,
		ProgressTick:     150 * time.Millisecond,
		DefaultMethod:    "visa",
	}
}
