package payment

import (
	"context"
	"time"

	"zentro/internal/models"
	"zentro/internal/random"
)

// Service simulates a payment processor over the static method catalog.
type Service interface {
	// Process runs one simulated payment attempt. Failures are reported on
	// the result, not as an error; the error return covers context
	// cancellation only.
	Process(ctx context.Context, methodID string, amount float64, card *models.CardDetails) (models.PaymentResult, error)

	// Methods lists the payment method catalog.
	Methods() []models.PaymentMethod

	// Method resolves a catalog entry by id.
	Method(id string) (models.PaymentMethod, bool)
}

// Config tunes the simulator.
type Config struct {
	// DeclineRate is the probability of a simulated bank decline for card
	// payments that pass validation. Zero disables declines; callers wanting
	// the demo default should pass DefaultDeclineRate.
	DeclineRate float64

	// Rand drives decline sampling and transaction id suffixes. Defaults to
	// a crypto-seeded generator.
	Rand random.Source

	// Sleep models the processor round-trip wait. Defaults to a
	// cancellation-aware timer; tests may replace it to skip real delays.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultDeclineRate mirrors real-world card decline frequency closely
// enough for a demo.
const DefaultDeclineRate = 0.05
