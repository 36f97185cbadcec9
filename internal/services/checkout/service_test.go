package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentro/internal/models"
	"zentro/internal/services/cart"
	"zentro/internal/services/payment"
	"zentro/internal/store"
)

type fixedRand struct {
	sample float64
}

func (r fixedRand) Float64() float64 { return r.sample }
func (r fixedRand) IntN(n int) int   { return 0 }

type testEnv struct {
	manager *Manager
	cart    *cart.Cart
	handoff *store.MemoryHandoff
	orders  *store.OrderLog
}

// newTestEnv builds an isolated checkout stack. declineSample below the 5%
// decline rate forces declines; above it forces approvals. sleep nil means
// the simulated latency is skipped entirely.
func newTestEnv(t *testing.T, declineSample float64, sleep func(context.Context, time.Duration) error) *testEnv {
	t.Helper()

	if sleep == nil {
		sleep = func(context.Context, time.Duration) error { return nil }
	}
	payments := payment.NewService(payment.Config{
		DeclineRate: payment.DefaultDeclineRate,
		Rand:        fixedRand{sample: declineSample},
		Sleep:       sleep,
	})

	handoff := store.NewMemoryHandoff()
	orders := store.NewOrderLog()

	cfg := DefaultConfig()
	cfg.ProgressTick = 5 * time.Millisecond

	return &testEnv{
		manager: NewManager(payments, handoff, orders, cfg),
		cart:    cart.New(),
		handoff: handoff,
		orders:  orders,
	}
}

func (e *testEnv) newSession(t *testing.T) *Session {
	t.Helper()
	e.cart.Add(models.Product{ID: "1", Name: "Widget", Price: 40.00}, 3) // $120 subtotal
	s, err := e.manager.Create("user-1", e.cart)
	require.NoError(t, err)
	return s
}

func fillContactShipping(t *testing.T, s *Session) {
	t.Helper()
	fields := map[string]string{
		"email":     "john@example.com",
		"firstName": "John",
		"lastName":  "Doe",
		"address":   "123 Main Street",
		"city":      "New York",
		"state":     "NY",
		"zipCode":   "10001",
	}
	for field, value := range fields {
		require.NoError(t, s.SetField(field, value))
	}
}

func fillCard(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.SetField("cardNumber", "4111111111111111"))
	require.NoError(t, s.SetField("expiryDate", "1227"))
	require.NoError(t, s.SetField("cvv", "123"))
	require.NoError(t, s.SetField("nameOnCard", "John Doe"))
}

func advanceToReview(t *testing.T, s *Session) {
	t.Helper()
	fillContactShipping(t, s)
	require.NoError(t, s.Next())
	fillCard(t, s)
	require.NoError(t, s.Next())
	require.Equal(t, StepReview, s.Status().Step)
}

func TestCreate_EmptyCart(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	_, err := env.manager.Create("user-1", cart.New())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestStep1_AllFieldsEmpty(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)

	require.NoError(t, s.Next())

	status := s.Status()
	assert.Equal(t, StepContactShipping, status.Step)
	assert.Len(t, status.Errors, 7)
	for _, field := range []string{"email", "firstName", "lastName", "address", "city", "state", "zipCode"} {
		assert.Contains(t, status.Errors, field)
	}
}

func TestStep1_FilledAdvances(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)

	fillContactShipping(t, s)
	require.NoError(t, s.Next())

	status := s.Status()
	assert.Equal(t, StepPayment, status.Step)
	assert.Empty(t, status.Errors)
}

func TestStep2_NonCardAlwaysPasses(t *testing.T) {
	for _, methodID := range []string{"paypal", "apple-pay", "google-pay"} {
		t.Run(methodID, func(t *testing.T) {
			env := newTestEnv(t, 0.99, nil)
			s := env.newSession(t)

			fillContactShipping(t, s)
			require.NoError(t, s.Next())
			require.NoError(t, s.SetField("paymentMethod", methodID))

			require.NoError(t, s.Next())
			status := s.Status()
			assert.Equal(t, StepReview, status.Step)
			assert.Empty(t, status.Errors)
		})
	}
}

func TestStep2_CardValidation(t *testing.T) {
	tests := []struct {
		name    string
		fill    func(t *testing.T, s *Session)
		field   string
		message string
	}{
		{
			name:    "empty card number",
			fill:    func(t *testing.T, s *Session) {},
			field:   "cardNumber",
			message: "Card number is required",
		},
		{
			name: "luhn-invalid card number",
			fill: func(t *testing.T, s *Session) {
				require.NoError(t, s.SetField("cardNumber", "4111111111111112"))
			},
			field:   "cardNumber",
			message: "Invalid card number",
		},
		{
			name: "missing expiry",
			fill: func(t *testing.T, s *Session) {
				require.NoError(t, s.SetField("cardNumber", "4111111111111111"))
				require.NoError(t, s.SetField("cvv", "123"))
				require.NoError(t, s.SetField("nameOnCard", "John Doe"))
			},
			field:   "expiryDate",
			message: "Expiry date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 0.99, nil)
			s := env.newSession(t)
			fillContactShipping(t, s)
			require.NoError(t, s.Next())

			tt.fill(t, s)
			require.NoError(t, s.Next())

			status := s.Status()
			assert.Equal(t, StepPayment, status.Step, "validation failure must not advance")
			assert.Equal(t, tt.message, status.Errors[tt.field])
		})
	}
}

func TestSetField_ClearsFieldError(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)

	require.NoError(t, s.Next()) // populate step 1 errors
	require.Len(t, s.Status().Errors, 7)

	require.NoError(t, s.SetField("email", "j"))

	status := s.Status()
	assert.NotContains(t, status.Errors, "email", "editing a field clears its error immediately")
	assert.Len(t, status.Errors, 6, "other errors stay until the next validation run")
}

func TestSetField_UnknownField(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)
	assert.ErrorIs(t, s.SetField("favoriteColor", "blue"), ErrUnknownField)
}

func TestSetField_FormatsCardInput(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)

	require.NoError(t, s.SetField("cardNumber", "4111111111111111"))
	require.NoError(t, s.SetField("expiryDate", "1227"))

	form := s.Status().Form
	assert.Equal(t, "4111 1111 1111 1111", form.CardNumber)
	assert.Equal(t, "12/27", form.ExpiryDate)
}

func TestBack_PreservesFields(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)

	fillContactShipping(t, s)
	require.NoError(t, s.Next())
	require.NoError(t, s.Back())

	status := s.Status()
	assert.Equal(t, StepContactShipping, status.Step)
	assert.Equal(t, "john@example.com", status.Form.Email)

	// Back at the first step is a no-op.
	require.NoError(t, s.Back())
	assert.Equal(t, StepContactShipping, s.Status().Step)
}

func TestSubmit_RequiresReviewStep(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)
	assert.ErrorIs(t, s.Submit(), ErrNotAtReview)
}

func TestSubmit_EndToEnd(t *testing.T) {
	env := newTestEnv(t, 0.99, nil) // approvals forced
	s := env.newSession(t)
	advanceToReview(t, s)

	totals := s.Totals()
	assert.InDelta(t, 120.00, totals.Subtotal, 0.001)
	assert.Zero(t, totals.Shipping, "orders over $50 ship free")
	assert.InDelta(t, 9.60, totals.Tax, 0.001)
	assert.InDelta(t, 129.60, totals.Total, 0.001)

	require.NoError(t, s.Submit())
	<-s.Done()

	status := s.Status()
	assert.True(t, status.Completed)
	assert.False(t, status.Processing)
	assert.Equal(t, 100, status.Progress)
	assert.Empty(t, status.PaymentError)

	assert.Zero(t, env.cart.TotalItems(), "cart is cleared after success")

	summary, err := env.handoff.Take(context.Background(), "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 129.60, summary.Amount, 0.001)
	assert.Equal(t, "visa", summary.PaymentMethod)
	assert.Regexp(t, `^TXN-\d+-[A-Z0-9]{6}$`, summary.TransactionID)

	// The slot is read-once: a second read yields absence.
	_, err = env.handoff.Take(context.Background(), "user-1")
	assert.ErrorIs(t, err, store.ErrNoSummary)

	orders := env.orders.List()
	require.Len(t, orders, 1)
	assert.Equal(t, summary.TransactionID, orders[0].TransactionID)
	assert.InDelta(t, 129.60, orders[0].Total, 0.001)
}

func TestSubmit_ShippingChargedUnderThreshold(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	env.cart.Add(models.Product{ID: "8", Name: "Charging Pad", Price: 39.99}, 1)
	s, err := env.manager.Create("user-1", env.cart)
	require.NoError(t, err)

	totals := s.Totals()
	assert.InDelta(t, 9.99, totals.Shipping, 0.001)
	assert.InDelta(t, 39.99+9.99+39.99*0.08, totals.Total, 0.001)
}

func TestSubmit_Declined(t *testing.T) {
	env := newTestEnv(t, 0.0, nil) // declines forced
	s := env.newSession(t)
	advanceToReview(t, s)

	require.NoError(t, s.Submit())
	<-s.Done()

	status := s.Status()
	assert.False(t, status.Completed)
	assert.False(t, status.Processing, "processing always resets so the user can retry")
	assert.Zero(t, status.Progress)
	assert.Equal(t, StepReview, status.Step)
	assert.Contains(t, status.PaymentError, "different card")

	assert.Equal(t, 3, env.cart.TotalItems(), "a declined payment must not clear the cart")
	_, err := env.handoff.Take(context.Background(), "user-1")
	assert.ErrorIs(t, err, store.ErrNoSummary)
	assert.Empty(t, env.orders.List())
}

func TestSubmit_BlockedWhileProcessing(t *testing.T) {
	release := make(chan struct{})
	env := newTestEnv(t, 0.99, func(ctx context.Context, d time.Duration) error {
		<-release
		return nil
	})
	s := env.newSession(t)
	advanceToReview(t, s)

	require.NoError(t, s.Submit())

	assert.ErrorIs(t, s.Submit(), ErrProcessing)
	assert.ErrorIs(t, s.Next(), ErrProcessing)
	assert.ErrorIs(t, s.Back(), ErrProcessing)
	assert.ErrorIs(t, s.SetField("email", "x"), ErrProcessing)

	status := s.Status()
	assert.True(t, status.Processing)
	assert.NotEmpty(t, status.Phase)

	close(release)
	<-s.Done()
	assert.True(t, s.Status().Completed)
}

func TestAbandon_DiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	env := newTestEnv(t, 0.99, func(ctx context.Context, d time.Duration) error {
		<-release
		return nil
	})
	s := env.newSession(t)
	advanceToReview(t, s)

	require.NoError(t, s.Submit())
	s.Abandon()
	close(release)
	<-s.Done()

	status := s.Status()
	assert.False(t, status.Completed, "late result must not apply to a dead session")
	assert.Equal(t, 3, env.cart.TotalItems())
	_, err := env.handoff.Take(context.Background(), "user-1")
	assert.ErrorIs(t, err, store.ErrNoSummary)

	assert.ErrorIs(t, s.Submit(), ErrAbandoned)
}

func TestManager_GetAndRemove(t *testing.T) {
	env := newTestEnv(t, 0.99, nil)
	s := env.newSession(t)

	got, err := env.manager.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	env.manager.Remove(s.ID)
	_, err = env.manager.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPhase_Thresholds(t *testing.T) {
	assert.Equal(t, "Validating payment information...", Phase(0))
	assert.Equal(t, "Validating payment information...", Phase(29))
	assert.Equal(t, "Contacting payment processor...", Phase(30))
	assert.Equal(t, "Authorizing transaction...", Phase(60))
	assert.Equal(t, "Finalizing payment...", Phase(90))
	assert.Equal(t, "Finalizing payment...", Phase(100))
}
