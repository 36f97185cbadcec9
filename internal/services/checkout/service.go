// Package checkout implements the three-step checkout state machine:
// Contact & Shipping, Payment, Review, plus an orthogonal processing state
// that drives the payment simulator and hands the result off to the
// confirmation view through a read-once slot.
package checkout

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"zentro/internal/models"
	"zentro/internal/services/card"
	"zentro/internal/services/cart"
	"zentro/internal/services/payment"
	"zentro/internal/store"
	"zentro/internal/validation"
)

// Session is one user's in-flight checkout. All state is owned by the
// session; nothing is shared across sessions.
type Session struct {
	ID     string
	UserID string

	mu           sync.Mutex
	step         Step
	form         FormState
	errors       map[string]string
	processing   bool
	progress     int
	paymentError string
	completed    bool

	// ctx is cancelled on abandonment; a payment result arriving afterwards
	// is discarded instead of being applied to a dead session.
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	cfg      Config
	payments payment.Service
	cart     *cart.Cart
	handoff  store.HandoffStore
	orders   *store.OrderLog
}

// Manager creates and resolves checkout sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	cfg      Config
	payments payment.Service
	handoff  store.HandoffStore
	orders   *store.OrderLog
}

// NewManager wires a session manager. A zero ProgressTick falls back to the
// default so the cosmetic ticker can never spin hot.
func NewManager(payments payment.Service, handoff store.HandoffStore, orders *store.OrderLog, cfg Config) *Manager {
	if cfg.ProgressTick <= 0 {
		cfg.ProgressTick = DefaultConfig().ProgressTick
	}
	if cfg.DefaultMethod == "" {
		cfg.DefaultMethod = DefaultConfig().DefaultMethod
	}
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		payments: payments,
		handoff:  handoff,
		orders:   orders,
	}
}

// Create starts a fresh session over the user's cart.
func (m *Manager) Create(userID string, c *cart.Cart) (*Session, error) {
	if c.TotalItems() == 0 {
		return nil, ErrEmptyCart
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		step:   StepContactShipping,
		form: FormState{
			Country:       "US",
			PaymentMethod: m.cfg.DefaultMethod,
		},
		errors:   make(map[string]string),
		ctx:      ctx,
		cancel:   cancel,
		cfg:      m.cfg,
		payments: m.payments,
		cart:     c,
		handoff:  m.handoff,
		orders:   m.orders,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get resolves a session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove abandons and drops a session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Abandon()
	}
}

// SetField updates one form field. Editing a field that currently carries a
// validation error clears that error immediately, without re-running full
// validation. Card number and expiry inputs are reformatted as they change.
func (s *Session) SetField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return ErrProcessing
	}

	switch field {
	case "email":
		s.form.Email = value
	case "firstName":
		s.form.FirstName = value
	case "lastName":
		s.form.LastName = value
	case "address":
		s.form.Address = value
	case "city":
		s.form.City = value
	case "state":
		s.form.State = value
	case "zipCode":
		s.form.ZipCode = value
	case "country":
		s.form.Country = value
	case "paymentMethod":
		s.form.PaymentMethod = value
	case "cardNumber":
		s.form.CardNumber = card.FormatNumber(value)
	case "expiryDate":
		s.form.ExpiryDate = card.FormatExpiry(value)
	case "cvv":
		s.form.CVV = card.Digits(value)
	case "nameOnCard":
		s.form.NameOnCard = value
	case "saveInfo":
		s.form.SaveInfo = value == "true"
	default:
		return ErrUnknownField
	}

	delete(s.errors, field)
	return nil
}

// Next validates the current step and advances on success. Validation
// failures populate the error map and keep the session on the same step.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return ErrProcessing
	}

	switch s.step {
	case StepContactShipping:
		s.errors = s.validateContactShipping()
		if len(s.errors) == 0 {
			s.step = StepPayment
		}
	case StepPayment:
		s.errors = s.validatePayment()
		if len(s.errors) == 0 {
			s.step = StepReview
		}
	default:
		return ErrAtReview
	}
	return nil
}

// Back moves to the previous step unconditionally, preserving all fields.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return ErrProcessing
	}
	if s.step > StepContactShipping {
		s.step--
	}
	return nil
}

// Submit re-validates the payment fields defensively, then runs the payment
// attempt asynchronously. The caller observes the outcome through Status.
func (s *Session) Submit() error {
	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return ErrAbandoned
	}
	if s.processing {
		s.mu.Unlock()
		return ErrProcessing
	}
	if s.completed {
		s.mu.Unlock()
		return ErrNotAtReview
	}
	if s.step != StepReview {
		s.mu.Unlock()
		return ErrNotAtReview
	}
	if s.cart.TotalItems() == 0 {
		s.mu.Unlock()
		return ErrEmptyCart
	}

	s.errors = s.validatePayment()
	if len(s.errors) > 0 {
		s.mu.Unlock()
		return nil
	}

	method, ok := s.payments.Method(s.form.PaymentMethod)
	if !ok {
		// Unreachable through the normal flow; surfaced as a payment error.
		s.paymentError = payment.ReasonMessage(models.ReasonInvalidMethod)
		s.mu.Unlock()
		return nil
	}

	s.processing = true
	s.progress = 0
	s.paymentError = ""
	s.done = make(chan struct{})

	var details *models.CardDetails
	if method.Kind == models.MethodKindCard {
		details = &models.CardDetails{
			Number:         s.form.CardNumber,
			Expiry:         s.form.ExpiryDate,
			CVV:            s.form.CVV,
			CardholderName: s.form.NameOnCard,
		}
	}
	totals := s.totalsLocked()
	methodID := s.form.PaymentMethod
	s.mu.Unlock()

	go s.run(method, methodID, details, totals)
	return nil
}

// run executes one payment attempt end to end. It owns the processing state
// and always clears it, so the user is never left in a stuck spinner.
func (s *Session) run(method models.PaymentMethod, methodID string, details *models.CardDetails, totals Totals) {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("checkout %s: submit panicked: %v", s.ID, r)
			s.settleFailure(payment.ReasonMessage(models.ReasonUnexpected))
		}
	}()

	stop := make(chan struct{})
	go s.runProgress(s.ctx, stop, time.Duration(method.LatencyMs)*time.Millisecond)

	// The simulator call itself is not cancellable: an abandoned session
	// discards the late result below instead of interrupting the call.
	result, err := s.payments.Process(context.Background(), methodID, totals.Total, details)
	close(stop)

	if s.ctx.Err() != nil {
		log.Printf("checkout %s: discarding payment result after abandonment", s.ID)
		s.mu.Lock()
		s.processing = false
		s.progress = 0
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.settleFailure(payment.ReasonMessage(models.ReasonUnexpected))
		return
	}
	if !result.Success {
		s.settleFailure(result.Message)
		return
	}

	summary := models.TransactionSummary{
		TransactionID: result.TransactionID,
		Amount:        totals.Total,
		PaymentMethod: methodID,
		Items:         len(s.cart.Items()),
	}
	if err := s.handoff.Put(s.ctx, s.UserID, summary); err != nil {
		log.Printf("checkout %s: handoff write failed: %v", s.ID, err)
		s.settleFailure(payment.ReasonMessage(models.ReasonUnexpected))
		return
	}

	if s.orders != nil {
		s.orders.Append(models.Order{
			ID:            uuid.NewString(),
			UserID:        s.UserID,
			TransactionID: result.TransactionID,
			PaymentMethod: methodID,
			Items:         s.cart.Items(),
			Subtotal:      totals.Subtotal,
			Shipping:      totals.Shipping,
			Tax:           totals.Tax,
			Total:         totals.Total,
		})
	}
	s.cart.Clear()

	s.mu.Lock()
	s.progress = 100
	s.processing = false
	s.completed = true
	s.mu.Unlock()
}

func (s *Session) settleFailure(message string) {
	s.mu.Lock()
	s.paymentError = message
	s.processing = false
	s.progress = 0
	s.mu.Unlock()
}

// Abandon stops the progress ticker and marks the session dead. A payment
// result that arrives later is discarded.
func (s *Session) Abandon() {
	s.cancel()
}

// Done reports when the in-flight payment attempt has settled. It returns a
// closed channel when nothing is processing.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.done
}

// Status snapshots the session.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		errs[k] = v
	}

	st := Status{
		SessionID:    s.ID,
		Step:         s.step,
		Processing:   s.processing,
		Progress:     s.progress,
		Errors:       errs,
		PaymentError: s.paymentError,
		Completed:    s.completed,
		Form:         s.form,
		Totals:       s.totalsLocked(),
	}
	if s.processing {
		st.Phase = Phase(s.progress)
	}
	return st
}

// Totals prices the cart with shipping and tax applied.
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *Session) totalsLocked() Totals {
	subtotal := s.cart.TotalPrice()
	shipping := s.cfg.ShippingFee
	if subtotal > s.cfg.FreeShippingOver {
		shipping = 0
	}
	tax := subtotal * s.cfg.TaxRate
	return Totals{
		Items:    s.cart.TotalItems(),
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

func (s *Session) validateContactShipping() map[string]string {
	v := validation.New()
	v.Required("email", s.form.Email, "Email is required")
	v.Required("firstName", s.form.FirstName, "First name is required")
	v.Required("lastName", s.form.LastName, "Last name is required")
	v.Required("address", s.form.Address, "Address is required")
	v.Required("city", s.form.City, "City is required")
	v.Required("state", s.form.State, "State is required")
	v.Required("zipCode", s.form.ZipCode, "ZIP code is required")
	return v.Errors
}

// validatePayment applies card checks only when the selected method is
// card-type; digital methods always pass.
func (s *Session) validatePayment() map[string]string {
	v := validation.New()

	method, ok := s.payments.Method(s.form.PaymentMethod)
	if !ok || method.Kind != models.MethodKindCard {
		return v.Errors
	}

	if strings.TrimSpace(s.form.CardNumber) == "" {
		v.AddError("cardNumber", "Card number is required")
	} else if !card.ValidNumber(s.form.CardNumber) {
		v.AddError("cardNumber", "Invalid card number")
	}
	v.Required("expiryDate", s.form.ExpiryDate, "Expiry date is required")
	v.Required("cvv", s.form.CVV, "CVV is required")
	v.Required("nameOnCard", s.form.NameOnCard, "Cardholder name is required")
	return v.Errors
}
