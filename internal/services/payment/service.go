// Package payment simulates a card processor: fixed per-method latency,
// short-circuiting card checks, a configurable random decline rate, and
// generated transaction ids. No real gateway is ever contacted.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"zentro/internal/models"
	"zentro/internal/random"
)

type service struct {
	methods map[string]models.PaymentMethod
	order   []string
	cfg     Config
}

// NewService creates a payment simulator over the static method catalog.
func NewService(cfg Config) Service {
	if cfg.Rand == nil {
		cfg.Rand = random.CryptoRand()
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleep
	}

	s := &service{
		methods: make(map[string]models.PaymentMethod, len(methodCatalog)),
		cfg:     cfg,
	}
	for _, m := range methodCatalog {
		s.methods[m.ID] = m
		s.order = append(s.order, m.ID)
	}
	return s
}

func (s *service) Methods() []models.PaymentMethod {
	out := make([]models.PaymentMethod, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.methods[id])
	}
	return out
}

func (s *service) Method(id string) (models.PaymentMethod, bool) {
	m, ok := s.methods[id]
	return m, ok
}

func (s *service) Process(ctx context.Context, methodID string, amount float64, card *models.CardDetails) (models.PaymentResult, error) {
	method, ok := s.methods[methodID]
	if !ok {
		// Precondition failure, not a processor response: no latency applied.
		return failure(models.ReasonInvalidMethod, 0), nil
	}

	// Model the processor round-trip. This is the sole suspension point.
	if err := s.cfg.Sleep(ctx, time.Duration(method.LatencyMs)*time.Millisecond); err != nil {
		return models.PaymentResult{}, err
	}

	if method.Kind == models.MethodKindCard {
		if reason, ok := s.checkCard(card); !ok {
			return failure(reason, method.LatencyMs), nil
		}
		if s.cfg.DeclineRate > 0 && s.cfg.Rand.Float64() < s.cfg.DeclineRate {
			return failure(models.ReasonBankDeclined, method.LatencyMs), nil
		}
	}

	return models.PaymentResult{
		Success:          true,
		TransactionID:    s.newTransactionID(),
		ProcessingTimeMs: method.LatencyMs,
	}, nil
}

// checkCard re-runs card completeness checks even though the checkout flow
// validates them upstream. Checks short-circuit: the first failure wins.
func (s *service) checkCard(card *models.CardDetails) (models.FailureReason, bool) {
	if card == nil {
		return models.ReasonInvalidCardNumber, false
	}
	if len(digits(card.Number)) < 16 {
		return models.ReasonInvalidCardNumber, false
	}
	if len(digits(card.CVV)) < 3 {
		return models.ReasonInvalidCVV, false
	}
	if strings.TrimSpace(card.CardholderName) == "" {
		return models.ReasonMissingName, false
	}
	return "", true
}

// newTransactionID produces an id unique per attempt. Collisions are
// negligible for a demo; no registry is kept.
func (s *service) newTransactionID() string {
	suffix := random.String(s.cfg.Rand, random.CharsetUpperAlphaNumeric, 6)
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), suffix)
}

func failure(reason models.FailureReason, latencyMs int) models.PaymentResult {
	return models.PaymentResult{
		Reason:           reason,
		Message:          ReasonMessage(reason),
		ProcessingTimeMs: latencyMs,
	}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sleep waits for d or returns early when ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
