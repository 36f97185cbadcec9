// Package main runs a scripted checkout in the terminal: fills the cart,
// walks the three steps, submits, and prints the processing progress and the
// confirmation, all against the same in-memory services the server uses.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"zentro/internal/config"
	"zentro/internal/services/cart"
	"zentro/internal/services/catalog"
	"zentro/internal/services/checkout"
	"zentro/internal/services/payment"
	"zentro/internal/store"
)

func main() {
	config.LoadEnv()

	catalogSvc := catalog.NewService()
	handoff := store.NewMemoryHandoff()
	orders := store.NewOrderLog()
	payments := payment.NewService(payment.Config{
		DeclineRate: config.GetFloatEnv("DECLINE_RATE", payment.DefaultDeclineRate),
	})
	sessions := checkout.NewManager(payments, handoff, orders, checkout.DefaultConfig())

	userCart := cart.New()
	headphones, err := catalogSvc.FindByID("1")
	if err != nil {
		log.Fatalf("seed product missing: %v", err)
	}
	userCart.Add(*headphones, 1)

	session, err := sessions.Create("demo-user", userCart)
	if err != nil {
		log.Fatalf("failed to start checkout: %v", err)
	}

	fields := map[string]string{
		"email":      "demo@zentro.com",
		"firstName":  "Demo",
		"lastName":   "User",
		"address":    "123 Main Street",
		"city":       "New York",
		"state":      "NY",
		"zipCode":    "10001",
		"cardNumber": "4111111111111111",
		"expiryDate": "1227",
		"cvv":        "123",
		"nameOnCard": "Demo User",
	}
	for field, value := range fields {
		if err := session.SetField(field, value); err != nil {
			log.Fatalf("set %s: %v", field, err)
		}
	}

	mustAdvance(session) // contact & shipping -> payment
	mustAdvance(session) // payment -> review

	totals := session.Totals()
	fmt.Printf("Order total: $%.2f (subtotal $%.2f, shipping $%.2f, tax $%.2f)\n",
		totals.Total, totals.Subtotal, totals.Shipping, totals.Tax)

	if err := session.Submit(); err != nil {
		log.Fatalf("submit: %v", err)
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-session.Done():
			break loop
		case <-ticker.C:
			st := session.Status()
			if st.Processing {
				fmt.Printf("  %3d%%  %s\n", st.Progress, st.Phase)
			}
		}
	}

	status := session.Status()
	if !status.Completed {
		log.Fatalf("payment failed: %s", status.PaymentError)
	}

	summary, err := handoff.Take(context.Background(), "demo-user")
	if err != nil {
		log.Fatalf("confirmation: %v", err)
	}
	fmt.Printf("Payment successful!\n")
	fmt.Printf("  Transaction %s\n", summary.TransactionID)
	fmt.Printf("  Charged $%.2f via %s for %d item(s)\n", summary.Amount, summary.PaymentMethod, summary.Items)
}

func mustAdvance(s *checkout.Session) {
	if err := s.Next(); err != nil {
		log.Fatalf("advance: %v", err)
	}
	if errs := s.Status().Errors; len(errs) > 0 {
		log.Fatalf("validation failed: %v", errs)
	}
}
