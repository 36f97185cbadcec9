package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zentro/internal/services/payment"
	"zentro/internal/utils/response"
)

type PaymentHandler struct {
	payments payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: svc}
}

// ListMethods returns the static payment method catalog the checkout form
// renders, including each method's advertised processing time.
func (h *PaymentHandler) ListMethods(c *fiber.Ctx) error {
	return response.Success(c, "Payment methods", h.payments.Methods())
}
