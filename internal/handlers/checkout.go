package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zentro/internal/models"
	"zentro/internal/services/cart"
	"zentro/internal/services/checkout"
	"zentro/internal/store"
	"zentro/internal/utils/response"
)

type CheckoutHandler struct {
	sessions *checkout.Manager
	carts    *cart.Manager
	handoff  store.HandoffStore
}

func NewCheckoutHandler(sessions *checkout.Manager, carts *cart.Manager, handoff store.HandoffStore) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions, carts: carts, handoff: handoff}
}

func claimsOf(c *fiber.Ctx) *models.UserClaims {
	return c.Locals("claims").(*models.UserClaims)
}

// Create starts a checkout session over the user's cart.
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	claims := claimsOf(c)

	session, err := h.sessions.Create(claims.UserID, h.carts.For(claims.UserID))
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			return response.BadRequest(c, "Your cart is empty")
		}
		return response.ServerError(c, "Failed to start checkout")
	}
	return response.Success(c, "Checkout started", session.Status())
}

func (h *CheckoutHandler) session(c *fiber.Ctx) (*checkout.Session, error) {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return nil, err
	}
	if session.UserID != claimsOf(c).UserID {
		return nil, checkout.ErrSessionNotFound
	}
	return session, nil
}

// SetFields applies a batch of field edits.
func (h *CheckoutHandler) SetFields(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return response.NotFound(c, "Checkout session not found")
	}

	var input map[string]string
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	for field, value := range input {
		if err := session.SetField(field, value); err != nil {
			return h.checkoutError(c, err)
		}
	}
	return response.Success(c, "Fields updated", session.Status())
}

// Next advances to the following step when the current one validates.
func (h *CheckoutHandler) Next(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return response.NotFound(c, "Checkout session not found")
	}
	if err := session.Next(); err != nil {
		return h.checkoutError(c, err)
	}
	return response.Success(c, "Step", session.Status())
}

// Back returns to the previous step without validation.
func (h *CheckoutHandler) Back(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return response.NotFound(c, "Checkout session not found")
	}
	if err := session.Back(); err != nil {
		return h.checkoutError(c, err)
	}
	return response.Success(c, "Step", session.Status())
}

// Submit places the order; the payment attempt runs asynchronously and is
// observed through Status.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return response.NotFound(c, "Checkout session not found")
	}
	if err := session.Submit(); err != nil {
		return h.checkoutError(c, err)
	}
	return response.Success(c, "Processing", session.Status())
}

// Status reports the session snapshot, including processing progress.
func (h *CheckoutHandler) Status(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return response.NotFound(c, "Checkout session not found")
	}
	return response.Success(c, "Status", session.Status())
}

// Abandon stops the session; a payment result still in flight is discarded.
func (h *CheckoutHandler) Abandon(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return response.NotFound(c, "Checkout session not found")
	}
	h.sessions.Remove(session.ID)
	return response.Success(c, "Checkout abandoned", nil)
}

// Confirmation reads the transaction summary exactly once. A reload of the
// confirmation view finds nothing and must not show stale data.
func (h *CheckoutHandler) Confirmation(c *fiber.Ctx) error {
	claims := claimsOf(c)

	summary, err := h.handoff.Take(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoSummary) {
			return response.NotFound(c, "No order confirmation available")
		}
		return response.ServerError(c, "Failed to load confirmation")
	}
	return response.Success(c, "Order confirmed", summary)
}

func (h *CheckoutHandler) checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkout.ErrProcessing):
		return response.Error(c, fiber.StatusConflict, "Payment is processing")
	case errors.Is(err, checkout.ErrAbandoned):
		return response.Error(c, fiber.StatusGone, "Checkout session abandoned")
	case errors.Is(err, checkout.ErrNotAtReview),
		errors.Is(err, checkout.ErrAtReview),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrUnknownField):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, "Checkout failed")
	}
}
