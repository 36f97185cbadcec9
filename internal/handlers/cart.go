package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zentro/internal/models"
	"zentro/internal/services/cart"
	"zentro/internal/services/catalog"
	"zentro/internal/utils/response"
)

type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Service
}

func NewCartHandler(carts *cart.Manager, svc *catalog.Service) *CartHandler {
	return &CartHandler{carts: carts, catalog: svc}
}

func (h *CartHandler) userCart(c *fiber.Ctx) *cart.Cart {
	claims := c.Locals("claims").(*models.UserClaims)
	return h.carts.For(claims.UserID)
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	userCart := h.userCart(c)
	return response.Success(c, "Cart", fiber.Map{
		"items":       userCart.Items(),
		"total_items": userCart.TotalItems(),
		"total_price": userCart.TotalPrice(),
	})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var input struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	product, err := h.catalog.FindByID(input.ProductID)
	if err != nil {
		return response.NotFound(c, "Product not found")
	}
	if !product.InStock {
		return response.BadRequest(c, "Product is out of stock")
	}

	userCart := h.userCart(c)
	userCart.Add(*product, input.Quantity)
	return h.Get(c)
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	userCart := h.userCart(c)
	if err := userCart.SetQuantity(c.Params("productId"), input.Quantity); err != nil {
		if errors.Is(err, cart.ErrNotInCart) {
			return response.NotFound(c, "Product not in cart")
		}
		return response.ServerError(c, "Failed to update cart")
	}
	return h.Get(c)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	userCart := h.userCart(c)
	if err := userCart.Remove(c.Params("productId")); err != nil {
		return response.NotFound(c, "Product not in cart")
	}
	return h.Get(c)
}
