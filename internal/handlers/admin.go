package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zentro/internal/services/auth"
	"zentro/internal/services/catalog"
	"zentro/internal/store"
	"zentro/internal/utils/response"
)

// AdminHandler serves the dashboard views over the in-memory mock data.
type AdminHandler struct {
	orders  *store.OrderLog
	catalog *catalog.Service
	auth    *auth.Service
}

func NewAdminHandler(orders *store.OrderLog, svc *catalog.Service, authSvc *auth.Service) *AdminHandler {
	return &AdminHandler{orders: orders, catalog: svc, auth: authSvc}
}

func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	return response.Success(c, "Orders", h.orders.List())
}

func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	return response.Success(c, "Products", h.catalog.List())
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	return response.Success(c, "Users", h.auth.Users())
}
