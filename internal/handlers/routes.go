package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zentro/internal/middleware"
)

// Handlers groups the HTTP handlers for route registration.
type Handlers struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Payment  *PaymentHandler
	Admin    *AdminHandler
}

// SetupRoutes registers every route on the app.
func SetupRoutes(app *fiber.App, h Handlers, authMW *middleware.Auth) {
	app.Get("/health", HealthCheck)

	api := app.Group("/api")

	// Public routes
	api.Post("/register", h.Auth.Register)
	api.Post("/login", h.Auth.Login)
	api.Get("/products", h.Catalog.ListProducts)
	api.Get("/products/featured", h.Catalog.ListFeatured)
	api.Get("/products/:id", h.Catalog.GetProduct)
	api.Get("/categories", h.Catalog.ListCategories)
	api.Get("/payment-methods", h.Payment.ListMethods)

	// Authenticated routes
	authed := api.Group("/", authMW.Handler)

	cart := authed.Group("/cart")
	cart.Get("/", h.Cart.Get)
	cart.Post("/items", h.Cart.Add)
	cart.Put("/items/:productId", h.Cart.SetQuantity)
	cart.Delete("/items/:productId", h.Cart.Remove)

	co := authed.Group("/checkout")
	co.Post("/", h.Checkout.Create)
	co.Get("/confirmation", h.Checkout.Confirmation)
	co.Get("/:id", h.Checkout.Status)
	co.Patch("/:id/fields", h.Checkout.SetFields)
	co.Post("/:id/next", h.Checkout.Next)
	co.Post("/:id/back", h.Checkout.Back)
	co.Post("/:id/submit", h.Checkout.Submit)
	co.Delete("/:id", h.Checkout.Abandon)

	// Admin routes
	admin := authed.Group("/admin", authMW.RequireAdmin)
	admin.Get("/orders", h.Admin.ListOrders)
	admin.Get("/products", h.Admin.ListProducts)
	admin.Get("/users", h.Admin.ListUsers)
}
