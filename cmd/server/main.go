// Package main is the entry point for the storefront API. Everything behind
// it is simulated: payments, auth, and orders live in memory with canned
// delays and randomized outcomes. No real money moves.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"zentro/internal/config"
	"zentro/internal/handlers"
	"zentro/internal/middleware"
	"zentro/internal/services/auth"
	"zentro/internal/services/cart"
	"zentro/internal/services/catalog"
	"zentro/internal/services/checkout"
	"zentro/internal/services/payment"
	"zentro/internal/store"
)

func main() {
	config.LoadEnv()

	jwtSecret := config.GetEnv("JWT_SECRET", "zentro-demo-secret")
	demoPassword := config.GetEnv("DEMO_PASSWORD", "password123")

	// Stores. The handoff slot falls back to memory unless Redis is
	// configured for multi-instance deployments.
	var handoff store.HandoffStore = store.NewMemoryHandoff()
	if addr := config.GetEnv("REDIS_ADDR", ""); addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisHandoff, err := store.NewRedisHandoff(ctx, addr, config.GetDurationEnv("HANDOFF_TTL", time.Hour))
		cancel()
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisHandoff.Close()
		handoff = redisHandoff
		log.Printf("handoff store backed by redis at %s", addr)
	}

	users := store.NewUserStore()
	orders := store.NewOrderLog()

	// Services
	authSvc, err := auth.NewService(users, jwtSecret, demoPassword)
	if err != nil {
		log.Fatalf("failed to initialize auth service: %v", err)
	}
	catalogSvc := catalog.NewService()
	carts := cart.NewManager()

	payments := payment.NewService(payment.Config{
		DeclineRate: config.GetFloatEnv("DECLINE_RATE", payment.DefaultDeclineRate),
	})

	checkoutCfg := checkout.DefaultConfig()
	checkoutCfg.TaxRate = config.GetFloatEnv("TAX_RATE", checkoutCfg.TaxRate)
	checkoutCfg.FreeShippingOver = config.GetFloatEnv("FREE_SHIPPING_OVER", checkoutCfg.FreeShippingOver)
	checkoutCfg.ShippingFee = config.GetFloatEnv("SHIPPING_FEE", checkoutCfg.ShippingFee)
	checkoutCfg.ProgressTick = config.GetDurationEnv("PROGRESS_TICK", checkoutCfg.ProgressTick)
	sessions := checkout.NewManager(payments, handoff, orders, checkoutCfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(429).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	authMW := middleware.NewAuth(jwtSecret)
	handlers.SetupRoutes(app, handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authSvc),
		Catalog:  handlers.NewCatalogHandler(catalogSvc),
		Cart:     handlers.NewCartHandler(carts, catalogSvc),
		Checkout: handlers.NewCheckoutHandler(sessions, carts, handoff),
		Payment:  handlers.NewPaymentHandler(payments),
		Admin:    handlers.NewAdminHandler(orders, catalogSvc, authSvc),
	}, authMW)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
