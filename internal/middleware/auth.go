// Package middleware provides the request middleware used by the HTTP
// surface: JWT validation and role checks.
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"zentro/internal/models"
	"zentro/internal/utils"
	"zentro/internal/utils/response"
)

// Auth validates bearer tokens and stores the claims on the request context.
type Auth struct {
	jwtSecret string
}

func NewAuth(jwtSecret string) *Auth {
	return &Auth{jwtSecret: jwtSecret}
}

// Handler rejects requests without a valid bearer token.
func (m *Auth) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return response.Unauthorized(c)
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c)
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), m.jwtSecret)
	if err != nil {
		log.Printf("token validation failed: %v", err)
		return response.Unauthorized(c)
	}

	c.Locals("claims", claims)
	return c.Next()
}

// RequireAdmin gates a route on the admin role. Must run after Handler.
func (m *Auth) RequireAdmin(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || !claims.IsAdmin() {
		return response.Forbidden(c)
	}
	return c.Next()
}
