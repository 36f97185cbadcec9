package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zentro/internal/services/auth"
	"zentro/internal/utils/response"
)

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{auth: svc}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	user, tokens, err := h.auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return response.ServerError(c, "Login failed")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input auth.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	user, tokens, err := h.auth.Register(input)
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			return response.ValidationErrors(c, vErr.Fields)
		case errors.Is(err, auth.ErrEmailTaken):
			return response.Error(c, fiber.StatusConflict, "Email already registered")
		default:
			return response.ServerError(c, "Registration failed")
		}
	}

	return response.Success(c, "Account created", fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}
