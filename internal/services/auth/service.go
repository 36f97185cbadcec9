// Package auth implements the demo authentication flow: an in-memory user
// store seeded with demo accounts, bcrypt password checks, and JWT session
// tokens. There is no real identity provider behind it.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"zentro/internal/models"
	"zentro/internal/store"
	"zentro/internal/utils"
	"zentro/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// TokenPair carries a signed access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Service authenticates demo users.
type Service struct {
	users     *store.UserStore
	jwtSecret string
}

// NewService wires the auth service and seeds the demo accounts. The demo
// password opens every seeded account, mirroring the storefront's demo mode.
func NewService(users *store.UserStore, jwtSecret, demoPassword string) (*Service, error) {
	s := &Service{users: users, jwtSecret: jwtSecret}
	if err := s.seed(demoPassword); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) seed(demoPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	seedUsers := []models.User{
		{
			ID:        "1",
			Email:     "demo@zentro.com",
			FirstName: "Demo",
			LastName:  "User",
			Role:      models.RoleUser,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Email:     "john@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Role:      models.RoleUser,
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Email:     "admin@zentro.com",
			FirstName: "Admin",
			LastName:  "User",
			Role:      models.RoleAdmin,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, u := range seedUsers {
		u.PasswordHash = string(hash)
		s.users.Save(u)
	}
	return nil
}

// Login checks credentials and issues a token pair.
func (s *Service) Login(email, password string) (*models.User, *TokenPair, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.tokensFor(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Register creates a new demo account and logs it in.
func (s *Service) Register(input RegisterInput) (*models.User, *TokenPair, error) {
	v := validation.New()
	v.Required("email", input.Email, "Email is required")
	v.Email("email", input.Email)
	v.MinLength("password", input.Password, 8)
	v.Required("firstName", input.FirstName, "First name is required")
	v.Required("lastName", input.LastName, "Last name is required")
	if !v.Valid() {
		return nil, nil, &ValidationError{Fields: v.Errors}
	}

	if _, ok := s.users.FindByEmail(input.Email); ok {
		return nil, nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.users.Save(user)

	tokens, err := s.tokensFor(&user)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// Users lists all demo accounts, for the admin view.
func (s *Service) Users() []models.User {
	return s.users.List()
}

func (s *Service) tokensFor(user *models.User) (*TokenPair, error) {
	claims := &models.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	access, refresh, err := utils.GenerateTokens(claims, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("generate tokens: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ValidationError carries per-field signup errors.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid registration input"
}
