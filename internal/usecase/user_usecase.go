// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"payverify/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// Fields tagged required must be non-empty; the rest of the profile is optional.
// Length limits match the users table columns.
type RegisterUserInput struct {
	FirstName     string `validate:"required,max=100"`
	LastName      string `validate:"required,max=100"`
	IDNumber      string `validate:"required,max=64"`
	AccountNumber string `validate:"required,max=64"`
	Username      string `validate:"required,max=100"`
	Email         string `validate:"required,max=255"`
	Password      string `validate:"required"`
	PhoneNumber   string `validate:"max=32"`
	Country       string `validate:"max=100"`
	Address       string `validate:"max=255"`
	City          string `validate:"max=100"`
	PostalCode    string `validate:"max=20"`
}

// LoginInput defines the credential triple used to log in.
type LoginInput struct {
	Username      string `validate:"required"`
	AccountNumber string `validate:"required"`
	Password      string `validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the stored user. PasswordHash is always empty.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated user and a signed access token.
// PasswordHash on User is always empty.
type LoginOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresIn   time.Duration
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
