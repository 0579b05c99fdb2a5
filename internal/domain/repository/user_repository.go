// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"payverify/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned by Create when the email or the
	// (username, account number) pair is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the credential store operations.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsernameAndAccount retrieves the user matching both fields exactly.
	FindByUsernameAndAccount(ctx context.Context, username, accountNumber string) (*entity.User, error)

	// Create persists a new user. The store's unique constraints decide conflicts,
	// which are reported as ErrDuplicateUser.
	Create(ctx context.Context, user *entity.User) error
}
