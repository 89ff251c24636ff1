// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by document ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindBySubject retrieves a single user by identity-provider subject.
	FindBySubject(ctx context.Context, subject string) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A duplicate email or subject surfaces as
	// a domain conflict error from the store's unique index, never from a
	// pre-read.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role of the user with the given email.
	UpdateRole(ctx context.Context, email string, role entity.Role) error
}
