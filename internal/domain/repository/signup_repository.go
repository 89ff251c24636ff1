package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"
)

// ErrSignupNotFound is returned when no signup request matches the lookup.
var ErrSignupNotFound = errors.New("signup request not found")

// SignupRepository defines persistence operations for business signup requests.
type SignupRepository interface {
	// FindByID retrieves a signup request by document ID.
	FindByID(ctx context.Context, id string) (*entity.SignupRequest, error)

	// Create persists a new signup request.
	Create(ctx context.Context, signup *entity.SignupRequest) error
}
