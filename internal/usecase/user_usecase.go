// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
)

// RegisterUserInput defines the data required to create a user profile.
type RegisterUserInput struct {
	Subject string `json:"subject" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
}

// AssignRoleInput defines the data required to assign a role to a user.
type AssignRoleInput struct {
	Email string      `json:"email" validate:"required,email"`
	Role  entity.Role `json:"role" validate:"required"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a user profile. New users start as business owners;
	// the role changes only through AssignRole.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Get returns the profile behind the resolved identity.
	Get(ctx context.Context, identity entity.Identity) (*entity.User, error)

	// AssignRole sets the role of the user with the given email.
	AssignRole(ctx context.Context, input *AssignRoleInput) error
}
