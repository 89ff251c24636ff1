package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
)

// CreateSignupInput defines a proposed business signup payload.
type CreateSignupInput struct {
	BusinessName string `json:"businessName" validate:"required"`
	BusinessType string `json:"businessType" validate:"required"`
	OwnerName    string `json:"ownerName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
}

// SignupUsecase defines the interface for business signup requests.
type SignupUsecase interface {
	// Create persists a new signup request.
	Create(ctx context.Context, input *CreateSignupInput) (*entity.SignupRequest, error)

	// Get returns the signup request with the given document ID.
	Get(ctx context.Context, id string) (*entity.SignupRequest, error)
}
