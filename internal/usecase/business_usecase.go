package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
)

// RegisterBusinessInput defines the data required to register a business
// listing.
type RegisterBusinessInput struct {
	BusinessName string `json:"businessName" validate:"required"`
	BusinessType string `json:"businessType" validate:"required"`
	OwnerName    string `json:"ownerName" validate:"required"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	Facebook     string `json:"facebook"`
	Instagram    string `json:"instagram"`
	Twitter      string `json:"twitter"`
	Description  string `json:"description"`
}

// BusinessUsecase defines the interface for business-listing operations.
type BusinessUsecase interface {
	// Register creates the caller's business listing. Duplicate names are
	// rejected by the store's unique index, surfaced as a conflict.
	Register(ctx context.Context, identity entity.Identity, input *RegisterBusinessInput) (*entity.Business, error)

	// GetOwn returns the caller's business listing.
	GetOwn(ctx context.Context, identity entity.Identity) (*entity.Business, error)

	// List returns every business in the directory.
	List(ctx context.Context) ([]*entity.Business, error)

	// RenewMembership resets the caller's membership to one year from now
	// and stamps the pay date. Calling twice renews from the second call.
	RenewMembership(ctx context.Context, identity entity.Identity) (*entity.Business, error)

	// MembershipStats aggregates membership analytics for admins.
	MembershipStats(ctx context.Context) (*repository.MembershipStats, error)
}
