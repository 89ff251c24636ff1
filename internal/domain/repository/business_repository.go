package repository

import (
	"context"
	"errors"
	"time"

	"bizdir/internal/domain/entity"
)

// ErrBusinessNotFound is returned when no business matches the lookup.
var ErrBusinessNotFound = errors.New("business not found")

// MembershipStats is the aggregation result backing the admin analytics view.
type MembershipStats struct {
	Total   int64
	Active  int64
	Expired int64
	ByType  map[string]int64
}

// BusinessRepository defines persistence operations for business listings.
type BusinessRepository interface {
	// FindByID retrieves a single business by document ID.
	FindByID(ctx context.Context, id string) (*entity.Business, error)

	// FindByOwner retrieves the business owned by the given subject.
	FindByOwner(ctx context.Context, ownerSubject string) (*entity.Business, error)

	// List returns every business in the directory.
	List(ctx context.Context) ([]*entity.Business, error)

	// ListByType returns businesses of the given type, used for broadcast
	// notification fan-out.
	ListByType(ctx context.Context, businessType string) ([]*entity.Business, error)

	// Create persists a new business. Duplicate names surface as a domain
	// conflict error from the store's unique index.
	Create(ctx context.Context, business *entity.Business) error

	// RenewMembership upserts the business owned by the subject so that
	// membershipExpiryDate = expiry and lastPayDate = paidAt.
	RenewMembership(ctx context.Context, ownerSubject string, expiry, paidAt time.Time) (*entity.Business, error)

	// MembershipStats aggregates membership counts for analytics.
	MembershipStats(ctx context.Context, at time.Time) (*MembershipStats, error)
}
