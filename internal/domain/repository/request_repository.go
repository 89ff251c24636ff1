package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"
)

// ErrRequestNotFound is returned when no edit request matches the lookup.
var ErrRequestNotFound = errors.New("edit request not found")

// RequestRepository defines persistence operations for edit requests and
// their append-only history.
type RequestRepository interface {
	// FindByID retrieves a single edit request by document ID.
	FindByID(ctx context.Context, id string) (*entity.EditRequest, error)

	// List returns edit requests, optionally filtered by status
	// (empty status means all).
	List(ctx context.Context, status entity.RequestStatus) ([]*entity.EditRequest, error)

	// Create persists a new pending edit request.
	Create(ctx context.Context, request *entity.EditRequest) error

	// UpdateStatus writes the terminal status on the request document.
	// It does not guard on the prior status; repeating a terminal write is
	// a no-op in effect.
	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error

	// AppendHistory writes a resolved-request record to the append-only
	// history collection.
	AppendHistory(ctx context.Context, record *entity.RequestRecord) error

	// ListHistory returns history records sorted by date descending.
	ListHistory(ctx context.Context) ([]*entity.RequestRecord, error)
}
