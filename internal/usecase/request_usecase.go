package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
)

// SubmitRequestInput defines the proposed changes of an edit request.
type SubmitRequestInput struct {
	Changes map[string]string `json:"changes" validate:"required,min=1"`
}

// RequestUsecase defines the interface for the edit-request lifecycle.
// Approve and Deny are the only transitions; both are terminal and both
// append a history record in the same operation.
type RequestUsecase interface {
	// Submit creates a pending edit request for the caller's business.
	Submit(ctx context.Context, identity entity.Identity, input *SubmitRequestInput) (*entity.EditRequest, error)

	// Approve resolves the request to approved.
	Approve(ctx context.Context, identity entity.Identity, requestID string) (*entity.EditRequest, error)

	// Deny resolves the request to denied. Repeating the call is idempotent
	// in effect.
	Deny(ctx context.Context, identity entity.Identity, requestID string) (*entity.EditRequest, error)

	// List returns edit requests, optionally filtered by status.
	List(ctx context.Context, status entity.RequestStatus) ([]*entity.EditRequest, error)

	// History returns resolved-request records, newest first.
	History(ctx context.Context) ([]*entity.RequestRecord, error)
}
