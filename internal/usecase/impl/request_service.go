package impl

import (
	"context"
	"log/slog"
	"time"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	requestRepo  repository.RequestRepository
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
	now          clock
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo  repository.RequestRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo:  params.RequestRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// Submit creates a pending edit request for the caller's business.
func (srv *requestService) Submit(ctx context.Context, identity entity.Identity, input *usecase.SubmitRequestInput) (*entity.EditRequest, error) {
	business, err := srv.businessRepo.FindByOwner(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("caller owns no business to edit")
		}

		return nil, errors.Wrap(err, "failed to load business for edit request")
	}

	request := &entity.EditRequest{
		BusinessID:   business.ID,
		BusinessName: business.BusinessName,
		OwnerSubject: identity.Subject,
		Changes:      input.Changes,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create edit request")
	}

	srv.logger.Info("Submitted edit request",
		slog.String("requestID", request.ID),
		slog.String("businessID", business.ID))

	return request, nil
}

// Approve resolves the request to approved.
func (srv *requestService) Approve(ctx context.Context, identity entity.Identity, requestID string) (*entity.EditRequest, error) {
	return srv.resolve(ctx, identity, requestID, entity.RequestApproved)
}

// Deny resolves the request to denied.
func (srv *requestService) Deny(ctx context.Context, identity entity.Identity, requestID string) (*entity.EditRequest, error) {
	return srv.resolve(ctx, identity, requestID, entity.RequestDenied)
}

// resolve writes the terminal status and appends the history record in the
// same operation. History is written here, not by a separate trigger, so the
// admin history view never misses a resolution.
func (srv *requestService) resolve(ctx context.Context, identity entity.Identity, requestID string, status entity.RequestStatus) (*entity.EditRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound.WrapMessage("no edit request with this id")
		}

		return nil, errors.Wrap(err, "failed to load edit request")
	}

	if err := srv.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound.WrapMessage("no edit request with this id")
		}

		return nil, errors.Wrap(err, "failed to update request status")
	}

	// A repeated resolution already has a history record; appending again
	// would duplicate it.
	if !request.Status.Terminal() {
		record := &entity.RequestRecord{
			RequestID:    request.ID,
			BusinessID:   request.BusinessID,
			BusinessName: request.BusinessName,
			Changes:      request.Changes,
			Status:       status,
			ResolvedBy:   identity.Subject,
			Date:         srv.now(),
		}
		if err := srv.requestRepo.AppendHistory(ctx, record); err != nil {
			return nil, errors.Wrap(err, "failed to append request history")
		}
	}

	request.Status = status

	srv.logger.Info("Resolved edit request",
		slog.String("requestID", requestID),
		slog.Any("status", status),
		slog.String("resolvedBy", identity.Subject))

	return request, nil
}

// List returns edit requests, optionally filtered by status.
func (srv *requestService) List(ctx context.Context, status entity.RequestStatus) ([]*entity.EditRequest, error) {
	if status != "" && status != entity.RequestPending && !status.Terminal() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown request status")
	}

	requests, err := srv.requestRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list edit requests")
	}

	return requests, nil
}

// History returns resolved-request records, newest first.
func (srv *requestService) History(ctx context.Context) ([]*entity.RequestRecord, error) {
	records, err := srv.requestRepo.ListHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list request history")
	}

	return records, nil
}
