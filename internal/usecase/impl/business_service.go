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

// clock returns the current time; swapped out in tests.
type clock func() time.Time

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
	now          clock
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// Register creates the caller's business listing.
func (srv *businessService) Register(ctx context.Context, identity entity.Identity, input *usecase.RegisterBusinessInput) (*entity.Business, error) {
	business := &entity.Business{
		OwnerSubject: identity.Subject,
		BusinessName: input.BusinessName,
		BusinessType: input.BusinessType,
		OwnerName:    input.OwnerName,
		Website:      input.Website,
		Address:      input.Address,
		Contact:      input.Contact,
		Social: entity.SocialHandles{
			Facebook:  input.Facebook,
			Instagram: input.Instagram,
			Twitter:   input.Twitter,
		},
		Description: input.Description,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		srv.logger.Warn("Failed to register business",
			slog.String("businessName", input.BusinessName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register business")
	}

	srv.logger.Info("Registered business",
		slog.String("businessID", business.ID),
		slog.String("businessName", business.BusinessName))

	return business, nil
}

// GetOwn returns the caller's business listing.
func (srv *businessService) GetOwn(ctx context.Context, identity entity.Identity) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwner(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("caller owns no business")
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	return business, nil
}

// List returns every business in the directory.
func (srv *businessService) List(ctx context.Context) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// RenewMembership resets the membership to one year from now. "Renew from
// now": a second call resets the expiry relative to the second call, it does
// not extend the prior expiry.
func (srv *businessService) RenewMembership(ctx context.Context, identity entity.Identity) (*entity.Business, error) {
	paidAt := srv.now()
	expiry := paidAt.AddDate(1, 0, 0)

	business, err := srv.businessRepo.RenewMembership(ctx, identity.Subject, expiry, paidAt)
	if err != nil {
		srv.logger.Error("Failed to renew membership",
			slog.String("subject", identity.Subject), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to renew membership")
	}

	srv.logger.Info("Renewed membership",
		slog.String("businessID", business.ID),
		slog.Time("expiry", expiry))

	return business, nil
}

// MembershipStats aggregates membership analytics for admins.
func (srv *businessService) MembershipStats(ctx context.Context) (*repository.MembershipStats, error) {
	stats, err := srv.businessRepo.MembershipStats(ctx, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate membership stats")
	}

	return stats, nil
}
