package impl

import (
	"context"
	"log/slog"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"go.uber.org/fx"
)

// signupService implements the SignupUsecase interface.
type signupService struct {
	signupRepo repository.SignupRepository
	logger     *slog.Logger
}

// SignupServiceParams holds dependencies for signupService, injected by Fx.
type SignupServiceParams struct {
	fx.In

	SignupRepo repository.SignupRepository
	Logger     *slog.Logger
}

// NewSignupService is the constructor for signupService.
func NewSignupService(params SignupServiceParams) usecase.SignupUsecase {
	return &signupService{
		signupRepo: params.SignupRepo,
		logger:     params.Logger,
	}
}

// Create persists a new signup request.
func (srv *signupService) Create(ctx context.Context, input *usecase.CreateSignupInput) (*entity.SignupRequest, error) {
	signup := &entity.SignupRequest{
		BusinessName: input.BusinessName,
		BusinessType: input.BusinessType,
		OwnerName:    input.OwnerName,
		Email:        input.Email,
		Phone:        input.Phone,
	}

	if err := srv.signupRepo.Create(ctx, signup); err != nil {
		return nil, errors.Wrap(err, "failed to create signup request")
	}

	srv.logger.Info("Created signup request",
		slog.String("signupID", signup.ID),
		slog.String("businessName", signup.BusinessName))

	return signup, nil
}

// Get returns the signup request with the given document ID.
func (srv *signupService) Get(ctx context.Context, id string) (*entity.SignupRequest, error) {
	signup, err := srv.signupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSignupNotFound) {
			return nil, domainerrors.ErrSignupNotFound.WrapMessage("no signup request with this id")
		}

		return nil, errors.Wrap(err, "failed to load signup request")
	}

	return signup, nil
}
