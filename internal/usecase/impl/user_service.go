// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Register creates a user profile. There is no pre-read for duplicates: the
// store's unique indexes reject them and the conflict surfaces from Create.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	user := &entity.User{
		Subject: input.Subject,
		Email:   input.Email,
		Name:    input.Name,
		Phone:   input.Phone,
		Role:    entity.RoleBusinessOwner,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.logger.Warn("Failed to register user",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.logger.Info("Registered user",
		slog.String("userID", user.ID), slog.String("email", user.Email))

	return user, nil
}

// Get returns the profile behind the resolved identity.
func (srv *userService) Get(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindBySubject(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no profile for subject")
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return user, nil
}

// AssignRole sets the role of the user with the given email.
func (srv *userService) AssignRole(ctx context.Context, input *usecase.AssignRoleInput) error {
	if !input.Role.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	if err := srv.userRepo.UpdateRole(ctx, input.Email, input.Role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no user with this email")
		}

		return errors.Wrap(err, "failed to assign role")
	}

	srv.logger.Info("Assigned role",
		slog.String("email", input.Email), slog.Any("role", input.Role))

	return nil
}
