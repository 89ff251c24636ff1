package handler

import (
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/response"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Register handles profile creation for a new account.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// Get returns the caller's own profile.
func (h *UserHandler) Get(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// AssignRole sets the role of the user with the given email.
func (h *UserHandler) AssignRole(c echo.Context) error {
	var input usecase.AssignRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.userUC.AssignRole(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": input.Email, "role": string(input.Role)}, "Role assigned successfully")
}
