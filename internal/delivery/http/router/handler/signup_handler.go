package handler

import (
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/response"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SignupHandlerParams holds dependencies for SignupHandler, injected by Fx.
type SignupHandlerParams struct {
	fx.In

	SignupUC usecase.SignupUsecase
	Logger   *slog.Logger
}

// SignupHandler holds dependencies for business signup handlers.
type SignupHandler struct {
	signupUC usecase.SignupUsecase
	logger   *slog.Logger
}

// NewSignupHandler is the constructor for SignupHandler.
func NewSignupHandler(params SignupHandlerParams) *SignupHandler {
	return &SignupHandler{
		signupUC: params.SignupUC,
		logger:   params.Logger,
	}
}

// Create persists a new signup request.
func (h *SignupHandler) Create(c echo.Context) error {
	var input usecase.CreateSignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	signup, err := h.signupUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signup, "Signup request created")
}

// Get returns the signup request with the given document ID.
func (h *SignupHandler) Get(c echo.Context) error {
	id, err := documentIDParam(c, "id")
	if err != nil {
		return err
	}

	signup, err := h.signupUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, signup, "")
}
