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

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for business-listing handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// Register creates the caller's business listing.
func (h *BusinessHandler) Register(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	var input usecase.RegisterBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	business, err := h.businessUC.Register(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business registered successfully")
}

// List returns every business in the directory.
func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.businessUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// GetOwn returns the caller's business listing.
func (h *BusinessHandler) GetOwn(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	business, err := h.businessUC.GetOwn(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// RenewMembership resets the caller's membership to one year from now.
func (h *BusinessHandler) RenewMembership(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	business, err := h.businessUC.RenewMembership(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Membership renewed successfully")
}

// MembershipStats returns membership analytics for admins.
func (h *BusinessHandler) MembershipStats(c echo.Context) error {
	stats, err := h.businessUC.MembershipStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
