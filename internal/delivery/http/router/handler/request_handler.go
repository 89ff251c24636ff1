package handler

import (
	"context"
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/response"
	"bizdir/internal/domain/entity"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler holds dependencies for edit-request handlers.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler.
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// Submit creates a pending edit request for the caller's business.
func (h *RequestHandler) Submit(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	var input usecase.SubmitRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	request, err := h.requestUC.Submit(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Edit request submitted")
}

// Approve resolves the request to approved.
func (h *RequestHandler) Approve(c echo.Context) error {
	return h.resolve(c, h.requestUC.Approve, "Request approved")
}

// Deny resolves the request to denied.
func (h *RequestHandler) Deny(c echo.Context) error {
	return h.resolve(c, h.requestUC.Deny, "Request denied")
}

type resolveFunc func(ctx context.Context, identity entity.Identity, requestID string) (*entity.EditRequest, error)

func (h *RequestHandler) resolve(c echo.Context, fn resolveFunc, message string) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	requestID, err := documentIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := fn(c.Request().Context(), identity, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, message)
}

// List returns edit requests, optionally filtered with ?status=.
func (h *RequestHandler) List(c echo.Context) error {
	status := entity.RequestStatus(c.QueryParam("status"))

	requests, err := h.requestUC.List(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// History returns resolved-request records, newest first.
func (h *RequestHandler) History(c echo.Context) error {
	records, err := h.requestUC.History(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}
