package handler

import (
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/response"
	"bizdir/internal/domain/service"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Attachments    service.AttachmentStore
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for admin notification handlers.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	attachments    service.AttachmentStore
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		attachments:    params.Attachments,
		logger:         params.Logger,
	}
}

// Send relays an admin notification and persists its audit record.
func (h *NotificationHandler) Send(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	var input usecase.SendNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	message, err := h.notificationUC.Send(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Notification sent")
}

// List returns sent-message audit records, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	messages, err := h.notificationUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// ImagePatterns returns the remote-pattern allowlist derived from the
// configured bucket, consumed by the front end's image loader.
func (h *NotificationHandler) ImagePatterns(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"patterns": h.attachments.ImageRemotePatterns(),
	}, "")
}
