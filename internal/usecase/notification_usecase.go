package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/service"
)

// SendNotificationInput defines an outbound admin notification. Exactly one
// of Address and BusinessType selects the recipients.
type SendNotificationInput struct {
	Subject      string `json:"subject" validate:"required"`
	Body         string `json:"body" validate:"required"`
	Address      string `json:"address"`
	BusinessType string `json:"businessType"`

	Attachments []service.Attachment `json:"attachments"`
}

// NotificationUsecase defines the interface for admin notification sending
// and its audit trail.
type NotificationUsecase interface {
	// Send stores attachments, relays the mail, and persists the audit
	// record. A relay failure propagates and nothing is persisted.
	Send(ctx context.Context, identity entity.Identity, input *SendNotificationInput) (*entity.SentMessage, error)

	// List returns sent-message audit records, newest first.
	List(ctx context.Context) ([]*entity.SentMessage, error)
}
