package repository

import (
	"context"

	"bizdir/internal/domain/entity"
)

// MessageRepository defines persistence operations for the sent-message
// audit log. Records are immutable once written.
type MessageRepository interface {
	// Create persists a sent-message audit record.
	Create(ctx context.Context, message *entity.SentMessage) error

	// List returns audit records, newest first.
	List(ctx context.Context) ([]*entity.SentMessage, error)
}
