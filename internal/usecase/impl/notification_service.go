package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/domain/service"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	messageRepo  repository.MessageRepository
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	mailer       service.Mailer
	attachments  service.AttachmentStore
	logger       *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	MessageRepo  repository.MessageRepository
	BusinessRepo repository.BusinessRepository
	UserRepo     repository.UserRepository
	Mailer       service.Mailer
	Attachments  service.AttachmentStore
	Logger       *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		messageRepo:  params.MessageRepo,
		businessRepo: params.BusinessRepo,
		userRepo:     params.UserRepo,
		mailer:       params.Mailer,
		attachments:  params.Attachments,
		logger:       params.Logger,
	}
}

// Send stores attachments, relays the mail, and persists the audit record.
// The audit record is written only after the relay accepted the message, and
// a rejected relay discards the stored attachments, so a failed send leaves
// no partial persistence.
func (srv *notificationService) Send(ctx context.Context, identity entity.Identity, input *usecase.SendNotificationInput) (*entity.SentMessage, error) {
	recipient := entity.Recipient{
		Address:      input.Address,
		BusinessType: input.BusinessType,
	}
	if (recipient.Address == "") == (recipient.BusinessType == "") {
		return nil, domainerrors.ErrInvalidRecipient.WrapMessage("exactly one of address and businessType must be set")
	}

	addresses, err := srv.resolveRecipients(ctx, recipient)
	if err != nil {
		return nil, err
	}

	keys, err := srv.storeAttachments(ctx, input.Attachments)
	if err != nil {
		return nil, err
	}

	messageID, err := srv.mailer.Send(ctx, &service.Mail{
		To:          addresses,
		Subject:     input.Subject,
		Body:        input.Body,
		Attachments: input.Attachments,
	})
	if err != nil {
		srv.logger.Error("Relay rejected notification",
			slog.String("subject", input.Subject), slog.Any("error", err))
		srv.discardAttachments(ctx, keys)

		return nil, domainerrors.ErrRelayFailed.WrapMessage(err.Error())
	}

	message := &entity.SentMessage{
		Subject:     input.Subject,
		Body:        input.Body,
		Attachments: keys,
		Recipient:   recipient,
		SentBy:      identity.Subject,
	}
	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to persist sent message")
	}

	srv.logger.Info("Sent notification",
		slog.String("messageID", messageID),
		slog.Int("recipients", len(addresses)),
		slog.Bool("broadcast", recipient.Broadcast()))

	return message, nil
}

// resolveRecipients expands the recipient selector to concrete addresses.
// A broadcast resolves every business of the type to its owner's email;
// owners without a stored profile are skipped.
func (srv *notificationService) resolveRecipients(ctx context.Context, recipient entity.Recipient) ([]string, error) {
	if !recipient.Broadcast() {
		return []string{recipient.Address}, nil
	}

	businesses, err := srv.businessRepo.ListByType(ctx, recipient.BusinessType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve broadcast recipients")
	}

	var addresses []string
	for _, business := range businesses {
		owner, err := srv.userRepo.FindBySubject(ctx, business.OwnerSubject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				srv.logger.Warn("Skipping business without owner profile",
					slog.String("businessID", business.ID))

				continue
			}

			return nil, errors.Wrap(err, "failed to resolve business owner")
		}
		addresses = append(addresses, owner.Email)
	}

	if len(addresses) == 0 {
		return nil, domainerrors.ErrInvalidRecipient.WrapMessage("no reachable businesses of this type")
	}

	return addresses, nil
}

// storeAttachments writes attachments to object storage and returns their keys.
func (srv *notificationService) storeAttachments(ctx context.Context, attachments []service.Attachment) ([]string, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	prefix := uuid.New().String()
	keys := make([]string, 0, len(attachments))
	for _, att := range attachments {
		key := fmt.Sprintf("notifications/%s/%s", prefix, att.Filename)
		stored, err := srv.attachments.Put(ctx, key, att.ContentType, att.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store attachment")
		}
		keys = append(keys, stored)
	}

	return keys, nil
}

// discardAttachments removes attachments stored for a message the relay
// rejected. Best effort: a failed delete only logs, since the send already
// failed and the orphaned blob is harmless.
func (srv *notificationService) discardAttachments(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := srv.attachments.Delete(ctx, key); err != nil {
			srv.logger.Warn("Failed to discard stored attachment",
				slog.String("key", key), slog.Any("error", err))
		}
	}
}

// List returns sent-message audit records, newest first.
func (srv *notificationService) List(ctx context.Context) ([]*entity.SentMessage, error) {
	messages, err := srv.messageRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sent messages")
	}

	return messages, nil
}
