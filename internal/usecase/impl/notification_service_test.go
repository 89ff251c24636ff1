package impl

import (
	"context"
	"testing"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/service"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service      usecase.NotificationUsecase
	messageRepo  *fakeMessageRepo
	businessRepo *fakeBusinessRepo
	userRepo     *fakeUserRepo
	mailer       *fakeMailer
	attachments  *fakeAttachmentStore
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	t.Helper()

	messageRepo := &fakeMessageRepo{}
	businessRepo := newFakeBusinessRepo()
	userRepo := newFakeUserRepo()
	mailer := &fakeMailer{}
	attachments := newFakeAttachmentStore()
	svc := NewNotificationService(NotificationServiceParams{
		MessageRepo:  messageRepo,
		BusinessRepo: businessRepo,
		UserRepo:     userRepo,
		Mailer:       mailer,
		Attachments:  attachments,
		Logger:       newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:      svc,
		messageRepo:  messageRepo,
		businessRepo: businessRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		attachments:  attachments,
	}
}

func seedOwnerWithBusiness(t *testing.T, fx notificationServiceFixtures, subject, email, businessType string) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{
		Subject: subject,
		Email:   email,
		Role:    entity.RoleBusinessOwner,
	}))
	require.NoError(t, fx.businessRepo.Create(ctx, &entity.Business{
		OwnerSubject: subject,
		BusinessName: "Business of " + subject,
		BusinessType: businessType,
	}))
}

func TestNotificationService_Send_DirectAddress(t *testing.T) {
	fx := createTestNotificationService(t)

	message, err := fx.service.Send(context.Background(), adminIdentity, &usecase.SendNotificationInput{
		Subject: "Renewal reminder",
		Body:    "Your membership expires soon.",
		Address: "owner@acme.example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
	require.Len(t, fx.mailer.sent, 1)
	assert.Equal(t, []string{"owner@acme.example.com"}, fx.mailer.sent[0].To)
	assert.Len(t, fx.messageRepo.messages, 1)
}

func TestNotificationService_Send_RecipientSelector(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	// Neither address nor business type.
	_, err := fx.service.Send(ctx, adminIdentity, &usecase.SendNotificationInput{
		Subject: "s", Body: "b",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())

	// Both at once.
	_, err = fx.service.Send(ctx, adminIdentity, &usecase.SendNotificationInput{
		Subject: "s", Body: "b",
		Address:      "owner@acme.example.com",
		BusinessType: "restaurant",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestNotificationService_Send_Broadcast(t *testing.T) {
	fx := createTestNotificationService(t)
	seedOwnerWithBusiness(t, fx, "user_a", "a@example.com", "restaurant")
	seedOwnerWithBusiness(t, fx, "user_b", "b@example.com", "restaurant")
	seedOwnerWithBusiness(t, fx, "user_c", "c@example.com", "cafe")

	message, err := fx.service.Send(context.Background(), adminIdentity, &usecase.SendNotificationInput{
		Subject:      "Health inspection notice",
		Body:         "Inspections begin next week.",
		BusinessType: "restaurant",
	})

	require.NoError(t, err)
	assert.True(t, message.Recipient.Broadcast())
	require.Len(t, fx.mailer.sent, 1)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, fx.mailer.sent[0].To)
}

func TestNotificationService_Send_BroadcastSkipsOrphanedBusiness(t *testing.T) {
	fx := createTestNotificationService(t)
	seedOwnerWithBusiness(t, fx, "user_a", "a@example.com", "restaurant")
	// A business whose owner has no profile is skipped, not fatal.
	require.NoError(t, fx.businessRepo.Create(context.Background(), &entity.Business{
		OwnerSubject: "user_ghost",
		BusinessName: "Ghost Kitchen",
		BusinessType: "restaurant",
	}))

	_, err := fx.service.Send(context.Background(), adminIdentity, &usecase.SendNotificationInput{
		Subject:      "s",
		Body:         "b",
		BusinessType: "restaurant",
	})

	require.NoError(t, err)
	require.Len(t, fx.mailer.sent, 1)
	assert.Equal(t, []string{"a@example.com"}, fx.mailer.sent[0].To)
}

func TestNotificationService_Send_BroadcastNoRecipients(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Send(context.Background(), adminIdentity, &usecase.SendNotificationInput{
		Subject:      "s",
		Body:         "b",
		BusinessType: "laundromat",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Empty(t, fx.mailer.sent)
}

func TestNotificationService_Send_RelayFailureLeavesNoAudit(t *testing.T) {
	fx := createTestNotificationService(t)
	fx.mailer.err = errors.New("connection refused")

	_, err := fx.service.Send(context.Background(), adminIdentity, &usecase.SendNotificationInput{
		Subject: "s",
		Body:    "b",
		Address: "owner@acme.example.com",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Empty(t, fx.messageRepo.messages)
}

// A rejected relay must also discard the attachments stored for the message,
// not just skip the audit record.
func TestNotificationService_Send_RelayFailureDiscardsAttachments(t *testing.T) {
	fx := createTestNotificationService(t)
	fx.mailer.err = errors.New("connection refused")

	_, err := fx.service.Send(context.Background(), adminIdentity, &usecase.SendNotificationInput{
		Subject: "Flyer",
		Body:    "See attached.",
		Address: "owner@acme.example.com",
		Attachments: []service.Attachment{
			{Filename: "flyer.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
		},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Empty(t, fx.attachments.stored)
	assert.Empty(t, fx.messageRepo.messages)
}

func TestNotificationService_Send_StoresAttachments(t *testing.T) {
	fx := createTestNotificationService(t)

	message, err := fx.service.Send(context.Background(), adminIdentity, &usecase.SendNotificationInput{
		Subject: "Flyer",
		Body:    "See attached.",
		Address: "owner@acme.example.com",
		Attachments: []service.Attachment{
			{Filename: "flyer.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
		},
	})

	require.NoError(t, err)
	require.Len(t, message.Attachments, 1)
	assert.Contains(t, message.Attachments[0], "notifications/")
	assert.Contains(t, message.Attachments[0], "flyer.pdf")
	assert.Contains(t, fx.attachments.stored, message.Attachments[0])
}

func TestNotificationService_List(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	_, err := fx.service.Send(ctx, adminIdentity, &usecase.SendNotificationInput{
		Subject: "s", Body: "b", Address: "owner@acme.example.com",
	})
	require.NoError(t, err)

	messages, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "user_admin", messages[0].SentBy)
}
