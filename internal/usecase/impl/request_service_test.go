package impl

import (
	"context"
	"testing"
	"time"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestServiceFixtures struct {
	service      usecase.RequestUsecase
	requestRepo  *fakeRequestRepo
	businessRepo *fakeBusinessRepo
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	t.Helper()

	requestRepo := newFakeRequestRepo()
	businessRepo := newFakeBusinessRepo()
	service := NewRequestService(RequestServiceParams{
		RequestRepo:  requestRepo,
		BusinessRepo: businessRepo,
		Logger:       newDiscardLogger(),
	})

	return requestServiceFixtures{
		service:      service,
		requestRepo:  requestRepo,
		businessRepo: businessRepo,
	}
}

var adminIdentity = entity.Identity{
	UserID:  "64b0000000000000000000aa",
	Subject: "user_admin",
	Email:   "admin@x.com",
	Role:    entity.RoleAdmin,
}

func submitTestRequest(t *testing.T, fx requestServiceFixtures) *entity.EditRequest {
	t.Helper()

	ctx := context.Background()
	err := fx.businessRepo.Create(ctx, &entity.Business{
		OwnerSubject: ownerIdentity.Subject,
		BusinessName: "Acme",
		BusinessType: "restaurant",
	})
	require.NoError(t, err)

	request, err := fx.service.Submit(ctx, ownerIdentity, &usecase.SubmitRequestInput{
		Changes: map[string]string{"website": "https://acme.example.com"},
	})
	require.NoError(t, err)
	require.Equal(t, entity.RequestPending, request.Status)

	return request
}

func TestRequestService_Submit_NoBusiness(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.Submit(context.Background(), ownerIdentity, &usecase.SubmitRequestInput{
		Changes: map[string]string{"website": "https://acme.example.com"},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestRequestService_Approve_Pending(t *testing.T) {
	fx := createTestRequestService(t)
	request := submitTestRequest(t, fx)

	resolved, err := fx.service.Approve(context.Background(), adminIdentity, request.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, resolved.Status)
	require.Len(t, fx.requestRepo.history, 1)
	assert.Equal(t, entity.RequestApproved, fx.requestRepo.history[0].Status)
	assert.Equal(t, "user_admin", fx.requestRepo.history[0].ResolvedBy)
}

func TestRequestService_Deny_Pending(t *testing.T) {
	fx := createTestRequestService(t)
	request := submitTestRequest(t, fx)

	resolved, err := fx.service.Deny(context.Background(), adminIdentity, request.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestDenied, resolved.Status)
	assert.Len(t, fx.requestRepo.history, 1)
}

func TestRequestService_Deny_Repeated_IdempotentEffect(t *testing.T) {
	fx := createTestRequestService(t)
	request := submitTestRequest(t, fx)
	ctx := context.Background()

	_, err := fx.service.Deny(ctx, adminIdentity, request.ID)
	require.NoError(t, err)

	resolved, err := fx.service.Deny(ctx, adminIdentity, request.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestDenied, resolved.Status)
	// The repeated resolution does not duplicate the history record.
	assert.Len(t, fx.requestRepo.history, 1)
}

func TestRequestService_Resolve_NotFound(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.Deny(context.Background(), adminIdentity, "64b0000000000000000000ff")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestRequestService_List_FilterByStatus(t *testing.T) {
	fx := createTestRequestService(t)
	request := submitTestRequest(t, fx)
	ctx := context.Background()

	_, err := fx.service.Approve(ctx, adminIdentity, request.ID)
	require.NoError(t, err)

	pending, err := fx.service.List(ctx, entity.RequestPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	approved, err := fx.service.List(ctx, entity.RequestApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}

func TestRequestService_List_UnknownStatus(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.List(context.Background(), entity.RequestStatus("archived"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestRequestService_History_RecordsResolutionTime(t *testing.T) {
	fx := createTestRequestService(t)
	request := submitTestRequest(t, fx)

	before := time.Now()
	_, err := fx.service.Deny(context.Background(), adminIdentity, request.ID)
	require.NoError(t, err)

	records, err := fx.service.History(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Date.Before(before))
}
