package handler

import (
	"context"
	"net/http"
	"testing"

	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRequestUsecase records whether any operation was reached.
type stubRequestUsecase struct {
	called  bool
	request *entity.EditRequest
	err     error
}

func (s *stubRequestUsecase) Submit(context.Context, entity.Identity, *usecase.SubmitRequestInput) (*entity.EditRequest, error) {
	s.called = true

	return s.request, s.err
}

func (s *stubRequestUsecase) Approve(context.Context, entity.Identity, string) (*entity.EditRequest, error) {
	s.called = true

	return s.request, s.err
}

func (s *stubRequestUsecase) Deny(context.Context, entity.Identity, string) (*entity.EditRequest, error) {
	s.called = true

	return s.request, s.err
}

func (s *stubRequestUsecase) List(context.Context, entity.RequestStatus) ([]*entity.EditRequest, error) {
	s.called = true

	return nil, s.err
}

func (s *stubRequestUsecase) History(context.Context) ([]*entity.RequestRecord, error) {
	s.called = true

	return nil, s.err
}

func TestRequestHandler_Deny_MalformedID(t *testing.T) {
	stub := &stubRequestUsecase{}
	h := NewRequestHandler(RequestHandlerParams{RequestUC: stub, Logger: newTestLogger()})

	c, _ := newTestContext(t, http.MethodPost, "/request/nope/deny", "")
	middleware.SetIdentity(c, entity.Identity{Subject: "user_admin", Role: entity.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("not-a-hex-id")

	err := h.Deny(c)

	// Malformed ids are rejected before any usecase or store access.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.False(t, stub.called)
}

func TestRequestHandler_Approve_WellFormedID(t *testing.T) {
	stub := &stubRequestUsecase{request: &entity.EditRequest{
		ID:     "64b00000000000000000000a",
		Status: entity.RequestApproved,
	}}
	h := NewRequestHandler(RequestHandlerParams{RequestUC: stub, Logger: newTestLogger()})

	c, rec := newTestContext(t, http.MethodPost, "/request/64b00000000000000000000a/approve", "")
	middleware.SetIdentity(c, entity.Identity{Subject: "user_admin", Role: entity.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("64b00000000000000000000a")

	err := h.Approve(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.called)
}

func TestRequestHandler_Submit_RequiresChanges(t *testing.T) {
	stub := &stubRequestUsecase{}
	h := NewRequestHandler(RequestHandlerParams{RequestUC: stub, Logger: newTestLogger()})

	c, _ := newTestContext(t, http.MethodPost, "/request", `{"changes":{}}`)
	middleware.SetIdentity(c, entity.Identity{Subject: "user_1", Role: entity.RoleBusinessOwner})

	err := h.Submit(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.False(t, stub.called)
}
