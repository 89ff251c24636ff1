package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/domain/service"
)

// In-memory fakes implementing the repository and service interfaces the
// usecase layer depends on.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var idCounter int

func nextID() string {
	idCounter++

	return fmt.Sprintf("%024x", idCounter)
}

// --- user repository ---

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by subject
	err   error                   // forced error for failure paths
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindBySubject(_ context.Context, subject string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if user, ok := f.users[subject]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Subject == user.Subject {
			return domainerrors.ErrEmailTaken
		}
	}
	user.ID = nextID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Subject] = user

	return nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, email string, role entity.Role) error {
	if f.err != nil {
		return f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			user.Role = role

			return nil
		}
	}

	return repository.ErrUserNotFound
}

// --- business repository ---

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business // keyed by owner subject
	err        error
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[string]*entity.Business)}
}

func (f *fakeBusinessRepo) FindByID(_ context.Context, id string) (*entity.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, business := range f.businesses {
		if business.ID == id {
			return business, nil
		}
	}

	return nil, repository.ErrBusinessNotFound
}

func (f *fakeBusinessRepo) FindByOwner(_ context.Context, ownerSubject string) (*entity.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	if business, ok := f.businesses[ownerSubject]; ok {
		return business, nil
	}

	return nil, repository.ErrBusinessNotFound
}

func (f *fakeBusinessRepo) List(_ context.Context) ([]*entity.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	var businesses []*entity.Business
	for _, business := range f.businesses {
		businesses = append(businesses, business)
	}

	return businesses, nil
}

func (f *fakeBusinessRepo) ListByType(_ context.Context, businessType string) ([]*entity.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	var businesses []*entity.Business
	for _, business := range f.businesses {
		if business.BusinessType == businessType {
			businesses = append(businesses, business)
		}
	}

	return businesses, nil
}

func (f *fakeBusinessRepo) Create(_ context.Context, business *entity.Business) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.businesses {
		if existing.BusinessName == business.BusinessName || existing.OwnerSubject == business.OwnerSubject {
			return domainerrors.ErrBusinessNameTaken
		}
	}
	business.ID = nextID()
	business.CreatedAt = time.Now()
	business.UpdatedAt = business.CreatedAt
	f.businesses[business.OwnerSubject] = business

	return nil
}

func (f *fakeBusinessRepo) RenewMembership(_ context.Context, ownerSubject string, expiry, paidAt time.Time) (*entity.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	business, ok := f.businesses[ownerSubject]
	if !ok {
		business = &entity.Business{
			ID:           nextID(),
			OwnerSubject: ownerSubject,
			CreatedAt:    paidAt,
		}
		f.businesses[ownerSubject] = business
	}
	business.MembershipExpiryDate = expiry
	business.LastPayDate = paidAt
	business.UpdatedAt = paidAt

	return business, nil
}

func (f *fakeBusinessRepo) MembershipStats(_ context.Context, at time.Time) (*repository.MembershipStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	stats := &repository.MembershipStats{ByType: make(map[string]int64)}
	for _, business := range f.businesses {
		stats.Total++
		if business.MembershipActive(at) {
			stats.Active++
		} else {
			stats.Expired++
		}
		stats.ByType[business.BusinessType]++
	}

	return stats, nil
}

// --- request repository ---

type fakeRequestRepo struct {
	requests map[string]*entity.EditRequest
	history  []*entity.RequestRecord
	err      error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.EditRequest)}
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id string) (*entity.EditRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	if request, ok := f.requests[id]; ok {
		copied := *request

		return &copied, nil
	}

	return nil, repository.ErrRequestNotFound
}

func (f *fakeRequestRepo) List(_ context.Context, status entity.RequestStatus) ([]*entity.EditRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var requests []*entity.EditRequest
	for _, request := range f.requests {
		if status == "" || request.Status == status {
			requests = append(requests, request)
		}
	}

	return requests, nil
}

func (f *fakeRequestRepo) Create(_ context.Context, request *entity.EditRequest) error {
	if f.err != nil {
		return f.err
	}
	request.ID = nextID()
	request.Status = entity.RequestPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request

	return nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id string, status entity.RequestStatus) error {
	if f.err != nil {
		return f.err
	}
	request, ok := f.requests[id]
	if !ok {
		return repository.ErrRequestNotFound
	}
	request.Status = status
	request.UpdatedAt = time.Now()

	return nil
}

func (f *fakeRequestRepo) AppendHistory(_ context.Context, record *entity.RequestRecord) error {
	if f.err != nil {
		return f.err
	}
	record.ID = nextID()
	f.history = append(f.history, record)

	return nil
}

func (f *fakeRequestRepo) ListHistory(_ context.Context) ([]*entity.RequestRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.history, nil
}

// --- signup repository ---

type fakeSignupRepo struct {
	signups map[string]*entity.SignupRequest
	err     error
}

func newFakeSignupRepo() *fakeSignupRepo {
	return &fakeSignupRepo{signups: make(map[string]*entity.SignupRequest)}
}

func (f *fakeSignupRepo) FindByID(_ context.Context, id string) (*entity.SignupRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	if signup, ok := f.signups[id]; ok {
		return signup, nil
	}

	return nil, repository.ErrSignupNotFound
}

func (f *fakeSignupRepo) Create(_ context.Context, signup *entity.SignupRequest) error {
	if f.err != nil {
		return f.err
	}
	signup.ID = nextID()
	signup.Status = entity.RequestPending
	signup.CreatedAt = time.Now()
	f.signups[signup.ID] = signup

	return nil
}

// --- message repository ---

type fakeMessageRepo struct {
	messages []*entity.SentMessage
	err      error
}

func (f *fakeMessageRepo) Create(_ context.Context, message *entity.SentMessage) error {
	if f.err != nil {
		return f.err
	}
	message.ID = nextID()
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, message)

	return nil
}

func (f *fakeMessageRepo) List(_ context.Context) ([]*entity.SentMessage, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.messages, nil
}

// --- mailer ---

type fakeMailer struct {
	sent []*service.Mail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, mail *service.Mail) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, mail)

	return "<fake@relay>", nil
}

// --- attachment store ---

type fakeAttachmentStore struct {
	stored map[string][]byte
	err    error
}

func newFakeAttachmentStore() *fakeAttachmentStore {
	return &fakeAttachmentStore{stored: make(map[string][]byte)}
}

func (f *fakeAttachmentStore) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.stored[key] = data

	return key, nil
}

func (f *fakeAttachmentStore) Delete(_ context.Context, key string) error {
	delete(f.stored, key)

	return nil
}

func (f *fakeAttachmentStore) ImageRemotePatterns() []string {
	return []string{"https://assets.example.com/**"}
}
