package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/domain/service"
	mockRepo "pymerp/internal/mocks/repository"
	mockSvc "pymerp/internal/mocks/service"
	"pymerp/internal/usecase"
)

type adminFixtures struct {
	service           *adminService
	accessRequestRepo *mockRepo.MockAccessRequestRepository
	userRepo          *mockRepo.MockUserRepository
	companyRepo       *mockRepo.MockCompanyRepository
	txManager         *mockRepo.MockTransactionManager
	factory           *mockRepo.MockRepositoryFactory
	identity          *mockSvc.MockIdentityProvider
	mailer            *mockSvc.MockMailer
	cache             *mockSvc.MockDirectoryCache
}

func createTestAdminService(t *testing.T) adminFixtures {
	f := adminFixtures{
		accessRequestRepo: mockRepo.NewMockAccessRequestRepository(t),
		userRepo:          mockRepo.NewMockUserRepository(t),
		companyRepo:       mockRepo.NewMockCompanyRepository(t),
		txManager:         mockRepo.NewMockTransactionManager(t),
		factory:           mockRepo.NewMockRepositoryFactory(t),
		identity:          mockSvc.NewMockIdentityProvider(t),
		mailer:            mockSvc.NewMockMailer(t),
		cache:             mockSvc.NewMockDirectoryCache(t),
	}

	srv := NewAdminService(AdminServiceParams{
		AccessRequestRepo: f.accessRequestRepo,
		UserRepo:          f.userRepo,
		CompanyRepo:       f.companyRepo,
		TxManager:         f.txManager,
		Identity:          f.identity,
		Mailer:            f.mailer,
		Cache:             f.cache,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	}).(*adminService)
	srv.now = func() time.Time { return fixedNow }
	f.service = srv

	return f
}

// inTx routes transactional repositories to the non-transactional mocks.
func (f adminFixtures) inTx() {
	onExecute(f.txManager, f.factory)
	f.factory.EXPECT().NewAccessRequestRepository().Return(f.accessRequestRepo).Maybe()
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
}

func TestAdminService_ListAccessRequests(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()

	want := []*entity.AccessRequest{{ID: "b"}, {ID: "a"}}
	f.accessRequestRepo.EXPECT().
		List(ctx, repository.AccessRequestFilter{Status: entity.AccessRequestPending}).
		Return(want, nil)

	got, err := f.service.ListAccessRequests(ctx, entity.AccessRequestPending)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = f.service.ListAccessRequests(ctx, "ARCHIVED")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_RejectAccessRequest(t *testing.T) {
	t.Run("pending request is rejected", func(t *testing.T) {
		f := createTestAdminService(t)
		ctx := context.Background()
		f.inTx()

		req := &entity.AccessRequest{ID: "req-1", Status: entity.AccessRequestPending}
		f.accessRequestRepo.EXPECT().FindByID(ctx, "req-1").Return(req, nil)
		f.accessRequestRepo.EXPECT().Update(ctx, req).Return(nil)

		got, err := f.service.RejectAccessRequest(ctx, "req-1", " duplicado <spam> ")
		require.NoError(t, err)
		assert.Equal(t, entity.AccessRequestRejected, got.Status)
		assert.Equal(t, "duplicado spam", got.RejectionReason)
		require.NotNil(t, got.ProcessedAt)
		assert.Equal(t, fixedNow, *got.ProcessedAt)
	})

	t.Run("empty reason uses default", func(t *testing.T) {
		f := createTestAdminService(t)
		ctx := context.Background()
		f.inTx()

		req := &entity.AccessRequest{ID: "req-1", Status: entity.AccessRequestPending}
		f.accessRequestRepo.EXPECT().FindByID(ctx, "req-1").Return(req, nil)
		f.accessRequestRepo.EXPECT().Update(ctx, req).Return(nil)

		got, err := f.service.RejectAccessRequest(ctx, "req-1", "")
		require.NoError(t, err)
		assert.Equal(t, defaultRejectionReason, got.RejectionReason)
	})

	t.Run("processed request conflicts", func(t *testing.T) {
		f := createTestAdminService(t)
		ctx := context.Background()
		f.inTx()

		f.accessRequestRepo.EXPECT().FindByID(ctx, "req-1").
			Return(&entity.AccessRequest{ID: "req-1", Status: entity.AccessRequestApproved}, nil)

		_, err := f.service.RejectAccessRequest(ctx, "req-1", "late")
		assert.True(t, errors.Is(err, domainerrors.ErrAccessRequestProcessed))
		f.accessRequestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing request", func(t *testing.T) {
		f := createTestAdminService(t)
		ctx := context.Background()
		f.inTx()

		f.accessRequestRepo.EXPECT().FindByID(ctx, "nope").Return(nil, repository.ErrAccessRequestNotFound)

		_, err := f.service.RejectAccessRequest(ctx, "nope", "")
		assert.True(t, errors.Is(err, domainerrors.ErrAccessRequestNotFound))
	})

	t.Run("empty id", func(t *testing.T) {
		f := createTestAdminService(t)

		_, err := f.service.RejectAccessRequest(context.Background(), "", "")
		assert.True(t, errors.Is(err, domainerrors.ErrMissingResourceID))
	})
}

func TestAdminService_ResetPassword_ExistingCredential(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()
	f.inTx()

	var newPassword string
	f.identity.EXPECT().GetIdentityByEmail(ctx, "ana@example.cl").Return(&service.Identity{UID: "uid-1", Email: "ana@example.cl"}, nil)
	f.identity.EXPECT().UpdatePassword(ctx, "uid-1", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, pw string) { newPassword = pw }).
		Return(nil)

	user := &entity.User{ID: "uid-1", Status: entity.UserStatusActive}
	f.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(user, nil)
	f.userRepo.EXPECT().Update(ctx, user).Return(nil)

	latest := &entity.AccessRequest{ID: "req-9", Email: "ana@example.cl", Language: "en"}
	f.accessRequestRepo.EXPECT().
		List(ctx, repository.AccessRequestFilter{Email: "ana@example.cl", Limit: 1}).
		Return([]*entity.AccessRequest{latest}, nil)
	f.accessRequestRepo.EXPECT().Update(ctx, latest).Return(nil)

	var sent *service.Mail
	f.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).
		Run(func(_ context.Context, m *service.Mail) { sent = m }).
		Return(nil)

	out, err := f.service.ResetPassword(ctx, "Ana@Example.cl")
	require.NoError(t, err)

	assert.Equal(t, &usecase.ResetPasswordOutput{Email: "ana@example.cl", Created: false, Emailed: true}, out)
	assert.Len(t, newPassword, 12)
	assert.Equal(t, entity.UserStatusForcePasswordChange, user.Status)
	require.NotNil(t, latest.LastPasswordReset)
	assert.Equal(t, fixedNow, *latest.LastPasswordReset)

	require.NotNil(t, sent)
	assert.Equal(t, "Your access to pymerp.cl has been approved", sent.Subject)
	assert.Contains(t, sent.Text, newPassword)
}

func TestAdminService_ResetPassword_CreatesMissingCredential(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()
	f.inTx()

	f.identity.EXPECT().GetIdentityByEmail(ctx, "new@example.cl").Return(nil, service.ErrIdentityNotFound)
	f.identity.EXPECT().CreateIdentity(ctx, "new@example.cl", mock.AnythingOfType("string"), "").Return("uid-2", nil)
	f.userRepo.EXPECT().FindByID(ctx, "uid-2").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByEmail(ctx, "new@example.cl").Return(nil, repository.ErrUserNotFound)
	f.accessRequestRepo.EXPECT().List(ctx, mock.Anything).Return(nil, nil)
	f.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("sendgrid down"))

	out, err := f.service.ResetPassword(ctx, "new@example.cl")
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.False(t, out.Emailed)
	f.identity.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_ResetPassword_Errors(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()

	_, err := f.service.ResetPassword(ctx, "nope")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	f.identity.EXPECT().GetIdentityByEmail(ctx, "ana@example.cl").Return(nil, errors.New("quota exceeded"))
	_, err = f.service.ResetPassword(ctx, "ana@example.cl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAdminService_DeleteAccount(t *testing.T) {
	t.Run("deletes credential, user docs and company", func(t *testing.T) {
		f := createTestAdminService(t)
		ctx := context.Background()

		f.identity.EXPECT().GetIdentityByEmail(ctx, "ana@example.cl").Return(&service.Identity{UID: "uid-1"}, nil)
		f.identity.EXPECT().DeleteIdentity(ctx, "uid-1").Return(nil)
		f.userRepo.EXPECT().Delete(ctx, "uid-1").Return(nil)
		f.userRepo.EXPECT().Delete(ctx, "ana@example.cl").Return(nil)
		f.companyRepo.EXPECT().Delete(ctx, "company-1").Return(nil)
		f.cache.EXPECT().Invalidate(ctx).Return(nil)

		out, err := f.service.DeleteAccount(ctx, &usecase.DeleteAccountInput{
			Email:     "ana@example.cl",
			UserID:    "uid-1",
			CompanyID: "company-1",
		})
		require.NoError(t, err)
		assert.True(t, out.AuthDeleted)
		assert.Equal(t, []string{"users/uid-1", "users/ana@example.cl", "companies/company-1"}, out.DeletedPaths)
	})

	t.Run("missing credential is tolerated", func(t *testing.T) {
		f := createTestAdminService(t)
		ctx := context.Background()

		f.identity.EXPECT().GetIdentityByEmail(ctx, "ana@example.cl").Return(nil, service.ErrIdentityNotFound)
		f.userRepo.EXPECT().Delete(ctx, "legacy-id").Return(nil)
		f.userRepo.EXPECT().Delete(ctx, "ana@example.cl").Return(nil)

		out, err := f.service.DeleteAccount(ctx, &usecase.DeleteAccountInput{Email: "ana@example.cl", UserID: "legacy-id"})
		require.NoError(t, err)
		assert.False(t, out.AuthDeleted)
		assert.Equal(t, []string{"users/legacy-id", "users/ana@example.cl"}, out.DeletedPaths)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("credential lookup failure aborts", func(t *testing.T) {
		f := createTestAdminService(t)
		ctx := context.Background()

		f.identity.EXPECT().GetIdentityByEmail(ctx, "ana@example.cl").Return(nil, errors.New("unavailable"))

		_, err := f.service.DeleteAccount(ctx, &usecase.DeleteAccountInput{Email: "ana@example.cl"})
		require.Error(t, err)
		f.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("email required", func(t *testing.T) {
		f := createTestAdminService(t)

		_, err := f.service.DeleteAccount(context.Background(), &usecase.DeleteAccountInput{})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestAdminService_SyncDirectory(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()

	moved := &entity.Company{ID: "c1", Location: &entity.GeoPoint{Lat: -33.4489, Lng: -70.6693}}
	current := &entity.Company{ID: "c2", Location: &entity.GeoPoint{Lat: -36.8270, Lng: -73.0503}}
	current.Geohash = current.ComputeGeohash()
	noLocation := &entity.Company{ID: "c3"}
	failing := &entity.Company{ID: "c4", Location: &entity.GeoPoint{Lat: -41.4693, Lng: -72.9424}}

	f.companyRepo.EXPECT().ListPublic(ctx).Return([]*entity.Company{moved, current, noLocation, failing}, nil)
	f.companyRepo.EXPECT().UpdateGeohash(ctx, "c1", moved.ComputeGeohash()).Return(nil)
	f.companyRepo.EXPECT().UpdateGeohash(ctx, "c4", failing.ComputeGeohash()).Return(errors.New("write failed"))
	f.cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

	out, err := f.service.SyncDirectory(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.SyncDirectoryOutput{Updated: 1, Skipped: 3}, out)
	assert.Len(t, moved.ComputeGeohash(), entity.GeohashPrecision)
}
