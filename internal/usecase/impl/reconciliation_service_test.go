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
)

func TestReconciliationService_RejectStaleRequests(t *testing.T) {
	repo := mockRepo.NewMockAccessRequestRepository(t)
	srv := NewReconciliationService(ReconciliationServiceParams{
		AccessRequestRepo: repo,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})
	ctx := context.Background()

	first := &entity.AccessRequest{ID: "r1", Status: entity.AccessRequestPending}
	failing := &entity.AccessRequest{ID: "r2", Status: entity.AccessRequestPending}
	raced := &entity.AccessRequest{ID: "r3", Status: entity.AccessRequestApproved}

	repo.EXPECT().List(ctx, repository.AccessRequestFilter{
		Status:        entity.AccessRequestPending,
		CreatedBefore: fixedNow.Add(-newTestConfig().Provisioning.StaleAfter),
		Limit:         staleSweepLimit,
	}).Return([]*entity.AccessRequest{first, failing, raced}, nil)
	repo.EXPECT().Update(ctx, first).Return(nil)
	repo.EXPECT().Update(ctx, failing).Return(errors.New("contention"))

	n, err := srv.RejectStaleRequests(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, entity.AccessRequestRejected, first.Status)
	assert.Equal(t, "stale", first.RejectionReason)
	assert.Equal(t, entity.AccessRequestApproved, raced.Status)
}

func TestReconciliationService_ListFailure(t *testing.T) {
	repo := mockRepo.NewMockAccessRequestRepository(t)
	srv := NewReconciliationService(ReconciliationServiceParams{AccessRequestRepo: repo, Logger: newDiscardLogger()})

	repo.EXPECT().List(context.Background(), repository.AccessRequestFilter{
		Status:        entity.AccessRequestPending,
		CreatedBefore: fixedNow.Add(-defaultStaleAfter),
		Limit:         staleSweepLimit,
	}).Return(nil, errors.New("index missing"))

	_, err := srv.RejectStaleRequests(context.Background(), fixedNow)
	require.Error(t, err)
}

type reconciliationFixtures struct {
	service  *reconciliationService
	repo     *mockRepo.MockAccessRequestRepository
	identity *mockSvc.MockIdentityProvider
	mailer   *mockSvc.MockMailer
}

func createTestReconciliationService(t *testing.T) reconciliationFixtures {
	f := reconciliationFixtures{
		repo:     mockRepo.NewMockAccessRequestRepository(t),
		identity: mockSvc.NewMockIdentityProvider(t),
		mailer:   mockSvc.NewMockMailer(t),
	}

	srv := NewReconciliationService(ReconciliationServiceParams{
		AccessRequestRepo: f.repo,
		Identity:          f.identity,
		Mailer:            f.mailer,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	}).(*reconciliationService)
	srv.now = func() time.Time { return fixedNow }
	f.service = srv

	return f
}

func incompleteEvent(steps ...string) *service.ProvisioningIncompleteEvent {
	return &service.ProvisioningIncompleteEvent{
		RequestID:   "req-1",
		Email:       "ana@example.cl",
		UserID:      "uid-1",
		CompanyID:   "company-1",
		FailedSteps: steps,
	}
}

func TestReconciliationService_CompleteProvisioning(t *testing.T) {
	t.Run("every advisory step repaired", func(t *testing.T) {
		f := createTestReconciliationService(t)
		ctx := context.Background()

		req := &entity.AccessRequest{ID: "req-1", Email: "ana@example.cl", Status: entity.AccessRequestPending, Language: "es"}
		f.repo.EXPECT().FindByID(ctx, "req-1").Return(req, nil)
		f.identity.EXPECT().SetCompanyClaim(ctx, "uid-1", "company-1").Return(nil)
		f.repo.EXPECT().Update(ctx, req).Return(nil)
		f.identity.EXPECT().UpdatePassword(ctx, "uid-1", mock.AnythingOfType("string")).Return(nil)

		var sent []*service.Mail
		f.mailer.EXPECT().Send(ctx, mock.Anything).
			Run(func(_ context.Context, m *service.Mail) { sent = append(sent, m) }).
			Return(nil).Times(2)

		out, err := f.service.CompleteProvisioning(ctx, incompleteEvent(
			stepSetCompanyClaim, stepApproveRequest, stepNotifyOperator, stepSendCredentials, "warm_cache"))
		require.NoError(t, err)
		assert.Equal(t, []string{stepSetCompanyClaim, stepApproveRequest, stepNotifyOperator, stepSendCredentials}, out.Repaired)
		assert.Empty(t, out.Failed)
		assert.Equal(t, []string{"warm_cache"}, out.Skipped)

		assert.Equal(t, entity.AccessRequestApproved, req.Status)
		require.Len(t, sent, 2)
		assert.Equal(t, "ops@pymerp.cl", sent[0].To)
		assert.Equal(t, "ana@example.cl", sent[1].To)
	})

	t.Run("failures are reported per step", func(t *testing.T) {
		f := createTestReconciliationService(t)
		ctx := context.Background()

		req := &entity.AccessRequest{ID: "req-1", Status: entity.AccessRequestRejected}
		f.repo.EXPECT().FindByID(ctx, "req-1").Return(req, nil)
		f.identity.EXPECT().SetCompanyClaim(ctx, "uid-1", "company-1").Return(errors.New("quota"))

		out, err := f.service.CompleteProvisioning(ctx, incompleteEvent(stepSetCompanyClaim, stepApproveRequest))
		require.NoError(t, err)
		assert.Equal(t, []string{stepSetCompanyClaim}, out.Failed)
		assert.Equal(t, []string{stepApproveRequest}, out.Repaired)
		assert.Equal(t, entity.AccessRequestRejected, req.Status)
	})

	t.Run("unknown request is skipped", func(t *testing.T) {
		f := createTestReconciliationService(t)
		ctx := context.Background()

		f.repo.EXPECT().FindByID(ctx, "req-1").Return(nil, repository.ErrAccessRequestNotFound)

		out, err := f.service.CompleteProvisioning(ctx, incompleteEvent(stepApproveRequest))
		require.NoError(t, err)
		assert.Equal(t, []string{stepApproveRequest}, out.Skipped)
	})

	t.Run("incomplete event", func(t *testing.T) {
		f := createTestReconciliationService(t)

		_, err := f.service.CompleteProvisioning(context.Background(), &service.ProvisioningIncompleteEvent{RequestID: "req-1"})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
