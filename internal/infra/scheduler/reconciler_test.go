package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pymerp/config"
	deliverycontext "pymerp/internal/delivery/context"
	mockUsecase "pymerp/internal/mocks/usecase"
)

func newTestReconciler(t *testing.T, uc *mockUsecase.MockReconciliationUsecase) *Reconciler {
	t.Helper()

	r, err := NewReconciler(ReconcilerParams{
		Reconciliation: uc,
		Config:         &config.Config{Provisioning: &config.ProvisioningConfig{SweepInterval: time.Minute}},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.scheduler.Shutdown() })

	return r
}

func TestReconciler_Sweep(t *testing.T) {
	uc := mockUsecase.NewMockReconciliationUsecase(t)
	r := newTestReconciler(t, uc)

	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	uc.EXPECT().RejectStaleRequests(mock.Anything, now).
		Run(func(ctx context.Context, _ time.Time) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))
		}).
		Return(3, nil)

	r.sweep()
}

func TestReconciler_SweepFailureIsLogged(t *testing.T) {
	uc := mockUsecase.NewMockReconciliationUsecase(t)
	r := newTestReconciler(t, uc)

	uc.EXPECT().RejectStaleRequests(mock.Anything, mock.Anything).Return(1, errors.New("firestore unavailable"))

	assert.NotPanics(t, r.sweep)
}

func TestNewReconciler_Interval(t *testing.T) {
	uc := mockUsecase.NewMockReconciliationUsecase(t)
	r := newTestReconciler(t, uc)
	assert.Equal(t, time.Minute, r.interval)

	jobs := r.scheduler.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, staleSweepJobName, jobs[0].Name())

	r2, err := NewReconciler(ReconcilerParams{
		Reconciliation: uc,
		Config:         &config.Config{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	defer r2.scheduler.Shutdown()
	assert.Equal(t, defaultSweepInterval, r2.interval)
}
