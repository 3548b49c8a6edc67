// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pymerp/config"
	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/lifecycle"
	"pymerp/internal/usecase"
)

const (
	defaultSweepInterval = time.Hour
	staleSweepJobName    = "stale-access-request-sweep"
)

// Reconciler periodically rejects stale access requests.
type Reconciler struct {
	scheduler      gocron.Scheduler
	reconciliation usecase.ReconciliationUsecase
	interval       time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// ReconcilerParams holds dependencies for Reconciler, injected by Fx
type ReconcilerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Reconciliation usecase.ReconciliationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewReconciler creates the scheduler and registers the sweep job.
func NewReconciler(params ReconcilerParams) (*Reconciler, error) {
	interval := defaultSweepInterval
	if params.Config.Provisioning != nil && params.Config.Provisioning.SweepInterval > 0 {
		interval = params.Config.Provisioning.SweepInterval
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	r := &Reconciler{
		scheduler:      scheduler,
		reconciliation: params.Reconciliation,
		interval:       interval,
		now:            time.Now,
		logger:         params.Logger,
	}

	if _, err := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(r.sweep),
		gocron.WithName(staleSweepJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return nil, errors.Wrap(err, "failed to register sweep job")
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				r.Start()

				return nil
			},
			OnStop: func(_ context.Context) error {
				return r.Stop()
			},
		})
	}

	return r, nil
}

// Start begins running scheduled jobs.
func (r *Reconciler) Start() {
	r.logger.Info("Starting reconciliation scheduler", slog.Duration("interval", r.interval))
	r.scheduler.Start()
}

// Stop waits for running jobs and shuts the scheduler down.
func (r *Reconciler) Stop() error {
	r.logger.Info("Stopping reconciliation scheduler")

	return errors.WithStack(r.scheduler.Shutdown())
}

// sweep runs one bounded pass. Each run gets its own id for log correlation.
func (r *Reconciler) sweep() {
	runID := uuid.NewString()
	logger := r.logger.With(slog.String("job", staleSweepJobName), slog.String("run_id", runID))

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout*6)
	defer cancel()
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, runID), logger)

	started := r.now()
	rejected, err := r.reconciliation.RejectStaleRequests(ctx, started.UTC())
	if err != nil {
		logger.Error("Stale access request sweep failed", slog.Int("rejected", rejected), slog.Any("error", err))

		return
	}

	logger.Info("Stale access request sweep finished",
		slog.Int("rejected", rejected),
		slog.Duration("elapsed", time.Since(started)),
	)
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewReconciler),
	fx.Invoke(func(*Reconciler) {}),
)
