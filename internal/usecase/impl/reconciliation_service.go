package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pymerp/config"
	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/domain/service"
	"pymerp/internal/usecase"
	"pymerp/internal/util"
)

const (
	defaultStaleAfter = 72 * time.Hour
	staleReason       = "stale"
	staleSweepLimit   = 500
)

type reconciliationService struct {
	accessRequestRepo repository.AccessRequestRepository
	identity          service.IdentityProvider
	mailer            service.Mailer
	app               config.AppConfig
	passwordLength    int
	staleAfter        time.Duration
	now               func() time.Time
	logger            *slog.Logger
}

// ReconciliationServiceParams holds dependencies for ReconciliationService, injected by Fx.
type ReconciliationServiceParams struct {
	fx.In

	AccessRequestRepo repository.AccessRequestRepository
	Identity          service.IdentityProvider
	Mailer            service.Mailer
	Config            *config.Config
	Logger            *slog.Logger
}

// NewReconciliationService creates the stale access request sweeper.
func NewReconciliationService(params ReconciliationServiceParams) usecase.ReconciliationUsecase {
	srv := &reconciliationService{
		accessRequestRepo: params.AccessRequestRepo,
		identity:          params.Identity,
		mailer:            params.Mailer,
		passwordLength:    util.DefaultPasswordLength,
		staleAfter:        defaultStaleAfter,
		now:               time.Now,
		logger:            params.Logger,
	}

	if cfg := params.Config; cfg != nil {
		srv.app = cfg.App
		if cfg.Provisioning != nil {
			if cfg.Provisioning.StaleAfter > 0 {
				srv.staleAfter = cfg.Provisioning.StaleAfter
			}
			if cfg.Provisioning.PasswordLength > 0 {
				srv.passwordLength = cfg.Provisioning.PasswordLength
			}
		}
	}

	return srv
}

func (srv *reconciliationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RejectStaleRequests rejects at most one batch of stale requests per call. A request
// that fails to update is logged and left for the next sweep.
func (srv *reconciliationService) RejectStaleRequests(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-srv.staleAfter)

	stale, err := srv.accessRequestRepo.List(ctx, repository.AccessRequestFilter{
		Status:        entity.AccessRequestPending,
		CreatedBefore: cutoff,
		Limit:         staleSweepLimit,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list stale access requests")
	}

	rejected := 0
	for _, req := range stale {
		if err := ctx.Err(); err != nil {
			return rejected, err
		}
		if !req.IsPending() {
			continue
		}

		req.Reject(now, staleReason)
		if err := srv.accessRequestRepo.Update(ctx, req); err != nil {
			srv.log(ctx).Error("Failed to reject stale access request",
				slog.String("requestID", req.ID),
				slog.Any("error", err),
			)

			continue
		}
		rejected++

		srv.log(ctx).Info("Stale access request rejected",
			slog.String("requestID", req.ID),
			slog.String("email", req.Email),
			slog.Time("createdAt", req.CreatedAt),
		)
	}

	return rejected, nil
}

// CompleteProvisioning repairs the advisory steps listed in the event. Every step is
// attempted even when an earlier one fails.
func (srv *reconciliationService) CompleteProvisioning(
	ctx context.Context,
	event *service.ProvisioningIncompleteEvent,
) (*usecase.CompleteProvisioningOutput, error) {
	if event == nil || event.RequestID == "" || event.UserID == "" || event.CompanyID == "" {
		return nil, domainerrors.NewValidationError(domainerrors.ErrValidationFailed,
			domainerrors.FieldError{Field: "event", Reason: "request_id, user_id and company_id are required"})
	}

	req, err := srv.accessRequestRepo.FindByID(ctx, event.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrAccessRequestNotFound) {
			srv.log(ctx).Warn("Incomplete provisioning for unknown request", slog.String("requestID", event.RequestID))

			return &usecase.CompleteProvisioningOutput{Skipped: event.FailedSteps}, nil
		}

		return nil, errors.Wrap(err, "failed to load access request")
	}

	out := &usecase.CompleteProvisioningOutput{}
	for _, step := range event.FailedSteps {
		repair, ok := srv.repairs()[step]
		if !ok {
			out.Skipped = append(out.Skipped, step)

			continue
		}

		if err := repair(ctx, event, req); err != nil {
			srv.log(ctx).Error("Provisioning repair failed",
				slog.String("step", step),
				slog.String("requestID", event.RequestID),
				slog.Any("error", err),
			)
			out.Failed = append(out.Failed, step)

			continue
		}
		out.Repaired = append(out.Repaired, step)
	}

	srv.log(ctx).Info("Provisioning reconciled",
		slog.String("requestID", event.RequestID),
		slog.Any("repaired", out.Repaired),
		slog.Any("failed", out.Failed),
		slog.Any("skipped", out.Skipped),
	)

	return out, nil
}

type repairFunc func(ctx context.Context, event *service.ProvisioningIncompleteEvent, req *entity.AccessRequest) error

func (srv *reconciliationService) repairs() map[string]repairFunc {
	return map[string]repairFunc{
		stepSetCompanyClaim: srv.repairCompanyClaim,
		stepApproveRequest:  srv.repairApproval,
		stepNotifyOperator:  srv.repairOperatorNotice,
		stepSendCredentials: srv.repairCredentials,
	}
}

func (srv *reconciliationService) repairCompanyClaim(ctx context.Context, event *service.ProvisioningIncompleteEvent, _ *entity.AccessRequest) error {
	return errors.Wrap(srv.identity.SetCompanyClaim(ctx, event.UserID, event.CompanyID), "failed to set company claim")
}

// repairApproval approves the request unless an operator or the sweeper already
// moved it out of PENDING.
func (srv *reconciliationService) repairApproval(ctx context.Context, _ *service.ProvisioningIncompleteEvent, req *entity.AccessRequest) error {
	if !req.IsPending() {
		return nil
	}
	req.Approve(srv.now())

	return errors.Wrap(srv.accessRequestRepo.Update(ctx, req), "failed to approve access request")
}

func (srv *reconciliationService) repairOperatorNotice(ctx context.Context, _ *service.ProvisioningIncompleteEvent, req *entity.AccessRequest) error {
	if srv.app.AdminEmail == "" {
		return errors.New("admin email not configured")
	}

	mail, err := buildOperatorMail(srv.app.AdminEmail, req, req.CreatedAt)
	if err != nil {
		return err
	}

	return errors.Wrap(srv.mailer.Send(ctx, mail), "failed to notify operator")
}

// repairCredentials issues a new password because the generated one was never stored.
func (srv *reconciliationService) repairCredentials(ctx context.Context, event *service.ProvisioningIncompleteEvent, req *entity.AccessRequest) error {
	password, err := util.GenerateRandomPassword(srv.passwordLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate password")
	}

	if err := srv.identity.UpdatePassword(ctx, event.UserID, password); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	mail, err := buildCredentialsMail(req.Email, password, srv.app.LoginURL, req.Language)
	if err != nil {
		return err
	}

	return errors.Wrap(srv.mailer.Send(ctx, mail), "failed to send credentials")
}
