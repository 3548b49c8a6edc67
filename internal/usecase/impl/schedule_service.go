package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/domain/service"
	"pymerp/internal/usecase"
)

type scheduleService struct {
	userRepo     repository.UserRepository
	companyRepo  repository.CompanyRepository
	resourceRepo repository.ResourceRepository
	cache        service.DirectoryCache
	now          func() time.Time
	logger       *slog.Logger
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	CompanyRepo  repository.CompanyRepository
	ResourceRepo repository.ResourceRepository
	Cache        service.DirectoryCache `optional:"true"`
	Logger       *slog.Logger
}

// NewScheduleService creates the schedule service.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		userRepo:     params.UserRepo,
		companyRepo:  params.CompanyRepo,
		resourceRepo: params.ResourceRepo,
		cache:        params.Cache,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetResourceSchedule replaces the schedule of a service or, when no service is named,
// a professional. The resource must belong to the caller's company.
func (srv *scheduleService) SetResourceSchedule(ctx context.Context, session *entity.Session, input *usecase.SetResourceScheduleInput) (*usecase.SetResourceScheduleOutput, error) {
	kind, id := entity.ResourceService, input.ServiceID
	if id == "" {
		kind, id = entity.ResourceProfessional, input.ProfessionalID
	}
	if id == "" {
		return nil, domainerrors.ErrMissingResourceID
	}

	schedule, err := parseScheduleInput(input.Schedule)
	if err != nil {
		return nil, err
	}

	companyID, err := srv.callerCompany(ctx, session)
	if err != nil {
		return nil, err
	}

	resource, err := srv.resourceRepo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage(string(kind) + " " + id)
		}

		return nil, errors.Wrapf(err, "failed to load %s", kind)
	}
	if resource.CompanyID != companyID {
		srv.log(ctx).Warn("Schedule update on foreign resource",
			slog.String("uid", session.UID),
			slog.String("kind", string(kind)),
			slog.String("resourceID", id),
		)

		return nil, domainerrors.ErrResourceOwnership
	}

	if err := srv.resourceRepo.UpdateSchedule(ctx, kind, id, schedule, srv.now()); err != nil {
		return nil, errors.Wrapf(err, "failed to update %s schedule", kind)
	}

	srv.log(ctx).Info("Resource schedule updated",
		slog.String("kind", string(kind)),
		slog.String("resourceID", id),
		slog.Any("days", schedule.PopulatedDays()),
	)

	return &usecase.SetResourceScheduleOutput{Kind: kind, ResourceID: id}, nil
}

// SetCompanySchedule replaces the business hours of the caller's company.
func (srv *scheduleService) SetCompanySchedule(ctx context.Context, session *entity.Session, raw any) error {
	schedule, err := parseScheduleInput(raw)
	if err != nil {
		return err
	}

	companyID, err := srv.callerCompany(ctx, session)
	if err != nil {
		return err
	}

	if err := srv.companyRepo.UpdateSchedule(ctx, companyID, schedule, srv.now()); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return domainerrors.ErrCompanyNotFound
		}

		return errors.Wrap(err, "failed to update company schedule")
	}

	if srv.cache != nil {
		if err := srv.cache.Invalidate(ctx); err != nil {
			srv.log(ctx).Warn("Failed to invalidate directory cache", slog.Any("error", err))
		}
	}

	return nil
}

// callerCompany resolves the caller's company from the user record, not from token claims.
func (srv *scheduleService) callerCompany(ctx context.Context, session *entity.Session) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, session.UID)
	if errors.Is(err, repository.ErrUserNotFound) && session.Email != "" {
		user, err = srv.userRepo.FindByEmail(ctx, session.Email)
	}
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return "", domainerrors.ErrUserWithoutCompany
	case err != nil:
		return "", errors.Wrap(err, "failed to load caller")
	case !user.HasCompany():
		return "", domainerrors.ErrUserWithoutCompany
	}

	return user.CompanyID, nil
}

// parseScheduleInput maps schedule diagnostics onto a validation error.
func parseScheduleInput(raw any) (entity.Schedule, error) {
	schedule, err := entity.ParseSchedule(raw)
	if err == nil {
		return schedule, nil
	}

	field := domainerrors.FieldError{Field: "schedule", Reason: err.Error()}
	if schedErr, ok := errors.Cause(err).(*entity.ScheduleError); ok {
		field = domainerrors.FieldError{Field: schedErr.Path(), Reason: schedErr.Reason}
	}

	return nil, domainerrors.NewValidationError(domainerrors.ErrInvalidSchedule, field)
}
