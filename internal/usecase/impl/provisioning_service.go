// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
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

// Step names reported in logs and ProvisioningIncomplete events.
const (
	stepCreateCredential = "create_credential"
	stepCreateUser       = "create_user"
	stepCreateCompany    = "create_company"
	stepLinkCompany      = "link_company"
	stepSetCompanyClaim  = "set_company_claim"
	stepApproveRequest   = "approve_request"
	stepNotifyOperator   = "notify_operator"
	stepSendCredentials  = "send_credentials"
)

// provisioningState is threaded through the steps of a single run.
type provisioningState struct {
	request  *entity.AccessRequest
	password string
	uid      string
	user     *entity.User
	company  *entity.Company
}

// provisioningStep is one unit of the provisioning saga. Critical steps abort the
// run and trigger compensation; advisory failures are recorded and the run continues.
type provisioningStep struct {
	name       string
	critical   bool
	run        func(ctx context.Context, st *provisioningState) error
	compensate func(ctx context.Context, st *provisioningState) error
}

type provisioningService struct {
	accessRequestRepo repository.AccessRequestRepository
	userRepo          repository.UserRepository
	companyRepo       repository.CompanyRepository
	identity          service.IdentityProvider
	mailer            service.Mailer
	publisher         service.EventPublisher
	app               config.AppConfig
	passwordLength    int
	now               func() time.Time
	logger            *slog.Logger
}

// ProvisioningServiceParams holds dependencies for ProvisioningService, injected by Fx.
type ProvisioningServiceParams struct {
	fx.In

	AccessRequestRepo repository.AccessRequestRepository
	UserRepo          repository.UserRepository
	CompanyRepo       repository.CompanyRepository
	Identity          service.IdentityProvider
	Mailer            service.Mailer
	Publisher         service.EventPublisher `optional:"true"`
	Config            *config.Config
	Logger            *slog.Logger
}

// NewProvisioningService creates the access request provisioning workflow.
func NewProvisioningService(params ProvisioningServiceParams) usecase.ProvisioningUsecase {
	passwordLength := util.DefaultPasswordLength
	var app config.AppConfig
	if params.Config != nil {
		app = params.Config.App
		if params.Config.Provisioning != nil && params.Config.Provisioning.PasswordLength > 0 {
			passwordLength = params.Config.Provisioning.PasswordLength
		}
	}

	return &provisioningService{
		accessRequestRepo: params.AccessRequestRepo,
		userRepo:          params.UserRepo,
		companyRepo:       params.CompanyRepo,
		identity:          params.Identity,
		mailer:            params.Mailer,
		publisher:         params.Publisher,
		app:               app,
		passwordLength:    passwordLength,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *provisioningService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestAccess provisions a tenant for a public signup. The request record is created
// first; credential, user and company are then created as critical steps and undone in
// reverse order if any of them fails. Claim, approval and emails are advisory.
func (srv *provisioningService) RequestAccess(ctx context.Context, input *usecase.RequestAccessInput) (*usecase.RequestAccessOutput, error) {
	clean, err := sanitizeRequestAccess(input)
	if err != nil {
		srv.log(ctx).Warn("Rejected access request input", slog.Any("error", err))

		return nil, err
	}

	if err := srv.ensureEmailAvailable(ctx, clean.Email); err != nil {
		return nil, err
	}

	req := &entity.AccessRequest{
		FullName:     clean.FullName,
		Email:        clean.Email,
		BusinessName: clean.BusinessName,
		WhatsApp:     clean.WhatsApp,
		Plan:         entity.ParsePlan(clean.Plan),
		Status:       entity.AccessRequestPending,
		Language:     clean.Language,
		CreatedAt:    srv.now(),
	}
	if err := srv.accessRequestRepo.Create(ctx, req); err != nil {
		srv.log(ctx).Error("Failed to store access request", slog.String("email", clean.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create access request")
	}

	st := &provisioningState{request: req}
	failed, err := srv.runSteps(ctx, st, srv.steps())
	if err != nil {
		return nil, err
	}

	if len(failed) > 0 {
		srv.publishIncomplete(ctx, st, failed)
	}

	srv.log(ctx).Info("Access request provisioned",
		slog.String("requestID", req.ID),
		slog.String("userID", st.uid),
		slog.String("companyID", st.company.ID),
		slog.Any("incomplete", failed),
	)

	return &usecase.RequestAccessOutput{
		RequestID:  req.ID,
		UserID:     st.uid,
		CompanyID:  st.company.ID,
		Incomplete: failed,
	}, nil
}

// ensureEmailAvailable aborts when the email already belongs to a user. Lookup errors
// are logged and ignored; the credential step rejects duplicates anyway.
func (srv *provisioningService) ensureEmailAvailable(ctx context.Context, email string) error {
	existing, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		srv.log(ctx).Warn("Access request for existing user", slog.String("email", email))

		return domainerrors.ErrUserAlreadyExists.WrapMessage("user record exists for email")
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Warn("User lookup failed, continuing", slog.String("email", email), slog.Any("error", err))
	}

	identity, err := srv.identity.GetIdentityByEmail(ctx, email)
	switch {
	case err == nil && identity != nil:
		srv.log(ctx).Warn("Access request for existing credential", slog.String("email", email))

		return domainerrors.ErrUserAlreadyExists.WrapMessage("credential exists for email")
	case err != nil && !errors.Is(err, service.ErrIdentityNotFound):
		srv.log(ctx).Warn("Credential lookup failed, continuing", slog.String("email", email), slog.Any("error", err))
	}

	return nil
}

func (srv *provisioningService) steps() []provisioningStep {
	return []provisioningStep{
		{name: stepCreateCredential, critical: true, run: srv.createCredential, compensate: srv.deleteCredential},
		{name: stepCreateUser, critical: true, run: srv.createUser, compensate: srv.deleteUser},
		{name: stepCreateCompany, critical: true, run: srv.createCompany, compensate: srv.deleteCompany},
		{name: stepLinkCompany, critical: true, run: srv.linkCompany},
		{name: stepSetCompanyClaim, run: srv.setCompanyClaim},
		{name: stepApproveRequest, run: srv.approveRequest},
		{name: stepNotifyOperator, run: srv.notifyOperator},
		{name: stepSendCredentials, run: srv.sendCredentials},
	}
}

// runSteps executes the saga and returns the names of failed advisory steps.
func (srv *provisioningService) runSteps(ctx context.Context, st *provisioningState, steps []provisioningStep) ([]string, error) {
	var failed []string
	completed := make([]provisioningStep, 0, len(steps))

	for _, step := range steps {
		err := step.run(ctx, st)
		if err == nil {
			completed = append(completed, step)

			continue
		}

		if !step.critical {
			srv.log(ctx).Warn("Advisory provisioning step failed",
				slog.String("step", step.name),
				slog.String("requestID", st.request.ID),
				slog.Any("error", err),
			)
			failed = append(failed, step.name)

			continue
		}

		srv.log(ctx).Error("Critical provisioning step failed",
			slog.String("step", step.name),
			slog.String("requestID", st.request.ID),
			slog.Any("error", err),
		)
		srv.rollback(ctx, st, completed, step.name)

		return nil, domainerrors.ErrProvisioningFailed.WrapMessage(step.name + ": " + err.Error())
	}

	return failed, nil
}

// rollback compensates completed critical steps in reverse order and rejects the
// request. It keeps going after individual failures and ignores caller cancellation.
func (srv *provisioningService) rollback(ctx context.Context, st *provisioningState, completed []provisioningStep, failedStep string) {
	ctx = context.WithoutCancel(ctx)

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx, st); err != nil {
			srv.log(ctx).Error("Compensation failed, manual cleanup required",
				slog.String("step", step.name),
				slog.String("requestID", st.request.ID),
				slog.Any("error", err),
			)
		}
	}

	st.request.Reject(srv.now(), "provisioning failed at "+failedStep)
	if err := srv.accessRequestRepo.Update(ctx, st.request); err != nil {
		srv.log(ctx).Error("Failed to mark access request rejected",
			slog.String("requestID", st.request.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *provisioningService) createCredential(ctx context.Context, st *provisioningState) error {
	password, err := util.GenerateRandomPassword(srv.passwordLength)
	if err != nil {
		return err
	}

	uid, err := srv.identity.CreateIdentity(ctx, st.request.Email, password, st.request.FullName)
	if err != nil {
		return errors.Wrap(err, "failed to create credential")
	}
	st.password = password
	st.uid = uid

	return nil
}

func (srv *provisioningService) deleteCredential(ctx context.Context, st *provisioningState) error {
	err := srv.identity.DeleteIdentity(ctx, st.uid)
	if errors.Is(err, service.ErrIdentityNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to delete credential")
}

func (srv *provisioningService) createUser(ctx context.Context, st *provisioningState) error {
	now := srv.now()
	user := &entity.User{
		ID:        st.uid,
		Email:     st.request.Email,
		Status:    entity.UserStatusForcePasswordChange,
		Role:      entity.RoleEntrepreneur,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	st.user = user

	return nil
}

func (srv *provisioningService) deleteUser(ctx context.Context, st *provisioningState) error {
	return errors.Wrap(srv.userRepo.Delete(ctx, st.uid), "failed to delete user")
}

func (srv *provisioningService) createCompany(ctx context.Context, st *provisioningState) error {
	now := srv.now()
	company := &entity.Company{
		OwnerUserID:      st.uid,
		Name:             st.request.BusinessName,
		WhatsApp:         st.request.WhatsApp,
		Slug:             companySlug(st.request.BusinessName, st.request.Email),
		SetupCompleted:   false,
		SubscriptionPlan: st.request.Plan,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := srv.companyRepo.Create(ctx, company); err != nil {
		return errors.Wrap(err, "failed to create company")
	}
	st.company = company

	return nil
}

func (srv *provisioningService) deleteCompany(ctx context.Context, st *provisioningState) error {
	return errors.Wrap(srv.companyRepo.Delete(ctx, st.company.ID), "failed to delete company")
}

func (srv *provisioningService) linkCompany(ctx context.Context, st *provisioningState) error {
	st.user.CompanyID = st.company.ID
	st.user.UpdatedAt = srv.now()
	if err := srv.userRepo.Update(ctx, st.user); err != nil {
		st.user.CompanyID = ""

		return errors.Wrap(err, "failed to link company to user")
	}

	return nil
}

func (srv *provisioningService) setCompanyClaim(ctx context.Context, st *provisioningState) error {
	return errors.Wrap(srv.identity.SetCompanyClaim(ctx, st.uid, st.company.ID), "failed to set company claim")
}

func (srv *provisioningService) approveRequest(ctx context.Context, st *provisioningState) error {
	st.request.Approve(srv.now())

	return errors.Wrap(srv.accessRequestRepo.Update(ctx, st.request), "failed to approve access request")
}

func (srv *provisioningService) notifyOperator(ctx context.Context, st *provisioningState) error {
	if srv.app.AdminEmail == "" {
		return errors.New("admin email not configured")
	}

	mail, err := buildOperatorMail(srv.app.AdminEmail, st.request, st.request.CreatedAt)
	if err != nil {
		return err
	}

	return errors.Wrap(srv.mailer.Send(ctx, mail), "failed to notify operator")
}

func (srv *provisioningService) sendCredentials(ctx context.Context, st *provisioningState) error {
	mail, err := buildCredentialsMail(st.request.Email, st.password, srv.app.LoginURL, st.request.Language)
	if err != nil {
		return err
	}

	return errors.Wrap(srv.mailer.Send(ctx, mail), "failed to send credentials")
}

func (srv *provisioningService) publishIncomplete(ctx context.Context, st *provisioningState, failed []string) {
	if srv.publisher == nil {
		srv.log(ctx).Warn("No event publisher, incomplete provisioning only logged",
			slog.String("requestID", st.request.ID),
			slog.Any("failedSteps", failed),
		)

		return
	}

	event := &service.ProvisioningIncompleteEvent{
		RequestID:   st.request.ID,
		TraceID:     deliverycontext.GetRequestIDFromContext(ctx),
		Email:       st.request.Email,
		UserID:      st.uid,
		CompanyID:   st.company.ID,
		FailedSteps: failed,
		OccurredAt:  srv.now(),
	}
	if err := srv.publisher.PublishProvisioningIncomplete(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish incomplete provisioning event",
			slog.String("requestID", st.request.ID),
			slog.Any("failedSteps", failed),
			slog.Any("error", err),
		)
	}
}

// companySlug derives the slug from the business name, or from the email local part
// when the name has no usable characters.
func companySlug(businessName, email string) string {
	if slug := util.GenerateSlug(businessName); slug != "" {
		return slug
	}
	local, _, _ := strings.Cut(email, "@")

	return util.GenerateSlug(local)
}
