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
	maxRejectionReasonLength = 500
	defaultRejectionReason   = "rechazada por el administrador"
)

type adminService struct {
	accessRequestRepo repository.AccessRequestRepository
	userRepo          repository.UserRepository
	companyRepo       repository.CompanyRepository
	txManager         repository.TransactionManager
	identity          service.IdentityProvider
	mailer            service.Mailer
	cache             service.DirectoryCache
	app               config.AppConfig
	passwordLength    int
	now               func() time.Time
	logger            *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AccessRequestRepo repository.AccessRequestRepository
	UserRepo          repository.UserRepository
	CompanyRepo       repository.CompanyRepository
	TxManager         repository.TransactionManager
	Identity          service.IdentityProvider
	Mailer            service.Mailer
	Cache             service.DirectoryCache `optional:"true"`
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAdminService creates the operator-facing service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	passwordLength := util.DefaultPasswordLength
	var app config.AppConfig
	if params.Config != nil {
		app = params.Config.App
		if params.Config.Provisioning != nil && params.Config.Provisioning.PasswordLength > 0 {
			passwordLength = params.Config.Provisioning.PasswordLength
		}
	}

	return &adminService{
		accessRequestRepo: params.AccessRequestRepo,
		userRepo:          params.UserRepo,
		companyRepo:       params.CompanyRepo,
		txManager:         params.TxManager,
		identity:          params.Identity,
		mailer:            params.Mailer,
		cache:             params.Cache,
		app:               app,
		passwordLength:    passwordLength,
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccessRequests returns requests newest first, optionally narrowed to one status.
func (srv *adminService) ListAccessRequests(ctx context.Context, status entity.AccessRequestStatus) ([]*entity.AccessRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.ErrValidationFailed,
			domainerrors.FieldError{Field: "status", Reason: "must be PENDING, APPROVED or REJECTED"})
	}

	requests, err := srv.accessRequestRepo.List(ctx, repository.AccessRequestFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	return requests, nil
}

// RejectAccessRequest rejects a request that is still pending.
func (srv *adminService) RejectAccessRequest(ctx context.Context, id, reason string) (*entity.AccessRequest, error) {
	if id == "" {
		return nil, domainerrors.ErrMissingResourceID.WrapMessage("access request id is required")
	}

	reason = sanitizeText(reason, maxRejectionReasonLength)
	if reason == "" {
		reason = defaultRejectionReason
	}

	var rejected *entity.AccessRequest
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewAccessRequestRepository()

		req, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccessRequestNotFound) {
				return domainerrors.ErrAccessRequestNotFound.WrapMessage("access request " + id)
			}

			return errors.Wrap(err, "failed to load access request")
		}
		if !req.IsPending() {
			return domainerrors.ErrAccessRequestProcessed.WrapMessage("access request is " + string(req.Status))
		}

		req.Reject(srv.now(), reason)
		if err := repo.Update(ctx, req); err != nil {
			return errors.Wrap(err, "failed to reject access request")
		}
		rejected = req

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Access request rejected", slog.String("requestID", id), slog.String("reason", reason))

	return rejected, nil
}

// ResetPassword sets a fresh generated password on the credential for email, creating
// the credential when it does not exist, and emails it to the owner.
func (srv *adminService) ResetPassword(ctx context.Context, email string) (*usecase.ResetPasswordOutput, error) {
	clean := sanitizeEmail(email)
	if clean == "" {
		return nil, domainerrors.NewValidationError(domainerrors.ErrValidationFailed,
			domainerrors.FieldError{Field: "email", Reason: "must be a valid email address"})
	}

	password, err := util.GenerateRandomPassword(srv.passwordLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate password")
	}

	out := &usecase.ResetPasswordOutput{Email: clean}

	uid, err := srv.setCredentialPassword(ctx, clean, password)
	if err != nil {
		return nil, err
	}
	out.Created = uid == ""
	if out.Created {
		uid, err = srv.identity.CreateIdentity(ctx, clean, password, "")
		if err != nil {
			return nil, errors.Wrap(err, "failed to create credential")
		}
	}

	lang := srv.markPasswordReset(ctx, uid, clean)

	mail, err := buildCredentialsMail(clean, password, srv.app.LoginURL, lang)
	if err == nil {
		err = srv.mailer.Send(ctx, mail)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to email reset credentials", slog.String("email", clean), slog.Any("error", err))
	} else {
		out.Emailed = true
	}

	srv.log(ctx).Info("Password reset",
		slog.String("email", clean),
		slog.Bool("created", out.Created),
		slog.Bool("emailed", out.Emailed),
	)

	return out, nil
}

// setCredentialPassword updates an existing credential and returns its uid, or "" when
// there is no credential for the email.
func (srv *adminService) setCredentialPassword(ctx context.Context, email, password string) (string, error) {
	identity, err := srv.identity.GetIdentityByEmail(ctx, email)
	if errors.Is(err, service.ErrIdentityNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to look up credential")
	}

	if err := srv.identity.UpdatePassword(ctx, identity.UID, password); err != nil {
		return "", errors.Wrap(err, "failed to update password")
	}

	return identity.UID, nil
}

// markPasswordReset forces a password change on the user record and stamps the latest
// access request of the email. Failures are logged; the new password is already active.
// It returns the language of the latest request for the credentials email.
func (srv *adminService) markPasswordReset(ctx context.Context, uid, email string) string {
	lang := "es"
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.NewUserRepository()
		requestRepo := txRepoFactory.NewAccessRequestRepository()

		// Reads first: document stores reject reads after writes in a transaction.
		user, err := userRepo.FindByID(ctx, uid)
		if errors.Is(err, repository.ErrUserNotFound) {
			user, err = userRepo.FindByEmail(ctx, email)
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to load user")
		}

		latest, listErr := requestRepo.List(ctx, repository.AccessRequestFilter{Email: email, Limit: 1})
		if listErr != nil {
			return errors.Wrap(listErr, "failed to load access requests")
		}

		if user != nil {
			user.Status = entity.UserStatusForcePasswordChange
			user.UpdatedAt = now
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to update user status")
			}
		}
		if len(latest) == 0 {
			return nil
		}

		req := latest[0]
		req.LastPasswordReset = &now
		lang = req.Language

		return errors.Wrap(requestRepo.Update(ctx, req), "failed to stamp password reset")
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset bookkeeping failed", slog.String("email", email), slog.Any("error", err))
	}

	return lang
}

// DeleteAccount removes the credential for the email, the user documents keyed by uid,
// explicit user id and email, and the company when given.
func (srv *adminService) DeleteAccount(ctx context.Context, input *usecase.DeleteAccountInput) (*usecase.DeleteAccountOutput, error) {
	email := sanitizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.NewValidationError(domainerrors.ErrValidationFailed,
			domainerrors.FieldError{Field: "email", Reason: "is required"})
	}

	out := &usecase.DeleteAccountOutput{DeletedPaths: []string{}}

	var authUID string
	identity, err := srv.identity.GetIdentityByEmail(ctx, email)
	switch {
	case err == nil:
		authUID = identity.UID
		if err := srv.identity.DeleteIdentity(ctx, identity.UID); err != nil && !errors.Is(err, service.ErrIdentityNotFound) {
			return nil, errors.Wrap(err, "failed to delete credential")
		}
		out.AuthDeleted = true
	case errors.Is(err, service.ErrIdentityNotFound):
		srv.log(ctx).Warn("Credential not found, deleting documents only", slog.String("email", email))
	default:
		return nil, errors.Wrap(err, "failed to look up credential")
	}

	seen := make(map[string]struct{}, 3)
	for _, id := range []string{authUID, input.UserID, email} {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if err := srv.userRepo.Delete(ctx, id); err != nil {
			return nil, errors.Wrapf(err, "failed to delete users/%s", id)
		}
		out.DeletedPaths = append(out.DeletedPaths, "users/"+id)
	}

	if input.CompanyID != "" {
		if err := srv.companyRepo.Delete(ctx, input.CompanyID); err != nil {
			return nil, errors.Wrapf(err, "failed to delete companies/%s", input.CompanyID)
		}
		out.DeletedPaths = append(out.DeletedPaths, "companies/"+input.CompanyID)
		srv.invalidateDirectory(ctx)
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("email", email),
		slog.Bool("authDeleted", out.AuthDeleted),
		slog.Any("paths", out.DeletedPaths),
	)

	return out, nil
}

// SyncDirectory refreshes stored geohashes of public companies from their locations.
func (srv *adminService) SyncDirectory(ctx context.Context) (*usecase.SyncDirectoryOutput, error) {
	companies, err := srv.companyRepo.ListPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public companies")
	}

	out := &usecase.SyncDirectoryOutput{}
	for _, c := range companies {
		gh := c.ComputeGeohash()
		if gh == "" || gh == c.Geohash {
			out.Skipped++

			continue
		}

		if err := srv.companyRepo.UpdateGeohash(ctx, c.ID, gh); err != nil {
			srv.log(ctx).Warn("Failed to update company geohash", slog.String("companyID", c.ID), slog.Any("error", err))
			out.Skipped++

			continue
		}
		out.Updated++
	}

	srv.invalidateDirectory(ctx)
	srv.log(ctx).Info("Directory synced", slog.Int("updated", out.Updated), slog.Int("skipped", out.Skipped))

	return out, nil
}

func (srv *adminService) invalidateDirectory(ctx context.Context) {
	if srv.cache == nil {
		return
	}
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate directory cache", slog.Any("error", err))
	}
}
