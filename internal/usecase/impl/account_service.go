package impl

import (
	"context"
	"log/slog"
	"strings"
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

type accountService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	verifier  service.TokenVerifier
	now       func() time.Time
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Verifier  service.TokenVerifier
	Logger    *slog.Logger
}

// NewAccountService creates the signed-in account service.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:  params.UserRepo,
		txManager: params.TxManager,
		identity:  params.Identity,
		verifier:  params.Verifier,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the token and resolves role and company from the user record.
// A caller without a user record gets an ENTREPRENEUR session with no company.
func (srv *accountService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing bearer token")
	}

	verified, err := srv.verifier.VerifyToken(ctx, token)
	if err != nil {
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	session := &entity.Session{
		UID:   verified.UID,
		Email: strings.ToLower(verified.Email),
		Role:  entity.RoleEntrepreneur,
	}

	user, err := srv.findUser(ctx, srv.userRepo, verified.UID, session.Email)
	switch {
	case err == nil:
		if user.Role.IsValid() {
			session.Role = user.Role
		}
		session.CompanyID = user.CompanyID
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Debug("Authenticated caller has no user record", slog.String("uid", verified.UID))
	default:
		return nil, errors.Wrap(err, "failed to load caller")
	}

	return session, nil
}

// findUser loads the user by uid, falling back to the legacy email-keyed record.
func (srv *accountService) findUser(ctx context.Context, repo repository.UserRepository, uid, email string) (*entity.User, error) {
	user, err := repo.FindByID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) && email != "" {
		return repo.FindByEmail(ctx, email)
	}

	return user, err
}

// SetCompanyClaim attaches company_id to the credential's future tokens once the user
// record confirms membership. Only a superadmin may target another uid.
func (srv *accountService) SetCompanyClaim(ctx context.Context, session *entity.Session, input *usecase.SetCompanyClaimInput) error {
	uid := input.UID
	if uid == "" {
		uid = session.UID
	}
	if input.CompanyID == "" {
		return domainerrors.NewValidationError(domainerrors.ErrValidationFailed,
			domainerrors.FieldError{Field: "company_id", Reason: "is required"})
	}
	if uid != session.UID && !session.IsSuperAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("cannot set claims for another user")
	}

	email := ""
	if uid == session.UID {
		email = session.Email
	}
	user, err := srv.findUser(ctx, srv.userRepo, uid, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to load user")
	}
	if user == nil || user.CompanyID != input.CompanyID {
		srv.log(ctx).Warn("Company claim refused",
			slog.String("uid", uid),
			slog.String("companyID", input.CompanyID),
		)

		return domainerrors.ErrCompanyMismatch
	}

	if err := srv.identity.SetCompanyClaim(ctx, uid, input.CompanyID); err != nil {
		return errors.Wrap(err, "failed to set company claim")
	}

	srv.log(ctx).Info("Company claim set", slog.String("uid", uid), slog.String("companyID", input.CompanyID))

	return nil
}

// CompletePasswordChange moves the caller from FORCE_PASSWORD_CHANGE to ACTIVE.
// Calling it on an active user is a no-op.
func (srv *accountService) CompletePasswordChange(ctx context.Context, session *entity.Session) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewUserRepository()

		user, err := srv.findUser(ctx, repo, session.UID, session.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user")
		}

		if user.Status != entity.UserStatusActive {
			user.Status = entity.UserStatusActive
			user.UpdatedAt = srv.now()
			if err := repo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to update user status")
			}
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
