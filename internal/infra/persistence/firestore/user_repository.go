package firestore

import (
	"context"
	"strings"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
)

type userDoc struct {
	Email     string    `firestore:"email"`
	Status    string    `firestore:"status"`
	Role      string    `firestore:"role"`
	CompanyID string    `firestore:"company_id,omitempty"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type userRepository struct {
	st store
}

// NewUserRepository stores users keyed by auth uid.
func NewUserRepository(client *fs.Client) repository.UserRepository {
	return &userRepository{st: store{client: client}}
}

func (repo *userRepository) ref(id string) *fs.DocumentRef {
	return repo.st.client.Collection(usersCollection).Doc(id)
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, repository.ErrUserNotFound
	}

	snap, err := repo.st.get(ctx, repo.ref(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return toUser(snap)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	q := repo.st.client.Collection(usersCollection).
		Where("email", "==", strings.ToLower(email)).
		Limit(1)

	snaps, err := repo.st.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user by email")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUser(snaps[0])
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.st.create(ctx, repo.ref(user.ID), fromUser(user)); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user document already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := []fs.Update{
		{Path: "email", Value: strings.ToLower(user.Email)},
		{Path: "status", Value: string(user.Status)},
		{Path: "role", Value: string(user.Role)},
		{Path: "updated_at", Value: user.UpdatedAt},
	}
	if user.CompanyID != "" {
		updates = append(updates, fs.Update{Path: "company_id", Value: user.CompanyID})
	} else {
		updates = append(updates, fs.Update{Path: "company_id", Value: fs.Delete})
	}

	if err := repo.st.update(ctx, repo.ref(user.ID), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id string) error {
	if err := repo.st.delete(ctx, repo.ref(id)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}

func toUser(snap *fs.DocumentSnapshot) (*entity.User, error) {
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user")
	}

	return userFromDoc(snap.Ref.ID, &doc), nil
}

func userFromDoc(id string, doc *userDoc) *entity.User {
	return &entity.User{
		ID:        id,
		Email:     doc.Email,
		Status:    entity.UserStatus(doc.Status),
		Role:      entity.Role(doc.Role),
		CompanyID: doc.CompanyID,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func fromUser(user *entity.User) *userDoc {
	return &userDoc{
		Email:     strings.ToLower(user.Email),
		Status:    string(user.Status),
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
