package firestore

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
)

type resourceDoc struct {
	CompanyID string         `firestore:"company_id"`
	Name      string         `firestore:"name"`
	Schedule  map[string]any `firestore:"schedule,omitempty"`
	UpdatedAt time.Time      `firestore:"updated_at"`
}

type resourceRepository struct {
	st store
}

// NewResourceRepository reads services and professionals.
func NewResourceRepository(client *fs.Client) repository.ResourceRepository {
	return &resourceRepository{st: store{client: client}}
}

func (repo *resourceRepository) ref(kind entity.ResourceKind, id string) *fs.DocumentRef {
	collection := servicesCollection
	if kind == entity.ResourceProfessional {
		collection = professionalsCollection
	}

	return repo.st.client.Collection(collection).Doc(id)
}

func (repo *resourceRepository) FindByID(ctx context.Context, kind entity.ResourceKind, id string) (*entity.Resource, error) {
	if id == "" {
		return nil, repository.ErrResourceNotFound
	}

	snap, err := repo.st.get(ctx, repo.ref(kind, id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrapf(err, "failed to get %s", kind)
	}

	var doc resourceDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", kind)
	}

	return &entity.Resource{
		ID:        id,
		Kind:      kind,
		CompanyID: doc.CompanyID,
		Name:      doc.Name,
		Schedule:  scheduleFromDoc(doc.Schedule),
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (repo *resourceRepository) UpdateSchedule(ctx context.Context, kind entity.ResourceKind, id string, schedule entity.Schedule, at time.Time) error {
	err := repo.st.update(ctx, repo.ref(kind, id), []fs.Update{
		{Path: "schedule", Value: schedule.ToDocument()},
		{Path: "updated_at", Value: at},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrResourceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update schedule")
	}

	return nil
}
