package firestore

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/type/latlng"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
)

type companyDoc struct {
	OwnerUserID      string         `firestore:"owner_user_id"`
	Name             string         `firestore:"name"`
	RUT              string         `firestore:"rut,omitempty"`
	Industry         string         `firestore:"industry,omitempty"`
	WhatsApp         string         `firestore:"whatsapp,omitempty"`
	Address          string         `firestore:"address,omitempty"`
	Slug             string         `firestore:"slug"`
	SetupCompleted   bool           `firestore:"setup_completed"`
	SubscriptionPlan string         `firestore:"subscription_plan"`
	Schedule         map[string]any `firestore:"schedule,omitempty"`
	PublicEnabled    bool           `firestore:"publicEnabled"`
	Region           string         `firestore:"region,omitempty"`
	Province         string         `firestore:"province,omitempty"`
	Commune          string         `firestore:"commune,omitempty"`
	Sector           string         `firestore:"sector,omitempty"`
	CategoryID       string         `firestore:"categoryId,omitempty"`
	ShortDescription string         `firestore:"shortDescription,omitempty"`
	Description      string         `firestore:"description,omitempty"`
	Location         *latlng.LatLng `firestore:"location,omitempty"`
	Geohash          string         `firestore:"geohash,omitempty"`
	CreatedAt        time.Time      `firestore:"created_at"`
	UpdatedAt        time.Time      `firestore:"updated_at"`
}

type companyRepository struct {
	st store
}

// NewCompanyRepository stores tenants.
func NewCompanyRepository(client *fs.Client) repository.CompanyRepository {
	return &companyRepository{st: store{client: client}}
}

func (repo *companyRepository) collection() *fs.CollectionRef {
	return repo.st.client.Collection(companiesCollection)
}

func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	ref := repo.collection().NewDoc()
	if company.ID != "" {
		ref = repo.collection().Doc(company.ID)
	}
	company.Geohash = company.ComputeGeohash()

	if err := repo.st.create(ctx, ref, fromCompany(company)); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.ErrConflict.WrapMessage("company already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}
	company.ID = ref.ID

	return nil
}

func (repo *companyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	if id == "" {
		return nil, repository.ErrCompanyNotFound
	}

	snap, err := repo.st.get(ctx, repo.collection().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to get company")
	}

	return toCompany(snap)
}

func (repo *companyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	snaps, err := repo.st.documents(ctx, repo.collection().Where("slug", "==", slug).Limit(1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query company by slug")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrCompanyNotFound
	}

	return toCompany(snaps[0])
}

func (repo *companyRepository) UpdateSchedule(ctx context.Context, id string, schedule entity.Schedule, at time.Time) error {
	return repo.update(ctx, id, []fs.Update{
		{Path: "schedule", Value: schedule.ToDocument()},
		{Path: "updated_at", Value: at},
	})
}

func (repo *companyRepository) UpdateGeohash(ctx context.Context, id, geohash string) error {
	return repo.update(ctx, id, []fs.Update{{Path: "geohash", Value: geohash}})
}

func (repo *companyRepository) update(ctx context.Context, id string, updates []fs.Update) error {
	if err := repo.st.update(ctx, repo.collection().Doc(id), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update company")
	}

	return nil
}

func (repo *companyRepository) Delete(ctx context.Context, id string) error {
	if err := repo.st.delete(ctx, repo.collection().Doc(id)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete company")
	}

	return nil
}

func (repo *companyRepository) ListPublic(ctx context.Context) ([]*entity.Company, error) {
	snaps, err := repo.st.documents(ctx, repo.collection().Where("publicEnabled", "==", true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public companies")
	}

	companies := make([]*entity.Company, 0, len(snaps))
	for _, snap := range snaps {
		company, err := toCompany(snap)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, nil
}

func toCompany(snap *fs.DocumentSnapshot) (*entity.Company, error) {
	var doc companyDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode company")
	}

	return companyFromDoc(snap.Ref.ID, &doc), nil
}

func companyFromDoc(id string, doc *companyDoc) *entity.Company {
	company := &entity.Company{
		ID:               id,
		OwnerUserID:      doc.OwnerUserID,
		Name:             doc.Name,
		RUT:              doc.RUT,
		Industry:         doc.Industry,
		WhatsApp:         doc.WhatsApp,
		Address:          doc.Address,
		Slug:             doc.Slug,
		SetupCompleted:   doc.SetupCompleted,
		SubscriptionPlan: entity.ParsePlan(doc.SubscriptionPlan),
		Schedule:         scheduleFromDoc(doc.Schedule),
		IsPublic:         doc.PublicEnabled,
		Region:           doc.Region,
		Province:         doc.Province,
		Commune:          doc.Commune,
		Sector:           doc.Sector,
		CategoryID:       doc.CategoryID,
		ShortDescription: doc.ShortDescription,
		Description:      doc.Description,
		Geohash:          doc.Geohash,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
	if doc.Location != nil {
		company.Location = &entity.GeoPoint{Lat: doc.Location.GetLatitude(), Lng: doc.Location.GetLongitude()}
	}

	return company
}

func fromCompany(company *entity.Company) *companyDoc {
	doc := &companyDoc{
		OwnerUserID:      company.OwnerUserID,
		Name:             company.Name,
		RUT:              company.RUT,
		Industry:         company.Industry,
		WhatsApp:         company.WhatsApp,
		Address:          company.Address,
		Slug:             company.Slug,
		SetupCompleted:   company.SetupCompleted,
		SubscriptionPlan: string(company.SubscriptionPlan),
		PublicEnabled:    company.IsPublic,
		Region:           company.Region,
		Province:         company.Province,
		Commune:          company.Commune,
		Sector:           company.Sector,
		CategoryID:       company.CategoryID,
		ShortDescription: company.ShortDescription,
		Description:      company.Description,
		Geohash:          company.Geohash,
		CreatedAt:        company.CreatedAt,
		UpdatedAt:        company.UpdatedAt,
	}
	if len(company.Schedule) > 0 {
		doc.Schedule = company.Schedule.ToDocument()
	}
	if company.Location != nil {
		doc.Location = &latlng.LatLng{Latitude: company.Location.Lat, Longitude: company.Location.Lng}
	}

	return doc
}

// scheduleFromDoc drops stored hours that no longer validate instead of failing the read.
func scheduleFromDoc(raw map[string]any) entity.Schedule {
	if len(raw) == 0 {
		return nil
	}

	schedule, err := entity.ParseSchedule(raw)
	if err != nil {
		return nil
	}

	return schedule
}
