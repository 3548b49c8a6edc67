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

type accessRequestDoc struct {
	FullName          string     `firestore:"full_name"`
	Email             string     `firestore:"email"`
	BusinessName      string     `firestore:"business_name"`
	WhatsApp          string     `firestore:"whatsapp"`
	Plan              string     `firestore:"plan"`
	Status            string     `firestore:"status"`
	Language          string     `firestore:"language"`
	RejectionReason   string     `firestore:"rejection_reason,omitempty"`
	CreatedAt         time.Time  `firestore:"created_at"`
	ProcessedAt       *time.Time `firestore:"processed_at,omitempty"`
	LastPasswordReset *time.Time `firestore:"last_password_reset,omitempty"`
}

type accessRequestRepository struct {
	st store
}

// NewAccessRequestRepository stores signup submissions.
func NewAccessRequestRepository(client *fs.Client) repository.AccessRequestRepository {
	return &accessRequestRepository{st: store{client: client}}
}

func (repo *accessRequestRepository) collection() *fs.CollectionRef {
	return repo.st.client.Collection(accessRequestsCollection)
}

// Create assigns an auto-generated document ID when the request has none.
func (repo *accessRequestRepository) Create(ctx context.Context, req *entity.AccessRequest) error {
	ref := repo.collection().NewDoc()
	if req.ID != "" {
		ref = repo.collection().Doc(req.ID)
	}

	if err := repo.st.create(ctx, ref, fromAccessRequest(req)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create access request")
	}
	req.ID = ref.ID

	return nil
}

func (repo *accessRequestRepository) FindByID(ctx context.Context, id string) (*entity.AccessRequest, error) {
	if id == "" {
		return nil, repository.ErrAccessRequestNotFound
	}

	snap, err := repo.st.get(ctx, repo.collection().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAccessRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to get access request")
	}

	return toAccessRequest(snap)
}

func (repo *accessRequestRepository) Update(ctx context.Context, req *entity.AccessRequest) error {
	updates := []fs.Update{
		{Path: "status", Value: string(req.Status)},
		{Path: "rejection_reason", Value: req.RejectionReason},
	}
	if req.ProcessedAt != nil {
		updates = append(updates, fs.Update{Path: "processed_at", Value: *req.ProcessedAt})
	}
	if req.LastPasswordReset != nil {
		updates = append(updates, fs.Update{Path: "last_password_reset", Value: *req.LastPasswordReset})
	}

	if err := repo.st.update(ctx, repo.collection().Doc(req.ID), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrAccessRequestNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update access request")
	}

	return nil
}

// List needs composite indexes on (status, created_at) and (email, created_at).
func (repo *accessRequestRepository) List(ctx context.Context, filter repository.AccessRequestFilter) ([]*entity.AccessRequest, error) {
	q := repo.collection().Query
	if filter.Status != "" {
		q = q.Where("status", "==", string(filter.Status))
	}
	if filter.Email != "" {
		q = q.Where("email", "==", strings.ToLower(filter.Email))
	}
	if !filter.CreatedBefore.IsZero() {
		q = q.Where("created_at", "<", filter.CreatedBefore)
	}
	q = q.OrderBy("created_at", fs.Desc)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	snaps, err := repo.st.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	requests := make([]*entity.AccessRequest, 0, len(snaps))
	for _, snap := range snaps {
		req, err := toAccessRequest(snap)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func toAccessRequest(snap *fs.DocumentSnapshot) (*entity.AccessRequest, error) {
	var doc accessRequestDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode access request")
	}

	return accessRequestFromDoc(snap.Ref.ID, &doc), nil
}

func accessRequestFromDoc(id string, doc *accessRequestDoc) *entity.AccessRequest {
	return &entity.AccessRequest{
		ID:                id,
		FullName:          doc.FullName,
		Email:             doc.Email,
		BusinessName:      doc.BusinessName,
		WhatsApp:          doc.WhatsApp,
		Plan:              entity.ParsePlan(doc.Plan),
		Status:            entity.AccessRequestStatus(doc.Status),
		Language:          doc.Language,
		RejectionReason:   doc.RejectionReason,
		CreatedAt:         doc.CreatedAt,
		ProcessedAt:       doc.ProcessedAt,
		LastPasswordReset: doc.LastPasswordReset,
	}
}

func fromAccessRequest(req *entity.AccessRequest) *accessRequestDoc {
	return &accessRequestDoc{
		FullName:          req.FullName,
		Email:             strings.ToLower(req.Email),
		BusinessName:      req.BusinessName,
		WhatsApp:          req.WhatsApp,
		Plan:              string(req.Plan),
		Status:            string(req.Status),
		Language:          req.Language,
		RejectionReason:   req.RejectionReason,
		CreatedAt:         req.CreatedAt,
		ProcessedAt:       req.ProcessedAt,
		LastPasswordReset: req.LastPasswordReset,
	}
}
