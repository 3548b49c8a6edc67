// Package firestore implements the repositories on Cloud Firestore, the default store.
package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names.
const (
	accessRequestsCollection = "accessRequests"
	usersCollection          = "users"
	companiesCollection      = "companies"
	servicesCollection       = "services"
	professionalsCollection  = "professionals"
)

// store routes document operations through the transaction when one is bound.
// Firestore transactions require every read to happen before the first write.
type store struct {
	client *fs.Client
	tx     *fs.Transaction
}

func (s store) get(ctx context.Context, ref *fs.DocumentRef) (*fs.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s store) documents(ctx context.Context, q fs.Query) ([]*fs.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Documents(q).GetAll()
	}

	return q.Documents(ctx).GetAll()
}

func (s store) create(ctx context.Context, ref *fs.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Create(ref, data)
	}
	_, err := ref.Create(ctx, data)

	return err
}

func (s store) update(ctx context.Context, ref *fs.DocumentRef, updates []fs.Update) error {
	if s.tx != nil {
		return s.tx.Update(ref, updates)
	}
	_, err := ref.Update(ctx, updates)

	return err
}

func (s store) delete(ctx context.Context, ref *fs.DocumentRef) error {
	if s.tx != nil {
		return s.tx.Delete(ref)
	}
	_, err := ref.Delete(ctx)

	return err
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(errors.Cause(err)) == codes.AlreadyExists
}

// ClientParams holds dependencies for the Firestore client, injected by Fx
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx context.Context
	App *firebase.App
}

// NewClient opens the Firestore client of the Firebase project and closes it on stop.
func NewClient(params ClientParams) (*fs.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Module provides the Firestore-backed repositories.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewTransactionManager,
		NewUserRepository,
		NewAccessRequestRepository,
		NewCompanyRepository,
		NewResourceRepository,
	),
)
