package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"pymerp/internal/domain/repository"
)

type transactionManager struct {
	client *fs.Client
}

type repositoryFactory struct {
	st store
}

func (f *repositoryFactory) NewAccessRequestRepository() repository.AccessRequestRepository {
	return &accessRequestRepository{st: f.st}
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{st: f.st}
}

// NewTransactionManager runs use case transactions with RunTransaction.
func NewTransactionManager(client *fs.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

// Execute may invoke fn more than once on contention.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		return fn(&repositoryFactory{st: store{client: tm.client, tx: tx}})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
