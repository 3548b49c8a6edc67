package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to run read-check-write sequences atomically
// without depending on a specific store like Firestore or GORM.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// The function may be retried by the store on contention and must be idempotent.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewAccessRequestRepository returns an AccessRequestRepository bound to the current transaction.
	NewAccessRequestRepository() AccessRequestRepository

	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository
}
