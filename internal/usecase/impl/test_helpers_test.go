package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"pymerp/config"
	"pymerp/internal/domain/repository"
	mockRepo "pymerp/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:          "PyMERP",
			PublicBaseURL: "https://pymerp.cl",
			LoginURL:      "https://pymerp.cl/login",
			AdminEmail:    "ops@pymerp.cl",
		},
		Provisioning: &config.ProvisioningConfig{
			PasswordLength: 12,
			StaleAfter:     72 * time.Hour,
			SweepInterval:  time.Hour,
		},
		Directory: &config.DirectoryConfig{
			MaxRadiusKm: 50,
		},
	}
}

// onExecute makes the transaction manager run the callback against factory.
func onExecute(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
