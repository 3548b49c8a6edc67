package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"pymerp/config"
	"pymerp/internal/delivery"
	"pymerp/internal/delivery/worker"
	"pymerp/internal/delivery/worker/handler"
	"pymerp/internal/infra/firebase"
	logs "pymerp/internal/infra/log"
	"pymerp/internal/infra/mail"
	"pymerp/internal/infra/persistence/firestore"
	"pymerp/internal/infra/persistence/postgres"
	"pymerp/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	repo := fx.Option(firestore.Module)
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		repo = postgres.Module
	}

	fx.New(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
			firebase.NewApp,
			firebase.NewAuthClient,
			firebase.NewIdentityProvider,
		),
		repo,
		mail.Module,
		fx.Provide(
			impl.NewReconciliationService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
