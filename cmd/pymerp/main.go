package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"pymerp/config"
	"pymerp/internal/delivery"
	"pymerp/internal/delivery/http"
	"pymerp/internal/delivery/http/middleware"
	"pymerp/internal/delivery/http/router/handler"
	"pymerp/internal/infra/auth"
	"pymerp/internal/infra/cache"
	"pymerp/internal/infra/firebase"
	logs "pymerp/internal/infra/log"
	"pymerp/internal/infra/mail"
	"pymerp/internal/infra/persistence/firestore"
	"pymerp/internal/infra/persistence/postgres"
	"pymerp/internal/infra/pubsub"
	"pymerp/internal/infra/qrcode"
	"pymerp/internal/infra/scheduler"
	"pymerp/internal/infra/storage"
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

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg),
		injectService(cfg),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
			firebase.NewApp,
			firebase.NewAuthClient,
		),
	)
}

// injectRepo wires the repositories of the configured document store.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		return postgres.Module
	}

	return firestore.Module
}

func injectService(cfg *config.Config) fx.Option {
	tokenVerifier := fx.Provide(firebase.NewTokenVerifier)
	if cfg.Auth != nil && cfg.Auth.Provider == config.AuthProviderJWT {
		tokenVerifier = fx.Provide(auth.NewTokenVerifier)
	}

	return fx.Options(
		tokenVerifier,
		fx.Provide(firebase.NewIdentityProvider),
		mail.Module,
		pubsub.Module,
		cache.Module,
		storage.Module,
		qrcode.Module,
		scheduler.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProvisioningService,
			impl.NewReconciliationService,
			impl.NewScheduleService,
			impl.NewAccountService,
			impl.NewAdminService,
			impl.NewDirectoryService,
			impl.NewCompanyQRService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccessRequestHandler,
			handler.NewDirectoryHandler,
			handler.NewScheduleHandler,
			handler.NewAccountHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
