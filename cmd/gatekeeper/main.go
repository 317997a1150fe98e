package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	"gatekeeper/internal/delivery/api"
	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"
	"gatekeeper/internal/delivery/worker"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/auth"
	logs "gatekeeper/internal/infra/log"
	"gatekeeper/internal/infra/persistence/postgres"
	"gatekeeper/internal/infra/persistence/sqlite"
	"gatekeeper/internal/infra/session/memory"
	"gatekeeper/internal/infra/session/redis"
	"gatekeeper/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %+v\n", err)
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectStorage(cfg),
		injectSessionStore(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectStorage provides the credential store, plus the SQL-backed session
// store used when session.store is database.
func injectStorage(cfg *config.Config) fx.Option {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return fx.Provide(
			postgres.New,
			postgres.NewAccountRepository,
			fx.Annotate(postgres.NewSessionRepository, fx.ResultTags(`name:"databaseSessions"`)),
		)
	default:
		return fx.Provide(
			sqlite.New,
			sqlite.NewAccountRepository,
			fx.Annotate(sqlite.NewSessionRepository, fx.ResultTags(`name:"databaseSessions"`)),
		)
	}
}

func injectSessionStore(cfg *config.Config) fx.Option {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		return fx.Provide(
			redis.NewClient,
			redis.New,
		)
	case config.SessionStoreMemory:
		return fx.Provide(memory.NewSessionRepository)
	default:
		return fx.Provide(
			fx.Annotate(
				func(repo repository.SessionRepository) repository.SessionRepository { return repo },
				fx.ParamTags(`name:"databaseSessions"`),
			),
		)
	}
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewOpaqueTokenGenerator,
		auth.NewSystemClock,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewSessionManager,
		impl.NewAccountService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewSessionTokenMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAccountHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			worker.NewSessionSweeper,
			fx.ResultTags(`group:"deliveries"`),
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
