package main

import (
	"context"
	"log/slog"
	"os"

	"openspace/config"
	"openspace/internal/delivery"
	"openspace/internal/delivery/http"
	"openspace/internal/delivery/http/middleware"
	"openspace/internal/delivery/http/router/handler"
	"openspace/internal/infra/auth"
	logs "openspace/internal/infra/log"
	"openspace/internal/infra/persistence/postgres"
	"openspace/internal/infra/storage"
	"openspace/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewCompanyRepository,
			postgres.NewJobRepository,
			postgres.NewTagRepository,
			postgres.NewRatingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2Hasher,
			auth.NewJWTService,
			auth.NewSessionCarrier,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccessService,
			impl.NewAccountService,
			impl.NewCompanyService,
			impl.NewJobService,
			impl.NewRecruiterService,
			impl.NewTagService,
			impl.NewRatingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewCompanyHandler,
			handler.NewJobHandler,
			handler.NewRecruiterHandler,
			handler.NewTagHandler,
			handler.NewRatingHandler,
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
