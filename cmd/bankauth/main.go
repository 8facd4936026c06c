package main

import (
	"context"
	"log/slog"
	"os"

	"bankauth/config"
	"bankauth/internal/delivery"
	"bankauth/internal/delivery/api"
	"bankauth/internal/delivery/api/middleware"
	"bankauth/internal/delivery/api/router/handler"
	"bankauth/internal/delivery/worker"
	"bankauth/internal/domain/repository"
	"bankauth/internal/infra/auth"
	logs "bankauth/internal/infra/log"
	"bankauth/internal/infra/persistence/postgres"
	"bankauth/internal/infra/persistence/redis"
	"bankauth/internal/usecase/impl"
	"bankauth/internal/util"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type refreshTokenStoreParams struct {
	fx.In
	fx.Lifecycle

	Cfg    *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
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
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			newRefreshTokenRepository,
		),
	)
}

// newRefreshTokenRepository picks the refresh token backend named by auth.refreshTokenStore.
// The Redis client is only created when Redis is selected.
func newRefreshTokenRepository(params refreshTokenStoreParams) (repository.RefreshTokenRepository, error) {
	params.Logger.Info("Refresh token store selected",
		slog.String("store", params.Cfg.Auth.RefreshTokenStore),
		slog.String("ttl", util.FormatDuration(params.Cfg.Auth.RefreshTokenTTL)),
	)

	if params.Cfg.Auth.RefreshTokenStore != config.RefreshTokenStoreRedis {
		return postgres.NewRefreshTokenRepository(params.DB), nil
	}

	client, err := redis.New(redis.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Cfg,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return redis.NewRefreshTokenRepository(client, params.Cfg), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCredentialVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRefreshTokenService,
			impl.NewAuthService,
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
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewTokenSweeper,
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
