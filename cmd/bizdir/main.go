package main

import (
	"context"
	"log/slog"
	"os"

	"bizdir/config"
	"bizdir/internal/delivery"
	"bizdir/internal/delivery/http"
	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/router/handler"
	"bizdir/internal/infra/auth"
	logs "bizdir/internal/infra/log"
	"bizdir/internal/infra/mailer"
	"bizdir/internal/infra/persistence/mongodb"
	"bizdir/internal/infra/storage"
	"bizdir/internal/usecase/impl"

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
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewBusinessRepository,
			mongodb.NewRequestRepository,
			mongodb.NewSignupRepository,
			mongodb.NewMessageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			mailer.NewSMTPMailer,
			storage.NewBucketStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBusinessService,
			impl.NewRequestService,
			impl.NewSignupService,
			impl.NewNotificationService,
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
			handler.NewUserHandler,
			handler.NewBusinessHandler,
			handler.NewRequestHandler,
			handler.NewSignupHandler,
			handler.NewNotificationHandler,
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
