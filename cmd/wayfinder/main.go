package main

import (
	"context"
	"log/slog"
	"os"

	"wayfinder/config"
	"wayfinder/internal/delivery"
	"wayfinder/internal/delivery/http"
	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/router/handler"
	"wayfinder/internal/domain/registry"
	"wayfinder/internal/domain/resolver"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/directions"
	"wayfinder/internal/infra/floorplan"
	logs "wayfinder/internal/infra/log"
	"wayfinder/internal/infra/qrcode"
	"wayfinder/internal/infra/render"
	"wayfinder/internal/usecase/impl"

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
		registry.New,
		resolver.New,
		floorplan.NewBlobSource,
		render.NewChannelSurface,
		render.AsRenderSurface,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			directions.NewClient,
			render.New,
			newShareService,
		),
	)
}

// newShareService creates the QR hand-off service with dependency injection
func newShareService(cfg *config.Config) service.ShareService {
	if cfg.Share == nil {
		// Use default values if not configured
		return qrcode.NewShareService(256, "M", "")
	}

	return qrcode.NewShareService(cfg.Share.Size, cfg.Share.ErrorCorrectionLevel, cfg.Share.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNavigationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNavigationHandler,
			handler.NewRendererHandler,
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
