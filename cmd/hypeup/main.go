package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"hypeup/config"
	"hypeup/internal/delivery"
	"hypeup/internal/delivery/http"
	"hypeup/internal/delivery/http/middleware"
	"hypeup/internal/delivery/http/router/handler"
	"hypeup/internal/domain/repository"
	"hypeup/internal/infra/auth"
	"hypeup/internal/infra/chatbot"
	logs "hypeup/internal/infra/log"
	"hypeup/internal/infra/persistence"
	"hypeup/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedAdminParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

type sessionJanitorParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

const sessionSweepInterval = time.Hour

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
			seedAdmin,
			startSessionJanitor,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordVerifier,
			auth.NewTokenCodec,
			chatbot.NewKeywordResponder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewApplicationService,
			impl.NewAnalyticsService,
			impl.NewChatbotService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewApplicationHandler,
			handler.NewAnalyticsHandler,
			handler.NewChatbotHandler,
			handler.NewAuthHandler,
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

// seedAdmin provisions the configured administrator account once the
// store is ready. Runs after the storage lifecycle hooks so migrations
// have already happened on the durable driver.
func seedAdmin(params seedAdminParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return impl.EnsureAdminAccount(ctx, params.Config, params.AccountRepo, params.Logger)
		},
	})
}

// startSessionJanitor sweeps expired sessions on an hourly ticker.
// Expiry is already enforced on every lookup; the sweep only keeps the
// sessions table from accumulating dead rows.
func startSessionJanitor(params sessionJanitorParams) {
	sweepCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(sessionSweepInterval)
				defer ticker.Stop()

				for {
					select {
					case <-sweepCtx.Done():
						return
					case <-ticker.C:
						if err := params.SessionRepo.DeleteExpired(sweepCtx); err != nil {
							params.Logger.Warn("Failed to sweep expired sessions", slog.Any("error", err))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
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
