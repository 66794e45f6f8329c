package bootstrap

import (
	"context"
	"log/slog"

	"estaciona-api/internal/handler/middleware"
	"estaciona-api/internal/infra/events"
	"estaciona-api/internal/infra/oauth"
	"estaciona-api/internal/infra/ratelimit"
	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// IntegrationsModule wires the optional outside services. Each one degrades
// to a no-op when its address is not configured.
var IntegrationsModule = fx.Module("integrations",
	fx.Provide(
		NewEventPublisher,
		NewLoginLimiter,
		fx.Annotate(
			NewIdentityRegistry,
			fx.As(new(shared.IdentityProviders)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, domain events disabled")
		return events.NopPublisher{}
	}

	publisher, err := events.Dial(cfg.AMQP)
	if err != nil {
		slog.Warn("event broker unavailable, domain events disabled", "error", err.Error())
		return events.NopPublisher{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

func NewLoginLimiter(lc fx.Lifecycle, cfg config.Config) middleware.Limiter {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set, login rate limiting disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed, limiter will fail open", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return ratelimit.NewLoginBucket(rdb, cfg.RateLimit)
}

func NewIdentityRegistry(cfg config.Config) *oauth.Registry {
	return oauth.NewRegistry(cfg.OAuth)
}
