package bootstrap

import (
	"context"
	"time"

	infraratelimit "course-marketplace/internal/infra/ratelimit"
	"course-marketplace/internal/pkg/config"
	"course-marketplace/internal/pkg/ratelimit"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const certificateValidatePrefix = "rl:cert_validate"

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			infraratelimit.NewRedisWindowStore,
			fx.As(new(ratelimit.WindowStore)),
		),
		NewCertificateLimiter,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*goredis.Client, error) {
	client, err := infraratelimit.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewCertificateLimiter(store ratelimit.WindowStore, cfg config.Config) *ratelimit.Limiter {
	return ratelimit.NewLimiter(store, certificateValidatePrefix, cfg.RateLimit.CertificateValidatePerMinute, time.Minute)
}
