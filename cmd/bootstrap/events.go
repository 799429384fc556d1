package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"course-marketplace/internal/infra/janitor"
	"course-marketplace/internal/infra/mq"
	"course-marketplace/internal/infra/outbox"
	"course-marketplace/internal/infra/repository"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		NewOutboxRelay,
		NewIdempotencySweeper,
	),
	fx.Invoke(func(*outbox.Relay, *janitor.Sweeper) {}),
)

const idempotencySweepInterval = time.Hour

// NewPublisher connects to RabbitMQ when MQ_URL is set and falls back to logging events.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (mq.Publisher, error) {
	var publisher mq.Publisher
	if cfg.MQ.URL == "" {
		logger.Warn("MQ_URL not set, events will only be logged")
		publisher = mq.NewLogPublisher(logger)
	} else {
		p, err := mq.NewAMQPPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			return nil, err
		}
		publisher = p
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewOutboxRelay(
	lc fx.Lifecycle,
	q *sqlc.Queries,
	db sqlc.DBTX,
	publisher mq.Publisher,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *outbox.Relay {
	relay := outbox.NewRelay(repository.NewNotificationRepository(q, db), publisher, clk, cfg.Outbox, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
	return relay
}

func NewIdempotencySweeper(lc fx.Lifecycle, q *sqlc.Queries, db sqlc.DBTX, logger *slog.Logger) *janitor.Sweeper {
	sweeper := janitor.NewSweeper(repository.NewIdempotencyRepository(q, db), idempotencySweepInterval, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
	return sweeper
}
