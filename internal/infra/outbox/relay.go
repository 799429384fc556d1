package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"course-marketplace/internal/infra/metrics"
	"course-marketplace/internal/infra/mq"
	"course-marketplace/internal/infra/repository"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/config"

	"github.com/google/uuid"
)

const (
	baseRetryDelay = 2 * time.Second
	maxRetryDelay  = 5 * time.Minute
)

type JobStore interface {
	ClaimDue(ctx context.Context, now, staleBefore time.Time, limit int32) ([]repository.NotificationJob, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}

// Relay publishes queued notification jobs. Delivery is at least once: a job
// left in sending by a crashed relay is claimed again once its lease expires.
type Relay struct {
	store     JobStore
	publisher mq.Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(store JobStore, publisher mq.Publisher, clock clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *Relay {
	return &Relay{
		store:     store,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
		logger:    logger,
	}
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go r.loop(ctx)
	r.logger.Info("outbox relay started", "poll_interval", r.cfg.PollInterval, "batch_size", r.cfg.BatchSize)
}

// Stop waits for the in-flight batch or until ctx expires.
func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		r.logger.Info("outbox relay stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox batch failed", "error", err)
			}
		}
	}
}

// RunOnce claims one batch and returns how many jobs were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	now := r.clock.Now()
	jobs, err := r.store.ClaimDue(ctx, now, now.Add(-r.cfg.SendingLease), r.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		if r.deliver(ctx, job) {
			sent++
		}
	}
	return sent, nil
}

func (r *Relay) deliver(ctx context.Context, job repository.NotificationJob) bool {
	start := time.Now()
	pubErr := r.publisher.Publish(ctx, job.Topic, job.Payload)
	metrics.OutboxPublishTime.Observe(time.Since(start).Seconds())

	// the outcome must be recorded even when Stop cancelled the publish
	stopping := ctx.Err() != nil
	ctx = context.WithoutCancel(ctx)

	now := r.clock.Now()
	if pubErr == nil {
		metrics.OutboxPublished.WithLabelValues(repository.JobStatusSent).Inc()
		if err := r.store.UpdateJobStatus(ctx, job.ID, repository.JobStatusSent, nil, now); err != nil {
			r.logger.Error("failed to mark notification job sent", "job_id", job.ID, "error", err)
		}
		return true
	}

	msg := pubErr.Error()
	if stopping {
		r.logger.Info("notification requeued on shutdown", "job_id", job.ID, "topic", job.Topic)
		if err := r.store.UpdateJobStatus(ctx, job.ID, repository.JobStatusQueued, &msg, now); err != nil {
			r.logger.Error("failed to requeue notification job", "job_id", job.ID, "error", err)
		}
		return false
	}

	status := repository.JobStatusQueued
	runAt := now.Add(retryDelay(job.Attempts))
	if job.Attempts >= r.cfg.MaxAttempts {
		status = repository.JobStatusFailed
		runAt = now
	}
	metrics.OutboxPublished.WithLabelValues(status).Inc()
	r.logger.Warn("notification publish failed",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"next_status", status,
		"error", msg,
	)
	if err := r.store.UpdateJobStatus(ctx, job.ID, status, &msg, runAt); err != nil {
		r.logger.Error("failed to reschedule notification job", "job_id", job.ID, "error", err)
	}
	return false
}

// retryDelay doubles per attempt, capped at maxRetryDelay.
func retryDelay(attempts int32) time.Duration {
	d := baseRetryDelay
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}
