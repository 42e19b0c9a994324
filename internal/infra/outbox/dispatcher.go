package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reservation-book/internal/pkg/clock"
	"reservation-book/internal/pkg/config"
	"reservation-book/internal/usecase/shared"
)

const maxRetryDelay = 5 * time.Minute

type Publisher interface {
	Publish(ctx context.Context, job *shared.NotificationJob) error
}

// Dispatcher drains queued notification jobs written in the same transaction as each booking.
// Delivery is at least once: a job is marked sent only after the publisher accepted it.
type Dispatcher struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int32
	maxAttempts int32
	logger      *slog.Logger

	stop context.CancelFunc
	wg   sync.WaitGroup
}

func NewDispatcher(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    cfg.AMQP.PollInterval,
		batchSize:   max(cfg.AMQP.BatchSize, 1),
		maxAttempts: max(cfg.AMQP.MaxAttempts, 1),
		logger:      logger,
	}
}

// DispatchOnce publishes one batch of due jobs and reports how many were sent.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	var sent int
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := d.clock.Now()
		repo := tx.Notifications()

		jobs, err := repo.ClaimPending(ctx, tx.DB(), now, d.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if pubErr := d.publisher.Publish(ctx, job); pubErr != nil {
				retryAt := d.nextAttempt(job, now)
				if err := repo.MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), retryAt); err != nil {
					return err
				}
				d.logger.Warn("notification publish failed",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"gave_up", retryAt == nil,
					"error", pubErr.Error())
				continue
			}
			if err := repo.MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

// nextAttempt returns nil once the job has used all its attempts.
func (d *Dispatcher) nextAttempt(job *shared.NotificationJob, now time.Time) *time.Time {
	attempt := job.Attempts + 1
	if attempt >= d.maxAttempts {
		return nil
	}
	delay := RetryDelay(d.interval, attempt)
	at := now.Add(delay)
	return &at
}

// RetryDelay doubles base for every attempt already made, capped at five minutes.
func RetryDelay(base time.Duration, attempt int32) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	delay := base
	for i := int32(1); i < attempt && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}

// Start polls in the background until Stop is called.
func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.stop = cancel
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(ctx)
	}()
}

func (d *Dispatcher) Stop() {
	if d.stop != nil {
		d.stop()
	}
	d.wg.Wait()
}

func (d *Dispatcher) run(ctx context.Context) {
	interval := d.interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.logger.Info("outbox dispatcher started", "interval", interval.String(), "batch_size", d.batchSize)
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("outbox dispatcher stopped")
			return
		case <-ticker.C:
			sent, err := d.DispatchOnce(ctx)
			if err != nil && ctx.Err() == nil {
				d.logger.Error("outbox dispatch failed", "error", err.Error())
				continue
			}
			if sent > 0 {
				d.logger.Debug("notifications dispatched", "count", sent)
			}
		}
	}
}
