package messaging

import (
	"context"
	"log/slog"

	"reservation-book/internal/usecase/shared"
)

// LogPublisher stands in for the broker when AMQP is disabled; jobs are written to the log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, job *shared.NotificationJob) error {
	p.logger.Info("notification",
		"job_id", job.ID.String(),
		"topic", job.Topic,
		"payload", string(job.Payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
