package bootstrap

import (
	"context"
	"log/slog"

	"reservation-book/internal/infra/messaging"
	"reservation-book/internal/infra/outbox"
	"reservation-book/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		outbox.NewDispatcher,
	),
)

type closablePublisher interface {
	outbox.Publisher
	Close() error
}

// NewPublisher sends notifications to RabbitMQ when AMQP_ENABLED is set and logs them otherwise.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) outbox.Publisher {
	var publisher closablePublisher
	if cfg.AMQP.Enabled {
		publisher = messaging.NewAMQPPublisher(cfg.AMQP, logger)
	} else {
		publisher = messaging.NewLogPublisher(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

// StartDispatcher runs the outbox dispatcher for the lifetime of the app.
func StartDispatcher(lc fx.Lifecycle, d *outbox.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			d.Stop()
			return nil
		},
	})
}
