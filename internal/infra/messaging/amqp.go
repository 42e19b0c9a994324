package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reservation-book/internal/pkg/config"
	"reservation-book/internal/pkg/errs"
	"reservation-book/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes outbox jobs to a durable queue on the default exchange.
// The connection is dialled lazily and re-dialled after the broker drops it.
type AMQPPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewAMQPPublisher(cfg config.AMQPConfig, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		url:    cfg.URL,
		queue:  cfg.Queue,
		logger: logger,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, job *shared.NotificationJob) error {
	conn, err := p.connection()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "rabbitmq: channel open failed")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return errs.Wrapf(err, "rabbitmq: queue declare %s failed", p.queue)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    job.ID.String(),
		Type:         job.Topic,
		Timestamp:    time.Now().UTC(),
		Body:         job.Payload,
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return errs.Wrap(err, "rabbitmq: publish failed")
	}
	return nil
}

func (p *AMQPPublisher) connection() (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: dial failed")
	}
	p.logger.Info("connected to message broker", "queue", p.queue)
	p.conn = conn
	return conn, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}
