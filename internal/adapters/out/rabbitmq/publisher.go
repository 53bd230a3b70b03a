// Package rabbitmq publishes outbox messages to a RabbitMQ topic exchange.
// The routing key is the event name, so consumers bind with patterns such as "order.*".
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ecommerce/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const dialAttempts = 5

// Config holds the broker connection settings.
type Config struct {
	URL      string
	Exchange string
}

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
	Close() error
}

// Publisher implements ports.EventPublisher over one AMQP channel.
type Publisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	channel  channel
	exchange string
	logger   *slog.Logger
}

// Dial connects to the broker with retries, opens a channel and declares a
// durable topic exchange.
func Dial(cfg Config, logger *slog.Logger) (*Publisher, error) {
	if cfg.Exchange == "" {
		return nil, errors.New("exchange name cannot be empty")
	}
	logger = logger.With("component", "rabbitmq_publisher")

	var conn *amqp.Connection
	var err error
	for i := range dialAttempts {
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			break
		}
		retryIn := time.Duration(i*i)*time.Second + time.Second
		logger.Warn("failed to connect to RabbitMQ, retrying", "retry_in", retryIn, "error", err)
		time.Sleep(retryIn)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ after %d attempts: %w", dialAttempts, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	logger.Info("connected to RabbitMQ", "exchange", cfg.Exchange)

	p := NewPublisher(ch, cfg.Exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisher wraps an already opened channel.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}
}

// Publish sends the message as a persistent JSON publishing. The outbox ID
// becomes the AMQP message ID so consumers can deduplicate redeliveries.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         msg.EventName,
		Timestamp:    msg.OccurredAt,
		Headers: amqp.Table{
			"aggregate_id": msg.AggregateID.String(),
		},
		Body: msg.Payload,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, msg.EventName, false, false, publishing); err != nil {
		return fmt.Errorf("publish %s to exchange %s: %w", msg.EventName, p.exchange, err)
	}

	p.logger.DebugContext(ctx, "event published", "event", msg.EventName, "message_id", msg.ID.String())
	return nil
}

// Close closes the channel and, when Dial opened it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
