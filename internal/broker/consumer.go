package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultPrefetch = 50
	initialBackoff  = time.Second
	maxBackoff      = 30 * time.Second
)

// Handler processes one decoded event. A nil return acknowledges the
// message.
type Handler func(ctx context.Context, event models.NotificationEvent) error

// Consumer reads notification events from RabbitMQ.
type Consumer struct {
	url      string
	queue    string
	prefetch int
	dial     dialFunc

	// requeue decides whether a message whose handler failed goes back to
	// the queue. Undecodable messages are always dropped.
	requeue func(error) bool

	sleep func(ctx context.Context, d time.Duration) bool

	logger *logger.Logger
}

// NewConsumer builds a Consumer. requeue may be nil, in which case failed
// messages are dropped.
func NewConsumer(cfg config.Broker, requeue func(error) bool, logger *logger.Logger) *Consumer {
	return newConsumer(cfg, dialAMQP, requeue, logger)
}

func newConsumer(cfg config.Broker, dial dialFunc, requeue func(error) bool, logger *logger.Logger) *Consumer {
	if requeue == nil {
		requeue = func(error) bool { return false }
	}
	return &Consumer{
		url:      cfg.URL,
		queue:    cfg.Queue,
		prefetch: defaultPrefetch,
		dial:     dial,
		requeue:  requeue,
		sleep:    sleepContext,
		logger:   logger.WithComponent("broker-consumer"),
	}
}

// Run consumes until ctx is cancelled, reconnecting with exponential
// backoff capped at 30s. It returns ctx.Err().
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	backoff := initialBackoff

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		conn, err := c.dial(c.url)
		if err != nil {
			c.logger.Warn().Err(err).Dur("retry_in", backoff).Msg("failed to dial broker")
			if !c.sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = initialBackoff

		err = c.consume(ctx, conn, handle)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.logger.Warn().Err(err).Msg("consume loop ended, reconnecting")
		if !c.sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn connection, handle Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err = ch.Qos(c.prefetch, 0, false); err != nil {
		c.logger.Warn().Err(err).Msg("set QoS failed")
	}

	if err = declareQueue(ch, c.queue); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	c.logger.Info().Str("queue", c.queue).Msg("consumer started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			c.handleDelivery(ctx, d, handle)
		}
	}
}

// handleDelivery acks on success. Failed messages are requeued once when
// the error is transient; redelivered ones are dropped.
func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery, handle Handler) {
	var event models.NotificationEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.Err(err).Uint64("delivery_tag", d.DeliveryTag).Msg("undecodable message dropped")
		_ = d.Nack(false, false)
		return
	}

	if err := handle(ctx, event); err != nil {
		requeue := !d.Redelivered && c.requeue(err)
		c.logger.Err(err).
			Str("user_id", event.UserID).
			Bool("requeue", requeue).
			Msg("handling event failed")
		_ = d.Nack(false, requeue)
		return
	}

	_ = d.Ack(false)
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
