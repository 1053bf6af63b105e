package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends notification events to a durable RabbitMQ queue. The
// connection is opened lazily and reopened on the next Publish after a
// failure. Publisher is safe for concurrent use.
type Publisher struct {
	url   string
	queue string
	dial  dialFunc

	mu     sync.Mutex
	conn   connection
	ch     channel
	closed bool

	logger *logger.Logger
}

func NewPublisher(cfg config.Broker, logger *logger.Logger) *Publisher {
	return newPublisher(cfg, dialAMQP, logger)
}

func newPublisher(cfg config.Broker, dial dialFunc, logger *logger.Logger) *Publisher {
	return &Publisher{
		url:    cfg.URL,
		queue:  cfg.Queue,
		dial:   dial,
		logger: logger.WithComponent("broker-publisher"),
	}
}

// Publish serialises event and sends it as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, event models.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	ch, err := p.channelLocked()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Err(err).Str("queue", p.queue).Msg("publish failed, dropping connection")
		p.resetLocked()
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// Close releases the connection. Publish fails with ErrPublisherClosed
// afterwards.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	return p.resetLocked()
}

func (p *Publisher) channelLocked() (channel, error) {
	if p.ch != nil {
		return p.ch, nil
	}

	conn, err := p.dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("queue declare: %w", err)
	}

	p.conn, p.ch = conn, ch
	p.logger.Info().Str("queue", p.queue).Msg("publisher connected")
	return ch, nil
}

func (p *Publisher) resetLocked() error {
	var err error
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err = p.conn.Close()
		p.conn = nil
	}
	return err
}
