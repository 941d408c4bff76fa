package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

const Exchange = "gym.events"

// Routing keys.
const (
	PaymentRecorded     = "payment.recorded"
	PaymentRefunded     = "payment.refunded"
	MembershipCreated   = "membership.created"
	MembershipCancelled = "membership.cancelled"
	MembershipExpired   = "membership.expired"
	InstallmentOverdue  = "installment.overdue"
	MemberCheckedIn     = "attendance.checked_in"
)

type Envelope struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, interface{}) error { return nil }
func (Nop) Close() error                                       { return nil }

type AMQPPublisher struct {
	conn *amqp.Connection
	mu   sync.Mutex
	ch   *amqp.Channel
}

// Connect dials the broker with retries and declares the topic exchange.
func Connect(url string, retries int, delay time.Duration) (*AMQPPublisher, error) {
	const op = "events.Connect"

	var conn *amqp.Connection
	var err error
	for i := 0; i < retries; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		logger.Warn("amqp dial failed", "attempt", i+1, "error", err)
		time.Sleep(delay)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: declare exchange: %w", op, err)
	}

	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	const op = "events.Publish"

	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := Encode(routingKey, payload, time.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish(Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		p.ch.Close()
	}
	return p.conn.Close()
}

func Encode(routingKey string, payload interface{}, at time.Time) ([]byte, error) {
	return json.Marshal(Envelope{Type: routingKey, OccurredAt: at.UTC(), Payload: payload})
}

// Emit publishes and logs failures instead of returning them; events never
// block the operation that produced them.
func Emit(ctx context.Context, p Publisher, routingKey string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, routingKey, payload); err != nil {
		logger.Error("failed to publish event", "type", routingKey, "error", err)
	}
}
