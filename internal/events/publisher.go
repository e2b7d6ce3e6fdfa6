package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ViewInvalidated is published so other API instances and edge caches can
// drop their copy of a view.
type ViewInvalidated struct {
	ViewKey    string    `json:"view_key"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}

	return newPublisher(w), nil
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

// Invalidate publishes one message keyed by the view key, so all signals for
// a view land on the same partition in order.
func (p *Publisher) Invalidate(ctx context.Context, key booking.ViewKey) error {
	payload, err := json.Marshal(ViewInvalidated{
		ViewKey:    string(key),
		OccurredAt: p.now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("view.invalidated")},
		},
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

var _ cache.Sink = (*Publisher)(nil)
