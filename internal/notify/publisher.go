package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

func (p *Publisher) NotifyOrderCreated(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, EventOrderCreated, order)
}

func (p *Publisher) NotifyStatusChanged(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, EventOrderStatusChanged, order)
}

// publish keys messages by order id so events of one order stay in one partition.
func (p *Publisher) publish(ctx context.Context, eventType string, order entities.Order) error {
	evt := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Order:      OrderFromEntity(order),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: data,
		Time:  evt.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
