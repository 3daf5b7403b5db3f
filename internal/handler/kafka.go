package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type EventHandler interface {
	HandleEvent(ctx context.Context, evt notify.Event) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler consumes order notification events. Events that cannot be
// handled go to the "<topic>-dlq" topic and are committed.
type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	events   EventHandler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, events EventHandler) *kafkaHandler {
	return newKafkaHandler(
		logger,
		kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		&kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		events,
	)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, events EventHandler) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		events:   events,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	if !m.Time.IsZero() {
		notificationLag.Observe(time.Since(m.Time).Seconds())
	}
	start := time.Now()

	// The sender retries each email itself.
	eventType, err := h.handleEvent(ctx, m)
	notificationHandleDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())

	if err != nil {
		h.logger.Error("failed to handle event",
			slog.Any("error", err),
			slog.String("event_type", eventType),
			slog.Int64("offset", m.Offset),
		)

		// kafka-go retries the write itself.
		if err := h.WriteToDLQ(ctx, m); err != nil {
			notificationEvents.WithLabelValues(eventType, outcomeStuck).Inc()
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		notificationEvents.WithLabelValues(eventType, outcomeDeadLettered).Inc()
	} else {
		notificationEvents.WithLabelValues(eventType, outcomeHandled).Inc()
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

// handleEvent also returns the event type for labelling, as far as it could be read.
func (h *kafkaHandler) handleEvent(ctx context.Context, m kafka.Message) (string, error) {
	var evt notify.Event
	if err := json.Unmarshal(m.Value, &evt); err != nil {
		return unparsedEvent, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if err := h.validate.Struct(evt); err != nil {
		return eventTypeLabel(evt.Type), fmt.Errorf("invalid event data: %w", err)
	}

	return evt.Type, h.events.HandleEvent(ctx, evt)
}

// eventTypeLabel maps unknown event types to unparsedEvent.
func eventTypeLabel(t string) string {
	switch t {
	case notify.EventOrderCreated, notify.EventOrderStatusChanged:
		return t
	default:
		return unparsedEvent
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	return errors.Join(h.reader.Close(), h.dlq.Close())
}
