package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func eventMessage(t *testing.T, evt notify.Event) kafka.Message {
	t.Helper()
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	return kafka.Message{Topic: "order-notifications", Value: data}
}

func validEvent() notify.Event {
	return notify.Event{
		ID:         "evt-1",
		Type:       notify.EventOrderCreated,
		OccurredAt: time.Now().UTC(),
		Order: notify.Order{
			ID:     "order-1",
			Email:  "ada@example.com",
			Status: "pending",
			Items:  []notify.Item{{ProductName: "Tee", Quantity: 1}},
		},
	}
}

func TestKafkaHandler_Consume(t *testing.T) {
	invalid := validEvent()
	invalid.Order.Email = "not-an-email"

	testCases := []struct {
		name         string
		msgs         func(t *testing.T) []kafka.Message
		mockBehavior func(events *mocks.MockEventHandler)
		dlqErr       error
		wantDLQ      int
		wantCommits  int
		wantType     string
		wantOutcome  string
	}{
		{
			name: "handled",
			msgs: func(t *testing.T) []kafka.Message { return []kafka.Message{eventMessage(t, validEvent())} },
			mockBehavior: func(events *mocks.MockEventHandler) {
				events.EXPECT().HandleEvent(mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
					return e.ID == "evt-1" && e.Order.ID == "order-1"
				})).Return(nil).Once()
			},
			wantCommits: 1,
			wantType:    notify.EventOrderCreated,
			wantOutcome: outcomeHandled,
		},
		{
			name:         "broken json goes to dlq",
			msgs:         func(t *testing.T) []kafka.Message { return []kafka.Message{{Topic: "order-notifications", Value: []byte("{")}} },
			mockBehavior: func(events *mocks.MockEventHandler) {},
			wantDLQ:      1,
			wantCommits:  1,
			wantType:     unparsedEvent,
			wantOutcome:  outcomeDeadLettered,
		},
		{
			name:         "invalid event goes to dlq",
			msgs:         func(t *testing.T) []kafka.Message { return []kafka.Message{eventMessage(t, invalid)} },
			mockBehavior: func(events *mocks.MockEventHandler) {},
			wantDLQ:      1,
			wantCommits:  1,
			wantType:     notify.EventOrderCreated,
			wantOutcome:  outcomeDeadLettered,
		},
		{
			name: "unknown event type is labelled unparsed",
			msgs: func(t *testing.T) []kafka.Message {
				evt := validEvent()
				evt.Type = "order.refunded"
				return []kafka.Message{eventMessage(t, evt)}
			},
			mockBehavior: func(events *mocks.MockEventHandler) {},
			wantDLQ:      1,
			wantCommits:  1,
			wantType:     unparsedEvent,
			wantOutcome:  outcomeDeadLettered,
		},
		{
			name: "handler failure goes to dlq",
			msgs: func(t *testing.T) []kafka.Message { return []kafka.Message{eventMessage(t, validEvent())} },
			mockBehavior: func(events *mocks.MockEventHandler) {
				events.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(errors.New("mail api down")).Once()
			},
			wantDLQ:     1,
			wantCommits: 1,
			wantType:    notify.EventOrderCreated,
			wantOutcome: outcomeDeadLettered,
		},
		{
			name: "dlq failure leaves message uncommitted",
			msgs: func(t *testing.T) []kafka.Message { return []kafka.Message{eventMessage(t, validEvent())} },
			mockBehavior: func(events *mocks.MockEventHandler) {
				events.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(errors.New("mail api down")).Once()
			},
			dlqErr:      errors.New("broker down"),
			wantType:    notify.EventOrderCreated,
			wantOutcome: outcomeStuck,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events := mocks.NewMockEventHandler(t)
			tc.mockBehavior(events)

			reader := &fakeReader{msgs: tc.msgs(t)}
			dlq := &fakeWriter{err: tc.dlqErr}
			h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, events)

			counter := notificationEvents.WithLabelValues(tc.wantType, tc.wantOutcome)
			before := testutil.ToFloat64(counter)

			h.Consume(context.Background())

			assert.Equal(t, before+1, testutil.ToFloat64(counter))

			assert.Len(t, dlq.msgs, tc.wantDLQ)
			for _, m := range dlq.msgs {
				assert.Equal(t, "order-notifications-dlq", m.Topic)
			}
			assert.Len(t, reader.committed, tc.wantCommits)
			require.NoError(t, h.Close())
		})
	}
}
