package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrder = entities.Order{
	ID: "4f1c2a9e-7d1b-4f4e-9d55-0d6f2f1a8c11",
	Shipping: entities.Shipping{
		Name:    "Ada Obi",
		Email:   "ada@example.com",
		Phone:   "+2348000000000",
		Address: "12 Marina Rd",
		City:    "Lagos",
	},
	Items: []entities.Item{
		{ProductID: "a", ProductName: "Ankara dress", Quantity: 2, Size: "M", UnitPrice: decimal.NewFromInt(15000)},
	},
	TotalAmount:    decimal.NewFromInt(30000),
	Status:         entities.StatusPaymentReview,
	PaymentMethod:  entities.PaymentBankTransfer,
	PaymentReceipt: "https://cdn.example.com/receipt.jpg",
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_NotifyOrderCreated(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w)

	require.NoError(t, p.NotifyOrderCreated(context.Background(), testOrder))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, testOrder.ID, string(w.msgs[0].Key))

	var evt Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &evt))
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, EventOrderCreated, evt.Type)
	assert.Equal(t, "ada@example.com", evt.Order.Email)
	assert.True(t, evt.Order.TotalAmount.Equal(decimal.NewFromInt(30000)))
	require.Len(t, evt.Order.Items, 1)
	assert.Equal(t, 2, evt.Order.Items[0].Quantity)
}

func TestPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newPublisher(w)

	err := p.NotifyStatusChanged(context.Background(), testOrder)
	assert.ErrorIs(t, err, w.err)
}

type recordingMailer struct {
	mu     sync.Mutex
	sent   []Email
	errFor map[string][]error
}

func (m *recordingMailer) Send(_ context.Context, e Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if errs := m.errFor[e.To[0]]; len(errs) > 0 {
		m.errFor[e.To[0]] = errs[1:]
		return errs[0]
	}
	m.sent = append(m.sent, e)
	return nil
}

func newTestSender(t *testing.T, mailer mailSender) *Sender {
	templates, err := NewTemplates()
	require.NoError(t, err)

	s := NewSender(slog.New(slog.NewTextHandler(io.Discard, nil)), config.Mail{
		AdminEmail: "admin@example.com",
		StoreURL:   "https://shop.example.com",
	}, mailer, templates)
	s.retry.InitialDelay = time.Millisecond
	return s
}

func event(eventType string, order entities.Order) Event {
	return Event{ID: "evt-1", Type: eventType, Order: OrderFromEntity(order)}
}

func TestSender_OrderCreated(t *testing.T) {
	mailer := &recordingMailer{}
	s := newTestSender(t, mailer)

	require.NoError(t, s.HandleEvent(context.Background(), event(EventOrderCreated, testOrder)))
	require.Len(t, mailer.sent, 2)

	customer, admin := mailer.sent[0], mailer.sent[1]
	assert.Equal(t, []string{"ada@example.com"}, customer.To)
	assert.Equal(t, "Your order #4F1C2A9E has been received", customer.Subject)
	assert.Contains(t, customer.HTML, "transfer receipt")
	assert.Contains(t, customer.HTML, "30000.00")
	assert.Contains(t, customer.HTML, "https://shop.example.com/orders/"+testOrder.ID)

	assert.Equal(t, []string{"admin@example.com"}, admin.To)
	assert.Equal(t, "New order #4F1C2A9E (payment review)", admin.Subject)
	assert.Contains(t, admin.HTML, "https://cdn.example.com/receipt.jpg")
}

func TestSender_StatusChanged(t *testing.T) {
	testCases := []struct {
		status      entities.Status
		wantEmails  int
		wantSubject string
	}{
		{status: entities.StatusShipped, wantEmails: 1, wantSubject: "is on its way"},
		{status: entities.StatusDelivered, wantEmails: 1, wantSubject: "has been delivered"},
		{status: entities.StatusCancelled, wantEmails: 1, wantSubject: "has been cancelled"},
		{status: entities.StatusPreparing, wantEmails: 0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			mailer := &recordingMailer{}
			s := newTestSender(t, mailer)

			order := testOrder
			order.Status = tc.status
			order.CancellationReason = "out of stock"

			require.NoError(t, s.HandleEvent(context.Background(), event(EventOrderStatusChanged, order)))
			require.Len(t, mailer.sent, tc.wantEmails)
			if tc.wantEmails > 0 {
				assert.Contains(t, mailer.sent[0].Subject, tc.wantSubject)
			}
		})
	}
}

func TestSender_RetriesTransientErrors(t *testing.T) {
	mailer := &recordingMailer{errFor: map[string][]error{
		"ada@example.com":   {errors.New("timeout"), errors.New("timeout")},
		"admin@example.com": {ErrRejected},
	}}
	s := newTestSender(t, mailer)

	sent := emailsTotal.WithLabelValues(string(customerOrderCreated), resultSent)
	failed := emailsTotal.WithLabelValues(string(adminOrderCreated), resultSendFailed)
	sentBefore, failedBefore := testutil.ToFloat64(sent), testutil.ToFloat64(failed)

	err := s.HandleEvent(context.Background(), event(EventOrderCreated, testOrder))
	assert.ErrorIs(t, err, ErrRejected)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"ada@example.com"}, mailer.sent[0].To)

	assert.Equal(t, sentBefore+1, testutil.ToFloat64(sent))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}

func TestSender_UnknownEvent(t *testing.T) {
	s := newTestSender(t, &recordingMailer{})
	assert.Error(t, s.HandleEvent(context.Background(), event("order.refunded", testOrder)))
}

func TestMailer_Send(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		wantErr      bool
		wantRejected bool
	}{
		{name: "accepted", status: http.StatusOK},
		{name: "validation error", status: http.StatusUnprocessableEntity, wantErr: true, wantRejected: true},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/emails", r.URL.Path)
				assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))

				var body sendRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "Store <orders@example.com>", body.From)
				assert.Equal(t, []string{"ada@example.com"}, body.To)

				w.WriteHeader(tc.status)
				w.Write([]byte(`{"id":"msg_1"}`))
			}))
			defer srv.Close()

			m := NewMailer(config.Mail{
				BaseURL: srv.URL,
				APIKey:  "re_test",
				From:    "Store <orders@example.com>",
				Timeout: time.Second,
			})

			err := m.Send(context.Background(), Email{To: []string{"ada@example.com"}, Subject: "hi", HTML: "<p>hi</p>"})
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantRejected, errors.Is(err, ErrRejected))
		})
	}
}
