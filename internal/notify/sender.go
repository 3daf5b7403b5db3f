package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var emailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "storefront",
	Subsystem: "notify",
	Name:      "emails_total",
	Help:      "Transactional emails by template and result.",
}, []string{"template", "result"})

const (
	resultSent         = "sent"
	resultRenderFailed = "render_failed"
	resultSendFailed   = "send_failed"
)

type mailSender interface {
	Send(ctx context.Context, e Email) error
}

// Sender turns order events into emails.
type Sender struct {
	logger     *slog.Logger
	mailer     mailSender
	templates  *Templates
	adminEmail string
	storeURL   string
	retry      utils.RetryConfig
}

func NewSender(logger *slog.Logger, cfg config.Mail, mailer mailSender, templates *Templates) *Sender {
	return &Sender{
		logger:     logger.With(slog.String("service", "notify")),
		mailer:     mailer,
		templates:  templates,
		adminEmail: cfg.AdminEmail,
		storeURL:   cfg.StoreURL,
		retry: utils.RetryConfig{
			InitialDelay: 200 * time.Millisecond,
			MaxAttempts:  4,
			Multiplier:   2,
		},
	}
}

type outgoing struct {
	kind templateKind
	to   string
}

func (s *Sender) HandleEvent(ctx context.Context, evt Event) error {
	var out []outgoing

	switch evt.Type {
	case EventOrderCreated:
		out = []outgoing{
			{kind: customerOrderCreated, to: evt.Order.Email},
			{kind: adminOrderCreated, to: s.adminEmail},
		}
	case EventOrderStatusChanged:
		switch entities.Status(evt.Order.Status) {
		case entities.StatusShipped:
			out = []outgoing{{kind: orderShipped, to: evt.Order.Email}}
		case entities.StatusDelivered:
			out = []outgoing{{kind: orderDelivered, to: evt.Order.Email}}
		case entities.StatusCancelled:
			out = []outgoing{{kind: orderCancelled, to: evt.Order.Email}}
		}
	default:
		return fmt.Errorf("unknown event type %q", evt.Type)
	}

	var errs []error
	for _, o := range out {
		if err := s.send(ctx, o, evt.Order); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Sender) send(ctx context.Context, o outgoing, order Order) error {
	subject, body, err := s.templates.render(o.kind, templateData{Order: order, StoreURL: s.storeURL})
	if err != nil {
		emailsTotal.WithLabelValues(string(o.kind), resultRenderFailed).Inc()
		return err
	}

	email := Email{To: []string{o.to}, Subject: subject, HTML: body}
	err = utils.Retry(ctx, s.retry, func() error {
		return s.mailer.Send(ctx, email)
	}, ErrRejected)
	if err != nil {
		emailsTotal.WithLabelValues(string(o.kind), resultSendFailed).Inc()
		return fmt.Errorf("failed to send %s email for order %s: %w", o.kind, order.ID, err)
	}

	emailsTotal.WithLabelValues(string(o.kind), resultSent).Inc()
	s.logger.Debug("email sent", slog.String("kind", string(o.kind)), slog.String("order_id", order.ID))
	return nil
}
