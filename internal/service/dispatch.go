package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "storefront",
	Subsystem: "notifications",
	Name:      "dispatch_failed_total",
	Help:      "Order notifications that could not be handed to the notifier.",
}, []string{"kind"})

// dispatcher runs notifications detached from the request that triggered them.
// Their outcome is logged only.
type dispatcher struct {
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func newDispatcher(logger *slog.Logger, timeout time.Duration) *dispatcher {
	return &dispatcher{logger: logger, timeout: timeout}
}

func (d *dispatcher) dispatch(ctx context.Context, kind, orderID string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	d.wg.Go(func() {
		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			notificationsFailed.WithLabelValues(kind).Inc()
			d.logger.Warn("failed to dispatch notification",
				slog.String("kind", kind),
				slog.String("order_id", orderID),
				slog.Any("error", err),
			)
		}
	})
}

func (d *dispatcher) wait() {
	d.wg.Wait()
}
