package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Orders created, by payment method.",
	}, []string{"payment_method"})

	orderStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "status_changes_total",
		Help:      "Order status updates, by target status.",
	}, []string{"status"})
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SaveItems(ctx context.Context, orderID string, items []entities.Item) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderByIdempotencyKey(ctx context.Context, key string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error)
}

type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, order entities.Order) error
}

// orderService is the only place order status changes. Transitions are
// permissive: any valid status may be set from any other.
type orderService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	repo       OrderRepo
	cache      Cache
	notifier   StatusNotifier
	dispatcher *dispatcher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, notifier StatusNotifier, notifyTimeout time.Duration) *orderService {
	logger = logger.With(slog.String("service", "order"))
	return &orderService{
		logger:     logger,
		txManager:  txManager,
		repo:       repo,
		cache:      cache,
		notifier:   notifier,
		dispatcher: newDispatcher(logger, notifyTimeout),
	}
}

// CreateOrder stores a new order with its items. An order whose idempotency
// key is already stored is returned as is. A card order reusing another
// order's gateway reference fails with ErrPaymentReferenceUsed.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if err := validateNewOrder(order); err != nil {
		return entities.Order{}, err
	}
	if order.IdempotencyKey == "" {
		order.IdempotencyKey = uuid.NewString()
	}

	var saved entities.Order
	created := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repo.SaveOrder(ctx, order)
		if errors.Is(err, entities.ErrOrderExists) {
			saved, err = s.repo.GetOrderByIdempotencyKey(ctx, order.IdempotencyKey)
			return err
		}
		if err != nil {
			return err
		}
		if err := s.repo.SaveItems(ctx, saved.ID, order.Items); err != nil {
			return err
		}
		created = true
		return nil
	})
	if errors.Is(err, entities.ErrPaymentReferenceUsed) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, &entities.PersistenceError{Op: "create order", Err: err}
	}

	s.cache.Set(saved.ID, saved)
	if created {
		ordersCreated.WithLabelValues(string(saved.PaymentMethod)).Inc()
		s.logger.Info("order created",
			slog.String("order_id", saved.ID),
			slog.String("status", string(saved.Status)),
			slog.String("total", saved.TotalAmount.String()),
		)
	} else {
		s.logger.Info("order already exists", slog.String("order_id", saved.ID))
	}
	return saved, nil
}

func validateNewOrder(o entities.Order) error {
	if len(o.Items) == 0 {
		return &entities.ValidationError{Field: "items", Message: "order has no items"}
	}
	for _, it := range o.Items {
		if it.Quantity < 1 {
			return &entities.ValidationError{Field: "quantity", Message: "must be at least 1"}
		}
	}
	if !o.TotalAmount.Equal(entities.ItemsTotal(o.Items)) {
		return &entities.ValidationError{Field: "total_amount", Message: "does not match items"}
	}
	if !o.PaymentMethod.Valid() {
		return &entities.ValidationError{Field: "payment_method", Message: "unknown payment method"}
	}
	if !o.Status.Valid() {
		return entities.ErrInvalidStatus
	}
	return nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if order, ok := s.cache.Get(id); ok {
		return order, nil
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, &entities.PersistenceError{Op: "get order", Err: err}
	}

	s.cache.Set(id, order)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, entities.ErrInvalidStatus
	}
	orders, err := s.repo.ListOrders(ctx, f)
	if err != nil {
		return nil, &entities.PersistenceError{Op: "list orders", Err: err}
	}
	return orders, nil
}

// WarmUpCache loads the most recent orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListOrders(ctx, entities.OrderFilter{Limit: uint64(count)})
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, o := range orders {
		s.cache.Set(o.ID, o)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// SetStatus overwrites the status without checking the current one.
func (s *orderService) SetStatus(ctx context.Context, id string, status entities.Status) (entities.Order, error) {
	return s.update(ctx, id, entities.OrderUpdate{Status: status})
}

// UpdateStatus is SetStatus for the admin console; the reason is kept only for cancellations.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status entities.Status, reason string) (entities.Order, error) {
	upd := entities.OrderUpdate{Status: status}
	if status == entities.StatusCancelled {
		upd.CancellationReason = reason
	}
	return s.update(ctx, id, upd)
}

// AttachReceipt records the uploaded transfer receipt and moves the order to payment review.
func (s *orderService) AttachReceipt(ctx context.Context, id string, receiptURL string) (entities.Order, error) {
	if receiptURL == "" {
		return entities.Order{}, &entities.ValidationError{Field: "payment_receipt", Message: "is required"}
	}
	return s.update(ctx, id, entities.OrderUpdate{
		Status:         entities.StatusPaymentReview,
		PaymentReceipt: receiptURL,
	})
}

func (s *orderService) ApprovePayment(ctx context.Context, id string) (entities.Order, error) {
	return s.SetStatus(ctx, id, entities.StatusPaid)
}

func (s *orderService) RejectPayment(ctx context.Context, id string) (entities.Order, error) {
	return s.SetStatus(ctx, id, entities.StatusPending)
}

// Advance moves the order one step forward from current.
func (s *orderService) Advance(ctx context.Context, id string, current entities.Status) (entities.Order, error) {
	next, ok := current.Next()
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrNoNextStatus, current)
	}
	return s.SetStatus(ctx, id, next)
}

func (s *orderService) AdvanceOrder(ctx context.Context, id string) (entities.Order, error) {
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return s.Advance(ctx, id, order.Status)
}

func (s *orderService) update(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	if !upd.Status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: %q", entities.ErrInvalidStatus, upd.Status)
	}

	order, err := s.repo.UpdateOrder(ctx, id, upd)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, &entities.PersistenceError{Op: "update order", Err: err}
	}

	s.cache.Set(order.ID, order)
	orderStatusChanges.WithLabelValues(string(order.Status)).Inc()
	s.logger.Info("order status set", slog.String("order_id", order.ID), slog.String("status", string(order.Status)))

	switch order.Status {
	case entities.StatusShipped, entities.StatusDelivered, entities.StatusCancelled:
		s.dispatcher.dispatch(ctx, "status_changed", order.ID, func(ctx context.Context) error {
			return s.notifier.NotifyStatusChanged(ctx, order)
		})
	}

	return order, nil
}

// Wait blocks until dispatched notifications have finished.
func (s *orderService) Wait() {
	s.dispatcher.wait()
}
