package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var checkoutsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "storefront",
	Subsystem: "checkout",
	Name:      "completed_total",
	Help:      "Checkouts that produced an order, by payment method.",
}, []string{"payment_method"})

type OrderLifecycle interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	AttachReceipt(ctx context.Context, id string, receiptURL string) (entities.Order, error)
}

type CartStore interface {
	Items(userID string) []entities.CartItem
	RemoveOrdered(userID string, ordered []entities.Item)
}

type SessionStore interface {
	Get(key string) (entities.CheckoutSession, bool)
	Set(key string, value entities.CheckoutSession)
	Delete(key string)
}

type ReceiptStorage interface {
	Upload(ctx context.Context, orderID string, file entities.ReceiptFile) (string, error)
}

type PaymentGateway interface {
	Verify(ctx context.Context, reference string) (entities.Transaction, error)
	PublicKey() string
}

type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order entities.Order) error
}

const sessionLocks = 64

// checkoutService walks a user from cart review to exactly one order.
// Every call for the same user is serialized.
type checkoutService struct {
	logger     *slog.Logger
	orders     OrderLifecycle
	carts      CartStore
	sessions   SessionStore
	receipts   ReceiptStorage
	gateway    PaymentGateway
	notifier   OrderNotifier
	validate   *validator.Validate
	dispatcher *dispatcher
	locks      [sessionLocks]sync.Mutex
}

type CheckoutDeps struct {
	Orders   OrderLifecycle
	Carts    CartStore
	Sessions SessionStore
	Receipts ReceiptStorage
	Gateway  PaymentGateway
	Notifier OrderNotifier
}

func NewCheckoutService(logger *slog.Logger, deps CheckoutDeps, notifyTimeout time.Duration) *checkoutService {
	logger = logger.With(slog.String("service", "checkout"))
	return &checkoutService{
		logger:     logger,
		orders:     deps.Orders,
		carts:      deps.Carts,
		sessions:   deps.Sessions,
		receipts:   deps.Receipts,
		gateway:    deps.Gateway,
		notifier:   deps.Notifier,
		validate:   validator.New(),
		dispatcher: newDispatcher(logger, notifyTimeout),
	}
}

func (s *checkoutService) lock(userID string) func() {
	h := fnv.New32a()
	h.Write([]byte(userID))
	mu := &s.locks[h.Sum32()%sessionLocks]
	mu.Lock()
	return mu.Unlock
}

// Start opens checkout at the cart review step. An open session is resumed as is.
func (s *checkoutService) Start(ctx context.Context, userID string) (entities.CheckoutSession, error) {
	defer s.lock(userID)()

	if sess, ok := s.sessions.Get(userID); ok {
		return sess, nil
	}
	if len(s.carts.Items(userID)) == 0 {
		return entities.CheckoutSession{}, entities.ErrEmptyCart
	}

	sess := entities.CheckoutSession{
		UserID:         userID,
		Step:           entities.StepCart,
		IdempotencyKey: uuid.NewString(),
	}
	s.sessions.Set(userID, sess)
	return sess, nil
}

func (s *checkoutService) Session(ctx context.Context, userID string) (entities.CheckoutSession, error) {
	defer s.lock(userID)()
	return s.session(userID)
}

func (s *checkoutService) Continue(ctx context.Context, userID string) (entities.CheckoutSession, error) {
	defer s.lock(userID)()

	sess, err := s.sessionAt(userID, entities.StepCart)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if len(s.carts.Items(userID)) == 0 {
		return entities.CheckoutSession{}, entities.ErrEmptyCart
	}

	sess.Step = entities.StepShipping
	s.sessions.Set(userID, sess)
	return sess, nil
}

// SubmitShipping stores the shipping form and moves to payment. Only name,
// email, phone and address gate the step.
func (s *checkoutService) SubmitShipping(ctx context.Context, userID string, shipping entities.Shipping) (entities.CheckoutSession, error) {
	defer s.lock(userID)()

	sess, err := s.sessionAt(userID, entities.StepShipping)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if err := s.validateShipping(shipping); err != nil {
		return entities.CheckoutSession{}, err
	}

	sess.Shipping = shipping
	sess.Step = entities.StepPayment
	s.sessions.Set(userID, sess)
	return sess, nil
}

func (s *checkoutService) validateShipping(shipping entities.Shipping) error {
	err := s.validate.Struct(shipping)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &entities.ValidationError{Field: strings.ToLower(verrs[0].Field()), Message: "is required"}
	}
	return err
}

// Back returns to the previous step. Once a bank transfer order exists the
// receipt step can no longer be left.
func (s *checkoutService) Back(ctx context.Context, userID string) (entities.CheckoutSession, error) {
	defer s.lock(userID)()

	sess, err := s.session(userID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if sess.Step <= entities.StepCart || sess.PendingOrderID != "" {
		return entities.CheckoutSession{}, entities.ErrInvalidStep
	}

	sess.Step--
	s.sessions.Set(userID, sess)
	return sess, nil
}

// SelectPaymentMethod picks the payment path. Bank transfer moves on to the
// receipt step; card stays on the payment step until the widget reports back.
func (s *checkoutService) SelectPaymentMethod(ctx context.Context, userID string, method entities.PaymentMethod) (entities.CheckoutSession, error) {
	defer s.lock(userID)()

	sess, err := s.sessionAt(userID, entities.StepPayment)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if !method.Valid() {
		return entities.CheckoutSession{}, &entities.ValidationError{Field: "payment_method", Message: "must be card or bank_transfer"}
	}

	sess.PaymentMethod = method
	if method == entities.PaymentBankTransfer {
		sess.Step = entities.StepReceipt
	}
	s.sessions.Set(userID, sess)
	return sess, nil
}

func (s *checkoutService) CardPaymentParams(ctx context.Context, userID string) (entities.PaymentParams, error) {
	defer s.lock(userID)()

	sess, err := s.cardSession(userID)
	if err != nil {
		return entities.PaymentParams{}, err
	}
	items := s.carts.Items(userID)
	if len(items) == 0 {
		return entities.PaymentParams{}, entities.ErrEmptyCart
	}

	return entities.PaymentParams{
		AmountMinor: minorUnits(items),
		Email:       sess.Shipping.Email,
		PublicKey:   s.gateway.PublicKey(),
	}, nil
}

// CompleteCardPayment finalizes the card path. A cancelled widget leaves the
// session on the payment step and creates nothing. The reference must be a
// successful gateway payment of the cart total by the shipping email that no
// other order was paid with.
func (s *checkoutService) CompleteCardPayment(ctx context.Context, userID string, result entities.GatewayResult) (entities.Completion, error) {
	defer s.lock(userID)()

	sess, err := s.cardSession(userID)
	if err != nil {
		return entities.Completion{}, err
	}
	if result.Cancelled {
		s.logger.Info("card payment cancelled", slog.String("user_id", userID))
		return entities.Completion{Cancelled: true}, nil
	}
	if result.Reference == "" {
		return entities.Completion{}, &entities.ValidationError{Field: "reference", Message: "is required"}
	}

	items := s.carts.Items(userID)
	if len(items) == 0 {
		return entities.Completion{}, entities.ErrEmptyCart
	}

	tx, err := s.gateway.Verify(ctx, result.Reference)
	if errors.Is(err, entities.ErrUnknownPaymentReference) {
		return entities.Completion{}, fmt.Errorf("%w: %w", entities.ErrPaymentNotVerified, err)
	}
	if err != nil {
		s.logger.Error("failed to verify card payment", slog.String("reference", result.Reference), slog.Any("error", err))
		return entities.Completion{}, fmt.Errorf("%w: %w", entities.ErrGatewayUnavailable, err)
	}
	if !tx.Succeeded() || tx.AmountMinor != minorUnits(items) || !strings.EqualFold(tx.Email, sess.Shipping.Email) {
		s.logger.Warn("card payment rejected",
			slog.String("reference", result.Reference),
			slog.String("gateway_status", tx.Status),
			slog.Int64("amount", tx.AmountMinor),
			slog.String("gateway_email", tx.Email),
		)
		return entities.Completion{}, entities.ErrPaymentNotVerified
	}

	order, err := s.orders.CreateOrder(ctx, s.draft(sess, items, entities.StatusPaid, result.Reference))
	if errors.Is(err, entities.ErrPaymentReferenceUsed) {
		s.logger.Warn("card payment reference replayed", slog.String("reference", result.Reference), slog.String("user_id", userID))
		return entities.Completion{}, fmt.Errorf("%w: %w", entities.ErrPaymentNotVerified, err)
	}
	if err != nil {
		return entities.Completion{}, err
	}

	s.finish(ctx, userID, order)
	return entities.Completion{Order: order}, nil
}

// SubmitReceipt finalizes the bank transfer path: create the pending order,
// upload the receipt, attach it. A failure after the order is created keeps
// its id in the session so resubmitting continues with the same order.
func (s *checkoutService) SubmitReceipt(ctx context.Context, userID string, file entities.ReceiptFile) (entities.Order, error) {
	defer s.lock(userID)()

	sess, err := s.sessionAt(userID, entities.StepReceipt)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := file.Validate(); err != nil {
		return entities.Order{}, err
	}

	orderID := sess.PendingOrderID
	if orderID == "" {
		items := s.carts.Items(userID)
		if len(items) == 0 {
			return entities.Order{}, entities.ErrEmptyCart
		}

		order, err := s.orders.CreateOrder(ctx, s.draft(sess, items, entities.StatusPending, ""))
		if err != nil {
			return entities.Order{}, err
		}
		orderID = order.ID
		sess.PendingOrderID = orderID
		s.sessions.Set(userID, sess)
	}

	url, err := s.receipts.Upload(ctx, orderID, file)
	if err != nil {
		s.logger.Error("failed to upload receipt", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, &entities.PersistenceError{Op: "upload receipt", Err: err}
	}

	order, err := s.orders.AttachReceipt(ctx, orderID, url)
	if err != nil {
		s.logger.Error("failed to attach receipt", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}

	s.finish(ctx, userID, order)
	return order, nil
}

// Cancel drops the session. The cart is kept.
func (s *checkoutService) Cancel(ctx context.Context, userID string) error {
	defer s.lock(userID)()

	if _, err := s.session(userID); err != nil {
		return err
	}
	s.sessions.Delete(userID)
	return nil
}

// Wait blocks until dispatched notifications have finished.
func (s *checkoutService) Wait() {
	s.dispatcher.wait()
}

// finish removes only the ordered lines; cart changes made meanwhile stay.
func (s *checkoutService) finish(ctx context.Context, userID string, order entities.Order) {
	s.carts.RemoveOrdered(userID, order.Items)
	s.sessions.Delete(userID)
	checkoutsCompleted.WithLabelValues(string(order.PaymentMethod)).Inc()

	s.logger.Info("checkout completed",
		slog.String("user_id", userID),
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)),
	)

	s.dispatcher.dispatch(ctx, "order_created", order.ID, func(ctx context.Context) error {
		return s.notifier.NotifyOrderCreated(ctx, order)
	})
}

func (s *checkoutService) draft(sess entities.CheckoutSession, cart []entities.CartItem, status entities.Status, receipt string) entities.Order {
	return entities.Order{
		UserID:         sess.UserID,
		IdempotencyKey: sess.IdempotencyKey,
		Shipping:       sess.Shipping,
		Items:          entities.CartOrderItems(cart),
		TotalAmount:    entities.CartTotal(cart),
		Status:         status,
		PaymentMethod:  sess.PaymentMethod,
		PaymentReceipt: receipt,
	}
}

func (s *checkoutService) session(userID string) (entities.CheckoutSession, error) {
	sess, ok := s.sessions.Get(userID)
	if !ok {
		return entities.CheckoutSession{}, entities.ErrCheckoutNotStarted
	}
	return sess, nil
}

func (s *checkoutService) sessionAt(userID string, step entities.Step) (entities.CheckoutSession, error) {
	sess, err := s.session(userID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if sess.Step != step {
		return entities.CheckoutSession{}, fmt.Errorf("%w: at step %d", entities.ErrInvalidStep, sess.Step)
	}
	return sess, nil
}

func (s *checkoutService) cardSession(userID string) (entities.CheckoutSession, error) {
	sess, err := s.sessionAt(userID, entities.StepPayment)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if sess.PaymentMethod != entities.PaymentCard {
		return entities.CheckoutSession{}, fmt.Errorf("%w: card payment not selected", entities.ErrInvalidStep)
	}
	return sess, nil
}

func minorUnits(items []entities.CartItem) int64 {
	return entities.CartTotal(items).Shift(2).Round(0).IntPart()
}
