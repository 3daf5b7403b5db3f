package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/storefront-orders/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "5f0c1a8e-6a51-4a8f-9c55-2d0f3f2b9e11"

var dbError = errors.New("db error")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).
		Maybe()
	return tx
}

func sampleOrder() entities.Order {
	return entities.Order{
		UserID:         "user-1",
		IdempotencyKey: "key-1",
		Shipping: entities.Shipping{
			Name:    "Ada",
			Email:   "ada@example.com",
			Phone:   "+2348000000000",
			Address: "1 Main St",
		},
		Items: []entities.Item{
			{ProductID: "A", ProductName: "Tee", Quantity: 2, UnitPrice: decimal.NewFromInt(15000)},
		},
		TotalAmount:   decimal.NewFromInt(30000),
		Status:        entities.StatusPending,
		PaymentMethod: entities.PaymentBankTransfer,
	}
}

func saved(o entities.Order) entities.Order {
	o.ID = orderID
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	return o
}

type orderMocks struct {
	repo     *mocks.MockOrderRepo
	cache    *mocks.MockCache
	notifier *mocks.MockStatusNotifier
}

func newOrderMocks(t *testing.T) orderMocks {
	return orderMocks{
		repo:     mocks.NewMockOrderRepo(t),
		cache:    mocks.NewMockCache(t),
		notifier: mocks.NewMockStatusNotifier(t),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(m orderMocks)

	testCases := []struct {
		name         string
		order        func() entities.Order
		mockBehavior MockBehavior
		wantErr      error
		wantField    string
	}{
		{
			name:  "OK",
			order: sampleOrder,
			mockBehavior: func(m orderMocks) {
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(saved(sampleOrder()), nil)
				m.repo.EXPECT().SaveItems(mock.Anything, orderID, sampleOrder().Items).Return(nil)
				m.cache.EXPECT().Set(orderID, mock.Anything)
			},
		},
		{
			name: "no items",
			order: func() entities.Order {
				o := sampleOrder()
				o.Items = nil
				return o
			},
			mockBehavior: func(m orderMocks) {},
			wantField:    "items",
		},
		{
			name: "zero quantity",
			order: func() entities.Order {
				o := sampleOrder()
				o.Items[0].Quantity = 0
				return o
			},
			mockBehavior: func(m orderMocks) {},
			wantField:    "quantity",
		},
		{
			name: "total does not match items",
			order: func() entities.Order {
				o := sampleOrder()
				o.TotalAmount = decimal.NewFromInt(15000)
				return o
			},
			mockBehavior: func(m orderMocks) {},
			wantField:    "total_amount",
		},
		{
			name: "unknown payment method",
			order: func() entities.Order {
				o := sampleOrder()
				o.PaymentMethod = "cash"
				return o
			},
			mockBehavior: func(m orderMocks) {},
			wantField:    "payment_method",
		},
		{
			name: "unknown status",
			order: func() entities.Order {
				o := sampleOrder()
				o.Status = "lost"
				return o
			},
			mockBehavior: func(m orderMocks) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:  "SaveOrder fails",
			order: sampleOrder,
			mockBehavior: func(m orderMocks) {
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "SaveItems fails",
			order: sampleOrder,
			mockBehavior: func(m orderMocks) {
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(saved(sampleOrder()), nil)
				m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "same idempotency key returns stored order",
			order: sampleOrder,
			mockBehavior: func(m orderMocks) {
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrOrderExists)
				m.repo.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-1").Return(saved(sampleOrder()), nil)
				m.cache.EXPECT().Set(orderID, mock.Anything)
			},
		},
		{
			name:  "gateway reference already used",
			order: sampleOrder,
			mockBehavior: func(m orderMocks) {
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrPaymentReferenceUsed)
			},
			wantErr: entities.ErrPaymentReferenceUsed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)
			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

			got, err := svc.CreateOrder(context.Background(), tc.order())

			if tc.wantField != "" {
				var verr *entities.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.wantField, verr.Field)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				var perr *entities.PersistenceError
				assert.Equal(t, errors.Is(tc.wantErr, dbError), errors.As(err, &perr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, orderID, got.ID)
			assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(30000)))
		})
	}
}

func TestOrderService_CreateOrder_GeneratesIdempotencyKey(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

	order := sampleOrder()
	order.IdempotencyKey = ""

	m.repo.EXPECT().
		SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool { return o.IdempotencyKey != "" })).
		Return(saved(order), nil)
	m.repo.EXPECT().SaveItems(mock.Anything, orderID, mock.Anything).Return(nil)
	m.cache.EXPECT().Set(orderID, mock.Anything)

	_, err := svc.CreateOrder(context.Background(), order)
	require.NoError(t, err)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(m orderMocks)

	order := saved(sampleOrder())

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "from cache",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(orderID).Return(order, true)
			},
		},
		{
			name: "from store",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(orderID).Return(entities.Order{}, false)
				m.repo.EXPECT().GetOrderByID(mock.Anything, orderID).Return(order, nil)
				m.cache.EXPECT().Set(orderID, order)
			},
		},
		{
			name: "not found",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(orderID).Return(entities.Order{}, false)
				m.repo.EXPECT().GetOrderByID(mock.Anything, orderID).Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "store error",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(orderID).Return(entities.Order{}, false)
				m.repo.EXPECT().GetOrderByID(mock.Anything, orderID).Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)
			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

			got, err := svc.GetOrderByID(context.Background(), orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}

func TestOrderService_SetStatus(t *testing.T) {
	type MockBehavior func(m orderMocks)

	testCases := []struct {
		name         string
		status       entities.Status
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "paid to shipped skips intermediate steps",
			status: entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				updated := saved(sampleOrder())
				updated.Status = entities.StatusShipped
				m.repo.EXPECT().
					UpdateOrder(mock.Anything, orderID, entities.OrderUpdate{Status: entities.StatusShipped}).
					Return(updated, nil)
				m.cache.EXPECT().Set(orderID, updated)
				m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, updated).Return(nil)
			},
		},
		{
			name:   "no notification for preparing",
			status: entities.StatusPreparing,
			mockBehavior: func(m orderMocks) {
				updated := saved(sampleOrder())
				updated.Status = entities.StatusPreparing
				m.repo.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything).Return(updated, nil)
				m.cache.EXPECT().Set(orderID, updated)
			},
		},
		{
			name:   "notifier failure is not an error",
			status: entities.StatusDelivered,
			mockBehavior: func(m orderMocks) {
				updated := saved(sampleOrder())
				updated.Status = entities.StatusDelivered
				m.repo.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything).Return(updated, nil)
				m.cache.EXPECT().Set(orderID, updated)
				m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything).Return(errors.New("broker down"))
			},
		},
		{
			name:   "not found",
			status: entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.repo.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything).Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "store error",
			status: entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.repo.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything).Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
		{
			name:         "unknown status never reaches the store",
			status:       "returned",
			mockBehavior: func(m orderMocks) {},
			wantErr:      entities.ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)
			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

			got, err := svc.SetStatus(context.Background(), orderID, tc.status)
			svc.Wait()

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, got.Status)
		})
	}
}

func TestOrderService_UpdateStatus_Reason(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

	cancelled := saved(sampleOrder())
	cancelled.Status = entities.StatusCancelled
	cancelled.CancellationReason = "out of stock"

	m.repo.EXPECT().
		UpdateOrder(mock.Anything, orderID, entities.OrderUpdate{Status: entities.StatusPreparing}).
		Return(saved(sampleOrder()), nil)
	m.repo.EXPECT().
		UpdateOrder(mock.Anything, orderID, entities.OrderUpdate{Status: entities.StatusCancelled, CancellationReason: "out of stock"}).
		Return(cancelled, nil)
	m.cache.EXPECT().Set(orderID, mock.Anything)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, cancelled).Return(nil)

	_, err := svc.UpdateStatus(context.Background(), orderID, entities.StatusPreparing, "ignored")
	require.NoError(t, err)

	got, err := svc.UpdateStatus(context.Background(), orderID, entities.StatusCancelled, "out of stock")
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "out of stock", got.CancellationReason)
}

func TestOrderService_ApproveReject(t *testing.T) {
	type paymentReviewer interface {
		ApprovePayment(ctx context.Context, id string) (entities.Order, error)
		RejectPayment(ctx context.Context, id string) (entities.Order, error)
	}

	testCases := []struct {
		name string
		call func(svc paymentReviewer) (entities.Order, error)
		want entities.Status
	}{
		{
			name: "approve",
			call: func(svc paymentReviewer) (entities.Order, error) {
				return svc.ApprovePayment(context.Background(), orderID)
			},
			want: entities.StatusPaid,
		},
		{
			name: "reject",
			call: func(svc paymentReviewer) (entities.Order, error) {
				return svc.RejectPayment(context.Background(), orderID)
			},
			want: entities.StatusPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

			updated := saved(sampleOrder())
			updated.Status = tc.want
			m.repo.EXPECT().
				UpdateOrder(mock.Anything, orderID, entities.OrderUpdate{Status: tc.want}).
				Return(updated, nil).Once()
			m.cache.EXPECT().Set(orderID, updated)

			got, err := tc.call(svc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)

			m.repo.EXPECT().
				UpdateOrder(mock.Anything, orderID, mock.Anything).
				Return(entities.Order{}, entities.ErrOrderNotFound).Once()

			_, err = tc.call(svc)
			assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		})
	}
}

func TestOrderService_Advance(t *testing.T) {
	flow := entities.StatusFlow()

	for i, current := range flow[:len(flow)-1] {
		t.Run(string(current), func(t *testing.T) {
			m := newOrderMocks(t)
			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

			next := flow[i+1]
			updated := saved(sampleOrder())
			updated.Status = next
			m.repo.EXPECT().
				UpdateOrder(mock.Anything, orderID, entities.OrderUpdate{Status: next}).
				Return(updated, nil)
			m.cache.EXPECT().Set(orderID, updated)
			m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

			got, err := svc.Advance(context.Background(), orderID, current)
			svc.Wait()

			require.NoError(t, err)
			assert.Equal(t, next, got.Status)
		})
	}

	for _, current := range []entities.Status{entities.StatusDelivered, entities.StatusCancelled} {
		t.Run(string(current), func(t *testing.T) {
			m := newOrderMocks(t)
			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

			_, err := svc.Advance(context.Background(), orderID, current)
			assert.ErrorIs(t, err, entities.ErrNoNextStatus)
		})
	}
}

func TestOrderService_AdvanceOrder(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

	current := saved(sampleOrder())
	current.Status = entities.StatusPaymentReview
	updated := current
	updated.Status = entities.StatusPaid

	m.cache.EXPECT().Get(orderID).Return(current, true)
	m.repo.EXPECT().
		UpdateOrder(mock.Anything, orderID, entities.OrderUpdate{Status: entities.StatusPaid}).
		Return(updated, nil)
	m.cache.EXPECT().Set(orderID, updated)

	got, err := svc.AdvanceOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaid, got.Status)
}

func TestOrderService_AttachReceipt(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

	_, err := svc.AttachReceipt(context.Background(), orderID, "")
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)

	url := "https://cdn.example.com/receipts/" + orderID + "-1.jpg"
	updated := saved(sampleOrder())
	updated.Status = entities.StatusPaymentReview
	updated.PaymentReceipt = url

	m.repo.EXPECT().
		UpdateOrder(mock.Anything, orderID, entities.OrderUpdate{Status: entities.StatusPaymentReview, PaymentReceipt: url}).
		Return(updated, nil)
	m.cache.EXPECT().Set(orderID, updated)

	got, err := svc.AttachReceipt(context.Background(), orderID, url)
	require.NoError(t, err)
	assert.Equal(t, url, got.PaymentReceipt)
}

func TestOrderService_ListOrders(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

	filter := entities.OrderFilter{Status: entities.StatusPaymentReview, Limit: 10}
	m.repo.EXPECT().ListOrders(mock.Anything, filter).Return([]entities.Order{saved(sampleOrder())}, nil).Once()

	orders, err := svc.ListOrders(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = svc.ListOrders(context.Background(), entities.OrderFilter{Status: "unknown"})
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	m.repo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, dbError).Once()
	_, err = svc.ListOrders(context.Background(), entities.OrderFilter{})
	var perr *entities.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestOrderService_WarmUpCache(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.repo, m.cache, m.notifier, time.Second)

	m.repo.EXPECT().
		ListOrders(mock.Anything, entities.OrderFilter{Limit: 100}).
		Return([]entities.Order{saved(sampleOrder())}, nil).Once()
	m.cache.EXPECT().Set(orderID, mock.Anything).Once()

	require.NoError(t, svc.WarmUpCache(context.Background(), 100))

	m.repo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, dbError).Once()
	assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 100), dbError)
}
