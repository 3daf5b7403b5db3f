package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const orderID = "5f0c1a8e-6a51-4a8f-9c55-2d0f3f2b9e11"

func testOrder(status entities.Status) entities.Order {
	return entities.Order{
		ID:     orderID,
		UserID: customerID,
		Items: []entities.Item{
			{ProductID: "A", ProductName: "Tee", Quantity: 2, UnitPrice: decimal.NewFromInt(15000)},
		},
		TotalAmount:   decimal.NewFromInt(30000),
		Status:        status,
		PaymentMethod: entities.PaymentBankTransfer,
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		auth         string
		mockBehavior func(svc *mocks.MockOrderManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			auth: token(t, customerID, ""),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(testOrder(entities.StatusPaymentReview), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"payment_review"`,
		},
		{
			name: "order of another customer",
			auth: token(t, "user-2", ""),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(testOrder(entities.StatusPaid), nil).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "not found",
			auth: token(t, customerID, ""),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "internal error",
			auth: token(t, customerID, ""),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:         "unauthenticated",
			mockBehavior: func(svc *mocks.MockOrderManager) {},
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderManager(t)
			tc.mockBehavior(svc)

			h := handler.NewHTTPHandler(discardLogger(), testAuth(), svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rr := serve(h, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Admin(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		path         string
		body         string
		auth         string
		mockBehavior func(svc *mocks.MockOrderManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "customer is forbidden",
			method:       http.MethodPost,
			path:         "/admin/orders/" + orderID + "/approve",
			auth:         token(t, customerID, ""),
			mockBehavior: func(svc *mocks.MockOrderManager) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:   "approve",
			method: http.MethodPost,
			path:   "/admin/orders/" + orderID + "/approve",
			auth:   token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().ApprovePayment(mock.Anything, orderID).Return(testOrder(entities.StatusPaid), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paid"`,
		},
		{
			name:   "reject unknown order",
			method: http.MethodPost,
			path:   "/admin/orders/" + orderID + "/reject",
			auth:   token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().RejectPayment(mock.Anything, orderID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "advance past delivered",
			method: http.MethodPost,
			path:   "/admin/orders/" + orderID + "/advance",
			auth:   token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().AdvanceOrder(mock.Anything, orderID).Return(entities.Order{}, entities.ErrNoNextStatus).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "set status",
			method: http.MethodPatch,
			path:   "/admin/orders/" + orderID + "/status",
			body:   `{"status":"cancelled","reason":"out of stock"}`,
			auth:   token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, orderID, entities.StatusCancelled, "out of stock").
					Return(testOrder(entities.StatusCancelled), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name:         "set unknown status",
			method:       http.MethodPatch,
			path:         "/admin/orders/" + orderID + "/status",
			body:         `{"status":"returned"}`,
			auth:         token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "list by status",
			method: http.MethodGet,
			path:   "/admin/orders?status=payment_review&limit=10",
			auth:   token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().
					ListOrders(mock.Anything, entities.OrderFilter{Status: entities.StatusPaymentReview, Limit: 10}).
					Return([]entities.Order{testOrder(entities.StatusPaymentReview)}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + orderID + `"`,
		},
		{
			name:         "list with bad limit",
			method:       http.MethodGet,
			path:         "/admin/orders?limit=-1",
			auth:         token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "get any order",
			method: http.MethodGet,
			path:   "/admin/orders/" + orderID,
			auth:   token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(entities.StatusShipped), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_amount":"30000"`,
		},
		{
			name:   "store failure",
			method: http.MethodPost,
			path:   "/admin/orders/" + orderID + "/approve",
			auth:   token(t, adminID, "admin"),
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().ApprovePayment(mock.Anything, orderID).
					Return(entities.Order{}, &entities.PersistenceError{Op: "update order", Err: errors.New("db error")}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"failed to save order"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderManager(t)
			tc.mockBehavior(svc)

			h := handler.NewHTTPHandler(discardLogger(), testAuth(), svc)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Authorization", tc.auth)
			rr := serve(h, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
