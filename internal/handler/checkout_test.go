package handler_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartReceipt(t *testing.T, field, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCheckoutHandler_Steps(t *testing.T) {
	session := entities.CheckoutSession{UserID: customerID, Step: entities.StepShipping}

	testCases := []struct {
		name         string
		method       string
		path         string
		body         string
		mockBehavior func(flow *mocks.MockCheckoutFlow)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "start with empty cart",
			method: http.MethodPost,
			path:   "/checkout",
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().Start(mock.Anything, customerID).Return(entities.CheckoutSession{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "cart is empty",
		},
		{
			name:   "continue",
			method: http.MethodPost,
			path:   "/checkout/continue",
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().Continue(mock.Anything, customerID).Return(session, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"step":2`,
		},
		{
			name:   "shipping missing phone",
			method: http.MethodPost,
			path:   "/checkout/shipping",
			body:   `{"name":"Ada","email":"ada@example.com","address":"1 Main St"}`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().
					SubmitShipping(mock.Anything, customerID, entities.Shipping{Name: "Ada", Email: "ada@example.com", Address: "1 Main St"}).
					Return(entities.CheckoutSession{}, &entities.ValidationError{Field: "phone", Message: "is required"}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"phone":"is required"`,
		},
		{
			name:         "shipping with broken json",
			method:       http.MethodPost,
			path:         "/checkout/shipping",
			body:         `{"name":`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "payment method at wrong step",
			method: http.MethodPost,
			path:   "/checkout/payment-method",
			body:   `{"payment_method":"card"}`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().
					SelectPaymentMethod(mock.Anything, customerID, entities.PaymentCard).
					Return(entities.CheckoutSession{}, entities.ErrInvalidStep).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "payment method missing",
			method:       http.MethodPost,
			path:         "/checkout/payment-method",
			body:         `{}`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "card params",
			method: http.MethodGet,
			path:   "/checkout/card",
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().CardPaymentParams(mock.Anything, customerID).Return(entities.PaymentParams{
					AmountMinor: 3000000, Email: "ada@example.com", PublicKey: "pk_test",
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"amount":3000000`,
		},
		{
			name:   "card cancelled",
			method: http.MethodPost,
			path:   "/checkout/card",
			body:   `{"cancelled":true}`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().
					CompleteCardPayment(mock.Anything, customerID, entities.GatewayResult{Cancelled: true}).
					Return(entities.Completion{Cancelled: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"cancelled":true`,
		},
		{
			name:   "card paid",
			method: http.MethodPost,
			path:   "/checkout/card",
			body:   `{"reference":"T123"}`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				order := testOrder(entities.StatusPaid)
				order.PaymentReceipt = "T123"
				flow.EXPECT().
					CompleteCardPayment(mock.Anything, customerID, entities.GatewayResult{Reference: "T123"}).
					Return(entities.Completion{Order: order}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"payment_receipt":"T123"`,
		},
		{
			name:   "card not verified",
			method: http.MethodPost,
			path:   "/checkout/card",
			body:   `{"reference":"T123"}`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().
					CompleteCardPayment(mock.Anything, customerID, mock.Anything).
					Return(entities.Completion{}, entities.ErrPaymentNotVerified).Once()
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name:   "card gateway down",
			method: http.MethodPost,
			path:   "/checkout/card",
			body:   `{"reference":"T123"}`,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().
					CompleteCardPayment(mock.Anything, customerID, mock.Anything).
					Return(entities.Completion{}, fmt.Errorf("%w: %w", entities.ErrGatewayUnavailable, assert.AnError)).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "cancel checkout",
			method: http.MethodDelete,
			path:   "/checkout",
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().Cancel(mock.Anything, customerID).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flow := mocks.NewMockCheckoutFlow(t)
			tc.mockBehavior(flow)

			h := handler.NewCheckoutHandler(discardLogger(), testAuth(), flow)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Authorization", token(t, customerID, ""))
			rr := serve(h, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestCheckoutHandler_SubmitReceipt(t *testing.T) {
	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 1024)...)

	testCases := []struct {
		name         string
		field        string
		data         []byte
		mockBehavior func(flow *mocks.MockCheckoutFlow)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "OK",
			field: "receipt",
			data:  jpeg,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				order := testOrder(entities.StatusPaymentReview)
				order.PaymentReceipt = "https://cdn.example.com/" + orderID + "-1.jpg"
				flow.EXPECT().
					SubmitReceipt(mock.Anything, customerID, entities.ReceiptFile{Name: "receipt.jpg", Data: jpeg}).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"payment_review"`,
		},
		{
			name:         "missing file",
			field:        "other",
			data:         jpeg,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"receipt"`,
		},
		{
			name:         "far too large",
			field:        "receipt",
			data:         bytes.Repeat([]byte{0xFF}, 6<<20),
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"receipt"`,
		},
		{
			name:  "upload failure",
			field: "receipt",
			data:  jpeg,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().SubmitReceipt(mock.Anything, customerID, mock.Anything).
					Return(entities.Order{}, &entities.PersistenceError{Op: "upload receipt", Err: assert.AnError}).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:  "store lost the order while creating it",
			field: "receipt",
			data:  jpeg,
			mockBehavior: func(flow *mocks.MockCheckoutFlow) {
				flow.EXPECT().SubmitReceipt(mock.Anything, customerID, mock.Anything).
					Return(entities.Order{}, &entities.PersistenceError{Op: "create order", Err: entities.ErrOrderNotFound}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "failed to save order",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flow := mocks.NewMockCheckoutFlow(t)
			tc.mockBehavior(flow)

			h := handler.NewCheckoutHandler(discardLogger(), testAuth(), flow)

			body, contentType := multipartReceipt(t, tc.field, "receipt.jpg", tc.data)
			req := httptest.NewRequest(http.MethodPost, "/checkout/receipt", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Authorization", token(t, customerID, ""))
			rr := serve(h, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
