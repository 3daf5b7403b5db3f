package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutFlow interface {
	Start(ctx context.Context, userID string) (entities.CheckoutSession, error)
	Session(ctx context.Context, userID string) (entities.CheckoutSession, error)
	Continue(ctx context.Context, userID string) (entities.CheckoutSession, error)
	Back(ctx context.Context, userID string) (entities.CheckoutSession, error)
	SubmitShipping(ctx context.Context, userID string, shipping entities.Shipping) (entities.CheckoutSession, error)
	SelectPaymentMethod(ctx context.Context, userID string, method entities.PaymentMethod) (entities.CheckoutSession, error)
	CardPaymentParams(ctx context.Context, userID string) (entities.PaymentParams, error)
	CompleteCardPayment(ctx context.Context, userID string, result entities.GatewayResult) (entities.Completion, error)
	SubmitReceipt(ctx context.Context, userID string, file entities.ReceiptFile) (entities.Order, error)
	Cancel(ctx context.Context, userID string) error
}

// multipart overhead allowed on top of the receipt itself
const receiptFormSlack = 64 << 10

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     *middleware.Auth
	flow     CheckoutFlow
}

func NewCheckoutHandler(logger *slog.Logger, auth *middleware.Auth, flow CheckoutFlow) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: validator.New(),
		auth:     auth,
		flow:     flow,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Use(h.auth.Authenticate)
		r.Post("/", h.Start)
		r.Get("/", h.Session)
		r.Delete("/", h.Cancel)
		r.Post("/continue", h.Continue)
		r.Post("/back", h.Back)
		r.Post("/shipping", h.SubmitShipping)
		r.Post("/payment-method", h.SelectPaymentMethod)
		r.Get("/card", h.CardParams)
		r.Post("/card", h.CompleteCard)
		r.Post("/receipt", h.SubmitReceipt)
	})
}

// Start opens or resumes checkout.
// @Summary      Start checkout
// @Tags         checkout
// @Security     BearerAuth
// @Success      200  {object}  Session
// @Failure      409  {object}  utils.ErrorResponse "Cart is empty"
// @Router       /checkout [post]
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.session(w, r, h.flow.Start)
}

// Session returns the current checkout step.
// @Summary      Get checkout session
// @Tags         checkout
// @Security     BearerAuth
// @Success      200  {object}  Session
// @Failure      409  {object}  utils.ErrorResponse "Checkout not started"
// @Router       /checkout [get]
func (h *CheckoutHandler) Session(w http.ResponseWriter, r *http.Request) {
	h.session(w, r, h.flow.Session)
}

// Continue leaves the cart review step.
// @Summary      Continue to shipping
// @Tags         checkout
// @Security     BearerAuth
// @Success      200  {object}  Session
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/continue [post]
func (h *CheckoutHandler) Continue(w http.ResponseWriter, r *http.Request) {
	h.session(w, r, h.flow.Continue)
}

// Back returns to the previous step.
// @Summary      Previous step
// @Tags         checkout
// @Security     BearerAuth
// @Success      200  {object}  Session
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/back [post]
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.session(w, r, h.flow.Back)
}

// SubmitShipping stores the shipping form.
// @Summary      Submit shipping details
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Param        request  body      Shipping  true  "Shipping details"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/shipping [post]
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var req Shipping
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteFieldError(w, "body", "invalid json")
		return
	}
	h.session(w, r, func(ctx context.Context, userID string) (entities.CheckoutSession, error) {
		return h.flow.SubmitShipping(ctx, userID, ShippingJSONToEntity(req))
	})
}

// SelectPaymentMethod picks card or bank transfer.
// @Summary      Select payment method
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Param        request  body      PaymentMethodRequest  true  "Payment method"
// @Success      200  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/payment-method [post]
func (h *CheckoutHandler) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req PaymentMethodRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteFieldError(w, "body", "invalid json")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	h.session(w, r, func(ctx context.Context, userID string) (entities.CheckoutSession, error) {
		return h.flow.SelectPaymentMethod(ctx, userID, entities.PaymentMethod(req.PaymentMethod))
	})
}

// CardParams returns what the card widget needs.
// @Summary      Card payment parameters
// @Tags         checkout
// @Security     BearerAuth
// @Success      200  {object}  CardParams
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/card [get]
func (h *CheckoutHandler) CardParams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	params, err := h.flow.CardPaymentParams(ctx, user.ID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, CardParams{
		Amount:    params.AmountMinor,
		Email:     params.Email,
		PublicKey: params.PublicKey,
	}, http.StatusOK)
}

// CompleteCard finishes the card path with the widget's result.
// @Summary      Complete card payment
// @Description  A cancelled payment creates nothing and keeps the payment step.
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Param        request  body      CardResultRequest  true  "Widget result"
// @Success      200  {object}  CardResultResponse "Cancelled"
// @Success      201  {object}  CardResultResponse "Order created"
// @Failure      402  {object}  utils.ErrorResponse "Payment not verified"
// @Failure      502  {object}  utils.ErrorResponse "Payment provider unavailable"
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /checkout/card [post]
func (h *CheckoutHandler) CompleteCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	var req CardResultRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteFieldError(w, "body", "invalid json")
		return
	}

	done, err := h.flow.CompleteCardPayment(ctx, user.ID, entities.GatewayResult{
		Reference: req.Reference,
		Cancelled: req.Cancelled,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	if done.Cancelled {
		utils.WriteJSON(w, CardResultResponse{Cancelled: true}, http.StatusOK)
		return
	}

	order := OrderEntityToJSON(done.Order)
	utils.WriteJSON(w, CardResultResponse{Order: &order}, http.StatusCreated)
}

// SubmitReceipt uploads the bank transfer receipt and creates the order.
// @Summary      Submit transfer receipt
// @Tags         checkout
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Param        receipt  formData  file  true  "JPEG, PNG or PDF up to 5 MB"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /checkout/receipt [post]
func (h *CheckoutHandler) SubmitReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	file, err := readReceipt(w, r)
	if err != nil {
		var verr *entities.ValidationError
		if errors.As(err, &verr) {
			utils.WriteFieldError(w, verr.Field, verr.Message)
			return
		}
		utils.WriteFieldError(w, "receipt", "a receipt file is required")
		return
	}

	order, err := h.flow.SubmitReceipt(ctx, user.ID, file)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// Cancel leaves checkout; the cart is kept.
// @Summary      Cancel checkout
// @Tags         checkout
// @Security     BearerAuth
// @Success      204
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout [delete]
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	if err := h.flow.Cancel(ctx, user.ID); err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) session(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID string) (entities.CheckoutSession, error)) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	sess, err := fn(ctx, user.ID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, SessionEntityToJSON(sess), http.StatusOK)
}

// readReceipt reads the "receipt" form file. The file is read one byte past
// the size limit so validation still rejects it as too large.
func readReceipt(w http.ResponseWriter, r *http.Request) (entities.ReceiptFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, entities.MaxReceiptSize+receiptFormSlack)

	part, header, err := r.FormFile("receipt")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return entities.ReceiptFile{}, &entities.ValidationError{Field: "receipt", Message: "file exceeds 5 MB"}
		}
		return entities.ReceiptFile{}, err
	}
	defer part.Close()

	data, err := io.ReadAll(io.LimitReader(part, entities.MaxReceiptSize+1))
	if err != nil {
		return entities.ReceiptFile{}, err
	}
	return entities.ReceiptFile{Name: header.Filename, Data: data}, nil
}
