package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderManager interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.Status, reason string) (entities.Order, error)
	ApprovePayment(ctx context.Context, id string) (entities.Order, error)
	RejectPayment(ctx context.Context, id string) (entities.Order, error)
	AdvanceOrder(ctx context.Context, id string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     *middleware.Auth
	svc      OrderManager
}

func NewHTTPHandler(logger *slog.Logger, auth *middleware.Auth, svc OrderManager) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth.Authenticate)
		r.Get("/orders/{id}", h.GetOrder)

		r.Route("/admin/orders", func(r chi.Router) {
			r.Use(h.auth.RequireAdmin)
			r.Get("/", h.ListOrders)
			r.Get("/{id}", h.GetOrderAdmin)
			r.Patch("/{id}/status", h.UpdateStatus)
			r.Post("/{id}/approve", h.ApprovePayment)
			r.Post("/{id}/reject", h.RejectPayment)
			r.Post("/{id}/advance", h.Advance)
		})
	})
}

// GetOrder returns one of the caller's orders.
// @Summary      Get own order
// @Description  Order confirmation view. Orders of other customers are reported as not found.
// @Tags         orders
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	user, _ := middleware.UserFromContext(ctx)
	id := chi.URLParam(r, "id")

	order, err := h.svc.GetOrderByID(ctx, id)
	if err == nil && order.UserID != user.ID {
		err = entities.ErrOrderNotFound
	}
	orderRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders lists orders for the admin console.
// @Summary      List orders
// @Tags         admin
// @Security     BearerAuth
// @Param        status   query     string  false  "Filter by status"
// @Param        user_id  query     string  false  "Filter by customer"
// @Param        limit    query     int     false  "Page size"
// @Param        offset   query     int     false  "Page offset"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /admin/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entities.OrderFilter{UserID: q.Get("user_id")}
	if s := q.Get("status"); s != "" {
		status, err := entities.ParseStatus(s)
		if err != nil {
			utils.WriteFieldError(w, "status", "unknown status")
			return
		}
		filter.Status = status
	}
	for name, dst := range map[string]*uint64{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || (name == "limit" && n > 200) {
			utils.WriteFieldError(w, name, "must be a number up to 200")
			return
		}
		*dst = n
	}

	orders, err := h.svc.ListOrders(ctx, filter)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrderAdmin returns any order.
// @Summary      Get order
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/orders/{id} [get]
func (h *HTTPHandler) GetOrderAdmin(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, id string) (entities.Order, error) {
		return h.svc.GetOrderByID(ctx, id)
	})
}

// UpdateStatus sets an order's status. Any status may follow any other.
// @Summary      Set order status
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Param        id       path      string               true  "Order ID"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/orders/{id}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteFieldError(w, "status", "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.respond(w, r, func(ctx context.Context, id string) (entities.Order, error) {
		return h.svc.UpdateStatus(ctx, id, req.Status, req.Reason)
	})
}

// ApprovePayment marks a reviewed bank transfer as paid.
// @Summary      Approve payment
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/orders/{id}/approve [post]
func (h *HTTPHandler) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.ApprovePayment)
}

// RejectPayment sends a reviewed bank transfer back to pending.
// @Summary      Reject payment
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/orders/{id}/reject [post]
func (h *HTTPHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.RejectPayment)
}

// Advance moves the order to the next step of the timeline.
// @Summary      Advance order
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "No next status"
// @Router       /admin/orders/{id}/advance [post]
func (h *HTTPHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.AdvanceOrder)
}

func (h *HTTPHandler) respond(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id string) (entities.Order, error)) {
	ctx := r.Context()
	order, err := fn(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
