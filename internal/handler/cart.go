package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductGetter interface {
	GetProductByID(ctx context.Context, id string) (entities.Product, error)
}

type CartStore interface {
	Items(userID string) []entities.CartItem
	Add(userID string, item entities.CartItem) entities.CartItem
	Merge(userID string, items []entities.CartItem) []entities.CartItem
	SetQuantity(userID, itemID string, quantity int) error
	Remove(userID, itemID string) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     *middleware.Auth
	products ProductGetter
	carts    CartStore
}

func NewCartHandler(logger *slog.Logger, auth *middleware.Auth, products ProductGetter, carts CartStore) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		auth:     auth,
		products: products,
		carts:    carts,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(h.auth.Authenticate)
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Patch("/items/{id}", h.UpdateItem)
		r.Delete("/items/{id}", h.RemoveItem)
		r.Post("/merge", h.Merge)
	})
}

// GetCart returns the caller's cart.
// @Summary      Get cart
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Router       /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	utils.WriteJSON(w, CartEntityToJSON(h.carts.Items(user.ID)), http.StatusOK)
}

// AddItem adds a product at its current price.
// @Summary      Add cart item
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Param        request  body      AddCartItemRequest  true  "Item"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	var req AddCartItemRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteFieldError(w, "body", "invalid json")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.cartItem(ctx, req)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	h.carts.Add(user.ID, item)

	utils.WriteJSON(w, CartEntityToJSON(h.carts.Items(user.ID)), http.StatusOK)
}

// UpdateItem sets a line quantity; zero removes the line.
// @Summary      Update cart item
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Param        id       path      string                 true  "Cart item ID"
// @Param        request  body      UpdateCartItemRequest  true  "Quantity"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	var req UpdateCartItemRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteFieldError(w, "body", "invalid json")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.carts.SetQuantity(user.ID, chi.URLParam(r, "id"), req.Quantity); err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(h.carts.Items(user.ID)), http.StatusOK)
}

// RemoveItem deletes a cart line.
// @Summary      Remove cart item
// @Tags         cart
// @Security     BearerAuth
// @Param        id   path      string  true  "Cart item ID"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	if err := h.carts.Remove(user.ID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(h.carts.Items(user.ID)), http.StatusOK)
}

// Merge folds a cart built before sign in into the caller's cart.
// Unknown products are skipped.
// @Summary      Merge guest cart
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Param        request  body      MergeCartRequest  true  "Guest cart"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /cart/merge [post]
func (h *CartHandler) Merge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	var req MergeCartRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteFieldError(w, "body", "invalid json")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]entities.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := h.cartItem(ctx, it)
		if err != nil {
			h.logger.WarnContext(ctx, "skipping cart item", slog.String("product_id", it.ProductID), slog.Any("error", err))
			continue
		}
		items = append(items, item)
	}

	utils.WriteJSON(w, CartEntityToJSON(h.carts.Merge(user.ID, items)), http.StatusOK)
}

func (h *CartHandler) cartItem(ctx context.Context, req AddCartItemRequest) (entities.CartItem, error) {
	product, err := h.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return entities.CartItem{}, err
	}
	return entities.CartItem{
		Product:  product,
		Quantity: req.Quantity,
		Size:     req.Size,
		Color:    req.Color,
	}, nil
}
