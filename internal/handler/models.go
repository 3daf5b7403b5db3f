package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

// Order is an order as returned to customers and admins
type Order struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	Shipping           Shipping        `json:"shipping"`
	Items              []Item          `json:"items"`
	TotalAmount        decimal.Decimal `json:"total_amount" swaggertype:"string" example:"30000"`
	Status             entities.Status `json:"status" swaggertype:"string" example:"payment_review"`
	PaymentMethod      string          `json:"payment_method" example:"bank_transfer"`
	PaymentReceipt     string          `json:"payment_receipt,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Shipping contact and delivery address
type Shipping struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

// Item is an order line
type Item struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
			UnitPrice:   it.UnitPrice,
		})
	}

	return Order{
		ID:                 o.ID,
		UserID:             o.UserID,
		Shipping:           ShippingEntityToJSON(o.Shipping),
		Items:              items,
		TotalAmount:        o.TotalAmount,
		Status:             o.Status,
		PaymentMethod:      string(o.PaymentMethod),
		PaymentReceipt:     o.PaymentReceipt,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func ShippingEntityToJSON(s entities.Shipping) Shipping {
	return Shipping(s)
}

func ShippingJSONToEntity(s Shipping) entities.Shipping {
	return entities.Shipping(s)
}

// UpdateStatusRequest sets any status; reason is kept only for cancellations
type UpdateStatusRequest struct {
	Status entities.Status `json:"status" validate:"required" swaggertype:"string" example:"shipped"`
	Reason string          `json:"reason,omitempty"`
}

// CartItem is a line in the customer's cart
type CartItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// Cart with its current total
type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
}

func CartEntityToJSON(items []entities.CartItem) Cart {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, CartItem{
			ID:          it.ID,
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			UnitPrice:   it.Product.Price,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
			Subtotal:    it.Subtotal(),
		})
	}
	return Cart{Items: out, Total: entities.CartTotal(items)}
}

// AddCartItemRequest adds a product variant to the cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1,lte=99"`
	Size      string `json:"size,omitempty" validate:"max=16"`
	Color     string `json:"color,omitempty" validate:"max=32"`
}

// UpdateCartItemRequest sets a line quantity; 0 removes the line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}

// MergeCartRequest carries a cart built before sign in
type MergeCartRequest struct {
	Items []AddCartItemRequest `json:"items" validate:"required,dive"`
}

// Session is the customer's position in checkout
type Session struct {
	Step           int      `json:"step" example:"2"`
	Shipping       Shipping `json:"shipping"`
	PaymentMethod  string   `json:"payment_method,omitempty"`
	PendingOrderID string   `json:"pending_order_id,omitempty"`
}

func SessionEntityToJSON(s entities.CheckoutSession) Session {
	return Session{
		Step:           int(s.Step),
		Shipping:       ShippingEntityToJSON(s.Shipping),
		PaymentMethod:  string(s.PaymentMethod),
		PendingOrderID: s.PendingOrderID,
	}
}

// PaymentMethodRequest selects card or bank_transfer
type PaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required" example:"card"`
}

// CardParams are passed to the hosted card widget
type CardParams struct {
	Amount    int64  `json:"amount" example:"3000000"`
	Email     string `json:"email"`
	PublicKey string `json:"public_key"`
}

// CardResultRequest is what the card widget reported
type CardResultRequest struct {
	Reference string `json:"reference"`
	Cancelled bool   `json:"cancelled"`
}

// CardResultResponse holds the order, unless the customer cancelled
type CardResultResponse struct {
	Cancelled bool   `json:"cancelled"`
	Order     *Order `json:"order,omitempty"`
}
