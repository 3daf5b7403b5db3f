// Package notify delivers transactional order emails. Producers publish
// events to Kafka and return immediately; the consumer side renders and
// sends the emails.
package notify

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type Event struct {
	ID         string    `json:"id" validate:"required"`
	Type       string    `json:"type" validate:"required,oneof=order.created order.status_changed"`
	OccurredAt time.Time `json:"occurred_at"`
	Order      Order     `json:"order" validate:"required"`
}

type Order struct {
	ID                 string          `json:"id" validate:"required"`
	CustomerName       string          `json:"customer_name"`
	Email              string          `json:"email" validate:"required,email"`
	Phone              string          `json:"phone"`
	Address            string          `json:"address"`
	City               string          `json:"city,omitempty"`
	State              string          `json:"state,omitempty"`
	Items              []Item          `json:"items" validate:"dive"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Status             string          `json:"status" validate:"required"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentReceipt     string          `json:"payment_receipt,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

type Item struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func OrderFromEntity(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
			UnitPrice:   it.UnitPrice,
		})
	}

	return Order{
		ID:                 o.ID,
		CustomerName:       o.Shipping.Name,
		Email:              o.Shipping.Email,
		Phone:              o.Shipping.Phone,
		Address:            o.Shipping.Address,
		City:               o.Shipping.City,
		State:              o.Shipping.State,
		Items:              items,
		TotalAmount:        o.TotalAmount,
		Status:             string(o.Status),
		PaymentMethod:      string(o.PaymentMethod),
		PaymentReceipt:     o.PaymentReceipt,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
	}
}
