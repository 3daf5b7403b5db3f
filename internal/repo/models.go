package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "user_id", "idempotency_key",
	"customer_name", "email", "phone", "address", "city", "state",
	"total_amount", "status", "payment_method",
	"payment_receipt", "cancellation_reason",
	"created_at", "updated_at",
}

var itemColumns = []string{
	"order_id", "product_id", "product_name", "quantity", "size", "color", "unit_price",
}

type Order struct {
	ID                 string          `db:"id"`
	UserID             string          `db:"user_id"`
	IdempotencyKey     string          `db:"idempotency_key"`
	CustomerName       string          `db:"customer_name"`
	Email              string          `db:"email"`
	Phone              string          `db:"phone"`
	Address            string          `db:"address"`
	City               string          `db:"city"`
	State              string          `db:"state"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	Status             string          `db:"status"`
	PaymentMethod      string          `db:"payment_method"`
	PaymentReceipt     sql.NullString  `db:"payment_receipt"`
	CancellationReason sql.NullString  `db:"cancellation_reason"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

type Item struct {
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	Size        sql.NullString  `db:"size"`
	Color       sql.NullString  `db:"color"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

type Product struct {
	ID    string          `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
}

// OrderToEntity fails on a status outside the enum, which means a broken row.
func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	status, err := entities.ParseStatus(o.Status)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:             o.ID,
		UserID:         o.UserID,
		IdempotencyKey: o.IdempotencyKey,
		Shipping: entities.Shipping{
			Name:    o.CustomerName,
			Email:   o.Email,
			Phone:   o.Phone,
			Address: o.Address,
			City:    o.City,
			State:   o.State,
		},
		TotalAmount:        o.TotalAmount,
		Status:             status,
		PaymentMethod:      entities.PaymentMethod(o.PaymentMethod),
		PaymentReceipt:     nullStringToString(o.PaymentReceipt),
		CancellationReason: nullStringToString(o.CancellationReason),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	order.Items = make([]entities.Item, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order, nil
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Size:        nullStringToString(i.Size),
		Color:       nullStringToString(i.Color),
		UnitPrice:   i.UnitPrice,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
