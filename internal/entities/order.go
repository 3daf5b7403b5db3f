package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentBankTransfer
}

type Shipping struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Phone   string `validate:"required"`
	Address string `validate:"required"`
	// City and State are collected but not required to leave the shipping step.
	City  string
	State string
}

type Item struct {
	ProductID   string
	ProductName string
	Quantity    int
	Size        string
	Color       string
	UnitPrice   decimal.Decimal
}

func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID             string
	UserID         string
	IdempotencyKey string

	Shipping Shipping
	Items    []Item

	// Captured at creation, never recomputed.
	TotalAmount decimal.Decimal

	Status        Status
	PaymentMethod PaymentMethod
	// URL of the uploaded receipt for bank transfers, gateway reference for card payments.
	PaymentReceipt     string
	CancellationReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemsTotal sums unit price times quantity over items.
func ItemsTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// OrderUpdate holds the mutable part of an order. Empty strings leave the column untouched.
type OrderUpdate struct {
	Status             Status
	PaymentReceipt     string
	CancellationReason string
}

type OrderFilter struct {
	Status Status
	UserID string
	Limit  uint64
	Offset uint64
}
