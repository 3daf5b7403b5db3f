package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

type CartItem struct {
	ID       string
	Product  Product
	Quantity int
	Size     string
	Color    string
}

// SameLine reports whether two cart items describe the same product variant.
func (c CartItem) SameLine(other CartItem) bool {
	return c.Product.ID == other.Product.ID && c.Size == other.Size && c.Color == other.Color
}

func (c CartItem) Subtotal() decimal.Decimal {
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// OrderItem copies the cart line into an order line, capturing the current price.
func (c CartItem) OrderItem() Item {
	return Item{
		ProductID:   c.Product.ID,
		ProductName: c.Product.Name,
		Quantity:    c.Quantity,
		Size:        c.Size,
		Color:       c.Color,
		UnitPrice:   c.Product.Price,
	}
}

func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func CartOrderItems(items []CartItem) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.OrderItem())
	}
	return out
}
