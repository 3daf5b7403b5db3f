package entities

import (
	"fmt"
	"slices"

	"github.com/gabriel-vasile/mimetype"
)

type Step int

const (
	StepCart Step = iota + 1
	StepShipping
	StepPayment
	StepReceipt
)

type CheckoutSession struct {
	UserID         string
	Step           Step
	Shipping       Shipping
	PaymentMethod  PaymentMethod
	IdempotencyKey string
	// Set once the bank transfer order is inserted, so a retried receipt submit reuses it.
	PendingOrderID string
}

// PaymentParams is what the hosted card widget needs to open.
type PaymentParams struct {
	AmountMinor int64
	Email       string
	PublicKey   string
}

// GatewayResult is the outcome reported by the card widget.
type GatewayResult struct {
	Reference string
	Cancelled bool
}

// Transaction is the gateway's view of a card payment.
type Transaction struct {
	Reference   string
	Status      string
	AmountMinor int64
	Email       string
}

func (t Transaction) Succeeded() bool {
	return t.Status == "success"
}

// Completion is the result of finishing a card payment. Cancelled means the
// customer closed the widget and no order was created.
type Completion struct {
	Order     Order
	Cancelled bool
}

const MaxReceiptSize = 5 << 20

var allowedReceiptTypes = []string{"image/jpeg", "image/png", "application/pdf"}

type ReceiptFile struct {
	Name string
	Data []byte
}

// Validate checks size and the sniffed content type, returning the detected type.
func (f ReceiptFile) Validate() (*mimetype.MIME, error) {
	if len(f.Data) == 0 {
		return nil, &ValidationError{Field: "receipt", Message: "file is empty"}
	}
	if len(f.Data) > MaxReceiptSize {
		return nil, &ValidationError{Field: "receipt", Message: fmt.Sprintf("file exceeds %d MB", MaxReceiptSize>>20)}
	}
	mtype := mimetype.Detect(f.Data)
	if !slices.ContainsFunc(allowedReceiptTypes, mtype.Is) {
		return nil, &ValidationError{Field: "receipt", Message: "only JPEG, PNG and PDF files are accepted"}
	}
	return mtype, nil
}
