package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderExists     = errors.New("order already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrCartItemMissing = errors.New("cart item not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrNoNextStatus    = errors.New("order has no next status")

	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutNotStarted = errors.New("checkout not started")
	ErrInvalidStep        = errors.New("action not allowed at current checkout step")
	ErrPaymentNotVerified = errors.New("payment not verified")

	ErrUnknownPaymentReference = errors.New("unknown payment reference")
	ErrPaymentReferenceUsed    = errors.New("payment reference already used")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
)

// ValidationError is a problem with customer input. It never reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PersistenceError wraps a failed store call.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
