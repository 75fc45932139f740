package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidPayment       = errors.New("payment method must be cod, online or card")
	ErrInvalidShipping      = errors.New("shipping address, city, state and postal code are required")
	ErrOrderNumberExhausted = errors.New("could not generate a unique order number")
)

// OutOfStockError reports a line the warehouse cannot fill. No partial
// orders: one failing line aborts the whole placement.
type OutOfStockError struct {
	ProductName string
	Available   int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: only %d available", e.ProductName, e.Available)
}

// IllegalTransitionError is returned when an admin tries to move an order
// to a state the lifecycle does not allow.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}
