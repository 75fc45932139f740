package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = fmt.Errorf("quantity must be between %d and %d", MinQuantity, MaxQuantity)
)

// InsufficientStockError names the product and how many units are actually
// available; the count goes back to the client verbatim.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: only %d available", e.ProductName, e.Available)
}
