package domain

import "errors"

var (
	ErrNotFound           = errors.New("product not found")
	ErrInvalidName        = errors.New("name must be at least 2 characters")
	ErrInvalidDescription = errors.New("description must be at least 10 characters")
	ErrInvalidPrice       = errors.New("price must be greater than 0")
	ErrInvalidStock       = errors.New("stock quantity cannot be negative")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrNoImages           = errors.New("no images provided")
)
