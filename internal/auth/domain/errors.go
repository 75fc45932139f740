package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNothingToUpdate    = errors.New("no fields to update")

	ErrInvalidEmail    = errors.New("a valid email is required")
	ErrWeakPassword    = errors.New("password must be at least 6 characters")
	ErrMissingName     = errors.New("first name and last name are required")
	ErrMissingCheckout = errors.New("address, city and country are required")
)
