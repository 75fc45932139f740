package domain

import "errors"

var (
	ErrNotFound         = errors.New("sample request not found")
	ErrInvalidSize      = errors.New("sample size must be 2ml, 5ml or 10ml")
	ErrInvalidStatus    = errors.New("invalid sample request status")
	ErrInvalidRequest   = errors.New("name, email, phone and shipping details are required")
	ErrDuplicateRequest = errors.New("you already have a pending request for this product")
)
