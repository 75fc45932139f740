package domain

import "errors"

var (
	ErrNotFound       = errors.New("message not found")
	ErrInvalidName    = errors.New("name must be between 2 and 100 characters")
	ErrInvalidEmail   = errors.New("a valid email is required")
	ErrInvalidPhone   = errors.New("phone must be between 10 and 15 characters")
	ErrInvalidSubject = errors.New("subject must be between 1 and 50 characters")
	ErrInvalidMessage = errors.New("message must be between 10 and 1000 characters")
	ErrInvalidStatus  = errors.New("invalid message status")
)
