package domain

import "errors"

var (
	ErrInvalidSession  = errors.New("invalid admin session")
	ErrSessionExpired  = errors.New("admin session expired")
	ErrSessionNotFound = errors.New("admin session not found")
)
