package domain

import "errors"

var (
	ErrSettingsRequired = errors.New("settings array is required")
	ErrEmailRequired    = errors.New("email address is required")
)
