package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	// Authenticate resolves a bearer token to a live user row. The token
	// only proves possession; the user is re-read from storage on every
	// request.
	Authenticate(ctx context.Context, rawToken string) (*User, error)

	GetProfile(ctx context.Context, userID snowflake.ID) (*User, error)
	UpdateProfile(ctx context.Context, userID snowflake.ID, req UpdateProfileRequest) error
	SaveCheckoutData(ctx context.Context, userID snowflake.ID, req CheckoutDataRequest) error
}

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *User
	Token string
}

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

type CheckoutDataRequest struct {
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}
