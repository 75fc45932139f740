// Package domain contains core types for customer accounts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User represents a registered customer or an admin account.
type User struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Email        string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string       `gorm:"column:password_hash;type:text;not null" json:"-"`
	FirstName    string       `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName     string       `gorm:"column:last_name;type:text;not null" json:"last_name"`
	Phone        *string      `gorm:"type:text" json:"phone,omitempty"`
	IsAdmin      bool         `gorm:"column:is_admin;not null;default:false" json:"is_admin"`

	// Default shipping details, auto-saved from checkout.
	Address    *string `gorm:"type:text" json:"address,omitempty"`
	City       *string `gorm:"type:text" json:"city,omitempty"`
	State      *string `gorm:"type:text" json:"state,omitempty"`
	PostalCode *string `gorm:"column:postal_code;type:text" json:"postal_code,omitempty"`
	Country    *string `gorm:"type:text" json:"country,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
