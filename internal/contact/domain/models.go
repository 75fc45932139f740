// Package domain contains contact form message types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
	StatusClosed  Status = "closed"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusClosed:
		return true
	}
	return false
}

type Message struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text;not null" json:"email"`
	Phone     string       `gorm:"type:text;not null" json:"phone"`
	Subject   string       `gorm:"type:text;not null" json:"subject"`
	Message   string       `gorm:"type:text;not null" json:"message"`
	Status    Status       `gorm:"type:text;not null;default:'new';index" json:"status"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Message) TableName() string { return "contact_messages" }
