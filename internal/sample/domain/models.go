// Package domain contains the free-sample request types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusRejected  Status = "rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusShipped, StatusDelivered, StatusRejected:
		return true
	}
	return false
}

func ValidSize(size string) bool {
	switch size {
	case "2ml", "5ml", "10ml":
		return true
	}
	return false
}

type SampleRequest struct {
	ID                 snowflake.ID  `gorm:"primaryKey" json:"id"`
	UserID             *snowflake.ID `gorm:"column:user_id;index" json:"user_id,omitempty"`
	ProductID          snowflake.ID  `gorm:"column:product_id;not null;index" json:"product_id"`
	CustomerName       string        `gorm:"column:customer_name;type:text;not null" json:"customer_name"`
	CustomerEmail      string        `gorm:"column:customer_email;type:text;not null" json:"customer_email"`
	CustomerPhone      string        `gorm:"column:customer_phone;type:text;not null" json:"customer_phone"`
	SampleSize         string        `gorm:"column:sample_size;type:text;not null" json:"sample_size"`
	ShippingAddress    string        `gorm:"column:shipping_address;type:text;not null" json:"shipping_address"`
	ShippingCity       string        `gorm:"column:shipping_city;type:text;not null" json:"shipping_city"`
	ShippingState      string        `gorm:"column:shipping_state;type:text;not null" json:"shipping_state"`
	ShippingPostalCode string        `gorm:"column:shipping_postal_code;type:text;not null" json:"shipping_postal_code"`
	Status             Status        `gorm:"type:text;not null;default:'pending';index" json:"status"`
	AdminNotes         *string       `gorm:"column:admin_notes;type:text" json:"admin_notes,omitempty"`
	CreatedAt          time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (SampleRequest) TableName() string { return "sample_requests" }

// View is a sample request joined with its product.
type View struct {
	SampleRequest
	ProductName     string  `json:"product_name"`
	ProductImageURL *string `json:"product_image_url,omitempty"`
}

type StatusCount struct {
	Status Status `json:"status"`
	Count  int64  `json:"count"`
}

type PopularProduct struct {
	Name         string `json:"name"`
	RequestCount int64  `json:"request_count"`
}

type StatsOverview struct {
	StatusStats     []StatusCount    `json:"status_stats"`
	RecentRequests  int64            `json:"recent_requests"`
	PopularProducts []PopularProduct `json:"popular_products"`
}
