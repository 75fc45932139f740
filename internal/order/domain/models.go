// Package domain contains order types and the status state machines.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// CanTransition enforces the fulfilment lifecycle:
// pending → confirmed → processing → shipped → delivered, with cancellation
// allowed from any non-terminal state. Delivered and cancelled are terminal.
func CanTransition(from, to Status) bool {
	if from == to {
		return false
	}
	switch to {
	case StatusCancelled:
		return from != StatusDelivered && from != StatusCancelled
	case StatusConfirmed:
		return from == StatusPending
	case StatusProcessing:
		return from == StatusConfirmed
	case StatusShipped:
		return from == StatusProcessing
	case StatusDelivered:
		return from == StatusShipped
	}
	return false
}

// CanTransitionPayment enforces pending → {paid, failed} and paid → refunded.
func CanTransitionPayment(from, to PaymentStatus) bool {
	if from == to {
		return false
	}
	switch to {
	case PaymentPaid, PaymentFailed:
		return from == PaymentPending
	case PaymentRefunded:
		return from == PaymentPaid
	}
	return false
}

type Order struct {
	ID                 snowflake.ID  `gorm:"primaryKey" json:"id"`
	UserID             snowflake.ID  `gorm:"column:user_id;not null;index" json:"user_id"`
	OrderNumber        string        `gorm:"column:order_number;type:text;not null;uniqueIndex" json:"order_number"`
	TotalAmount        float64       `gorm:"column:total_amount;type:numeric;not null" json:"total_amount"`
	Status             Status        `gorm:"type:text;not null;default:'pending'" json:"status"`
	PaymentStatus      PaymentStatus `gorm:"column:payment_status;type:text;not null;default:'pending'" json:"payment_status"`
	PaymentMethod      string        `gorm:"column:payment_method;type:text;not null" json:"payment_method"`
	ShippingAddress    string        `gorm:"column:shipping_address;type:text;not null" json:"shipping_address"`
	ShippingCity       string        `gorm:"column:shipping_city;type:text;not null" json:"shipping_city"`
	ShippingState      string        `gorm:"column:shipping_state;type:text;not null" json:"shipping_state"`
	ShippingPostalCode string        `gorm:"column:shipping_postal_code;type:text;not null" json:"shipping_postal_code"`
	ShippingCountry    string        `gorm:"column:shipping_country;type:text;not null" json:"shipping_country"`
	Notes              *string       `gorm:"type:text" json:"notes,omitempty"`
	AdminNotes         *string       `gorm:"column:admin_notes;type:text" json:"admin_notes,omitempty"`
	TrackingNumber     *string       `gorm:"column:tracking_number;type:text" json:"tracking_number,omitempty"`
	CreatedAt          time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderItem freezes the product name and price at purchase time.
type OrderItem struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	OrderID      snowflake.ID `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID    snowflake.ID `gorm:"column:product_id;not null" json:"product_id"`
	ProductName  string       `gorm:"column:product_name;type:text;not null" json:"product_name"`
	ProductPrice float64      `gorm:"column:product_price;type:numeric;not null" json:"product_price"`
	Quantity     int          `gorm:"not null" json:"quantity"`
	Subtotal     float64      `gorm:"type:numeric;not null" json:"subtotal"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

// AdminOrder is an order row joined with its customer for the admin panel.
type AdminOrder struct {
	Order
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

type Stats struct {
	TotalOrders      int64   `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	PendingOrders    int64   `json:"pending_orders"`
	ProcessingOrders int64   `json:"processing_orders"`
	ShippedOrders    int64   `json:"shipped_orders"`
	DeliveredOrders  int64   `json:"delivered_orders"`
	CancelledOrders  int64   `json:"cancelled_orders"`
	PendingPayments  int64   `json:"pending_payments"`
	PaidOrders       int64   `json:"paid_orders"`
	FailedPayments   int64   `json:"failed_payments"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}
