package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. An order moves Pending -> Confirmed -> In Progress ->
// Completed, or to Cancelled from any non-terminal state.
const (
	OrderStatusPending    = "Pending"
	OrderStatusConfirmed  = "Confirmed"
	OrderStatusInProgress = "In Progress"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// Order represents a customer booking in the system
type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderNumber    string          `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerName   string          `gorm:"not null" json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerPhone  string          `json:"customer_phone"`
	AddressLine    string          `json:"address_line"`
	City           string          `json:"city"`
	Pincode        string          `json:"pincode"`
	PaymentMethod  string          `json:"payment_method"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	ConvenienceFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"convenience_fee"`
	Discount       decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Status         string          `gorm:"not null;default:'Pending'" json:"status"`
	ItemsSummary   string          `gorm:"type:text" json:"items_summary"` // denormalized "2x Deep Cleaning, 1x ..." text
	Items          []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a single service line on an order
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductCode string          `gorm:"not null" json:"product_code"` // service code, optionally suffixed with a tier
	Name        string          `gorm:"not null" json:"name"`
	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"` // unit price
	Category    string          `gorm:"-" json:"category"`               // resolved from the catalog per read, never stored
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns price multiplied by quantity for the item
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsValidOrderStatus reports whether s is one of the recognized order statuses
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// NewOrderNumber generates a human-readable unique order number
func NewOrderNumber() string {
	return "CC-" + strings.ToUpper(uuid.NewString()[:8])
}
