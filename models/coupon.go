package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Coupon discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon represents a discount code redeemable at checkout
type Coupon struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Code          string          `gorm:"uniqueIndex;not null" json:"code"` // stored upper-case
	DiscountType  string          `gorm:"not null" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_value"`
	Active        bool            `gorm:"default:true" json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}

// IsValidDiscountType reports whether s is a recognized discount type
func IsValidDiscountType(s string) bool {
	return s == DiscountTypePercentage || s == DiscountTypeFixed
}
