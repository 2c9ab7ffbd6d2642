package models

import (
	"time"

	"gorm.io/gorm"
)

// Account statuses shared by admin users and customer profiles
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// AdminUser represents a dashboard administrator account.
// New accounts start inactive and must be activated before they can log in.
type AdminUser struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string         `json:"phone"`
	Status       string         `gorm:"not null;default:'inactive'" json:"status"`
	PasswordHash string         `gorm:"not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the AdminUser model
func (AdminUser) TableName() string {
	return "admin_users"
}

// IsActive reports whether the admin account may authenticate
func (u *AdminUser) IsActive() bool {
	return u.Status == StatusActive
}

// Profile represents an end-customer record manageable from the dashboard
type Profile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"index" json:"email"`
	Phone     string         `json:"phone"`
	Status    string         `gorm:"not null;default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// IsValidAccountStatus reports whether s is a recognized account status
func IsValidAccountStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
