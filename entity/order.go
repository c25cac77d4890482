package entity

import (
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is one of the five defined statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	// Total is fixed at creation time and never recomputed.
	Total  float64     `gorm:"not null" json:"total"`
	Status OrderStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"orderItems"`
}
