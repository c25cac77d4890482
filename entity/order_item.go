package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a point-in-time snapshot of a menu item. Name and price are
// copied at order creation so historical orders stay stable when the menu
// changes later.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
