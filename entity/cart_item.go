package entity

import (
	"time"
)

// CartItem is one cart line: one row per distinct (user, menu item).
// MenuItemID references a document in the menu store by hex id only; there
// is no foreign key across the two stores. Lines are hard-deleted so a
// removed item can be re-added without tripping the unique index.
type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_menu" json:"userId"`
	User   User `json:"-"`

	MenuItemID string `gorm:"not null;uniqueIndex:idx_cart_user_menu" json:"menuItemId"`
	Quantity   int    `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
