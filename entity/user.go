package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Email       string  `gorm:"uniqueIndex;not null" json:"email"`
	Password    string  `json:"-"`
	PhoneNumber *string `gorm:"uniqueIndex" json:"phoneNumber,omitempty"`
	Role        string  `gorm:"not null;default:customer" json:"role"`

	Orders    []Order    `json:"-"`
	CartItems []CartItem `json:"-"`
}
