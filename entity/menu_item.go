package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryAppetizers  = "Appetizers"
	CategoryMainCourses = "Main Courses"
	CategoryDesserts    = "Desserts"
	CategoryDrinks      = "Drinks"
)

// ValidCategory reports whether c is one of the four menu categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryAppetizers, CategoryMainCourses, CategoryDesserts, CategoryDrinks:
		return true
	}
	return false
}

// MenuItem lives in the document store, independent of the relational
// entities. Cart lines and order snapshots reference it by hex id.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Available   bool               `bson:"available" json:"available"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MenuItemPatch carries partial updates; nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Available   *bool
	Image       *string
}
