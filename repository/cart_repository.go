package repository

import (
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListByUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

// FindOwned scopes the lookup to the owning user; another user's line is
// indistinguishable from a missing one.
func (r *CartRepository) FindOwned(userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) FindByUserAndMenuItem(userID uint, menuItemID string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

// Accumulate bumps the quantity in a single statement so two concurrent
// adds never read a stale value.
func (r *CartRepository) Accumulate(tx *gorm.DB, itemID uint, by int) error {
	return tx.Model(&entity.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", by)).Error
}

func (r *CartRepository) SetQuantity(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", qty).Error
}

func (r *CartRepository) Delete(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}

// ClearForUser deletes every line for the user; clearing an already-empty
// cart is not an error.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
