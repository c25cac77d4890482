package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/entity"
	"github.com/vai-sys/DigitalDinner/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Orders   *repository.OrderRepository
	CartRepo *repository.CartRepository
	Users    *repository.UserRepository
	Menu     MenuStore
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	users *repository.UserRepository,
	menu MenuStore,
) *OrderService {
	return &OrderService{DB: db, Orders: orders, CartRepo: cartRepo, Users: users, Menu: menu}
}

type UpdateOrderStatusIn struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// Checkout converts the user's entire cart into one order. Menu items are
// resolved before the transaction; the order row, its snapshot items and
// the cart delete then commit or roll back together. The cart is emptied
// iff the order was created.
func (s *OrderService) Checkout(ctx context.Context, userID uint) (*entity.Order, error) {
	cartItems, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	// Resolve every referenced menu item up front. A dangling reference
	// aborts the whole placement; no partial order is ever written.
	var total float64
	snapshots := make([]entity.OrderItem, 0, len(cartItems))
	for _, it := range cartItems {
		m, err := s.Menu.GetByID(ctx, it.MenuItemID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, ErrMenuItemNotFound
		}
		total += m.Price * float64(it.Quantity)
		snapshots = append(snapshots, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   it.Quantity,
		})
	}

	order := &entity.Order{
		UserID:     userID,
		Total:      total,
		Status:     entity.OrderStatusPending,
		OrderItems: snapshots,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Orders.ListByUser(userID)
}

// GetForUser is owner-scoped: another user's order reads as not found.
func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Orders.FindOwned(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListByPhone is the public lookup path: resolve the user by phone, then
// list their orders.
func (s *OrderService) ListByPhone(phone string) ([]entity.Order, error) {
	user, err := s.Users.FindByPhone(phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOrdersForPhone
	}
	if err != nil {
		return nil, err
	}
	return s.Orders.ListByUser(user.ID)
}

// UpdateStatus is the administrative path: no ownership check, any order,
// any of the five statuses.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	o, err := s.Orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.Orders.UpdateStatus(s.DB, o.ID, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

// Cancel is owner-scoped and only legal from PENDING.
func (s *OrderService) Cancel(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Orders.FindOwned(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Status != entity.OrderStatusPending {
		return nil, ErrInvalidState
	}

	if err := s.Orders.UpdateStatus(s.DB, o.ID, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatusCancelled
	return o, nil
}
