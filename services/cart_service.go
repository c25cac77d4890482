package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/entity"
	"github.com/vai-sys/DigitalDinner/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Menu     MenuStore
}

func NewCartService(db *gorm.DB, cartRepo *repository.CartRepository, menu MenuStore) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, Menu: menu}
}

type AddToCartIn struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemIn struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// CartLineMenu is the live view of the referenced menu item, resolved at
// read time, not a snapshot.
type CartLineMenu struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	Image    string  `json:"image,omitempty"`
}

type CartLine struct {
	ID       uint         `json:"id"`
	MenuItem CartLineMenu `json:"menuItem"`
	Quantity int          `json:"quantity"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// placeholderLine stands in for a cart line whose menu item was deleted
// after it was added.
var placeholderLine = CartLineMenu{Name: "Item no longer available", Price: 0}

func (s *CartService) Get(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartLine, 0, len(items))}
	for _, it := range items {
		m, err := s.Menu.GetByID(ctx, it.MenuItemID)
		if err != nil {
			return nil, err
		}

		line := CartLine{ID: it.ID, Quantity: it.Quantity, MenuItem: placeholderLine}
		if m != nil {
			line.MenuItem = CartLineMenu{
				ID:       m.ID.Hex(),
				Name:     m.Name,
				Price:    m.Price,
				Category: m.Category,
				Image:    m.Image,
			}
		}
		view.Total += line.MenuItem.Price * float64(line.Quantity)
		view.Items = append(view.Items, line)
	}
	return view, nil
}

// Add creates a line for (user, menu item) or bumps the quantity of the
// existing one.
func (s *CartService) Add(ctx context.Context, userID uint, in *AddToCartIn) (*CartLine, error) {
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	m, err := s.Menu.GetByID(ctx, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMenuItemNotFound
	}

	item, err := s.CartRepo.FindByUserAndMenuItem(userID, in.MenuItemID)
	switch {
	case err == nil:
		if err := s.CartRepo.Accumulate(s.DB, item.ID, qty); err != nil {
			return nil, err
		}
		item.Quantity += qty
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &entity.CartItem{UserID: userID, MenuItemID: in.MenuItemID, Quantity: qty}
		if err := s.CartRepo.Create(s.DB, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &CartLine{
		ID:       item.ID,
		Quantity: item.Quantity,
		MenuItem: CartLineMenu{ID: m.ID.Hex(), Name: m.Name, Price: m.Price},
	}, nil
}

// UpdateQuantity sets the line's quantity; zero deletes the line and
// returns nil. Negative values are rejected at the binding layer before
// they ever reach here.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, qty int) (*CartLine, error) {
	item, err := s.CartRepo.FindOwned(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if qty <= 0 {
		if err := s.CartRepo.Delete(s.DB, item.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.CartRepo.SetQuantity(s.DB, item.ID, qty); err != nil {
		return nil, err
	}

	line := &CartLine{ID: item.ID, Quantity: qty, MenuItem: placeholderLine}
	if m, err := s.Menu.GetByID(ctx, item.MenuItemID); err == nil && m != nil {
		line.MenuItem = CartLineMenu{ID: m.ID.Hex(), Name: m.Name, Price: m.Price}
	}
	return line, nil
}

func (s *CartService) Remove(userID, itemID uint) error {
	item, err := s.CartRepo.FindOwned(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartItemNotFound
	}
	if err != nil {
		return err
	}
	return s.CartRepo.Delete(s.DB, item.ID)
}

func (s *CartService) Clear(userID uint) error {
	return s.CartRepo.ClearForUser(s.DB, userID)
}
