package services

import (
	"context"

	"github.com/vai-sys/DigitalDinner/entity"
)

// MenuStore is the contract against the document store. Lookups return
// (nil, nil) for a missing item; Delete reports whether anything was
// removed. repository.MenuRepository is the mongo-backed implementation.
type MenuStore interface {
	List(ctx context.Context, category string, available *bool) ([]entity.MenuItem, error)
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	Create(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, id string, patch *entity.MenuItemPatch) (*entity.MenuItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MenuService struct {
	Store MenuStore
}

func NewMenuService(store MenuStore) *MenuService { return &MenuService{Store: store} }

type CreateMenuItemIn struct {
	Name        string  `form:"name" json:"name" binding:"required"`
	Description string  `form:"description" json:"description" binding:"required"`
	Price       float64 `form:"price" json:"price" binding:"required,gt=0"`
	Category    string  `form:"category" json:"category" binding:"required,oneof='Appetizers' 'Main Courses' 'Desserts' 'Drinks'"`
	Available   *bool   `form:"available" json:"available"`

	// set by the controller after storing the upload
	Image string `form:"-" json:"-"`
}

type UpdateMenuItemIn struct {
	Name        *string  `form:"name" json:"name"`
	Description *string  `form:"description" json:"description"`
	Price       *float64 `form:"price" json:"price" binding:"omitempty,gt=0"`
	Category    *string  `form:"category" json:"category" binding:"omitempty,oneof='Appetizers' 'Main Courses' 'Desserts' 'Drinks'"`
	Available   *bool    `form:"available" json:"available"`

	Image *string `form:"-" json:"-"`
}

func (s *MenuService) List(ctx context.Context, category string, available *bool) ([]entity.MenuItem, error) {
	return s.Store.List(ctx, category, available)
}

// ListByCategory is the public category page: available items only.
func (s *MenuService) ListByCategory(ctx context.Context, category string) ([]entity.MenuItem, error) {
	available := true
	return s.Store.List(ctx, category, &available)
}

func (s *MenuService) Get(ctx context.Context, id string) (*entity.MenuItem, error) {
	item, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, in *CreateMenuItemIn) (*entity.MenuItem, error) {
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Available:   available,
		Image:       in.Image,
	}
	if err := s.Store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in *UpdateMenuItemIn) (*entity.MenuItem, error) {
	patch := &entity.MenuItemPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Available:   in.Available,
		Image:       in.Image,
	}
	item, err := s.Store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	deleted, err := s.Store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMenuItemNotFound
	}
	return nil
}
