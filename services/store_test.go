package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/entity"
	"github.com/vai-sys/DigitalDinner/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, phone *string) *entity.User {
	t.Helper()
	u := &entity.User{
		Name:        "Test User",
		Email:       email,
		Password:    "hashed",
		PhoneNumber: phone,
		Role:        "customer",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// fakeMenuStore is an in-memory MenuStore; the mongo-backed repository is
// exercised against a live cluster, not here.
type fakeMenuStore struct {
	items map[string]entity.MenuItem
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{items: map[string]entity.MenuItem{}}
}

func (f *fakeMenuStore) put(name string, price float64, category string, available bool) string {
	id := primitive.NewObjectID()
	f.items[id.Hex()] = entity.MenuItem{
		ID:        id,
		Name:      name,
		Price:     price,
		Category:  category,
		Available: available,
	}
	return id.Hex()
}

func (f *fakeMenuStore) List(_ context.Context, category string, available *bool) ([]entity.MenuItem, error) {
	out := []entity.MenuItem{}
	for _, it := range f.items {
		if category != "" && it.Category != category {
			continue
		}
		if available != nil && it.Available != *available {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeMenuStore) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (f *fakeMenuStore) Create(_ context.Context, item *entity.MenuItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.items[item.ID.Hex()] = *item
	return nil
}

func (f *fakeMenuStore) Update(_ context.Context, id string, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}
	if patch.Image != nil {
		it.Image = *patch.Image
	}
	f.items[id] = it
	return &it, nil
}

func (f *fakeMenuStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func newCartService(t *testing.T) (*CartService, *fakeMenuStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	menu := newFakeMenuStore()
	return NewCartService(db, repository.NewCartRepository(db), menu), menu, db
}

func newOrderService(t *testing.T) (*OrderService, *fakeMenuStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	menu := newFakeMenuStore()
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		menu,
	)
	return svc, menu, db
}
