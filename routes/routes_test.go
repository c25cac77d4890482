package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/configs"
	"github.com/vai-sys/DigitalDinner/entity"
)

// memMenuStore implements services.MenuStore for router tests.
type memMenuStore struct {
	items map[string]entity.MenuItem
}

func (f *memMenuStore) put(name string, price float64, category string) string {
	id := primitive.NewObjectID()
	f.items[id.Hex()] = entity.MenuItem{ID: id, Name: name, Price: price, Category: category, Available: true}
	return id.Hex()
}

func (f *memMenuStore) List(_ context.Context, category string, available *bool) ([]entity.MenuItem, error) {
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

func (f *memMenuStore) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (f *memMenuStore) Create(_ context.Context, item *entity.MenuItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.items[item.ID.Hex()] = *item
	return nil
}

func (f *memMenuStore) Update(_ context.Context, id string, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		it.Name = *patch.Name
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
	f.items[id] = it
	return &it, nil
}

func (f *memMenuStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *memMenuStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))

	store := &memMenuStore{items: map[string]entity.MenuItem{}}
	cfg := &configs.Config{
		JWTSecret:  "test-secret",
		JWTTTL:     time.Hour,
		UploadsDir: t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, db, store, cfg)
	return r, db, store
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, r *gin.Engine, email, password, phone string) string {
	t.Helper()
	body := gin.H{"name": "Test User", "email": email, "password": password}
	if phone != "" {
		body["phoneNumber"] = phone
	}
	w := do(t, r, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	out := decode(t, w)
	return out["token"].(string)
}

func createAdmin(t *testing.T, r *gin.Engine, db *gorm.DB) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := &entity.User{Name: "Admin", Email: "admin@diner.test", Password: string(hash), Role: "admin"}
	require.NoError(t, db.Create(admin).Error)

	w := do(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": "admin@diner.test", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	r, _, _ := setupRouter(t)

	registerUser(t, r, "a@b.com", "secret1", "5551234567")

	// login with the same credentials works and yields a usable token
	w := do(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": "a@b.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	loginToken := decode(t, w)["token"].(string)

	// /auth/me needs a token
	w = do(t, r, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodGet, "/auth/me", loginToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, true, out["success"])
	data := out["data"].(map[string]any)
	assert.Equal(t, "Test User", data["name"])
	assert.Equal(t, "a@b.com", data["email"])
	assert.Equal(t, "5551234567", data["phoneNumber"])
	assert.NotContains(t, data, "password")
}

func TestAuthValidation(t *testing.T) {
	r, _, _ := setupRouter(t)

	// bad email
	w := do(t, r, http.MethodPost, "/auth/register", "", gin.H{"name": "X", "email": "nope", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])

	// short password
	w = do(t, r, http.MethodPost, "/auth/register", "", gin.H{"name": "X", "email": "a@b.com", "password": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate email
	registerUser(t, r, "a@b.com", "secret1", "")
	w = do(t, r, http.MethodPost, "/auth/register", "", gin.H{"name": "X", "email": "a@b.com", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "already exists")
}

func TestMenuRoutes(t *testing.T) {
	r, _, store := setupRouter(t)
	soupID := store.put("Soup", 5.00, entity.CategoryAppetizers)
	store.put("Cola", 2.00, entity.CategoryDrinks)

	w := do(t, r, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.EqualValues(t, 2, out["count"])

	w = do(t, r, http.MethodGet, "/menu/"+soupID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/menu/category/Drinks", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	// writes require a token
	w = do(t, r, http.MethodPost, "/menu", "", gin.H{"name": "Pie"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := registerUser(t, r, "a@b.com", "secret1", "")
	w = do(t, r, http.MethodPost, "/menu", token, gin.H{
		"name":        "Pie",
		"description": "Apple pie",
		"price":       3.50,
		"category":    entity.CategoryDesserts,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// price must be positive
	w = do(t, r, http.MethodPost, "/menu", token, gin.H{
		"name":        "Broken",
		"description": "x",
		"price":       -1,
		"category":    entity.CategoryDesserts,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r, _, store := setupRouter(t)
	soupID := store.put("Soup", 5.00, entity.CategoryAppetizers)
	token := registerUser(t, r, "a@b.com", "secret1", "5551234567")

	// empty-cart checkout is a client error
	w := do(t, r, http.MethodPost, "/orders", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/cart", token, gin.H{"menuItemId": soupID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// negative quantity never reaches the store
	line := decode(t, w)["data"].(map[string]any)
	lineID := fmt.Sprintf("%v", line["id"])
	w = do(t, r, http.MethodPut, "/cart/"+lineID, token, gin.H{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/orders", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode(t, w)["data"].(map[string]any)
	assert.InDelta(t, 10.00, order["total"].(float64), 1e-9)
	assert.Equal(t, "PENDING", order["status"])

	// cart emptied by the checkout
	w = do(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode(t, w)["data"].(map[string]any)
	assert.Empty(t, cart["items"])

	// public phone lookup
	w = do(t, r, http.MethodGet, "/orders/phone/5551234567", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = do(t, r, http.MethodGet, "/orders/phone/0000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderStatusRoutes(t *testing.T) {
	r, db, store := setupRouter(t)
	soupID := store.put("Soup", 5.00, entity.CategoryAppetizers)
	token := registerUser(t, r, "a@b.com", "secret1", "")

	w := do(t, r, http.MethodPost, "/cart", token, gin.H{"menuItemId": soupID})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/orders", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := fmt.Sprintf("%v", decode(t, w)["data"].(map[string]any)["ID"])

	// status update is admin-only
	w = do(t, r, http.MethodPut, "/orders/"+orderID, token, gin.H{"status": "PREPARING"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := createAdmin(t, r, db)
	w = do(t, r, http.MethodPut, "/orders/"+orderID, adminToken, gin.H{"status": "PREPARING"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "PREPARING", decode(t, w)["data"].(map[string]any)["status"])

	w = do(t, r, http.MethodPut, "/orders/"+orderID, adminToken, gin.H{"status": "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// cancel only from PENDING
	w = do(t, r, http.MethodPut, "/orders/"+orderID+"/cancel", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "pending")

	// owner order listing
	w = do(t, r, http.MethodGet, "/orders/user/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])
}

func TestDeletedUserTokenRejected(t *testing.T) {
	r, db, _ := setupRouter(t)
	token := registerUser(t, r, "a@b.com", "secret1", "")

	require.NoError(t, db.Unscoped().Where("email = ?", "a@b.com").Delete(&entity.User{}).Error)

	w := do(t, r, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, decode(t, w)["error"], "no longer exists")
}
