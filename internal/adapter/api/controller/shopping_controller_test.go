package controller

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/internal/domain/shopping"
	"github.com/hugohenrick/liora/pkg/logger"
)

type memoryShopping struct {
	mu    sync.Mutex
	items []*shopping.Item
	err   error
}

func (m *memoryShopping) ListByUser(_ context.Context, userID string) ([]*shopping.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*shopping.Item{}
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memoryShopping) FindByID(_ context.Context, id, userID string) (*shopping.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.ID == id && item.UserID == userID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, shopping.ErrItemNotFound
}

func (m *memoryShopping) Create(_ context.Context, item *shopping.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memoryShopping) UpdateChecked(_ context.Context, id, userID string, checked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.ID == id && item.UserID == userID {
			item.Checked = checked
			return nil
		}
	}
	return shopping.ErrItemNotFound
}

func (m *memoryShopping) Delete(_ context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == id && item.UserID == userID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return shopping.ErrItemNotFound
}

func newShoppingRouter(repo shopping.Repository) *gin.Engine {
	c := NewShoppingController(repo, logger.NewNop())
	r := gin.New()
	r.Use(withUser(testUser))
	r.GET("/shopping-list", c.List)
	r.POST("/shopping-list", c.Create)
	r.PATCH("/shopping-list/:id/toggle", c.Toggle)
	r.DELETE("/shopping-list/:id", c.Delete)
	return r
}

func TestShoppingControllerCreate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		body             interface{}
		status           int
		expectedQuantity float64
		expectedUnit     string
		expectedCategory string
	}{
		{
			name:             "defaults",
			body:             dto.ShoppingItemRequest{Name: "  Tomates "},
			status:           http.StatusCreated,
			expectedQuantity: 1,
			expectedUnit:     shopping.DefaultUnit,
			expectedCategory: shopping.DefaultCategory,
		},
		{
			name:             "explicit values",
			body:             dto.ShoppingItemRequest{Name: "Arroz", Quantity: 0.5, Unit: "kg", Category: "despensa", Days: []string{"lunes"}},
			status:           http.StatusCreated,
			expectedQuantity: 0.5,
			expectedUnit:     "kg",
			expectedCategory: "despensa",
		},
		{name: "missing name", body: dto.ShoppingItemRequest{Quantity: 2}, status: http.StatusBadRequest},
		{name: "blank name", body: dto.ShoppingItemRequest{Name: "   "}, status: http.StatusBadRequest},
		{name: "negative quantity", body: dto.ShoppingItemRequest{Name: "Leche", Quantity: -1}, status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &memoryShopping{}
			w := doRequest(t, newShoppingRouter(repo), http.MethodPost, "/shopping-list", tc.body)
			assertStatus(t, w, tc.status)
			if tc.status != http.StatusCreated {
				if len(repo.items) != 0 {
					t.Errorf("rejected request must not store an item")
				}
				return
			}

			var item shopping.Item
			decode(t, w, &item)
			if item.UserID != testUser.ID || item.Checked {
				t.Errorf("unexpected item: %+v", item)
			}
			if item.Quantity != tc.expectedQuantity || item.Unit != tc.expectedUnit || item.Category != tc.expectedCategory {
				t.Errorf("expected %v %s in %s, got %v %s in %s",
					tc.expectedQuantity, tc.expectedUnit, tc.expectedCategory, item.Quantity, item.Unit, item.Category)
			}
			if item.Days == nil {
				t.Errorf("days must encode as an empty list")
			}
		})
	}
}

func TestShoppingControllerListAndToggle(t *testing.T) {
	t.Parallel()

	mine, _ := shopping.NewItem(testUser.ID, "Tomates", 4, "", "verduras", nil)
	other, _ := shopping.NewItem("user-2", "Pan", 1, "", "", nil)
	repo := &memoryShopping{items: []*shopping.Item{mine, other}}
	r := newShoppingRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/shopping-list", nil)
	assertStatus(t, w, http.StatusOK)
	var items []shopping.Item
	decode(t, w, &items)
	if len(items) != 1 || items[0].ID != mine.ID {
		t.Fatalf("expected only the user's item, got %+v", items)
	}

	for _, expected := range []bool{true, false} {
		w = doRequest(t, r, http.MethodPatch, "/shopping-list/"+mine.ID+"/toggle", nil)
		assertStatus(t, w, http.StatusOK)
		var toggled shopping.Item
		decode(t, w, &toggled)
		if toggled.Checked != expected || mine.Checked != expected {
			t.Errorf("expected checked=%v, got response %v and stored %v", expected, toggled.Checked, mine.Checked)
		}
	}

	assertStatus(t, doRequest(t, r, http.MethodPatch, "/shopping-list/"+other.ID+"/toggle", nil), http.StatusNotFound)
	if other.Checked {
		t.Errorf("another user's item must not be toggled")
	}
}

func TestShoppingControllerDelete(t *testing.T) {
	t.Parallel()

	mine, _ := shopping.NewItem(testUser.ID, "Tomates", 4, "", "", nil)
	other, _ := shopping.NewItem("user-2", "Pan", 1, "", "", nil)
	repo := &memoryShopping{items: []*shopping.Item{mine, other}}
	r := newShoppingRouter(repo)

	assertStatus(t, doRequest(t, r, http.MethodDelete, "/shopping-list/"+other.ID, nil), http.StatusNotFound)
	assertStatus(t, doRequest(t, r, http.MethodDelete, "/shopping-list/"+mine.ID, nil), http.StatusOK)
	assertStatus(t, doRequest(t, r, http.MethodDelete, "/shopping-list/"+mine.ID, nil), http.StatusNotFound)

	if len(repo.items) != 1 || repo.items[0].ID != other.ID {
		t.Errorf("expected only the other user's item to remain, got %d items", len(repo.items))
	}
}

func TestShoppingControllerRepositoryFailure(t *testing.T) {
	t.Parallel()

	r := newShoppingRouter(&memoryShopping{err: errors.New("conexão recusada")})

	w := doRequest(t, r, http.MethodGet, "/shopping-list", nil)
	assertStatus(t, w, http.StatusInternalServerError)
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	if resp.Code != http.StatusInternalServerError {
		t.Errorf("unexpected error response: %+v", resp)
	}

	assertStatus(t, doRequest(t, r, http.MethodPost, "/shopping-list", dto.ShoppingItemRequest{Name: "Leche"}), http.StatusInternalServerError)
}
