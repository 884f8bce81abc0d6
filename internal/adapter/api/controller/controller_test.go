package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/domain/user"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/chat"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testUser = &user.User{ID: "user-1", Email: "ana@liora.app", Role: user.RoleAuthenticated}

// withUser simula o middleware de autenticação
func withUser(u *user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Request = c.Request.WithContext(auth.SetUserContext(c.Request.Context(), u))
		}
		c.Next()
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

type fakeRecipes struct {
	recipes []*recipe.Recipe
	err     error
}

func (f *fakeRecipes) List(context.Context) ([]*recipe.Recipe, error) {
	return f.recipes, f.err
}

func (f *fakeRecipes) FindByID(_ context.Context, id string) (*recipe.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, recipe.ErrRecipeNotFound
}

func (f *fakeRecipes) FindByIDs(_ context.Context, ids []string) (map[string]*recipe.Recipe, error) {
	out := make(map[string]*recipe.Recipe)
	for _, r := range f.recipes {
		for _, id := range ids {
			if r.ID == id {
				out[id] = r
			}
		}
	}
	return out, f.err
}

type fakeChat struct {
	mu       sync.Mutex
	messages []chat.Message
}

func (f *fakeChat) SaveMessage(_ context.Context, message *chat.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *message
	if n := len(f.messages); n > 0 && !stored.Timestamp.After(f.messages[n-1].Timestamp) {
		stored.Timestamp = f.messages[n-1].Timestamp.Add(1)
	}
	f.messages = append(f.messages, stored)
	return nil
}

func (f *fakeChat) GetUserHistory(_ context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []chat.Message{}
	// mais recentes primeiro, com empates na ordem inversa de inserção
	for i := len(f.messages) - 1; i >= 0; i-- {
		if m := f.messages[i]; m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if offset >= len(out) {
		return []chat.Message{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChat) DeleteUserHistory(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := []chat.Message{}
	for _, m := range f.messages {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

func (f *fakeChat) CountUserMessages(ctx context.Context, userID string) (int, error) {
	msgs, err := f.GetUserHistory(ctx, userID, 0, 0)
	return len(msgs), err
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Fatalf("expected status %d, got %d: %s", expected, w.Code, w.Body.String())
	}
}
