package assistant

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hugohenrick/liora/internal/domain/favorite"
	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/domain/shopping"
	"github.com/hugohenrick/liora/pkg/chat"
)

type fakeProfiles struct {
	calls   atomic.Int32
	profile *profile.Profile
	err     error
}

func (f *fakeProfiles) FindByUserID(_ context.Context, userID string) (*profile.Profile, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil {
		return nil, profile.ErrProfileNotFound
	}
	return f.profile, nil
}

type fakeFavorites struct {
	calls     atomic.Int32
	favorites []*favorite.Favorite
	err       error
}

func (f *fakeFavorites) ListByUser(_ context.Context, userID string) ([]*favorite.Favorite, error) {
	f.calls.Add(1)
	return f.favorites, f.err
}

type fakeMenus struct {
	calls atomic.Int32
	menus []*menu.WeeklyMenu
	err   error
}

func (f *fakeMenus) ListByUser(_ context.Context, userID string) ([]*menu.WeeklyMenu, error) {
	f.calls.Add(1)
	return f.menus, f.err
}

type fakeShopping struct {
	calls atomic.Int32
	items []*shopping.Item
	err   error
}

func (f *fakeShopping) ListByUser(_ context.Context, userID string) ([]*shopping.Item, error) {
	f.calls.Add(1)
	return f.items, f.err
}

type stores struct {
	profiles  *fakeProfiles
	favorites *fakeFavorites
	menus     *fakeMenus
	shopping  *fakeShopping
}

func newStores() *stores {
	return &stores{
		profiles: &fakeProfiles{profile: &profile.Profile{
			ID:                  "p1",
			UserID:              "user-1",
			FullName:            "Ana",
			DietaryRestrictions: []string{"vegetariano"},
		}},
		favorites: &fakeFavorites{favorites: []*favorite.Favorite{
			{ID: "f1", UserID: "user-1", RecipeID: "r1", Recipe: &recipe.Recipe{ID: "r1", Name: "Tortilla"}},
			{ID: "f2", UserID: "user-1", RecipeID: "r2"},
		}},
		menus:    &fakeMenus{menus: []*menu.WeeklyMenu{menu.NewWeeklyMenu("user-1")}},
		shopping: &fakeShopping{items: []*shopping.Item{{ID: "s1", Name: "Huevos"}}},
	}
}

func (s *stores) totalCalls() int32 {
	return s.profiles.calls.Load() + s.favorites.calls.Load() + s.menus.calls.Load() + s.shopping.calls.Load()
}

type fakeChat struct {
	mu       sync.Mutex
	messages []chat.Message
	saveErr  error
}

func (f *fakeChat) SaveMessage(_ context.Context, message *chat.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	stored := *message
	if n := len(f.messages); n > 0 && !stored.Timestamp.After(f.messages[n-1].Timestamp) {
		stored.Timestamp = f.messages[n-1].Timestamp.Add(time.Microsecond)
	}
	f.messages = append(f.messages, stored)
	return nil
}

func (f *fakeChat) GetUserHistory(_ context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []chat.Message
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
	kept := f.messages[:0]
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

type fakeGenerator struct {
	calls   atomic.Int32
	reply   string
	err     error
	history []chat.Message
	context *Context
}

func (f *fakeGenerator) Generate(_ context.Context, history []chat.Message, c *Context) (string, error) {
	f.calls.Add(1)
	f.history = history
	f.context = c
	return f.reply, f.err
}
