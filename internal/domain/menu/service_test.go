package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/liora/internal/domain/recipe"
)

type fakeMenus struct {
	menus    []*WeeklyMenu
	created  int
	restored string
	// concurrent é inserido no lugar do menu recebido, simulando outra requisição
	concurrent *WeeklyMenu
}

func (f *fakeMenus) FindActive(_ context.Context, userID string) (*WeeklyMenu, error) {
	for _, m := range f.menus {
		if m.UserID == userID && m.IsActive() {
			return m, nil
		}
	}
	return nil, ErrMenuNotFound
}

func (f *fakeMenus) FindByID(_ context.Context, id, userID string) (*WeeklyMenu, error) {
	for _, m := range f.menus {
		if m.ID == id && m.UserID == userID {
			return m, nil
		}
	}
	return nil, ErrMenuNotFound
}

func (f *fakeMenus) ListByUser(_ context.Context, userID string) ([]*WeeklyMenu, error) {
	var out []*WeeklyMenu
	for _, m := range f.menus {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMenus) ListArchived(ctx context.Context, userID string) ([]*WeeklyMenu, error) {
	all, _ := f.ListByUser(ctx, userID)
	var out []*WeeklyMenu
	for _, m := range all {
		if m.Status == StatusArchived {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMenus) Create(_ context.Context, m *WeeklyMenu) error {
	if f.concurrent != nil {
		f.menus = append(f.menus, f.concurrent)
		f.concurrent = nil
		return ErrActiveMenuExists
	}
	f.created++
	f.menus = append(f.menus, m)
	return nil
}

func (f *fakeMenus) UpdateSlot(_ context.Context, menuID, userID, column string, recipeID *string) error {
	return nil
}

func (f *fakeMenus) Restore(_ context.Context, userID, menuID string) error {
	f.restored = menuID
	for _, m := range f.menus {
		if m.UserID != userID {
			continue
		}
		if m.ID == menuID {
			m.Status = StatusActive
		} else if m.IsActive() {
			m.Status = StatusArchived
		}
	}
	return nil
}

type fakeCompletions struct {
	items   []*Completion
	deleted []string
}

func (f *fakeCompletions) ListByDay(_ context.Context, userID string, day time.Time) ([]*Completion, error) {
	var out []*Completion
	for _, c := range f.items {
		if c.UserID == userID && c.Day.Equal(day) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompletions) Upsert(_ context.Context, c *Completion) (*Completion, error) {
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCompletions) Delete(_ context.Context, id, userID string) error {
	for i, c := range f.items {
		if c.ID == id && c.UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return ErrCompletionNotFound
}

type fakeRecipes map[string]*recipe.Recipe

func (f fakeRecipes) List(context.Context) ([]*recipe.Recipe, error) {
	out := make([]*recipe.Recipe, 0, len(f))
	for _, r := range f {
		out = append(out, r)
	}
	return out, nil
}

func (f fakeRecipes) FindByID(_ context.Context, id string) (*recipe.Recipe, error) {
	r, ok := f[id]
	if !ok {
		return nil, recipe.ErrRecipeNotFound
	}
	return r, nil
}

func (f fakeRecipes) FindByIDs(_ context.Context, ids []string) (map[string]*recipe.Recipe, error) {
	out := make(map[string]*recipe.Recipe)
	for _, id := range ids {
		if r, ok := f[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

// 2024-03-06 é uma quarta-feira
var wednesday = time.Date(2024, 3, 6, 18, 30, 0, 0, time.UTC)

func newTestService() (*Service, *fakeMenus, *fakeCompletions) {
	menus := &fakeMenus{}
	completions := &fakeCompletions{}
	recipes := fakeRecipes{
		"r1": {ID: "r1", Name: "Tortilla", Calories: "450 kcal"},
		"r2": {ID: "r2", Name: "Gazpacho", Calories: "120 kcal"},
	}
	svc := NewService(menus, completions, recipes).WithClock(func() time.Time { return wednesday })
	return svc, menus, completions
}

func TestActiveCreatesMenuOnFirstAccess(t *testing.T) {
	t.Parallel()

	svc, menus, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Active(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Active(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected the same active menu, got %s and %s", first.ID, second.ID)
	}
	if menus.created != 1 {
		t.Errorf("expected one menu created, got %d", menus.created)
	}
}

func TestActiveReturnsConcurrentlyCreatedMenu(t *testing.T) {
	t.Parallel()

	svc, menus, _ := newTestService()
	winner := NewWeeklyMenu("user-1")
	menus.concurrent = winner

	got, err := svc.Active(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != winner.ID {
		t.Errorf("expected the concurrently created menu %s, got %s", winner.ID, got.ID)
	}
	if len(menus.menus) != 1 {
		t.Errorf("expected a single active menu, got %d", len(menus.menus))
	}
}

func TestSetSlotRejectsUnknownRecipe(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	unknown := "r404"

	_, err := svc.SetSlot(context.Background(), "user-1", "Lunes", recipe.MealLunch, &unknown)
	if !errors.Is(err, recipe.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestTodayUsesCurrentWeekday(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	ctx := context.Background()
	r1, r2 := "r1", "r2"

	if _, err := svc.SetSlot(ctx, "user-1", "Miércoles", recipe.MealLunch, &r1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SetSlot(ctx, "user-1", "Miércoles", recipe.MealDinner, &r2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SetSlot(ctx, "user-1", "Jueves", recipe.MealDinner, &r1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today, err := svc.Today(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if today.Day != "Miércoles" {
		t.Errorf("expected Miércoles, got %s", today.Day)
	}
	if len(today.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(today.Items))
	}
	if today.TotalCalories != 570 {
		t.Errorf("expected 570 calories, got %d", today.TotalCalories)
	}
}

func TestTodayWithoutMenu(t *testing.T) {
	t.Parallel()

	svc, menus, _ := newTestService()

	today, err := svc.Today(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(today.Items) != 0 || today.Items == nil {
		t.Errorf("expected empty non-nil items, got %v", today.Items)
	}
	if menus.created != 0 {
		t.Errorf("today must not create menus, created %d", menus.created)
	}
}

func TestToggleCompletion(t *testing.T) {
	t.Parallel()

	svc, _, completions := newTestService()
	ctx := context.Background()

	if _, err := svc.ToggleCompletion(ctx, "user-1", "r1", recipe.MealLunch, false); !errors.Is(err, ErrNoActiveMenu) {
		t.Fatalf("expected ErrNoActiveMenu, got %v", err)
	}

	if _, err := svc.Active(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := svc.ToggleCompletion(ctx, "user-1", "r1", recipe.MealLunch, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.SkippedReason == nil || *created.SkippedReason != SkippedManually {
		t.Fatalf("expected skipped completion, got %+v", created)
	}
	if !created.Day.Equal(DateOf(wednesday)) {
		t.Errorf("expected completion dated today, got %s", created.Day)
	}

	removed, err := svc.ToggleCompletion(ctx, "user-1", "r1", recipe.MealLunch, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != nil {
		t.Errorf("expected nil after removal, got %+v", removed)
	}
	if len(completions.deleted) != 1 || len(completions.items) != 0 {
		t.Errorf("expected completion deleted, got items=%d deleted=%v", len(completions.items), completions.deleted)
	}

	if _, err := svc.ToggleCompletion(ctx, "user-1", "r1", "brunch", false); !errors.Is(err, ErrInvalidMeal) {
		t.Errorf("expected ErrInvalidMeal, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	svc, menus, _ := newTestService()
	ctx := context.Background()

	current, err := svc.Active(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	old := NewWeeklyMenu("user-1")
	old.Status = StatusArchived
	menus.menus = append(menus.menus, old)

	restored, err := svc.Restore(ctx, "user-1", old.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !restored.IsActive() {
		t.Errorf("expected restored menu to be active")
	}
	if current.Status != StatusArchived {
		t.Errorf("expected previous menu archived, got %s", current.Status)
	}

	if _, err := svc.Restore(ctx, "user-2", old.ID); !errors.Is(err, ErrMenuNotFound) {
		t.Errorf("expected ErrMenuNotFound for another user, got %v", err)
	}
}
