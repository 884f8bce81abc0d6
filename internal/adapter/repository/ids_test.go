package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/liora/internal/domain/favorite"
	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/domain/shopping"
)

func TestValidIDs(t *testing.T) {
	t.Parallel()

	ids := validIDs([]string{"8d3b5c4e-2f1a-4b7c-9e6d-1a2b3c4d5e6f", "abc", "", "r1"})
	if len(ids) != 1 || ids[0] != "8d3b5c4e-2f1a-4b7c-9e6d-1a2b3c4d5e6f" {
		t.Errorf("unexpected filtered ids: %v", ids)
	}
}

// Identificadores que não são UUID resolvem como não encontrados sem consultar o banco
func TestMalformedIDsAreNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recipes := NewRecipeRepository(nil)
	favorites := NewFavoriteRepository(nil)
	items := NewShoppingRepository(nil)
	menus := &MenuRepository{}
	completions := &CompletionRepository{}

	testCases := []struct {
		name     string
		call     func() error
		expected error
	}{
		{
			name: "recipe",
			call: func() error {
				_, err := recipes.FindByID(ctx, "abc")
				return err
			},
			expected: recipe.ErrRecipeNotFound,
		},
		{
			name: "favorite lookup",
			call: func() error {
				_, err := favorites.FindByID(ctx, "abc")
				return err
			},
			expected: favorite.ErrFavoriteNotFound,
		},
		{
			name:     "favorite delete",
			call:     func() error { return favorites.Delete(ctx, "abc", "user-1") },
			expected: favorite.ErrFavoriteNotFound,
		},
		{
			name: "menu",
			call: func() error {
				_, err := menus.FindByID(ctx, "abc", "user-1")
				return err
			},
			expected: menu.ErrMenuNotFound,
		},
		{
			name:     "completion delete",
			call:     func() error { return completions.Delete(ctx, "abc", "user-1") },
			expected: menu.ErrCompletionNotFound,
		},
		{
			name: "shopping lookup",
			call: func() error {
				_, err := items.FindByID(ctx, "abc", "user-1")
				return err
			},
			expected: shopping.ErrItemNotFound,
		},
		{
			name:     "shopping toggle",
			call:     func() error { return items.UpdateChecked(ctx, "abc", "user-1", true) },
			expected: shopping.ErrItemNotFound,
		},
		{
			name:     "shopping delete",
			call:     func() error { return items.Delete(ctx, "abc", "user-1") },
			expected: shopping.ErrItemNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.call(); !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestFindByIDsWithoutValidIDsSkipsQuery(t *testing.T) {
	t.Parallel()

	found, err := NewRecipeRepository(nil).FindByIDs(context.Background(), []string{"r1", "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected no recipes, got %d", len(found))
	}
}
