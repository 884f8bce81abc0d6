package assistant

import (
	"context"

	"github.com/hugohenrick/liora/internal/domain/favorite"
	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/domain/shopping"
	"github.com/hugohenrick/liora/pkg/assistant/intent"
)

// ProfileStore lê o perfil de um usuário
type ProfileStore interface {
	FindByUserID(ctx context.Context, userID string) (*profile.Profile, error)
}

// FavoriteStore lê os favoritos de um usuário, com a receita associada
type FavoriteStore interface {
	ListByUser(ctx context.Context, userID string) ([]*favorite.Favorite, error)
}

// MenuStore lê os menus semanais de um usuário
type MenuStore interface {
	ListByUser(ctx context.Context, userID string) ([]*menu.WeeklyMenu, error)
}

// ShoppingStore lê a lista de compras de um usuário
type ShoppingStore interface {
	ListByUser(ctx context.Context, userID string) ([]*shopping.Item, error)
}

// Context é o retrato dos dados do usuário montado para uma mensagem.
// As listas nunca são nil; ficam vazias quando a categoria correspondente
// não foi inferida.
type Context struct {
	UserProfile  *profile.Profile   `json:"userProfile"`
	Favorites    []*recipe.Recipe   `json:"favorites"`
	WeeklyMenu   []*menu.WeeklyMenu `json:"weeklyMenu"`
	ShoppingList []*shopping.Item   `json:"shoppingList"`
	Categories   intent.CategorySet `json:"categories"`
}
