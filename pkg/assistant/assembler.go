package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/liora/internal/domain/favorite"
	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/domain/shopping"
	"github.com/hugohenrick/liora/internal/domain/user"
	"github.com/hugohenrick/liora/pkg/assistant/intent"
	"github.com/hugohenrick/liora/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Assembler monta o contexto do assistente buscando apenas as coleções
// relevantes para as categorias inferidas
type Assembler struct {
	profiles  ProfileStore
	favorites FavoriteStore
	menus     MenuStore
	shopping  ShoppingStore
	timeout   time.Duration
	logger    logger.Logger
}

// NewAssembler cria um novo montador de contexto
func NewAssembler(profiles ProfileStore, favorites FavoriteStore, menus MenuStore, shopping ShoppingStore, log logger.Logger) *Assembler {
	return &Assembler{
		profiles:  profiles,
		favorites: favorites,
		menus:     menus,
		shopping:  shopping,
		logger:    log,
	}
}

// WithTimeout limita o tempo total da montagem. Zero desativa o limite.
func (a *Assembler) WithTimeout(d time.Duration) *Assembler {
	a.timeout = d
	return a
}

// Assemble busca em paralelo o perfil e as coleções exigidas pelas categorias.
// Falha com ErrNotAuthenticated sem emitir nenhuma consulta quando não há usuário,
// e com *DataFetchError na primeira consulta que falhar. Nunca retorna contexto parcial.
func (a *Assembler) Assemble(ctx context.Context, categories intent.CategorySet, u *user.User) (*Context, error) {
	if !u.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var (
		userProfile  *profile.Profile
		favorites    = []*recipe.Recipe{}
		weeklyMenu   = []*menu.WeeklyMenu{}
		shoppingList = []*shopping.Item{}
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := a.profiles.FindByUserID(gctx, u.ID)
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil
		}
		if err != nil {
			return &DataFetchError{Source: SourceProfile, Err: err}
		}
		userProfile = p
		return nil
	})

	if categories.Has(intent.Recipes) {
		g.Go(func() error {
			favs, err := a.favorites.ListByUser(gctx, u.ID)
			if err != nil {
				return &DataFetchError{Source: SourceFavorites, Err: err}
			}
			favorites = favorite.Recipes(favs)
			return nil
		})
	}

	if categories.Has(intent.Planning) {
		g.Go(func() error {
			menus, err := a.menus.ListByUser(gctx, u.ID)
			if err != nil {
				return &DataFetchError{Source: SourceMenus, Err: err}
			}
			if menus != nil {
				weeklyMenu = menus
			}
			return nil
		})
	}

	if categories.Has(intent.Shopping) {
		g.Go(func() error {
			items, err := a.shopping.ListByUser(gctx, u.ID)
			if err != nil {
				return &DataFetchError{Source: SourceShopping, Err: err}
			}
			if items != nil {
				shoppingList = items
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Warn("Falha ao montar contexto do assistente",
			"user_id", u.ID,
			"categories", categories.String(),
			"error", err)
		return nil, err
	}

	a.logger.Debug("Contexto do assistente montado",
		"user_id", u.ID,
		"categories", categories.String(),
		"favorites", len(favorites),
		"weekly_menus", len(weeklyMenu),
		"shopping_items", len(shoppingList))

	return &Context{
		UserProfile:  userProfile,
		Favorites:    favorites,
		WeeklyMenu:   weeklyMenu,
		ShoppingList: shoppingList,
		Categories:   intent.NewCategorySet(categories.Categories()...),
	}, nil
}
