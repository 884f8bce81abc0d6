package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/liora/internal/domain/favorite"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FavoriteRepository implementa a interface favorite.Repository usando PostgreSQL
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository cria uma nova instância de FavoriteRepository
func NewFavoriteRepository(db *pgxpool.Pool) favorite.Repository {
	return &FavoriteRepository{
		db: db,
	}
}

// favoriteSelect junta o favorito, o nome do membro e a receita
func favoriteSelect(where string) string {
	return fmt.Sprintf(`
		SELECT
			f.id, f.user_id, f.recipe_id, f.notes, f.last_cooked, f.tags, f.rating, f.created_at,
			COALESCE(p.full_name, ''),
			%s
		FROM favorites f
		JOIN recipes r ON r.id = f.recipe_id
		LEFT JOIN profiles p ON p.user_id = f.user_id
		WHERE %s
		ORDER BY f.created_at DESC
	`, recipeColumns("r"), where)
}

func scanFavorite(row pgx.Row) (*favorite.Favorite, error) {
	f := &favorite.Favorite{Recipe: &recipe.Recipe{}}
	var mealType string

	dest := []interface{}{
		&f.ID,
		&f.UserID,
		&f.RecipeID,
		&f.Notes,
		&f.LastCooked,
		&f.Tags,
		&f.Rating,
		&f.CreatedAt,
		&f.MemberName,
	}
	dest = append(dest, recipeDest(f.Recipe, &mealType)...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	f.Recipe.MealType = recipe.MealType(mealType)
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return f, nil
}

func (r *FavoriteRepository) list(ctx context.Context, where string, args ...interface{}) ([]*favorite.Favorite, error) {
	rows, err := r.db.Query(ctx, favoriteSelect(where), args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar favoritos: %w", err)
	}
	defer rows.Close()

	favorites := make([]*favorite.Favorite, 0)
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler favorito: %w", err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return favorites, nil
}

// Create implementa favorite.Repository.Create
func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, recipe_id, notes, last_cooked, tags, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		f.ID,
		f.UserID,
		f.RecipeID,
		f.Notes,
		f.LastCooked,
		f.Tags,
		f.Rating,
		f.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return favorite.ErrDuplicate
			case "23503": // Foreign key violation
				return recipe.ErrRecipeNotFound
			}
		}
		return fmt.Errorf("erro ao inserir favorito: %w", err)
	}

	return nil
}

// FindByID implementa favorite.Repository.FindByID
func (r *FavoriteRepository) FindByID(ctx context.Context, id string) (*favorite.Favorite, error) {
	if !validID(id) {
		return nil, favorite.ErrFavoriteNotFound
	}
	f, err := scanFavorite(r.db.QueryRow(ctx, favoriteSelect("f.id = $1"), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, favorite.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("erro ao buscar favorito: %w", err)
	}
	return f, nil
}

// ListByUser implementa favorite.Repository.ListByUser
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*favorite.Favorite, error) {
	return r.list(ctx, "f.user_id = $1", userID)
}

// ListByHousehold implementa favorite.Repository.ListByHousehold
func (r *FavoriteRepository) ListByHousehold(ctx context.Context, householdID string) ([]*favorite.Favorite, error) {
	return r.list(ctx,
		"f.user_id IN (SELECT user_id FROM profiles WHERE linked_household_id = $1)",
		householdID)
}

// Delete implementa favorite.Repository.Delete
func (r *FavoriteRepository) Delete(ctx context.Context, id, userID string) error {
	if !validID(id) {
		return favorite.ErrFavoriteNotFound
	}
	result, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("erro ao remover favorito: %w", err)
	}

	if result.RowsAffected() == 0 {
		return favorite.ErrFavoriteNotFound
	}

	return nil
}
