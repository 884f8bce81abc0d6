package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecipeRepository implementa a interface recipe.Repository usando PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository cria uma nova instância de RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) recipe.Repository {
	return &RecipeRepository{
		db: db,
	}
}

// recipeColumns retorna as colunas de recipes, prefixadas pelo alias quando informado
func recipeColumns(alias string) string {
	return strings.Join(recipeColumnList(alias), ", ")
}

// recipeColumnList retorna as expressões de coluna na ordem de recipeDest
func recipeColumnList(alias string) []string {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	columns := []string{
		prefix + "id",
		prefix + "name",
		prefix + "category",
		prefix + "meal_type",
		"COALESCE(" + prefix + "calories, '')",
		"COALESCE(" + prefix + "prep_time, '')",
		"COALESCE(" + prefix + "servings, 0)",
		"COALESCE(" + prefix + "image_url, '')",
		prefix + "instructions",
		prefix + "created_at",
	}
	return columns
}

// recipeDest retorna os destinos de Scan na ordem de recipeColumns
func recipeDest(r *recipe.Recipe, mealType *string) []interface{} {
	return []interface{}{
		&r.ID,
		&r.Name,
		&r.Category,
		mealType,
		&r.Calories,
		&r.PrepTime,
		&r.Servings,
		&r.ImageURL,
		&r.Instructions,
		&r.CreatedAt,
	}
}

func scanRecipe(row pgx.Row) (*recipe.Recipe, error) {
	r := &recipe.Recipe{}
	var mealType string
	if err := row.Scan(recipeDest(r, &mealType)...); err != nil {
		return nil, err
	}
	r.MealType = recipe.MealType(mealType)
	return r, nil
}

// List implementa recipe.Repository.List
func (r *RecipeRepository) List(ctx context.Context) ([]*recipe.Recipe, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM recipes
		ORDER BY created_at, name
	`, recipeColumns(""))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar receitas: %w", err)
	}
	defer rows.Close()

	recipes := make([]*recipe.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler receita: %w", err)
		}
		recipes = append(recipes, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return recipes, nil
}

// FindByID implementa recipe.Repository.FindByID
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	if !validID(id) {
		return nil, recipe.ErrRecipeNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM recipes WHERE id = $1`, recipeColumns(""))

	rec, err := scanRecipe(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipe.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("erro ao buscar receita: %w", err)
	}

	return rec, nil
}

// FindByIDs implementa recipe.Repository.FindByIDs
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*recipe.Recipe, error) {
	recipes := make(map[string]*recipe.Recipe, len(ids))
	ids = validIDs(ids)
	if len(ids) == 0 {
		return recipes, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM recipes WHERE id = ANY($1)`, recipeColumns(""))

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar receitas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler receita: %w", err)
		}
		recipes[rec.ID] = rec
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return recipes, nil
}
