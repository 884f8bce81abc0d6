package dto

import (
	"time"

	"github.com/hugohenrick/liora/internal/domain/recipe"
)

// RecipeListQuery representa os filtros da listagem de receitas
type RecipeListQuery struct {
	Category string `form:"category"`  // "Todas" ou vazio para todas
	MealType string `form:"meal_type"` // "all" ou vazio para todos
	Search   string `form:"search"`
	Sort     string `form:"sort" binding:"omitempty,oneof=popular calories time"`
}

// ToQuery converte os parâmetros na consulta do domínio
func (q RecipeListQuery) ToQuery() recipe.Query {
	return recipe.Query{
		Category: q.Category,
		MealType: q.MealType,
		Search:   q.Search,
		SortBy:   recipe.SortField(q.Sort),
	}
}

// RecipeResponse representa uma receita na API
type RecipeResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	MealType     string            `json:"meal_type"`
	Calories     string            `json:"calories"`
	PrepTime     string            `json:"prep_time"`
	Servings     int               `json:"servings"`
	ImageURL     string            `json:"image_url,omitempty"`
	Instructions map[string]string `json:"instructions,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// RecipeListResponse representa a listagem de receitas
type RecipeListResponse struct {
	Recipes    []RecipeResponse `json:"recipes"`
	Categories []string         `json:"categories"`
	Total      int              `json:"total"`
}

// ToRecipeResponse converte uma receita do domínio
func ToRecipeResponse(r *recipe.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		MealType:     string(r.MealType),
		Calories:     r.Calories,
		PrepTime:     r.PrepTime,
		Servings:     r.Servings,
		ImageURL:     r.ImageURL,
		Instructions: r.Instructions,
		CreatedAt:    r.CreatedAt,
	}
}

// ToRecipeResponses converte uma lista de receitas
func ToRecipeResponses(recipes []*recipe.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ToRecipeResponse(r))
	}
	return out
}
