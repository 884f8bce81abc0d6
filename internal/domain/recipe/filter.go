package recipe

import (
	"sort"
	"strings"
)

const (
	// AllCategories desativa o filtro por categoria
	AllCategories = "Todas"
	// AllMealTypes desativa o filtro por tipo de refeição
	AllMealTypes = "all"
)

// SortField define o critério de ordenação do catálogo
type SortField string

const (
	SortNone     SortField = ""
	SortPopular  SortField = "popular"
	SortCalories SortField = "calories"
	SortTime     SortField = "time"
)

// Query reúne os filtros aplicados ao catálogo
type Query struct {
	Category string
	MealType string
	Search   string
	SortBy   SortField
}

// Matches verifica se a receita atende aos filtros da consulta
func (q Query) Matches(r *Recipe) bool {
	if q.Category != "" && q.Category != AllCategories && r.Category != q.Category {
		return false
	}
	if q.MealType != "" && q.MealType != AllMealTypes && string(r.MealType) != q.MealType {
		return false
	}
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Category), term)
}

// Filter aplica a consulta e a ordenação sobre as receitas, sem alterar a entrada
func Filter(recipes []*Recipe, q Query) []*Recipe {
	filtered := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		if q.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return Sort(filtered, q.SortBy)
}

// Sort devolve uma cópia ordenada. "popular" e vazio mantêm a ordem do catálogo.
func Sort(recipes []*Recipe, by SortField) []*Recipe {
	sorted := make([]*Recipe, len(recipes))
	copy(sorted, recipes)

	switch by {
	case SortCalories:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CaloriesValue() < sorted[j].CaloriesValue()
		})
	case SortTime:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PrepMinutes() < sorted[j].PrepMinutes()
		})
	}

	return sorted
}

// Categories retorna as categorias distintas do catálogo, em ordem alfabética
func Categories(recipes []*Recipe) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range recipes {
		if _, ok := seen[r.Category]; ok || r.Category == "" {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out
}
