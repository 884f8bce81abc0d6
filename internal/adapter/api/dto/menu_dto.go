package dto

import (
	"time"

	"github.com/hugohenrick/liora/internal/domain/menu"
)

// SlotRequest representa a alteração de uma posição do menu
type SlotRequest struct {
	Day      string  `json:"day" binding:"required"`       // "Lunes" ou "monday"
	MealType string  `json:"meal_type" binding:"required"` // desayuno, comida, snack, cena
	RecipeID *string `json:"recipe_id"`                    // null limpa a posição
}

// MenuItemResponse representa uma receita posicionada no menu
type MenuItemResponse struct {
	Day      string         `json:"day"`
	MealType string         `json:"meal_type"`
	Recipe   RecipeResponse `json:"recipe"`
}

// MenuResponse representa um menu semanal
type MenuResponse struct {
	ID        string             `json:"id"`
	Status    string             `json:"status"`
	Slots     map[string]string  `json:"slots"`
	Items     []MenuItemResponse `json:"items,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// TodayResponse representa o cartão do dia atual
type TodayResponse struct {
	Date          string                      `json:"date"`
	Day           string                      `json:"day"`
	MenuID        string                      `json:"menu_id,omitempty"`
	Items         []MenuItemResponse          `json:"items"`
	Completions   map[string]*menu.Completion `json:"completions"`
	TotalCalories int                         `json:"total_calories"`
}

// ToggleCompletionRequest representa a marcação de uma receita do dia
type ToggleCompletionRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	Skipped  bool   `json:"skipped"`
}

// ToggleCompletionResponse indica o estado resultante da marcação
type ToggleCompletionResponse struct {
	Completed  bool             `json:"completed"`
	Completion *menu.Completion `json:"completion,omitempty"`
}

// ToMenuItemResponses converte os itens do menu
func ToMenuItemResponses(items []menu.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, MenuItemResponse{
			Day:      item.Day,
			MealType: string(item.Meal),
			Recipe:   ToRecipeResponse(item.Recipe),
		})
	}
	return out
}

// ToMenuResponse converte um menu do domínio
func ToMenuResponse(m *menu.WeeklyMenu, items []menu.MenuItem) MenuResponse {
	resp := MenuResponse{
		ID:        m.ID,
		Status:    string(m.Status),
		Slots:     m.Slots,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if items != nil {
		resp.Items = ToMenuItemResponses(items)
	}
	return resp
}

// ToTodayResponse converte o cartão do dia
func ToTodayResponse(t *menu.Today) TodayResponse {
	return TodayResponse{
		Date:          t.Date.Format("2006-01-02"),
		Day:           t.Day,
		MenuID:        t.MenuID,
		Items:         ToMenuItemResponses(t.Items),
		Completions:   t.Completions,
		TotalCalories: t.TotalCalories,
	}
}
