package menu

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/liora/internal/domain/recipe"
)

var (
	ErrMenuNotFound       = errors.New("menu não encontrado")
	ErrNoActiveMenu       = errors.New("nenhum menu ativo encontrado")
	ErrCompletionNotFound = errors.New("conclusão não encontrada")
	ErrActiveMenuExists   = errors.New("usuário já possui um menu ativo")
)

// Status representa o estado de um menu semanal
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// WeeklyMenu representa o menu semanal de um usuário.
// Slots mapeia a coluna (ex: monday_lunch_id) para o ID da receita.
type WeeklyMenu struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Status    Status            `json:"status"`
	Slots     map[string]string `json:"slots"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// MenuItem é uma receita posicionada em um dia e refeição
type MenuItem struct {
	Day    string          `json:"day"`
	Meal   recipe.MealType `json:"meal"`
	Recipe *recipe.Recipe  `json:"recipe"`
}

// NewWeeklyMenu cria um menu ativo e vazio
func NewWeeklyMenu(userID string) *WeeklyMenu {
	now := time.Now()
	return &WeeklyMenu{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    StatusActive,
		Slots:     make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive verifica se o menu está ativo
func (m *WeeklyMenu) IsActive() bool {
	return m.Status == StatusActive
}

// SetSlot define (ou limpa, com recipeID nil) a receita de um dia e refeição
func (m *WeeklyMenu) SetSlot(day string, meal recipe.MealType, recipeID *string) (string, error) {
	column, err := SlotColumn(day, meal)
	if err != nil {
		return "", err
	}
	if m.Slots == nil {
		m.Slots = make(map[string]string)
	}
	if recipeID == nil || *recipeID == "" {
		delete(m.Slots, column)
	} else {
		m.Slots[column] = *recipeID
	}
	m.UpdatedAt = time.Now()
	return column, nil
}

// RecipeIDs retorna os IDs distintos das receitas do menu, na ordem das posições
func (m *WeeklyMenu) RecipeIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, s := range Slots() {
		id, ok := m.Slots[s.Column]
		if !ok || id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Items resolve as posições preenchidas em itens, ignorando receitas ausentes
func (m *WeeklyMenu) Items(recipes map[string]*recipe.Recipe) []MenuItem {
	items := make([]MenuItem, 0)
	for _, s := range Slots() {
		if item, ok := m.item(s, recipes); ok {
			items = append(items, item)
		}
	}
	return items
}

// ItemsForDay resolve apenas as posições de um dia
func (m *WeeklyMenu) ItemsForDay(day string, recipes map[string]*recipe.Recipe) []MenuItem {
	name, err := DayName(day)
	if err != nil {
		return []MenuItem{}
	}
	items := make([]MenuItem, 0, len(recipe.MealTypes))
	for _, s := range Slots() {
		if s.Day != name {
			continue
		}
		if item, ok := m.item(s, recipes); ok {
			items = append(items, item)
		}
	}
	return items
}

func (m *WeeklyMenu) item(s Slot, recipes map[string]*recipe.Recipe) (MenuItem, bool) {
	id, ok := m.Slots[s.Column]
	if !ok || id == "" {
		return MenuItem{}, false
	}
	r, ok := recipes[id]
	if !ok || r == nil {
		return MenuItem{}, false
	}
	return MenuItem{Day: s.Day, Meal: s.Meal, Recipe: r}, true
}

// Completion registra que uma receita do menu foi feita (ou pulada) em um dia
type Completion struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	RecipeID      string          `json:"recipe_id"`
	MenuID        string          `json:"menu_id"`
	Day           time.Time       `json:"day"`
	MealType      recipe.MealType `json:"meal_type"`
	Skipped       bool            `json:"skipped"`
	SkippedReason *string         `json:"skipped_reason"`
	Rating        *int            `json:"rating"`
	CreatedAt     time.Time       `json:"created_at"`
	ModifiedAt    time.Time       `json:"modified_at"`
}

// SkippedManually é o motivo registrado quando o usuário pula uma receita
const SkippedManually = "Skipped manually"

// NewCompletion cria uma conclusão para o dia informado
func NewCompletion(userID, recipeID, menuID string, day time.Time, meal recipe.MealType, skipped bool) *Completion {
	now := time.Now()
	c := &Completion{
		ID:         uuid.New().String(),
		UserID:     userID,
		RecipeID:   recipeID,
		MenuID:     menuID,
		Day:        DateOf(day),
		MealType:   meal,
		Skipped:    skipped,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if skipped {
		reason := SkippedManually
		c.SkippedReason = &reason
	}
	return c
}

// DateOf descarta o horário, mantendo a data no fuso de t
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
