package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/liora/internal/domain/recipe"
)

// Today agrupa as receitas do dia atual e o progresso do usuário
type Today struct {
	Date          time.Time              `json:"date"`
	Day           string                 `json:"day"`
	MenuID        string                 `json:"menu_id"`
	Items         []MenuItem             `json:"items"`
	Completions   map[string]*Completion `json:"completions"` // Por recipe_id
	TotalCalories int                    `json:"total_calories"`
}

// TotalCalories soma as calorias das receitas, lendo apenas os dígitos de cada texto
func TotalCalories(items []MenuItem) int {
	total := 0
	for _, item := range items {
		if item.Recipe != nil {
			total += recipe.DigitsNumber(item.Recipe.Calories)
		}
	}
	return total
}

// CompletionsByRecipe indexa as conclusões pelo ID da receita
func CompletionsByRecipe(completions []*Completion) map[string]*Completion {
	out := make(map[string]*Completion, len(completions))
	for _, c := range completions {
		out[c.RecipeID] = c
	}
	return out
}

// Service concentra as regras do menu semanal e do cartão do dia
type Service struct {
	menus       Repository
	completions CompletionRepository
	recipes     recipe.Repository
	now         func() time.Time
}

// NewService cria o serviço de menus
func NewService(menus Repository, completions CompletionRepository, recipes recipe.Repository) *Service {
	return &Service{
		menus:       menus,
		completions: completions,
		recipes:     recipes,
		now:         time.Now,
	}
}

// WithClock substitui o relógio usado para determinar o dia atual
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Active retorna o menu ativo do usuário, criando um menu vazio no primeiro acesso
func (s *Service) Active(ctx context.Context, userID string) (*WeeklyMenu, error) {
	m, err := s.menus.FindActive(ctx, userID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, ErrMenuNotFound) {
		return nil, err
	}

	m = NewWeeklyMenu(userID)
	if err := s.menus.Create(ctx, m); err != nil {
		// Outra requisição criou o menu ativo primeiro
		if errors.Is(err, ErrActiveMenuExists) {
			return s.menus.FindActive(ctx, userID)
		}
		return nil, fmt.Errorf("erro ao criar menu: %w", err)
	}
	return m, nil
}

// Resolve carrega as receitas referenciadas pelo menu
func (s *Service) Resolve(ctx context.Context, m *WeeklyMenu) ([]MenuItem, error) {
	ids := m.RecipeIDs()
	if len(ids) == 0 {
		return []MenuItem{}, nil
	}
	recipes, err := s.recipes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar receitas do menu: %w", err)
	}
	return m.Items(recipes), nil
}

// SetSlot define ou limpa a receita de uma posição do menu ativo
func (s *Service) SetSlot(ctx context.Context, userID, day string, meal recipe.MealType, recipeID *string) (*WeeklyMenu, error) {
	m, err := s.Active(ctx, userID)
	if err != nil {
		return nil, err
	}

	if recipeID != nil && *recipeID != "" {
		if _, err := s.recipes.FindByID(ctx, *recipeID); err != nil {
			return nil, err
		}
	}

	column, err := m.SetSlot(day, meal, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.menus.UpdateSlot(ctx, m.ID, userID, column, recipeID); err != nil {
		return nil, fmt.Errorf("erro ao atualizar menu: %w", err)
	}
	return m, nil
}

// Restore reativa um menu arquivado, arquivando o menu atual
func (s *Service) Restore(ctx context.Context, userID, menuID string) (*WeeklyMenu, error) {
	m, err := s.menus.FindByID(ctx, menuID, userID)
	if err != nil {
		return nil, err
	}
	if m.IsActive() {
		return m, nil
	}
	if err := s.menus.Restore(ctx, userID, menuID); err != nil {
		return nil, fmt.Errorf("erro ao restaurar menu: %w", err)
	}
	m.Status = StatusActive
	return m, nil
}

// Today monta o cartão do dia atual
func (s *Service) Today(ctx context.Context, userID string) (*Today, error) {
	now := s.now()
	day := DayForWeekday(now.Weekday())

	m, err := s.menus.FindActive(ctx, userID)
	if errors.Is(err, ErrMenuNotFound) {
		return &Today{
			Date:        DateOf(now),
			Day:         day,
			Items:       []MenuItem{},
			Completions: map[string]*Completion{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	items := []MenuItem{}
	if ids := m.RecipeIDs(); len(ids) > 0 {
		recipes, err := s.recipes.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar receitas do dia: %w", err)
		}
		items = m.ItemsForDay(day, recipes)
	}

	completions, err := s.completions.ListByDay(ctx, userID, DateOf(now))
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar conclusões: %w", err)
	}

	return &Today{
		Date:          DateOf(now),
		Day:           day,
		MenuID:        m.ID,
		Items:         items,
		Completions:   CompletionsByRecipe(completions),
		TotalCalories: TotalCalories(items),
	}, nil
}

// ToggleCompletion remove a conclusão da receita no dia atual se existir, ou cria uma nova.
// Retorna a conclusão criada, ou nil quando a conclusão foi removida.
func (s *Service) ToggleCompletion(ctx context.Context, userID, recipeID string, meal recipe.MealType, skipped bool) (*Completion, error) {
	if !meal.IsValid() {
		return nil, ErrInvalidMeal
	}

	m, err := s.menus.FindActive(ctx, userID)
	if errors.Is(err, ErrMenuNotFound) {
		return nil, ErrNoActiveMenu
	}
	if err != nil {
		return nil, err
	}

	today := DateOf(s.now())
	existing, err := s.completions.ListByDay(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar conclusões: %w", err)
	}

	if c, ok := CompletionsByRecipe(existing)[recipeID]; ok {
		if err := s.completions.Delete(ctx, c.ID, userID); err != nil {
			return nil, fmt.Errorf("erro ao remover conclusão: %w", err)
		}
		return nil, nil
	}

	c := NewCompletion(userID, recipeID, m.ID, today, meal, skipped)
	saved, err := s.completions.Upsert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar conclusão: %w", err)
	}
	return saved, nil
}
