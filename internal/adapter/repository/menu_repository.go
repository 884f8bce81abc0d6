package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/infrastructure/database"
	"github.com/hugohenrick/liora/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MenuRepository implementa a interface menu.Repository usando PostgreSQL
type MenuRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewMenuRepository cria uma nova instância de MenuRepository
func NewMenuRepository(db *pgxpool.Pool, log logger.Logger) menu.Repository {
	return &MenuRepository{
		db:     db,
		logger: log,
	}
}

func menuColumns() string {
	return "id, user_id, status, created_at, updated_at, " + strings.Join(menu.SlotColumns(), ", ")
}

func scanMenu(row pgx.Row) (*menu.WeeklyMenu, error) {
	m := &menu.WeeklyMenu{Slots: make(map[string]string)}
	var status string

	columns := menu.SlotColumns()
	slots := make([]*string, len(columns))

	dest := []interface{}{&m.ID, &m.UserID, &status, &m.CreatedAt, &m.UpdatedAt}
	for i := range slots {
		dest = append(dest, &slots[i])
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	m.Status = menu.Status(status)
	for i, column := range columns {
		if slots[i] != nil {
			m.Slots[column] = *slots[i]
		}
	}
	return m, nil
}

func (r *MenuRepository) list(ctx context.Context, where string, args ...interface{}) ([]*menu.WeeklyMenu, error) {
	query := fmt.Sprintf(`SELECT %s FROM weekly_menus WHERE %s ORDER BY created_at DESC`, menuColumns(), where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar menus: %w", err)
	}
	defer rows.Close()

	menus := make([]*menu.WeeklyMenu, 0)
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler menu: %w", err)
		}
		menus = append(menus, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return menus, nil
}

func (r *MenuRepository) findOne(ctx context.Context, where string, args ...interface{}) (*menu.WeeklyMenu, error) {
	query := fmt.Sprintf(`SELECT %s FROM weekly_menus WHERE %s`, menuColumns(), where)

	m, err := scanMenu(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, menu.ErrMenuNotFound
		}
		return nil, fmt.Errorf("erro ao buscar menu: %w", err)
	}
	return m, nil
}

// FindActive implementa menu.Repository.FindActive
func (r *MenuRepository) FindActive(ctx context.Context, userID string) (*menu.WeeklyMenu, error) {
	return r.findOne(ctx, "user_id = $1 AND status = $2", userID, string(menu.StatusActive))
}

// FindByID implementa menu.Repository.FindByID
func (r *MenuRepository) FindByID(ctx context.Context, id, userID string) (*menu.WeeklyMenu, error) {
	if !validID(id) {
		return nil, menu.ErrMenuNotFound
	}
	return r.findOne(ctx, "id = $1 AND user_id = $2", id, userID)
}

// ListByUser implementa menu.Repository.ListByUser
func (r *MenuRepository) ListByUser(ctx context.Context, userID string) ([]*menu.WeeklyMenu, error) {
	return r.list(ctx, "user_id = $1", userID)
}

// ListArchived implementa menu.Repository.ListArchived
func (r *MenuRepository) ListArchived(ctx context.Context, userID string) ([]*menu.WeeklyMenu, error) {
	return r.list(ctx, "user_id = $1 AND status = $2", userID, string(menu.StatusArchived))
}

// Create implementa menu.Repository.Create
func (r *MenuRepository) Create(ctx context.Context, m *menu.WeeklyMenu) error {
	columns := menu.SlotColumns()

	names := append([]string{"id", "user_id", "status", "created_at", "updated_at"}, columns...)
	args := []interface{}{m.ID, m.UserID, string(m.Status), m.CreatedAt, m.UpdatedAt}
	for _, column := range columns {
		if id, ok := m.Slots[column]; ok && id != "" {
			args = append(args, id)
		} else {
			args = append(args, nil)
		}
	}

	placeholders := make([]string, len(names))
	for i := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO weekly_menus (%s) VALUES (%s)`,
		strings.Join(names, ", "), strings.Join(placeholders, ", "))

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return menu.ErrActiveMenuExists
		}
		return fmt.Errorf("erro ao inserir menu: %w", err)
	}

	return nil
}

// UpdateSlot implementa menu.Repository.UpdateSlot
func (r *MenuRepository) UpdateSlot(ctx context.Context, menuID, userID, column string, recipeID *string) error {
	if !isSlotColumn(column) {
		return fmt.Errorf("coluna de menu inválida: %s", column)
	}

	var value interface{}
	if recipeID != nil && *recipeID != "" {
		value = *recipeID
	}

	query := fmt.Sprintf(`
		UPDATE weekly_menus
		SET %s = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
	`, pgx.Identifier{column}.Sanitize())

	result, err := r.db.Exec(ctx, query, value, menuID, userID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar menu: %w", err)
	}

	if result.RowsAffected() == 0 {
		return menu.ErrMenuNotFound
	}

	return nil
}

// Restore implementa menu.Repository.Restore
func (r *MenuRepository) Restore(ctx context.Context, userID, menuID string) error {
	return database.RunInTx(ctx, r.db, r.logger, func(tx pgx.Tx) error {
		// O índice único permite apenas um menu ativo por usuário, então arquiva antes de ativar
		_, err := tx.Exec(ctx, `
			UPDATE weekly_menus
			SET status = $1, updated_at = now()
			WHERE user_id = $2 AND status = $3 AND id <> $4
		`, string(menu.StatusArchived), userID, string(menu.StatusActive), menuID)
		if err != nil {
			return fmt.Errorf("erro ao arquivar menu atual: %w", err)
		}

		result, err := tx.Exec(ctx, `
			UPDATE weekly_menus
			SET status = $1, updated_at = now()
			WHERE id = $2 AND user_id = $3
		`, string(menu.StatusActive), menuID, userID)
		if err != nil {
			return fmt.Errorf("erro ao ativar menu: %w", err)
		}

		if result.RowsAffected() == 0 {
			return menu.ErrMenuNotFound
		}

		return nil
	})
}

func isSlotColumn(column string) bool {
	for _, c := range menu.SlotColumns() {
		if c == column {
			return true
		}
	}
	return false
}

// CompletionRepository implementa a interface menu.CompletionRepository usando PostgreSQL
type CompletionRepository struct {
	db *pgxpool.Pool
}

// NewCompletionRepository cria uma nova instância de CompletionRepository
func NewCompletionRepository(db *pgxpool.Pool) menu.CompletionRepository {
	return &CompletionRepository{
		db: db,
	}
}

// ListByDay implementa menu.CompletionRepository.ListByDay
func (r *CompletionRepository) ListByDay(ctx context.Context, userID string, day time.Time) ([]*menu.Completion, error) {
	query := `
		SELECT id, user_id, recipe_id, menu_id, day, meal_type, skipped, skipped_reason, rating, created_at, modified_at
		FROM recipe_completions
		WHERE user_id = $1 AND day = $2
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID, menu.DateOf(day))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar conclusões: %w", err)
	}
	defer rows.Close()

	completions := make([]*menu.Completion, 0)
	for rows.Next() {
		c := &menu.Completion{}
		var mealType string
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.RecipeID,
			&c.MenuID,
			&c.Day,
			&mealType,
			&c.Skipped,
			&c.SkippedReason,
			&c.Rating,
			&c.CreatedAt,
			&c.ModifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conclusão: %w", err)
		}
		c.MealType = recipe.MealType(mealType)
		completions = append(completions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return completions, nil
}

// Upsert implementa menu.CompletionRepository.Upsert
func (r *CompletionRepository) Upsert(ctx context.Context, c *menu.Completion) (*menu.Completion, error) {
	query := `
		INSERT INTO recipe_completions (
			id, user_id, recipe_id, menu_id, day, meal_type, skipped, skipped_reason, rating, created_at, modified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, recipe_id, day) DO UPDATE SET
			menu_id = EXCLUDED.menu_id,
			meal_type = EXCLUDED.meal_type,
			skipped = EXCLUDED.skipped,
			skipped_reason = EXCLUDED.skipped_reason,
			modified_at = EXCLUDED.modified_at
		RETURNING id, created_at, modified_at
	`

	saved := *c
	err := r.db.QueryRow(ctx, query,
		c.ID,
		c.UserID,
		c.RecipeID,
		c.MenuID,
		menu.DateOf(c.Day),
		string(c.MealType),
		c.Skipped,
		c.SkippedReason,
		c.Rating,
		c.CreatedAt,
		c.ModifiedAt,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.ModifiedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar conclusão: %w", err)
	}

	return &saved, nil
}

// Delete implementa menu.CompletionRepository.Delete
func (r *CompletionRepository) Delete(ctx context.Context, id, userID string) error {
	if !validID(id) {
		return menu.ErrCompletionNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM recipe_completions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("erro ao remover conclusão: %w", err)
	}

	if result.RowsAffected() == 0 {
		return menu.ErrCompletionNotFound
	}

	return nil
}
