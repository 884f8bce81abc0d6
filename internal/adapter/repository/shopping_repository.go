package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/liora/internal/domain/shopping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShoppingRepository implementa a interface shopping.Repository usando PostgreSQL
type ShoppingRepository struct {
	db *pgxpool.Pool
}

// NewShoppingRepository cria uma nova instância de ShoppingRepository
func NewShoppingRepository(db *pgxpool.Pool) shopping.Repository {
	return &ShoppingRepository{
		db: db,
	}
}

const shoppingColumns = `id, user_id, name, quantity, unit, category, checked, days, created_at`

func scanItem(row pgx.Row) (*shopping.Item, error) {
	item := &shopping.Item{}
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Quantity,
		&item.Unit,
		&item.Category,
		&item.Checked,
		&item.Days,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if item.Days == nil {
		item.Days = []string{}
	}
	return item, nil
}

// ListByUser implementa shopping.Repository.ListByUser
func (r *ShoppingRepository) ListByUser(ctx context.Context, userID string) ([]*shopping.Item, error) {
	query := `SELECT ` + shoppingColumns + `
		FROM shopping_list_items
		WHERE user_id = $1
		ORDER BY checked, category, name`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens: %w", err)
	}
	defer rows.Close()

	items := make([]*shopping.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return items, nil
}

// FindByID implementa shopping.Repository.FindByID
func (r *ShoppingRepository) FindByID(ctx context.Context, id, userID string) (*shopping.Item, error) {
	if !validID(id) {
		return nil, shopping.ErrItemNotFound
	}

	query := `SELECT ` + shoppingColumns + ` FROM shopping_list_items WHERE id = $1 AND user_id = $2`

	item, err := scanItem(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shopping.ErrItemNotFound
		}
		return nil, fmt.Errorf("erro ao buscar item: %w", err)
	}
	return item, nil
}

// Create implementa shopping.Repository.Create
func (r *ShoppingRepository) Create(ctx context.Context, item *shopping.Item) error {
	query := `
		INSERT INTO shopping_list_items (` + shoppingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Name,
		item.Quantity,
		item.Unit,
		item.Category,
		item.Checked,
		item.Days,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao inserir item: %w", err)
	}

	return nil
}

// UpdateChecked implementa shopping.Repository.UpdateChecked
func (r *ShoppingRepository) UpdateChecked(ctx context.Context, id, userID string, checked bool) error {
	if !validID(id) {
		return shopping.ErrItemNotFound
	}

	result, err := r.db.Exec(ctx,
		`UPDATE shopping_list_items SET checked = $1 WHERE id = $2 AND user_id = $3`,
		checked, id, userID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shopping.ErrItemNotFound
	}

	return nil
}

// Delete implementa shopping.Repository.Delete
func (r *ShoppingRepository) Delete(ctx context.Context, id, userID string) error {
	if !validID(id) {
		return shopping.ErrItemNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM shopping_list_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("erro ao remover item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shopping.ErrItemNotFound
	}

	return nil
}
