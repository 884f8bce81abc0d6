package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/liora/pkg/chat"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

func (r *ChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	query := `
		INSERT INTO chat_history (id, user_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	// Se o ID da mensagem estiver vazio, gerar um novo
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.UserID,
		string(message.Role),
		message.Content,
		message.Timestamp,
	)

	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

func (r *ChatRepository) GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	query := `
		SELECT id, role, content, created_at
		FROM chat_history
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	messages := make([]chat.Message, 0)
	for rows.Next() {
		var msg chat.Message
		var role string
		err := rows.Scan(
			&msg.ID,
			&role,
			&msg.Content,
			&msg.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		msg.UserID = userID
		msg.Role = chat.Role(role)
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return messages, nil
}

func (r *ChatRepository) DeleteUserHistory(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}

	return nil
}

func (r *ChatRepository) CountUserMessages(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_history WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}

	return count, nil
}
