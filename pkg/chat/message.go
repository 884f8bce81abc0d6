package chat

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent = errors.New("conteúdo da mensagem não pode ser vazio")
	ErrInvalidRole  = errors.New("papel da mensagem inválido")
)

// Role identifica o autor de uma mensagem
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid verifica se o papel é conhecido
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message representa uma mensagem no histórico do chat.
// Mensagens não são alteradas depois de gravadas.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage cria uma mensagem com ID e horário preenchidos
func NewMessage(userID string, role Role, content string) (*Message, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return &Message{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}, nil
}

// Chronological recebe mensagens da mais recente para a mais antiga, como o
// repositório as retorna, e devolve uma cópia em ordem cronológica.
// Empates de horário mantêm a ordem de inserção do repositório.
func Chronological(newestFirst []Message) []Message {
	n := len(newestFirst)
	out := make([]Message, n)
	for i, m := range newestFirst {
		out[n-1-i] = m
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
