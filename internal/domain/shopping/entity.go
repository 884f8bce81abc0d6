package shopping

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errors.New("item da lista de compras não encontrado")
	ErrEmptyName       = errors.New("nome do item não pode ser vazio")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
)

const (
	DefaultUnit     = "unidad"
	DefaultCategory = "otros"
)

// Item representa um item da lista de compras
type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Checked   bool      `json:"checked"`
	Days      []string  `json:"days"` // Dias do menu que usam o item
	CreatedAt time.Time `json:"created_at"`
}

// NewItem cria um novo item da lista de compras
func NewItem(userID, name string, quantity float64, unit, category string, days []string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unit == "" {
		unit = DefaultUnit
	}
	if category == "" {
		category = DefaultCategory
	}
	if days == nil {
		days = []string{}
	}

	return &Item{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		Category:  category,
		Days:      days,
		CreatedAt: time.Now(),
	}, nil
}

// Toggle inverte a marcação do item
func (i *Item) Toggle() {
	i.Checked = !i.Checked
}

// Repository define a interface para operações de repositório da lista de compras
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*Item, error)
	FindByID(ctx context.Context, id, userID string) (*Item, error)
	Create(ctx context.Context, item *Item) error
	UpdateChecked(ctx context.Context, id, userID string, checked bool) error
	Delete(ctx context.Context, id, userID string) error
}
