package menu

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de menus semanais
type Repository interface {
	// FindActive busca o menu ativo do usuário
	FindActive(ctx context.Context, userID string) (*WeeklyMenu, error)

	// FindByID busca um menu do usuário pelo ID
	FindByID(ctx context.Context, id, userID string) (*WeeklyMenu, error)

	// ListByUser lista todos os menus do usuário
	ListByUser(ctx context.Context, userID string) ([]*WeeklyMenu, error)

	// ListArchived lista os menus arquivados, mais recentes primeiro
	ListArchived(ctx context.Context, userID string) ([]*WeeklyMenu, error)

	// Create cria um novo menu
	Create(ctx context.Context, m *WeeklyMenu) error

	// UpdateSlot grava a receita (ou nil) de uma coluna do menu
	UpdateSlot(ctx context.Context, menuID, userID, column string, recipeID *string) error

	// Restore arquiva o menu ativo e ativa o menu informado
	Restore(ctx context.Context, userID, menuID string) error
}

// CompletionRepository define a interface para as conclusões diárias
type CompletionRepository interface {
	// ListByDay lista as conclusões do usuário em um dia
	ListByDay(ctx context.Context, userID string, day time.Time) ([]*Completion, error)

	// Upsert cria ou substitui a conclusão de (usuário, receita, dia)
	Upsert(ctx context.Context, c *Completion) (*Completion, error)

	// Delete remove uma conclusão do usuário
	Delete(ctx context.Context, id, userID string) error
}
