package favorite

import (
	"context"
)

// Repository define a interface para operações de repositório de favoritos
type Repository interface {
	// Create adiciona um favorito
	Create(ctx context.Context, f *Favorite) error

	// FindByID busca um favorito pelo ID
	FindByID(ctx context.Context, id string) (*Favorite, error)

	// ListByUser lista os favoritos de um usuário, com a receita associada
	ListByUser(ctx context.Context, userID string) ([]*Favorite, error)

	// ListByHousehold lista os favoritos de todos os perfis de um household
	ListByHousehold(ctx context.Context, householdID string) ([]*Favorite, error)

	// Delete remove o favorito se pertencer ao usuário
	Delete(ctx context.Context, id, userID string) error
}
