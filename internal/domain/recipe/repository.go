package recipe

import (
	"context"
)

// Repository define a interface para operações de repositório de receitas
type Repository interface {
	// List retorna o catálogo completo
	List(ctx context.Context) ([]*Recipe, error)

	// FindByID busca uma receita pelo ID
	FindByID(ctx context.Context, id string) (*Recipe, error)

	// FindByIDs busca várias receitas, indexadas pelo ID
	FindByIDs(ctx context.Context, ids []string) (map[string]*Recipe, error)
}
