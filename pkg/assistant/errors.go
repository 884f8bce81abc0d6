package assistant

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated é retornado quando não há usuário autenticado na requisição
	ErrNotAuthenticated = errors.New("usuario no autenticado")

	// ErrGenerationFailed indica falha do gerador de respostas
	ErrGenerationFailed = errors.New("falha ao gerar resposta do assistente")

	// ErrEmptyResponse indica que o modelo respondeu sem conteúdo
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
)

// Source identifica a coleção consultada na montagem do contexto
type Source string

const (
	SourceProfile   Source = "profiles"
	SourceFavorites Source = "favorites"
	SourceMenus     Source = "weekly_menus"
	SourceShopping  Source = "shopping_list_items"
)

// DataFetchError envolve a primeira falha de leitura encontrada na montagem do contexto
type DataFetchError struct {
	Source Source
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("erro ao buscar %s: %v", e.Source, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}
