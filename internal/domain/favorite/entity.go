package favorite

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/liora/internal/domain/recipe"
)

var (
	ErrFavoriteNotFound = errors.New("favorito não encontrado")
	ErrEmptyRecipe      = errors.New("receita não informada")
	ErrEmptyUser        = errors.New("usuário não informado")
	ErrInvalidRating    = errors.New("avaliação deve estar entre 0 e 5")
	ErrNotOwner         = errors.New("você não tem permissão para remover este favorito")
	ErrDuplicate        = errors.New("receita já está nos favoritos")
)

// Favorite representa uma receita marcada como favorita por um usuário
type Favorite struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	RecipeID   string     `json:"recipe_id"`
	Notes      *string    `json:"notes"`
	LastCooked *time.Time `json:"last_cooked"`
	Tags       []string   `json:"tags"`
	Rating     int        `json:"rating"`
	CreatedAt  time.Time  `json:"created_at"`

	// Preenchidos nas consultas com join
	Recipe     *recipe.Recipe `json:"recipe,omitempty"`
	MemberName string         `json:"member_name,omitempty"`
}

// NewFavorite cria um novo favorito
func NewFavorite(userID, recipeID string, notes *string, tags []string, rating int, lastCooked *time.Time) (*Favorite, error) {
	if userID == "" {
		return nil, ErrEmptyUser
	}
	if recipeID == "" {
		return nil, ErrEmptyRecipe
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if tags == nil {
		tags = []string{}
	}

	return &Favorite{
		ID:         uuid.New().String(),
		UserID:     userID,
		RecipeID:   recipeID,
		Notes:      notes,
		LastCooked: lastCooked,
		Tags:       tags,
		Rating:     rating,
		CreatedAt:  time.Now(),
	}, nil
}

// CanBeRemovedBy verifica se o usuário é o dono do favorito
func (f *Favorite) CanBeRemovedBy(userID string) bool {
	return f.UserID != "" && f.UserID == userID
}

// Recipes extrai as receitas dos favoritos, ignorando joins vazios
func Recipes(favorites []*Favorite) []*recipe.Recipe {
	out := make([]*recipe.Recipe, 0, len(favorites))
	for _, f := range favorites {
		if f.Recipe != nil {
			out = append(out, f.Recipe)
		}
	}
	return out
}
