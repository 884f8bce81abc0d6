package dto

import (
	"time"

	"github.com/hugohenrick/liora/internal/domain/favorite"
)

// FavoriteRequest representa os dados para adicionar um favorito
type FavoriteRequest struct {
	RecipeID   string     `json:"recipe_id" binding:"required,uuid"`
	Notes      *string    `json:"notes"`
	Tags       []string   `json:"tags"`
	Rating     int        `json:"rating" binding:"min=0,max=5"`
	LastCooked *time.Time `json:"last_cooked"`
}

// FavoriteResponse representa um favorito com a receita associada
type FavoriteResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	MemberName string          `json:"member_name,omitempty"`
	Notes      *string         `json:"notes"`
	Tags       []string        `json:"tags"`
	Rating     int             `json:"rating"`
	LastCooked *time.Time      `json:"last_cooked"`
	CreatedAt  time.Time       `json:"created_at"`
	Recipe     *RecipeResponse `json:"recipe,omitempty"`
}

// ToFavoriteResponse converte um favorito do domínio
func ToFavoriteResponse(f *favorite.Favorite) FavoriteResponse {
	resp := FavoriteResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		MemberName: f.MemberName,
		Notes:      f.Notes,
		Tags:       f.Tags,
		Rating:     f.Rating,
		LastCooked: f.LastCooked,
		CreatedAt:  f.CreatedAt,
	}
	if f.Recipe != nil {
		r := ToRecipeResponse(f.Recipe)
		resp.Recipe = &r
	}
	return resp
}

// ToFavoriteResponses converte uma lista de favoritos
func ToFavoriteResponses(favorites []*favorite.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, ToFavoriteResponse(f))
	}
	return out
}
