package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/internal/domain/favorite"
	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/logger"
)

// FavoriteController gerencia as requisições de receitas favoritas
type FavoriteController struct {
	favoriteRepo favorite.Repository
	profileRepo  profile.Repository
	recipeRepo   recipe.Repository
	logger       logger.Logger
}

// NewFavoriteController cria uma nova instância de FavoriteController
func NewFavoriteController(favoriteRepo favorite.Repository, profileRepo profile.Repository, recipeRepo recipe.Repository, logger logger.Logger) *FavoriteController {
	return &FavoriteController{
		favoriteRepo: favoriteRepo,
		profileRepo:  profileRepo,
		recipeRepo:   recipeRepo,
		logger:       logger,
	}
}

// List lista os favoritos do usuário ou do household
// @Summary Listar favoritos
// @Description Lista os favoritos do usuário. Com household=true, lista os favoritos de todos os membros do household vinculado
// @Tags favorites
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param household query bool false "Incluir favoritos do household"
// @Success 200 {array} dto.FavoriteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /favorites [get]
func (c *FavoriteController) List(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)
	household, _ := strconv.ParseBool(ctx.Query("household"))

	var (
		favorites []*favorite.Favorite
		err       error
	)

	householdID := ""
	if household {
		p, perr := c.profileRepo.FindByUserID(ctx.Request.Context(), u.ID)
		if perr != nil && !errors.Is(perr, profile.ErrProfileNotFound) {
			c.logger.Error("Erro ao buscar perfil", "error", perr, "user_id", u.ID)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar perfil", perr.Error()))
			return
		}
		householdID = p.HouseholdID()
	}

	if householdID != "" {
		favorites, err = c.favoriteRepo.ListByHousehold(ctx.Request.Context(), householdID)
	} else {
		favorites, err = c.favoriteRepo.ListByUser(ctx.Request.Context(), u.ID)
	}
	if err != nil {
		c.logger.Error("Erro ao listar favoritos", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar favoritos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFavoriteResponses(favorites))
}

// Create adiciona uma receita aos favoritos
// @Summary Adicionar favorito
// @Description Adiciona uma receita aos favoritos do usuário
// @Tags favorites
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param favorite body dto.FavoriteRequest true "Dados do favorito"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /favorites [post]
func (c *FavoriteController) Create(ctx *gin.Context) {
	var req dto.FavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u := auth.GetCurrentUser(ctx)

	f, err := favorite.NewFavorite(u.ID, req.RecipeID, req.Notes, req.Tags, req.Rating, req.LastCooked)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar favorito", err.Error()))
		return
	}

	r, err := c.recipeRepo.FindByID(ctx.Request.Context(), req.RecipeID)
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "receita não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar receita", "error", err, "recipe_id", req.RecipeID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar receita", err.Error()))
		return
	}

	if err := c.favoriteRepo.Create(ctx.Request.Context(), f); err != nil {
		switch {
		case errors.Is(err, favorite.ErrDuplicate):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		case errors.Is(err, recipe.ErrRecipeNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "receita não encontrada", ""))
		default:
			c.logger.Error("Erro ao salvar favorito", "error", err, "user_id", u.ID)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar favorito", err.Error()))
		}
		return
	}

	f.Recipe = r
	ctx.JSON(http.StatusCreated, dto.ToFavoriteResponse(f))
}

// Delete remove um favorito do usuário
// @Summary Remover favorito
// @Description Remove um favorito. Apenas o dono pode remover
// @Tags favorites
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do favorito"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /favorites/{id} [delete]
func (c *FavoriteController) Delete(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)
	id := ctx.Param("id")

	f, err := c.favoriteRepo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, favorite.ErrFavoriteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("Erro ao buscar favorito", "error", err, "favorite_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar favorito", err.Error()))
		return
	}

	if !f.CanBeRemovedBy(u.ID) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, favorite.ErrNotOwner.Error(), ""))
		return
	}

	if err := c.favoriteRepo.Delete(ctx.Request.Context(), id, u.ID); err != nil {
		if errors.Is(err, favorite.ErrFavoriteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("Erro ao remover favorito", "error", err, "favorite_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover favorito", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("favorito removido com sucesso", nil))
}
