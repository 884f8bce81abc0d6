package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/pkg/logger"
)

// RecipeController gerencia as requisições do catálogo de receitas
type RecipeController struct {
	recipeRepo recipe.Repository
	logger     logger.Logger
}

// NewRecipeController cria uma nova instância de RecipeController
func NewRecipeController(recipeRepo recipe.Repository, logger logger.Logger) *RecipeController {
	return &RecipeController{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

// List lista as receitas do catálogo
// @Summary Listar receitas
// @Description Lista o catálogo com filtro por categoria, tipo de refeição e busca, e ordenação opcional
// @Tags recipes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category query string false "Categoria (Todas para todas)"
// @Param meal_type query string false "Tipo de refeição (all para todos)"
// @Param search query string false "Busca por nome ou categoria"
// @Param sort query string false "Ordenação: popular, calories ou time"
// @Success 200 {object} dto.RecipeListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes [get]
func (c *RecipeController) List(ctx *gin.Context) {
	var query dto.RecipeListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	recipes, err := c.recipeRepo.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Erro ao listar receitas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar receitas", err.Error()))
		return
	}

	filtered := recipe.Filter(recipes, query.ToQuery())

	ctx.JSON(http.StatusOK, dto.RecipeListResponse{
		Recipes:    dto.ToRecipeResponses(filtered),
		Categories: recipe.Categories(recipes),
		Total:      len(filtered),
	})
}

// Get busca uma receita pelo ID
// @Summary Buscar receita
// @Description Busca uma receita do catálogo pelo ID
// @Tags recipes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da receita"
// @Success 200 {object} dto.RecipeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/{id} [get]
func (c *RecipeController) Get(ctx *gin.Context) {
	r, err := c.recipeRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "receita não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar receita", "error", err, "recipe_id", ctx.Param("id"))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar receita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeResponse(r))
}
