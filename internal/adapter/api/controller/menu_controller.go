package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/logger"
)

// MenuController gerencia as requisições do menu semanal e do cartão do dia
type MenuController struct {
	menuService *menu.Service
	menuRepo    menu.Repository
	logger      logger.Logger
}

// NewMenuController cria uma nova instância de MenuController
func NewMenuController(menuService *menu.Service, menuRepo menu.Repository, logger logger.Logger) *MenuController {
	return &MenuController{
		menuService: menuService,
		menuRepo:    menuRepo,
		logger:      logger,
	}
}

// menuError traduz os erros do domínio de menus para respostas HTTP
func (c *MenuController) menuError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, menu.ErrInvalidDay), errors.Is(err, menu.ErrInvalidMeal):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
	case errors.Is(err, menu.ErrMenuNotFound), errors.Is(err, recipe.ErrRecipeNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
	case errors.Is(err, menu.ErrNoActiveMenu):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}

// Get retorna o menu ativo do usuário com as receitas resolvidas
// @Summary Obter menu ativo
// @Description Retorna o menu semanal ativo. Um menu vazio é criado no primeiro acesso
// @Tags menus
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.MenuResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu [get]
func (c *MenuController) Get(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)

	m, err := c.menuService.Active(ctx.Request.Context(), u.ID)
	if err != nil {
		c.menuError(ctx, err, "erro ao obter menu")
		return
	}

	items, err := c.menuService.Resolve(ctx.Request.Context(), m)
	if err != nil {
		c.menuError(ctx, err, "erro ao obter menu")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuResponse(m, items))
}

// UpdateSlot define ou limpa a receita de uma posição do menu ativo
// @Summary Alterar posição do menu
// @Description Define a receita de um dia e refeição do menu ativo. recipe_id nulo limpa a posição
// @Tags menus
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param slot body dto.SlotRequest true "Posição do menu"
// @Success 200 {object} dto.MenuResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu/slots [put]
func (c *MenuController) UpdateSlot(ctx *gin.Context) {
	var req dto.SlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u := auth.GetCurrentUser(ctx)

	m, err := c.menuService.SetSlot(ctx.Request.Context(), u.ID, req.Day, recipe.MealType(req.MealType), req.RecipeID)
	if err != nil {
		c.menuError(ctx, err, "erro ao atualizar menu")
		return
	}

	items, err := c.menuService.Resolve(ctx.Request.Context(), m)
	if err != nil {
		c.menuError(ctx, err, "erro ao atualizar menu")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuResponse(m, items))
}

// History lista os menus arquivados do usuário
// @Summary Histórico de menus
// @Description Lista os menus arquivados, mais recentes primeiro
// @Tags menus
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.MenuResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu/history [get]
func (c *MenuController) History(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)

	menus, err := c.menuRepo.ListArchived(ctx.Request.Context(), u.ID)
	if err != nil {
		c.menuError(ctx, err, "erro ao listar histórico de menus")
		return
	}

	resp := make([]dto.MenuResponse, 0, len(menus))
	for _, m := range menus {
		resp = append(resp, dto.ToMenuResponse(m, nil))
	}

	ctx.JSON(http.StatusOK, resp)
}

// Restore reativa um menu arquivado
// @Summary Restaurar menu
// @Description Reativa um menu arquivado e arquiva o menu ativo atual
// @Tags menus
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do menu"
// @Success 200 {object} dto.MenuResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu/{id}/restore [post]
func (c *MenuController) Restore(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)

	m, err := c.menuService.Restore(ctx.Request.Context(), u.ID, ctx.Param("id"))
	if err != nil {
		c.menuError(ctx, err, "erro ao restaurar menu")
		return
	}

	items, err := c.menuService.Resolve(ctx.Request.Context(), m)
	if err != nil {
		c.menuError(ctx, err, "erro ao restaurar menu")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuResponse(m, items))
}

// Today retorna o cartão do dia atual
// @Summary Cartão do dia
// @Description Retorna as receitas do dia atual no menu ativo, as conclusões e o total de calorias
// @Tags menus
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.TodayResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu/today [get]
func (c *MenuController) Today(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)

	today, err := c.menuService.Today(ctx.Request.Context(), u.ID)
	if err != nil {
		c.menuError(ctx, err, "erro ao obter o cartão do dia")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTodayResponse(today))
}

// ToggleToday marca ou desmarca uma receita do dia como concluída
// @Summary Marcar receita do dia
// @Description Cria a conclusão da receita no dia atual, ou remove se já existir
// @Tags menus
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param completion body dto.ToggleCompletionRequest true "Receita do dia"
// @Success 200 {object} dto.ToggleCompletionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu/today/toggle [post]
func (c *MenuController) ToggleToday(ctx *gin.Context) {
	var req dto.ToggleCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u := auth.GetCurrentUser(ctx)

	completion, err := c.menuService.ToggleCompletion(ctx.Request.Context(), u.ID, req.RecipeID, recipe.MealType(req.MealType), req.Skipped)
	if err != nil {
		c.menuError(ctx, err, "erro ao marcar receita")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleCompletionResponse{
		Completed:  completion != nil,
		Completion: completion,
	})
}
