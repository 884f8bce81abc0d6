package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/internal/domain/shopping"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/logger"
)

// ShoppingController gerencia as requisições da lista de compras
type ShoppingController struct {
	shoppingRepo shopping.Repository
	logger       logger.Logger
}

// NewShoppingController cria uma nova instância de ShoppingController
func NewShoppingController(shoppingRepo shopping.Repository, logger logger.Logger) *ShoppingController {
	return &ShoppingController{
		shoppingRepo: shoppingRepo,
		logger:       logger,
	}
}

// List lista os itens da lista de compras do usuário
// @Summary Listar lista de compras
// @Tags shopping
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} shopping.Item
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shopping-list [get]
func (c *ShoppingController) List(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)

	items, err := c.shoppingRepo.ListByUser(ctx.Request.Context(), u.ID)
	if err != nil {
		c.logger.Error("Erro ao listar lista de compras", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lista de compras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// Create adiciona um item à lista de compras
// @Summary Adicionar item
// @Description Adiciona um item à lista de compras. Quantidade padrão 1
// @Tags shopping
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.ShoppingItemRequest true "Item"
// @Success 201 {object} shopping.Item
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shopping-list [post]
func (c *ShoppingController) Create(ctx *gin.Context) {
	var req dto.ShoppingItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u := auth.GetCurrentUser(ctx)

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item, err := shopping.NewItem(u.ID, req.Name, quantity, req.Unit, req.Category, req.Days)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar item", err.Error()))
		return
	}

	if err := c.shoppingRepo.Create(ctx.Request.Context(), item); err != nil {
		c.logger.Error("Erro ao salvar item", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar item", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// Toggle inverte a marcação de um item
// @Summary Marcar item
// @Tags shopping
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do item"
// @Success 200 {object} shopping.Item
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shopping-list/{id}/toggle [patch]
func (c *ShoppingController) Toggle(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)
	id := ctx.Param("id")

	item, err := c.shoppingRepo.FindByID(ctx.Request.Context(), id, u.ID)
	if err != nil {
		c.itemError(ctx, err, "erro ao buscar item")
		return
	}

	item.Toggle()
	if err := c.shoppingRepo.UpdateChecked(ctx.Request.Context(), id, u.ID, item.Checked); err != nil {
		c.itemError(ctx, err, "erro ao atualizar item")
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// Delete remove um item da lista de compras
// @Summary Remover item
// @Tags shopping
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do item"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shopping-list/{id} [delete]
func (c *ShoppingController) Delete(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)

	if err := c.shoppingRepo.Delete(ctx.Request.Context(), ctx.Param("id"), u.ID); err != nil {
		c.itemError(ctx, err, "erro ao remover item")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("item removido com sucesso", nil))
}

func (c *ShoppingController) itemError(ctx *gin.Context, err error, message string) {
	if errors.Is(err, shopping.ErrItemNotFound) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		return
	}
	c.logger.Error(message, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
}
