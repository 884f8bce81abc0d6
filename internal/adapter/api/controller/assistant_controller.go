package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/pkg/assistant"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/chat"
	"github.com/hugohenrick/liora/pkg/logger"
)

const defaultHistoryLimit = 50

// AssistantController gerencia as conversas com o assistente
type AssistantController struct {
	assistant *assistant.Assistant
	logger    logger.Logger
}

// NewAssistantController cria uma nova instância de AssistantController
func NewAssistantController(a *assistant.Assistant, logger logger.Logger) *AssistantController {
	return &AssistantController{
		assistant: a,
		logger:    logger,
	}
}

// SendMessage envia uma mensagem ao assistente
// @Summary Enviar mensagem
// @Description Classifica a mensagem, monta o contexto do usuário e retorna a resposta do assistente
// @Tags assistant
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param message body dto.AssistantMessageRequest true "Mensagem"
// @Success 200 {object} dto.AssistantMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/message [post]
func (c *AssistantController) SendMessage(ctx *gin.Context) {
	var req dto.AssistantMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "mensagem inválida", err.Error()))
		return
	}

	reply, err := c.assistant.SendMessage(ctx.Request.Context(), auth.GetCurrentUser(ctx), req.Message)
	if err != nil {
		var fetchErr *assistant.DataFetchError
		switch {
		case errors.Is(err, assistant.ErrNotAuthenticated):
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, err.Error(), ""))
		case errors.Is(err, chat.ErrEmptyContent):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		case errors.As(err, &fetchErr), errors.Is(err, assistant.ErrGenerationFailed):
			ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "no fue posible procesar tu mensaje", err.Error()))
		default:
			c.logger.Error("Erro ao processar mensagem", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao processar mensagem", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAssistantMessageResponse(reply.Response, reply.Categories.Strings(), reply.History))
}

// GetHistory retorna o histórico da conversa
// @Summary Histórico da conversa
// @Tags assistant
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param limit query int false "Quantidade máxima de mensagens"
// @Success 200 {object} dto.AssistantHistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/history [get]
func (c *AssistantController) GetHistory(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		limit = defaultHistoryLimit
	}

	history, err := c.assistant.History(ctx.Request.Context(), auth.GetCurrentUser(ctx), limit)
	if err != nil {
		if errors.Is(err, assistant.ErrNotAuthenticated) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, err.Error(), ""))
			return
		}
		c.logger.Error("Erro ao buscar histórico", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar histórico", err.Error()))
		return
	}
	if history == nil {
		history = []chat.Message{}
	}

	total, err := c.assistant.CountMessages(ctx.Request.Context(), auth.GetCurrentUser(ctx))
	if err != nil {
		c.logger.Error("Erro ao contar mensagens", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.AssistantHistoryResponse{History: history, Total: total})
}

// DeleteHistory apaga o histórico da conversa
// @Summary Apagar histórico
// @Tags assistant
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/history [delete]
func (c *AssistantController) DeleteHistory(ctx *gin.Context) {
	if err := c.assistant.ClearHistory(ctx.Request.Context(), auth.GetCurrentUser(ctx)); err != nil {
		if errors.Is(err, assistant.ErrNotAuthenticated) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, err.Error(), ""))
			return
		}
		c.logger.Error("Erro ao apagar histórico", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao apagar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("histórico apagado com sucesso", nil))
}
