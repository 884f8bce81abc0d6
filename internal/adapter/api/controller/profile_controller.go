package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/logger"
)

// ProfileController gerencia as requisições de perfil
type ProfileController struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

// NewProfileController cria uma nova instância de ProfileController
func NewProfileController(profileRepo profile.Repository, logger logger.Logger) *ProfileController {
	return &ProfileController{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get retorna o perfil do usuário autenticado
// @Summary Obter perfil
// @Tags profile
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} profile.Profile
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	u := auth.GetCurrentUser(ctx)

	p, err := c.profileRepo.FindByUserID(ctx.Request.Context(), u.ID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("Erro ao buscar perfil", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar perfil", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}
