package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
)

// RegisterProfileRoutes registra as rotas de perfil
func RegisterProfileRoutes(r *gin.RouterGroup, profileController *controller.ProfileController, middlewares ...gin.HandlerFunc) {
	r.GET("/profile", append(middlewares, profileController.Get)...)
}
