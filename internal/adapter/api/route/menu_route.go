package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
)

// RegisterMenuRoutes registra as rotas do menu semanal e do cartão do dia
func RegisterMenuRoutes(r *gin.RouterGroup, menuController *controller.MenuController, middlewares ...gin.HandlerFunc) {
	menus := r.Group("/menu")
	menus.Use(middlewares...)
	{
		menus.GET("", menuController.Get)
		menus.PUT("/slots", menuController.UpdateSlot)
		menus.GET("/history", menuController.History)
		menus.POST("/:id/restore", menuController.Restore)
		menus.GET("/today", menuController.Today)
		menus.POST("/today/toggle", menuController.ToggleToday)
	}
}
