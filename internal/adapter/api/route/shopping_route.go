package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
)

// RegisterShoppingRoutes registra as rotas da lista de compras
func RegisterShoppingRoutes(r *gin.RouterGroup, shoppingController *controller.ShoppingController, middlewares ...gin.HandlerFunc) {
	items := r.Group("/shopping-list")
	items.Use(middlewares...)
	{
		items.GET("", shoppingController.List)
		items.POST("", shoppingController.Create)
		items.PATCH("/:id/toggle", shoppingController.Toggle)
		items.DELETE("/:id", shoppingController.Delete)
	}
}
