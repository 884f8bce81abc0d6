package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
)

// RegisterFavoriteRoutes registra as rotas de favoritos
func RegisterFavoriteRoutes(r *gin.RouterGroup, favoriteController *controller.FavoriteController, middlewares ...gin.HandlerFunc) {
	favorites := r.Group("/favorites")
	favorites.Use(middlewares...)
	{
		favorites.GET("", favoriteController.List)
		favorites.POST("", favoriteController.Create)
		favorites.DELETE("/:id", favoriteController.Delete)
	}
}
