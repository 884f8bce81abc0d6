package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
)

// RegisterRecipeRoutes registra as rotas do catálogo de receitas
func RegisterRecipeRoutes(r *gin.RouterGroup, recipeController *controller.RecipeController, middlewares ...gin.HandlerFunc) {
	recipes := r.Group("/recipes")
	recipes.Use(middlewares...)
	{
		recipes.GET("", recipeController.List)
		recipes.GET("/:id", recipeController.Get)
	}
}
