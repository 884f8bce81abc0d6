package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
)

// RegisterAssistantRoutes registra as rotas do assistente
func RegisterAssistantRoutes(r *gin.RouterGroup, assistantController *controller.AssistantController, middlewares ...gin.HandlerFunc) {
	assistant := r.Group("/assistant")
	assistant.Use(middlewares...)
	{
		assistant.POST("/message", assistantController.SendMessage)
		assistant.GET("/history", assistantController.GetHistory)
		assistant.DELETE("/history", assistantController.DeleteHistory)
	}
}
