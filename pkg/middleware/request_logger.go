package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/pkg/logger"
)

// RequestLogger registra cada requisição no logger estruturado da aplicação
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if userID, ok := c.Get("user_id"); ok {
			fields = append(fields, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Requisição com erro", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("Requisição rejeitada", fields...)
		default:
			log.Info("Requisição atendida", fields...)
		}
	}
}
