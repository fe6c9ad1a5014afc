package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/internal/middleware"
)

// RegisterRoutes mounts the voice endpoints on rg behind the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())
	rg.POST("/parse", h.Parse)
	rg.POST("/commands", h.Process)
	rg.GET("/logs", h.ListLogs)
}
