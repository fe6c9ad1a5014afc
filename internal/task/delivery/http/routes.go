package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the task endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.DELETE("", h.DeleteAll)
	rg.GET("/:id", h.Detail)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/complete", h.Complete)
}
