package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task"
	"voice-task-management/pkg/log"
)

// Handler serves the task CRUD endpoints.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)
	DeleteAll(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates the task HTTP handler.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
