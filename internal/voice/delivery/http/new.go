package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
)

// Handler serves the voice command endpoints.
type Handler interface {
	Parse(c *gin.Context)
	Process(c *gin.Context)
	ListLogs(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc voice.UseCase
}

// New creates the voice HTTP handler.
func New(l log.Logger, uc voice.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
