package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/voice"
	"voice-task-management/pkg/response"
)

// Parse godoc
// @Summary     Interpret a transcript
// @Description Returns the commands a transcript maps to without running them.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       engine query string   false "llm or fallback"
// @Param       body   body  parseReq true  "Transcript"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/voice/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(out))
}

// Process godoc
// @Summary     Run a voice command
// @Description Interprets a transcript, applies it to the task list and records it.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       engine query string     false "llm or fallback"
// @Param       body   body  processReq true  "Transcript"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No speech detected"
// @Router      /api/v1/voice/commands [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Process(ctx, req.toInput())
	if errors.Is(err, voice.ErrEmptyCommand) {
		c.JSON(http.StatusUnprocessableEntity, response.Resp{
			ErrorCode: http.StatusUnprocessableEntity,
			Message:   err.Error(),
			Data:      h.newProcessResp(out),
		})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProcessResp(out))
}

// ListLogs godoc
// @Summary     List recent voice commands
// @Tags        Voice
// @Produce     json
// @Param       limit query int false "Max entries (default 50)"
// @Success     200 {object} listLogsResp
// @Router      /api/v1/voice/logs [GET]
func (h *handler) ListLogs(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListLogsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	logs, err := h.uc.ListLogs(ctx, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLogs: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListLogsResp(logs))
}
