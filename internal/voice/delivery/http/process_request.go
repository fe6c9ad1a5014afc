package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds the body and the ?engine= override.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Engine = c.Query("engine")
	return req, req.validate()
}

func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Engine = c.Query("engine")
	return req, req.validate()
}

func (h *handler) processListLogsReq(c *gin.Context) (listLogsReq, error) {
	var req listLogsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
