package handlers

import (
	"github.com/gin-gonic/gin"

	"supplierintake/internal/core/apperror"
	"supplierintake/internal/domain/lot"
	"supplierintake/internal/infrastructure/http/v1/dto"
)

// LotHandler exposes the LOT number analyzer.
type LotHandler struct {
	*BaseHandler
}

// NewLotHandler creates a new LOT handler.
func NewLotHandler(base *BaseHandler) *LotHandler {
	return &LotHandler{BaseHandler: base}
}

// Analyze runs every check whose input is present in the request.
// POST /api/v1/lots/analyze
func (h *LotHandler) Analyze(c *gin.Context) {
	var req dto.LotAnalyzeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if req.Filename == "" && req.Value == "" && req.Headers == nil && req.Values == nil {
		h.Error(c, apperror.NewValidation("nothing to analyze"))
		return
	}

	var resp dto.LotAnalyzeResponse
	if req.Filename != "" {
		if m, ok := lot.AnalyzeFilename(req.Filename); ok {
			resp.Filename = &m
		}
	}
	if req.Value != "" {
		formatted, ok := lot.Format(req.Value)
		resp.Formatted = formatted
		resp.Valid = &ok
	}
	if req.Headers != nil {
		has := lot.HasLotColumn(req.Headers)
		resp.HasLotColumn = &has
	}
	if req.Values != nil {
		analysis := lot.AnalyzeValues(req.Values)
		resp.Values = &analysis
	}

	h.OK(c, resp)
}
