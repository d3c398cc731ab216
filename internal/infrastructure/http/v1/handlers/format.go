package handlers

import (
	"github.com/gin-gonic/gin"

	"supplierintake/internal/infrastructure/http/v1/dto"
	"supplierintake/pkg/money"
)

// FormatHandler renders amounts for display.
type FormatHandler struct {
	*BaseHandler
}

// NewFormatHandler creates a new format handler.
func NewFormatHandler(base *BaseHandler) *FormatHandler {
	return &FormatHandler{BaseHandler: base}
}

// Currency formats an amount with its currency suffix.
// GET /api/v1/format/currency?value=&currency=&decimals=&grouping=
func (h *FormatHandler) Currency(c *gin.Context) {
	var q dto.FormatCurrencyQuery
	if !h.BindQuery(c, &q) {
		return
	}
	h.Formatted(c, money.FormatCurrency(q.Value, q.Options()...))
}

// ExchangeRate formats an exchange rate with four decimals.
// GET /api/v1/format/exchange-rate?value=
func (h *FormatHandler) ExchangeRate(c *gin.Context) {
	var value any
	if v, ok := c.GetQuery("value"); ok {
		value = v
	}
	h.Formatted(c, money.FormatExchangeRate(value))
}
