package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supplierintake/internal/core/apperror"
	"supplierintake/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, bindError("invalid request body", err))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// BindForm binds multipart or urlencoded form fields.
func (h *BaseHandler) BindForm(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		h.Error(c, bindError("invalid form data", err))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Formatted sends a display string.
func (h *BaseHandler) Formatted(c *gin.Context, s string) {
	c.JSON(http.StatusOK, dto.FormattedResponse{Formatted: s})
}

func bindError(message string, err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.NewPayloadTooLarge(tooLarge.Limit)
	}
	return apperror.NewInvalidInput(message, err).WithDetail("error", err.Error())
}
