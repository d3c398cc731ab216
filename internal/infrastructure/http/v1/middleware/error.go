package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supplierintake/internal/core/apperror"
	"supplierintake/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		c.JSON(Problem(c, err))
	}
}

// Problem converts err into a status code and response body.
func Problem(c *gin.Context, err error) (int, gin.H) {
	if appErr, ok := apperror.AsAppError(err); ok {
		if appErr.Err != nil {
			logger.Error(c.Request.Context(), "request error",
				"code", appErr.Code,
				"cause", appErr.Err,
			)
		}
		return appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		}
	}

	// Unknown error - log and return generic message
	logger.Error(c.Request.Context(), "unhandled error", "error", err)

	return http.StatusInternalServerError, gin.H{
		"code":    apperror.CodeInternal,
		"message": "Internal server error",
		"details": map[string]any{
			"request_id": c.GetString("request_id"),
		},
	}
}
