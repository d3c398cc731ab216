// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"supplierintake/internal/infrastructure/http/v1/middleware"
)

// multipartSlack is the room left for multipart framing and form fields on
// top of the file size limit.
const multipartSlack = 1 << 20

// DeliveryRouteHandler defines the interface for delivery handlers.
type DeliveryRouteHandler interface {
	Calculate(c *gin.Context)
	CalculateTotal(c *gin.Context)
	Validate(c *gin.Context)
	Summary(c *gin.Context)
}

// UploadRouteHandler defines the interface for manifest upload handlers.
type UploadRouteHandler interface {
	Upload(c *gin.Context)
}

// RegisterDeliveryRoutes registers calculation, validation and summary routes.
// The summary route accepts a file and gets the upload body limit.
//
// Usage:
//
//	handler := handlers.NewDeliveryHandler(baseHandler, deliveries, intakeSvc, maxUpload)
//	RegisterDeliveryRoutes(v1.Group("/deliveries"), handler, maxUpload)
func RegisterDeliveryRoutes(group *gin.RouterGroup, handler DeliveryRouteHandler, maxUpload int64) {
	group.POST("/calculate", handler.Calculate)
	group.POST("/calculate-total", handler.CalculateTotal)
	group.POST("/validate", handler.Validate)
	group.POST("/summary", uploadLimit(maxUpload), handler.Summary)
}

// RegisterUploadRoutes registers the file upload route of a group.
func RegisterUploadRoutes(group *gin.RouterGroup, handler UploadRouteHandler, maxUpload int64) {
	group.POST("", uploadLimit(maxUpload), handler.Upload)
}

func uploadLimit(maxUpload int64) gin.HandlerFunc {
	if maxUpload <= 0 {
		return middleware.MaxBodySize(0)
	}
	return middleware.MaxBodySize(maxUpload + multipartSlack)
}
