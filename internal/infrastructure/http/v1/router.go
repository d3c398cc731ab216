package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/intake"
	"supplierintake/internal/infrastructure/http/v1/handlers"
	"supplierintake/internal/infrastructure/http/v1/middleware"
	"supplierintake/internal/infrastructure/metrics"
	"supplierintake/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Deliveries computes delivery values
	Deliveries *delivery.Service

	// Intake parses manifests and validates drafts
	Intake *intake.Service

	// Metrics instruments requests; nil disables instrumentation
	Metrics *metrics.HTTPMetrics

	// MetricsHandler serves /metrics when set
	MetricsHandler http.Handler

	// UploadMaxBytes caps uploaded manifest files
	UploadMaxBytes int64

	// Version and Env are reported by /health/info
	Version string
	Env     string

	// Development enables gin debug mode
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics(cfg.Metrics))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Version, cfg.Env, cfg.Deliveries.Calculator().Config())
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/info", healthHandler.Info)
	}

	if cfg.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	baseHandler := handlers.NewBaseHandler()

	v1 := router.Group("/api/v1")
	{
		deliveryHandler := handlers.NewDeliveryHandler(baseHandler, cfg.Deliveries, cfg.Intake, cfg.UploadMaxBytes)
		RegisterDeliveryRoutes(v1.Group("/deliveries"), deliveryHandler, cfg.UploadMaxBytes)

		manifestHandler := handlers.NewManifestHandler(baseHandler, cfg.Intake, cfg.UploadMaxBytes)
		RegisterUploadRoutes(v1.Group("/manifests"), manifestHandler, cfg.UploadMaxBytes)

		lotHandler := handlers.NewLotHandler(baseHandler)
		v1.POST("/lots/analyze", lotHandler.Analyze)

		formatHandler := handlers.NewFormatHandler(baseHandler)
		format := v1.Group("/format")
		format.GET("/currency", formatHandler.Currency)
		format.GET("/exchange-rate", formatHandler.ExchangeRate)
	}

	return router
}
