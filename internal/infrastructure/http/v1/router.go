package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tcnursery/internal/domain/audit"
	"tcnursery/internal/domain/registers"
	"tcnursery/internal/infrastructure/http/v1/handlers"
	"tcnursery/internal/infrastructure/http/v1/middleware"
	"tcnursery/internal/metadata"
	"tcnursery/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Registers holds the services of every nursery register
	Registers *registers.Set

	// Journal backs the per-register audit endpoints; nil serves empty lists
	Journal audit.Journal

	// MetadataRegistry stores entity definitions
	MetadataRegistry *metadata.Registry

	// Metrics records HTTP requests; nil disables the middleware and /metrics
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer

	// Env is reported by /health/info and selects the gin mode
	Env string

	// Readiness checks reported by /health/ready
	Checks map[string]handlers.ReadinessCheck
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Handler())
	}
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Env, cfg.Checks)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	if cfg.Metrics != nil && cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")
	{
		registerRegisterRoutes(v1, cfg)
		registerMetaRoutes(v1, cfg)
	}

	return router
}

// registerRegisterRoutes registers the nursery register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Registers == nil {
		return
	}

	set := cfg.Registers
	group := rg.Group("/registers")
	baseHandler := handlers.NewBaseHandler()

	RegisterRegisterRoutes(group.Group("/media"), handlers.NewMediaHandler(baseHandler, set.Media, cfg.Journal))
	RegisterRegisterRoutes(group.Group("/incubation"), handlers.NewIncubationHandler(baseHandler, set.Incubation, cfg.Journal))
	RegisterRegisterRoutes(group.Group("/subculture"), handlers.NewSubcultureHandler(baseHandler, set.Subculture, cfg.Journal))
	RegisterRegisterRoutes(group.Group("/sampling"), handlers.NewSamplingHandler(baseHandler, set.Sampling, cfg.Journal))
	RegisterRegisterRoutes(group.Group("/suppliers"), handlers.NewSupplierHandler(baseHandler, set.Supplier, cfg.Journal))

	reportHandler := handlers.NewReportHandler(baseHandler, set.Inventory, set.Hardening)

	// --- HARDENING ---
	{
		hardening := group.Group("/hardening")
		hardening.GET("/summary", reportHandler.HardeningSummary)
		RegisterRegisterRoutes(hardening, handlers.NewHardeningHandler(baseHandler, set.Hardening, cfg.Journal))
	}

	// --- INVENTORY ---
	{
		inventory := group.Group("/inventory")
		inventory.GET("/balances", reportHandler.InventoryBalances)
		RegisterRegisterRoutes(inventory, handlers.NewInventoryHandler(baseHandler, set.Inventory, cfg.Journal))
	}
}

// registerMetaRoutes registers metadata/schema endpoints.
func registerMetaRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.MetadataRegistry == nil {
		return
	}

	handler := handlers.NewMetadataHandler(handlers.NewBaseHandler(), cfg.MetadataRegistry)
	meta := rg.Group("/meta")
	{
		meta.GET("", handler.ListEntities)
		meta.GET("/:name", handler.GetEntity)
	}
}
