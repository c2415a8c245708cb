package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/zepcart/marketplace/internal/metrics"
	"github.com/zepcart/marketplace/internal/server/http/dto"
	"github.com/zepcart/marketplace/internal/server/http/handlers"
	"github.com/zepcart/marketplace/internal/server/http/middleware"
)

// VendorStreamPath serves the vendor live event stream.
const VendorStreamPath = "/api/order/vendor/stream"

// HealthChecker reports readiness of backing services.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Params collects router dependencies.
type Params struct {
	fx.In

	Facade  handlers.MarketplaceFacade
	Logger  *slog.Logger
	Metrics *metrics.Metrics        `optional:"true"`
	Health  HealthChecker           `optional:"true"`
	Streams *handlers.StreamHandler `optional:"true"`
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.DecompressRequest())
	engine.Use(middleware.CompressResponse(VendorStreamPath, "/metrics"))

	engine.GET("/healthz", healthz(p.Health))
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	authHandler := handlers.NewAuthHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	catalogHandler := handlers.NewCatalogHandler(p.Facade)
	streamHandler := p.Streams
	if streamHandler == nil {
		streamHandler = handlers.NewStreamHandler(p.Facade)
	}
	requireAuth := middleware.AuthRequired(p.Facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	order := api.Group("/order")
	order.POST("/create", orderHandler.Create)
	order.GET("/customer/:customerId", orderHandler.CustomerOrders)
	order.PATCH("/:id/status", requireAuth, orderHandler.UpdateStatus)
	order.GET("/vendor", requireAuth, orderHandler.VendorOrders)
	order.GET("/vendor/stream", requireAuth, streamHandler.Vendor)

	catalog := api.Group("/catalog", requireAuth)
	catalog.PATCH("/:kind/products/:id/status", catalogHandler.UpdateStockStatus)

	return engine
}

func healthz(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			if err := checker.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, dto.Fail("database unavailable"))
				return
			}
		}
		c.JSON(http.StatusOK, dto.OK("ok", nil))
	}
}
