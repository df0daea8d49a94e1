package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Dashboard    *handlers.DashboardHandler
	Customers    *handlers.CustomerHandler
	Transactions *handlers.TransactionHandler
	Payments     *handlers.PaymentHandler
	Reports      *handlers.ReportHandler
	Data         *handlers.DataHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/dashboard", h.Dashboard.Overview)

		api.GET("/customers", h.Customers.List)
		api.POST("/customers", h.Customers.Create)
		api.PUT("/customers/:id", h.Customers.Update)
		api.DELETE("/customers/:id", h.Customers.Delete)

		api.GET("/transactions", h.Transactions.List)
		api.POST("/transactions", h.Transactions.Create)
		api.PUT("/transactions/:id", h.Transactions.Update)
		api.DELETE("/transactions/:id", h.Transactions.Delete)

		api.GET("/payments", h.Payments.List)
		api.POST("/payments", h.Payments.Create)
		api.PUT("/payments/:id", h.Payments.Update)
		api.DELETE("/payments/:id", h.Payments.Delete)

		api.GET("/reports", h.Reports.Period)
		api.GET("/reports/missing", h.Reports.Missing)

		api.GET("/data/export", h.Data.Export)
		api.POST("/data/import", h.Data.Import)
		api.DELETE("/data", h.Data.DeleteAll)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
