package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/handlers"
	"github.com/rmartins/tabletrack/internal/middleware"
	"github.com/rmartins/tabletrack/internal/services"
)

// New wires the service graph and returns the root engine with all routes and
// middlewares applied.
func New(db *gorm.DB, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	integrity := services.NewIntegrity(db, log)
	lifecycle := services.NewPosLifecycle(db)

	handlers.NewBusinessHandler(services.NewBusinessService(db, integrity), log).Register(r.Group("/business"))
	handlers.NewUserHandler(services.NewUserService(db, integrity), log).Register(r.Group("/users"))
	handlers.NewPosHandler(services.NewPosService(db, lifecycle), log).Register(r.Group("/pos"))
	handlers.NewSupplierHandler(services.NewSupplierService(db, integrity), log).Register(r.Group("/suppliers"))
	handlers.NewSupplierGoodHandler(services.NewSupplierGoodService(db, integrity), log).Register(r.Group("/suppliergoods"))
	handlers.NewBusinessGoodHandler(services.NewBusinessGoodService(db, integrity), log).Register(r.Group("/businessgoods"))
	handlers.NewOrderHandler(services.NewOrderService(db), log).Register(r.Group("/orders"))
	handlers.NewPrinterHandler(services.NewPrinterService(db), log).Register(r.Group("/printers"))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "404 Not found"})
	})

	return r
}
