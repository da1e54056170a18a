package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dbstarter/internal/api/handler"
	"dbstarter/internal/api/middleware"
	"dbstarter/internal/web"
)

// SetupInventory builds the Gin engine for the inventory app.
func SetupInventory(h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.SetHTMLTemplate(web.InventoryTemplates())

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── products ──
	r.GET("/", h.Product.Index)
	r.GET("/add", h.Product.AddForm)
	r.POST("/add", h.Product.Add)
	r.GET("/edit/:id", h.Product.EditForm)
	r.POST("/edit/:id", h.Product.Edit)
	r.GET("/delete/:id", h.Product.Delete)
	r.GET("/export", h.Product.Export)

	return r
}
