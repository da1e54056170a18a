package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dbstarter/internal/api/handler"
	"dbstarter/internal/api/middleware"
	"dbstarter/internal/web"
)

// SetupSchool builds the Gin engine for the school app.
func SetupSchool(h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.SetHTMLTemplate(web.SchoolTemplates())

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── students ──
	r.GET("/", h.Student.Index)
	r.GET("/add", h.Student.AddForm)
	r.POST("/add", h.Student.Add)
	r.GET("/edit/:id", h.Student.EditForm)
	r.POST("/edit/:id", h.Student.Edit)
	r.GET("/delete/:id", h.Student.Delete)

	// ── teachers ──
	r.GET("/teachers", h.Teacher.Index)
	r.GET("/add-teacher", h.Teacher.AddForm)
	r.POST("/add-teacher", h.Teacher.Add)
	r.GET("/edit-teacher/:id", h.Teacher.EditForm)
	r.POST("/edit-teacher/:id", h.Teacher.Edit)
	r.GET("/delete-teacher/:id", h.Teacher.Delete)

	// ── courses ──
	r.GET("/courses", h.Course.Index)
	r.GET("/add-course", h.Course.AddForm)
	r.POST("/add-course", h.Course.Add)

	return r
}
