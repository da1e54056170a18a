package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dbstarter/config"
	"dbstarter/internal/api/handler"
	"dbstarter/internal/api/middleware"
)

// maxBodyBytes caps JSON request bodies on the book API.
const maxBodyBytes = 1 << 20

// SetupBookAPI builds the Gin engine for the book REST API.
func SetupBookAPI(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// authors
		authors := api.Group("/authors")
		{
			authors.GET("", h.Author.ListAuthors)
			authors.POST("", h.Author.CreateAuthor)
			authors.GET("/:id", h.Author.GetAuthor)
			authors.PUT("/:id", h.Author.UpdateAuthor)
			authors.DELETE("/:id", h.Author.DeleteAuthor)
		}

		// books
		books := api.Group("/books")
		{
			books.GET("", h.Book.ListBooks)
			books.POST("", h.Book.CreateBook)
			books.GET("/search", h.Book.SearchBooks)
			books.GET("/:id", h.Book.GetBook)
			books.PUT("/:id", h.Book.UpdateBook)
			books.DELETE("/:id", h.Book.DeleteBook)
		}

		// stepping-stone endpoints kept for the exercises
		api.GET("/books-with-pagination", h.Book.ListBooksPaginated)
		api.GET("/books-with-sorting", h.Book.ListBooksSorted)
	}

	return r
}
