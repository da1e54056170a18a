package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dbstarter/internal/dto"
	"dbstarter/internal/service"
	"dbstarter/pkg/response"
)

// AuthorHandler serves the author JSON API.
type AuthorHandler struct {
	authorSvc service.AuthorService
}

// NewAuthorHandler creates an AuthorHandler.
func NewAuthorHandler(authorSvc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorSvc: authorSvc}
}

// ListAuthors returns all authors with their book counts.
// GET /api/authors
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authorSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, response.Payload{
		"count":   len(authors),
		"authors": authors,
	})
}

// GetAuthor returns one author with its books embedded.
// GET /api/authors/:id
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, "Author not found")
		return
	}

	author, err := h.authorSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleAuthorError(c, err)
		return
	}

	response.OK(c, response.Payload{"author": author})
}

// CreateAuthor creates a new author.
// POST /api/authors
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "No data provided")
		return
	}

	author, err := h.authorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthorError(c, err)
		return
	}

	response.Created(c, response.Payload{
		"message": "Author created successfully",
		"author":  author,
	})
}

// UpdateAuthor applies the provided fields to an author.
// PUT /api/authors/:id
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, "Author not found")
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Empty() {
		response.BadRequest(c, "No data provided")
		return
	}

	author, err := h.authorSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAuthorError(c, err)
		return
	}

	response.OK(c, response.Payload{
		"message": "Author updated successfully",
		"author":  author,
	})
}

// DeleteAuthor removes an author and, via the cascade, its books.
// DELETE /api/authors/:id
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, "Author not found")
		return
	}

	if err := h.authorSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAuthorError(c, err)
		return
	}

	response.OK(c, response.Payload{
		"message": "Author and associated books deleted successfully",
	})
}

func (h *AuthorHandler) handleAuthorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthorNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAuthorNameRequired):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
