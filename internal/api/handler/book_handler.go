package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dbstarter/internal/dto"
	"dbstarter/internal/service"
	"dbstarter/pkg/response"
)

// defaultPerPage is the page size when per_page is absent or invalid.
const defaultPerPage = 10

// BookHandler serves the book JSON API.
type BookHandler struct {
	bookSvc service.BookService
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

// ListBooks returns a paginated, sorted page of books.
// GET /api/books?page=&per_page=&sort=&order=
func (h *BookHandler) ListBooks(c *gin.Context) {
	var q dto.PageQuery
	_ = c.ShouldBindQuery(&q)
	q.Normalize(defaultPerPage)

	books, total, err := h.bookSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, "books", books, total, q.Page, q.PerPage)
}

// ListBooksPaginated is the standalone pagination teaching endpoint.
// GET /api/books-with-pagination?page=&per_page=
func (h *BookHandler) ListBooksPaginated(c *gin.Context) {
	var q dto.PageQuery
	_ = c.ShouldBindQuery(&q)
	q.Sort, q.Order = "id", "asc"
	q.Normalize(5)

	books, total, err := h.bookSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, "books", books, total, q.Page, q.PerPage)
}

// ListBooksSorted is the standalone sorting teaching endpoint.
// GET /api/books-with-sorting?sort=&order=
func (h *BookHandler) ListBooksSorted(c *gin.Context) {
	sort := c.DefaultQuery("sort", "title")
	order := c.DefaultQuery("order", "asc")

	books, err := h.bookSvc.ListSorted(c.Request.Context(), sort, order)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, response.Payload{
		"count":   len(books),
		"sort_by": sort,
		"order":   order,
		"books":   books,
	})
}

// SearchBooks filters books by title and/or author name.
// GET /api/books/search?q=&author=
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var req dto.BookSearchRequest
	_ = c.ShouldBindQuery(&req)

	books, err := h.bookSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, response.Payload{
		"count": len(books),
		"books": books,
	})
}

// GetBook returns one book.
// GET /api/books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, "Book not found")
		return
	}

	book, err := h.bookSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleBookError(c, err)
		return
	}

	response.OK(c, response.Payload{"book": book})
}

// CreateBook creates a new book after checking its author and ISBN.
// POST /api/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "No data provided")
		return
	}

	book, err := h.bookSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBookError(c, err)
		return
	}

	response.Created(c, response.Payload{
		"message": "Book created successfully",
		"book":    book,
	})
}

// UpdateBook applies the provided fields to a book.
// PUT /api/books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, "Book not found")
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Empty() {
		response.BadRequest(c, "No data provided")
		return
	}

	book, err := h.bookSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleBookError(c, err)
		return
	}

	response.OK(c, response.Payload{
		"message": "Book updated successfully",
		"book":    book,
	})
}

// DeleteBook removes one book.
// DELETE /api/books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, "Book not found")
		return
	}

	if err := h.bookSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleBookError(c, err)
		return
	}

	response.OK(c, response.Payload{"message": "Book deleted successfully"})
}

// handleBookError maps book business errors onto the envelope. A missing
// author on create/update is a client input error, not a missing resource,
// so it maps to 400.
func (h *BookHandler) handleBookError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrBookFieldsRequired),
		errors.Is(err, service.ErrISBNTaken),
		errors.Is(err, service.ErrAuthorNotFound):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
