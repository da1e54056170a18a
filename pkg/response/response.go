package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every JSON body carries a success flag; error bodies carry a single
// human-readable error string. Success payload fields sit at the top level
// next to the flag.

// Payload is the set of top-level fields merged into a success body.
type Payload map[string]interface{}

func success(payload Payload) gin.H {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, payload Payload) {
	c.JSON(http.StatusOK, success(payload))
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, payload Payload) {
	c.JSON(http.StatusCreated, success(payload))
}

// OKPage writes a 200 success envelope with pagination metadata.
// listKey names the field holding the page of rows ("books", "products", ...).
func OKPage(c *gin.Context, listKey string, list interface{}, total int64, page, perPage int) {
	pages := int(total) / perPage
	if int(total)%perPage > 0 {
		pages++
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		listKey:    list,
		"count":    total,
		"page":     page,
		"pages":    pages,
		"per_page": perPage,
		"has_next": page < pages,
		"has_prev": page > 1,
	})
}

// Error writes an error envelope with the given status code.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error":   message,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}
