package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dbstarter/internal/dto"
	"dbstarter/internal/service"
)

// ProductHandler serves the inventory HTML pages.
type ProductHandler struct {
	productSvc service.ProductService
	exportSvc  service.ExportService
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(productSvc service.ProductService, exportSvc service.ExportService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc, exportSvc: exportSvc}
}

// Index lists products with the running inventory value, optionally
// filtered by ?search=.
// GET /
func (h *ProductHandler) Index(c *gin.Context) {
	search := c.Query("search")

	products, totalValue, err := h.productSvc.List(c.Request.Context(), search)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"products":   products,
		"totalValue": totalValue,
		"search":     search,
	})
}

// AddForm shows the add-product form.
// GET /add
func (h *ProductHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.tmpl", gin.H{})
}

// Add creates a product from the submitted form.
// POST /add
func (h *ProductHandler) Add(c *gin.Context) {
	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/add")
		return
	}

	if err := h.productSvc.Create(c.Request.Context(), &form); err != nil {
		c.Redirect(http.StatusFound, "/add")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// EditForm shows the edit form populated with the product's current values.
// GET /edit/:id
func (h *ProductHandler) EditForm(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	product, err := h.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleProductError(c, err)
		return
	}

	c.HTML(http.StatusOK, "edit.tmpl", gin.H{"product": product})
}

// Edit applies the submitted form to the product.
// POST /edit/:id
func (h *ProductHandler) Edit(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", id))
		return
	}

	if err := h.productSvc.Update(c.Request.Context(), id, &form); err != nil {
		h.handleProductError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete removes the product.
// GET /delete/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	if err := h.productSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleProductError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Export streams the current inventory as an xlsx workbook.
// GET /export
func (h *ProductHandler) Export(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportProducts(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ProductHandler) handleProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.String(http.StatusNotFound, "404 Not Found")
	default:
		c.String(http.StatusInternalServerError, "internal server error")
	}
}
