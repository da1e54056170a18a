package dto

// ── inventory DTOs ──

// ProductForm is the add/edit product form. Quantity defaults to zero when
// left blank.
type ProductForm struct {
	Name     string  `form:"name"  binding:"required"`
	Quantity int     `form:"quantity"`
	Price    float64 `form:"price" binding:"required"`
}

// ProductListRequest holds the inventory list filter.
type ProductListRequest struct {
	Search string `form:"search"`
}
