package dto

// PageQuery carries the shared list parameters: page number, page size,
// sort field and direction. Bound from the query string.
type PageQuery struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Sort    string `form:"sort"`
	Order   string `form:"order"`
}

// Normalize applies defaults and floors: page and per_page are at least 1.
// Sort-field validation stays with each repository's allow-list.
func (q *PageQuery) Normalize(defaultPerPage int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.Order != "desc" {
		q.Order = "asc"
	}
}

// Offset returns the row offset for the current page.
func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}
