package dto

// ── author DTOs ──

// CreateAuthorRequest carries a new author. Name presence is checked in the
// service so the API reports the exact field error.
type CreateAuthorRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
	City string `json:"city"`
}

// UpdateAuthorRequest applies only the fields present in the body.
type UpdateAuthorRequest struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
	City *string `json:"city"`
}

// Empty reports whether the body set no fields at all.
func (r *UpdateAuthorRequest) Empty() bool {
	return r.Name == nil && r.Bio == nil && r.City == nil
}

// AuthorResponse is the author list/detail shape.
type AuthorResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	City       string `json:"city"`
	BooksCount int    `json:"books_count"`
}

// AuthorDetailResponse adds the author's books (GET /api/authors/:id).
type AuthorDetailResponse struct {
	AuthorResponse
	Books []BookResponse `json:"books"`
}
