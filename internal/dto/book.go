package dto

// ── book DTOs ──

// CreateBookRequest carries a new book. Title/author presence is checked in
// the service; year and isbn stay optional (nullable in the store).
type CreateBookRequest struct {
	Title    string  `json:"title"`
	AuthorID uint    `json:"author_id"`
	Year     *int    `json:"year"`
	ISBN     *string `json:"isbn"`
}

// UpdateBookRequest applies only the fields present in the body. A changed
// author_id is re-checked against the authors table.
type UpdateBookRequest struct {
	Title    *string `json:"title"`
	AuthorID *uint   `json:"author_id"`
	Year     *int    `json:"year"`
	ISBN     *string `json:"isbn"`
}

// Empty reports whether the body set no fields at all.
func (r *UpdateBookRequest) Empty() bool {
	return r.Title == nil && r.AuthorID == nil && r.Year == nil && r.ISBN == nil
}

// BookSearchRequest holds the search filters: q matches the title,
// author matches the joined author name. Both case-insensitive substrings.
type BookSearchRequest struct {
	Q      string `form:"q"`
	Author string `form:"author"`
}

// BookResponse is the wire shape of a book, author name joined in.
type BookResponse struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	AuthorID   uint    `json:"author_id"`
	AuthorName string  `json:"author_name"`
	Year       *int    `json:"year"`
	ISBN       *string `json:"isbn"`
	CreatedAt  string  `json:"created_at"`
}
