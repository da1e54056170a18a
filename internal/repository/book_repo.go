package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dbstarter/internal/dto"
	"dbstarter/internal/model"
)

// bookSortColumns is the fixed sort allow-list for books. Anything else
// silently falls back to the primary key.
var bookSortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"year":       "year",
	"created_at": "created_at",
}

// BookRepository is the books data-access interface.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id uint) (*model.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)
	// List returns one page of books plus the total row count. Out-of-range
	// pages come back empty without error.
	List(ctx context.Context, q *dto.PageQuery) ([]model.Book, int64, error)
	// ListSorted returns all books in the requested order (no paging).
	ListSorted(ctx context.Context, sort, order string) ([]model.Book, error)
	// Search filters by title substring and/or joined author-name substring,
	// case-insensitively.
	Search(ctx context.Context, title, authorName string) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

type bookRepo struct {
	db *gorm.DB
}

// NewBookRepo creates a BookRepository.
func NewBookRepo(db *gorm.DB) BookRepository {
	return &bookRepo{db: db}
}

func (r *bookRepo) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepo) GetByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).Preload("Author").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepo) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// orderClause resolves a sort field against the allow-list.
func orderClause(sort, order string) string {
	col, ok := bookSortColumns[sort]
	if !ok {
		col = "id"
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}

func (r *bookRepo) List(ctx context.Context, q *dto.PageQuery) ([]model.Book, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []model.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order(orderClause(q.Sort, q.Order)).
		Offset(q.Offset()).
		Limit(q.PerPage).
		Find(&books).Error
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *bookRepo) ListSorted(ctx context.Context, sort, order string) ([]model.Book, error) {
	var books []model.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order(orderClause(sort, order)).
		Find(&books).Error
	return books, err
}

func (r *bookRepo) Search(ctx context.Context, title, authorName string) ([]model.Book, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Joins("JOIN authors ON authors.id = books.author_id").
		Preload("Author")

	if title != "" {
		db = db.Where("LOWER(books.title) LIKE LOWER(?)", "%"+title+"%")
	}
	if authorName != "" {
		db = db.Where("LOWER(authors.name) LIKE LOWER(?)", "%"+authorName+"%")
	}

	var books []model.Book
	err := db.Order("books.id ASC").Find(&books).Error
	return books, err
}

func (r *bookRepo) Update(ctx context.Context, book *model.Book) error {
	// Omit associations so a preloaded Author is never re-saved.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(book).Error
}

func (r *bookRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Book{}, id).Error
}

func (r *bookRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&n).Error
	return n, err
}

func (r *bookRepo) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}
