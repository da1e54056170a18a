package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dbstarter/internal/model"
)

// AuthorRepository is the authors data-access interface.
type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	// GetByID preloads the author's books so callers can report counts
	// and embed the book list.
	GetByID(ctx context.Context, id uint) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, author *model.Author) error
	// Delete removes the author; the books FK cascades in the store.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type authorRepo struct {
	db *gorm.DB
}

// NewAuthorRepo creates an AuthorRepository.
func NewAuthorRepo(db *gorm.DB) AuthorRepository {
	return &authorRepo{db: db}
}

func (r *authorRepo) Create(ctx context.Context, author *model.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepo) GetByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	err := r.db.WithContext(ctx).Preload("Books").First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepo) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	err := r.db.WithContext(ctx).Preload("Books").Order("id ASC").Find(&authors).Error
	return authors, err
}

func (r *authorRepo) Update(ctx context.Context, author *model.Author) error {
	// Omit associations so a preloaded Books slice is never re-saved.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(author).Error
}

func (r *authorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Author{}, id).Error
}

func (r *authorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Author{}).Count(&n).Error
	return n, err
}
