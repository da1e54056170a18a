package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dbstarter/internal/dto"
	"dbstarter/internal/model"
	"dbstarter/internal/repository"
)

// ── author business errors ──

var (
	ErrAuthorNotFound     = errors.New("Author not found")
	ErrAuthorNameRequired = errors.New("Name is required")
)

// AuthorService is the author business interface.
type AuthorService interface {
	List(ctx context.Context) ([]dto.AuthorResponse, error)
	Get(ctx context.Context, id uint) (*dto.AuthorDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error)
	// Delete removes the author and, via the cascade, every book that
	// referenced it.
	Delete(ctx context.Context, id uint) error
}

type authorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuthorService creates an AuthorService.
func NewAuthorService(repo *repository.Repository, logger *zap.Logger) AuthorService {
	return &authorService{repo: repo, logger: logger}
}

func (s *authorService) List(ctx context.Context) ([]dto.AuthorResponse, error) {
	authors, err := s.repo.Author.List(ctx)
	if err != nil {
		s.logger.Error("list authors failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AuthorResponse, 0, len(authors))
	for i := range authors {
		result = append(result, *toAuthorResponse(&authors[i]))
	}
	return result, nil
}

func (s *authorService) Get(ctx context.Context, id uint) (*dto.AuthorDetailResponse, error) {
	author, err := s.repo.Author.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		s.logger.Error("get author failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	detail := &dto.AuthorDetailResponse{
		AuthorResponse: *toAuthorResponse(author),
		Books:          make([]dto.BookResponse, 0, len(author.Books)),
	}
	for i := range author.Books {
		book := &author.Books[i]
		book.Author = author
		detail.Books = append(detail.Books, *toBookResponse(book))
	}
	return detail, nil
}

func (s *authorService) Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error) {
	if req.Name == "" {
		return nil, ErrAuthorNameRequired
	}

	author := &model.Author{
		Name: req.Name,
		Bio:  req.Bio,
		City: req.City,
	}
	if err := s.repo.Author.Create(ctx, author); err != nil {
		s.logger.Error("create author failed", zap.Error(err))
		return nil, err
	}

	return toAuthorResponse(author), nil
}

func (s *authorService) Update(ctx context.Context, id uint, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error) {
	author, err := s.repo.Author.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		s.logger.Error("get author failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.Bio != nil {
		author.Bio = *req.Bio
	}
	if req.City != nil {
		author.City = *req.City
	}

	if err := s.repo.Author.Update(ctx, author); err != nil {
		s.logger.Error("update author failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toAuthorResponse(author), nil
}

func (s *authorService) Delete(ctx context.Context, id uint) error {
	_, err := s.repo.Author.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAuthorNotFound
		}
		s.logger.Error("get author failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Author.Delete(ctx, id); err != nil {
		s.logger.Error("delete author failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func toAuthorResponse(author *model.Author) *dto.AuthorResponse {
	return &dto.AuthorResponse{
		ID:         author.ID,
		Name:       author.Name,
		Bio:        author.Bio,
		City:       author.City,
		BooksCount: len(author.Books),
	}
}
