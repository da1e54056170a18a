package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dbstarter/internal/dto"
	"dbstarter/internal/model"
	"dbstarter/internal/repository"
)

// ── book business errors ──

var (
	ErrBookNotFound       = errors.New("Book not found")
	ErrBookFieldsRequired = errors.New("Title and author_id are required")
	ErrISBNTaken          = errors.New("ISBN already exists")
)

// BookService is the book business interface.
type BookService interface {
	// List returns one page of books plus the total count. Sort fields
	// outside the allow-list fall back to the primary key.
	List(ctx context.Context, q *dto.PageQuery) ([]dto.BookResponse, int64, error)
	// ListSorted returns every book in the requested order.
	ListSorted(ctx context.Context, sort, order string) ([]dto.BookResponse, error)
	Search(ctx context.Context, req *dto.BookSearchRequest) ([]dto.BookResponse, error)
	Get(ctx context.Context, id uint) (*dto.BookResponse, error)
	Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.BookResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateBookRequest) (*dto.BookResponse, error)
	Delete(ctx context.Context, id uint) error
}

type bookService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBookService creates a BookService.
func NewBookService(repo *repository.Repository, logger *zap.Logger) BookService {
	return &bookService{repo: repo, logger: logger}
}

func (s *bookService) List(ctx context.Context, q *dto.PageQuery) ([]dto.BookResponse, int64, error) {
	books, total, err := s.repo.Book.List(ctx, q)
	if err != nil {
		s.logger.Error("list books failed", zap.Error(err))
		return nil, 0, err
	}
	return toBookResponses(books), total, nil
}

func (s *bookService) ListSorted(ctx context.Context, sort, order string) ([]dto.BookResponse, error) {
	books, err := s.repo.Book.ListSorted(ctx, sort, order)
	if err != nil {
		s.logger.Error("list books failed", zap.Error(err))
		return nil, err
	}
	return toBookResponses(books), nil
}

func (s *bookService) Search(ctx context.Context, req *dto.BookSearchRequest) ([]dto.BookResponse, error) {
	books, err := s.repo.Book.Search(ctx, req.Q, req.Author)
	if err != nil {
		s.logger.Error("search books failed", zap.Error(err))
		return nil, err
	}
	return toBookResponses(books), nil
}

func (s *bookService) Get(ctx context.Context, id uint) (*dto.BookResponse, error) {
	book, err := s.repo.Book.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		s.logger.Error("get book failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toBookResponse(book), nil
}

func (s *bookService) Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	if req.Title == "" || req.AuthorID == 0 {
		return nil, ErrBookFieldsRequired
	}

	author, err := s.repo.Author.GetByID(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		s.logger.Error("get author failed", zap.Uint("id", req.AuthorID), zap.Error(err))
		return nil, err
	}

	if req.ISBN != nil && *req.ISBN != "" {
		if err := s.checkISBNFree(ctx, *req.ISBN, 0); err != nil {
			return nil, err
		}
	}

	book := &model.Book{
		Title:    req.Title,
		AuthorID: req.AuthorID,
		Year:     req.Year,
		ISBN:     req.ISBN,
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Book.Create(ctx, book); err != nil {
		s.logger.Error("create book failed", zap.Error(err))
		return nil, err
	}
	book.Author = author

	return toBookResponse(book), nil
}

func (s *bookService) Update(ctx context.Context, id uint, req *dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := s.repo.Book.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		s.logger.Error("get book failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.AuthorID != nil {
		author, err := s.repo.Author.GetByID(ctx, *req.AuthorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAuthorNotFound
			}
			s.logger.Error("get author failed", zap.Uint("id", *req.AuthorID), zap.Error(err))
			return nil, err
		}
		book.AuthorID = *req.AuthorID
		book.Author = author
	}
	if req.Year != nil {
		book.Year = req.Year
	}
	if req.ISBN != nil {
		if *req.ISBN != "" {
			if err := s.checkISBNFree(ctx, *req.ISBN, book.ID); err != nil {
				return nil, err
			}
		}
		book.ISBN = req.ISBN
	}

	if err := s.repo.Book.Update(ctx, book); err != nil {
		s.logger.Error("update book failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toBookResponse(book), nil
}

func (s *bookService) Delete(ctx context.Context, id uint) error {
	_, err := s.repo.Book.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		s.logger.Error("get book failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Book.Delete(ctx, id); err != nil {
		s.logger.Error("delete book failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// checkISBNFree reports ErrISBNTaken when another book already carries the
// given ISBN. selfID skips the book being updated.
func (s *bookService) checkISBNFree(ctx context.Context, isbn string, selfID uint) error {
	existing, err := s.repo.Book.GetByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("lookup isbn failed", zap.Error(err))
		return err
	}
	if existing.ID != selfID {
		return ErrISBNTaken
	}
	return nil
}

// ── helpers ──

func toBookResponse(book *model.Book) *dto.BookResponse {
	authorName := "Unknown Author"
	if book.Author != nil {
		authorName = book.Author.Name
	}
	return &dto.BookResponse{
		ID:         book.ID,
		Title:      book.Title,
		AuthorID:   book.AuthorID,
		AuthorName: authorName,
		Year:       book.Year,
		ISBN:       book.ISBN,
		CreatedAt:  book.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBookResponses(books []model.Book) []dto.BookResponse {
	result := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		result = append(result, *toBookResponse(&books[i]))
	}
	return result
}
