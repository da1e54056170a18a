package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"dbstarter/internal/dto"
	"dbstarter/internal/model"
	"dbstarter/internal/repository"
)

// ErrCourseNameRequired reports a missing course name.
var ErrCourseNameRequired = errors.New("Name is required")

// CourseService is the course business interface. Courses are only listed
// and created; the school pages never edit or delete them.
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, form *dto.CourseForm) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService creates a CourseService.
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		return nil, err
	}
	return courses, nil
}

func (s *courseService) Create(ctx context.Context, form *dto.CourseForm) error {
	if form.Name == "" {
		return ErrCourseNameRequired
	}

	course := &model.Course{
		Name:        form.Name,
		Description: form.Description,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("create course failed", zap.Error(err))
		return err
	}
	return nil
}
