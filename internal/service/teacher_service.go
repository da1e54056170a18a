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

// ErrTeacherNotFound reports an unknown teacher id.
var ErrTeacherNotFound = errors.New("Teacher not found")

// TeacherService is the teacher business interface.
type TeacherService interface {
	List(ctx context.Context) ([]dto.TeacherRow, error)
	Get(ctx context.Context, id uint) (*dto.TeacherRow, error)
	Create(ctx context.Context, form *dto.TeacherForm) error
	Update(ctx context.Context, id uint, form *dto.TeacherForm) error
	Delete(ctx context.Context, id uint) error
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService creates a TeacherService.
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherRow, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, err
	}

	rows := make([]dto.TeacherRow, 0, len(teachers))
	for i := range teachers {
		rows = append(rows, *toTeacherRow(&teachers[i]))
	}
	return rows, nil
}

func (s *teacherService) Get(ctx context.Context, id uint) (*dto.TeacherRow, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("get teacher failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toTeacherRow(teacher), nil
}

func (s *teacherService) Create(ctx context.Context, form *dto.TeacherForm) error {
	if err := s.checkCourseExists(ctx, form.CourseID); err != nil {
		return err
	}
	if err := s.checkEmailFree(ctx, form.Email, 0); err != nil {
		return err
	}

	teacher := &model.Teacher{
		Name:           form.Name,
		Email:          form.Email,
		Specialization: form.Specialization,
		CourseID:       form.CourseID,
	}
	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("create teacher failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *teacherService) Update(ctx context.Context, id uint, form *dto.TeacherForm) error {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("get teacher failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if form.CourseID != teacher.CourseID {
		if err := s.checkCourseExists(ctx, form.CourseID); err != nil {
			return err
		}
	}
	if form.Email != teacher.Email {
		if err := s.checkEmailFree(ctx, form.Email, teacher.ID); err != nil {
			return err
		}
	}

	teacher.Name = form.Name
	teacher.Email = form.Email
	teacher.Specialization = form.Specialization
	teacher.CourseID = form.CourseID

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("update teacher failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *teacherService) Delete(ctx context.Context, id uint) error {
	_, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("get teacher failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		s.logger.Error("delete teacher failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *teacherService) checkCourseExists(ctx context.Context, courseID uint) error {
	_, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("get course failed", zap.Uint("id", courseID), zap.Error(err))
		return err
	}
	return nil
}

func (s *teacherService) checkEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.repo.Teacher.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("lookup teacher email failed", zap.Error(err))
		return err
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

// ── helpers ──

func toTeacherRow(teacher *model.Teacher) *dto.TeacherRow {
	row := &dto.TeacherRow{
		ID:             teacher.ID,
		Name:           teacher.Name,
		Email:          teacher.Email,
		Specialization: teacher.Specialization,
		CourseID:       teacher.CourseID,
	}
	if teacher.Course != nil {
		row.CourseName = teacher.Course.Name
	}
	return row
}
