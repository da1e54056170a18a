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

// ── school business errors ──

var (
	ErrStudentNotFound = errors.New("Student not found")
	ErrCourseNotFound  = errors.New("Course not found")
	ErrEmailTaken      = errors.New("Email already exists")
)

// StudentService is the student business interface.
type StudentService interface {
	// List returns students with course names joined in; a non-empty
	// search filters by name, email or course name.
	List(ctx context.Context, search string) ([]dto.StudentRow, error)
	Get(ctx context.Context, id uint) (*dto.StudentRow, error)
	Create(ctx context.Context, form *dto.StudentForm) error
	Update(ctx context.Context, id uint, form *dto.StudentForm) error
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) List(ctx context.Context, search string) ([]dto.StudentRow, error) {
	students, err := s.repo.Student.List(ctx, search)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}

	rows := make([]dto.StudentRow, 0, len(students))
	for i := range students {
		rows = append(rows, *toStudentRow(&students[i]))
	}
	return rows, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (*dto.StudentRow, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("get student failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toStudentRow(student), nil
}

func (s *studentService) Create(ctx context.Context, form *dto.StudentForm) error {
	if err := s.checkCourseExists(ctx, form.CourseID); err != nil {
		return err
	}
	if err := s.checkEmailFree(ctx, form.Email, 0); err != nil {
		return err
	}

	student := &model.Student{
		Name:     form.Name,
		Email:    form.Email,
		CourseID: form.CourseID,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *studentService) Update(ctx context.Context, id uint, form *dto.StudentForm) error {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("get student failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if form.CourseID != student.CourseID {
		if err := s.checkCourseExists(ctx, form.CourseID); err != nil {
			return err
		}
	}
	if form.Email != student.Email {
		if err := s.checkEmailFree(ctx, form.Email, student.ID); err != nil {
			return err
		}
	}

	student.Name = form.Name
	student.Email = form.Email
	student.CourseID = form.CourseID

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	_, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("get student failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("delete student failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *studentService) checkCourseExists(ctx context.Context, courseID uint) error {
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

func (s *studentService) checkEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.repo.Student.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("lookup student email failed", zap.Error(err))
		return err
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

// ── helpers ──

func toStudentRow(student *model.Student) *dto.StudentRow {
	row := &dto.StudentRow{
		ID:       student.ID,
		Name:     student.Name,
		Email:    student.Email,
		CourseID: student.CourseID,
	}
	if student.Course != nil {
		row.CourseName = student.Course.Name
	}
	return row
}
