package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dbstarter/internal/model"
)

// StudentRepository is the students data-access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	// List returns students with their course preloaded. A non-empty search
	// matches name, email or course name, case-insensitively.
	List(ctx context.Context, search string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).Preload("Course").First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, search string) ([]model.Student, error) {
	var students []model.Student
	db := r.db.WithContext(ctx).Model(&model.Student{}).Preload("Course")

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Joins("JOIN courses ON courses.id = students.course_id").
			Where("LOWER(students.name) LIKE LOWER(?) OR LOWER(students.email) LIKE LOWER(?) OR LOWER(courses.name) LIKE LOWER(?)",
				pattern, pattern, pattern)
	}

	err := db.Order("students.id ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&n).Error
	return n, err
}
