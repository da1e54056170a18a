package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dbstarter/internal/model"
)

// TeacherRepository is the teachers data-access interface.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id uint) (*model.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*model.Teacher, error)
	List(ctx context.Context) ([]model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo creates a TeacherRepository.
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).Preload("Course").First(&teacher, id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) List(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).Preload("Course").Order("id ASC").Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(teacher).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, id).Error
}

func (r *teacherRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Teacher{}).Count(&n).Error
	return n, err
}
