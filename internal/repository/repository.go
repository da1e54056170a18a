package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface. Each app wires only the
// entities it serves; unused fields stay nil.
type Repository struct {
	Course  CourseRepository
	Student StudentRepository
	Teacher TeacherRepository
	Author  AuthorRepository
	Book    BookRepository
	Product ProductRepository
}

// NewRepository builds the aggregate over one database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Course:  NewCourseRepo(db),
		Student: NewStudentRepo(db),
		Teacher: NewTeacherRepo(db),
		Author:  NewAuthorRepo(db),
		Book:    NewBookRepo(db),
		Product: NewProductRepo(db),
	}
}
