package service

import (
	"go.uber.org/zap"

	"dbstarter/internal/repository"
)

// Service aggregates every business-logic interface. Each app touches only
// the services behind its routes.
type Service struct {
	Course  CourseService
	Student StudentService
	Teacher TeacherService
	Author  AuthorService
	Book    BookService
	Product ProductService
	Export  ExportService
}

// NewService builds the aggregate.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Course:  NewCourseService(repo, logger),
		Student: NewStudentService(repo, logger),
		Teacher: NewTeacherService(repo, logger),
		Author:  NewAuthorService(repo, logger),
		Book:    NewBookService(repo, logger),
		Product: NewProductService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
