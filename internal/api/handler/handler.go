package handler

import "dbstarter/internal/service"

// Handler aggregates every HTTP handler. Each app's router wires only its
// own subset.
type Handler struct {
	Course  *CourseHandler
	Student *StudentHandler
	Teacher *TeacherHandler
	Author  *AuthorHandler
	Book    *BookHandler
	Product *ProductHandler
}

// NewHandler builds the aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Course:  NewCourseHandler(svc.Course),
		Student: NewStudentHandler(svc.Student, svc.Course),
		Teacher: NewTeacherHandler(svc.Teacher, svc.Course),
		Author:  NewAuthorHandler(svc.Author),
		Book:    NewBookHandler(svc.Book),
		Product: NewProductHandler(svc.Product, svc.Export),
	}
}
