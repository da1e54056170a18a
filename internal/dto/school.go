package dto

// ── school DTOs (HTML form bindings) ──

// StudentForm is the add/edit student form.
type StudentForm struct {
	Name     string `form:"name"      binding:"required"`
	Email    string `form:"email"     binding:"required"`
	CourseID uint   `form:"course_id" binding:"required"`
}

// TeacherForm is the add/edit teacher form.
type TeacherForm struct {
	Name           string `form:"name"           binding:"required"`
	Email          string `form:"email"          binding:"required"`
	Specialization string `form:"specialization"`
	CourseID       uint   `form:"course_id"      binding:"required"`
}

// CourseForm is the add course form.
type CourseForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

// StudentRow is a student list row with the course name joined in.
type StudentRow struct {
	ID         uint
	Name       string
	Email      string
	CourseID   uint
	CourseName string
}

// TeacherRow is a teacher list row with the course name joined in.
type TeacherRow struct {
	ID             uint
	Name           string
	Email          string
	Specialization string
	CourseID       uint
	CourseName     string
}
