package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dbstarter/internal/dto"
	"dbstarter/internal/service"
)

// StudentHandler serves the student HTML pages.
type StudentHandler struct {
	studentSvc service.StudentService
	courseSvc  service.CourseService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(studentSvc service.StudentService, courseSvc service.CourseService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc, courseSvc: courseSvc}
}

// Index lists students, optionally filtered by ?search=.
// GET /
func (h *StudentHandler) Index(c *gin.Context) {
	search := c.Query("search")

	students, err := h.studentSvc.List(c.Request.Context(), search)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"students": students,
		"search":   search,
	})
}

// AddForm shows the add-student form with the course dropdown.
// GET /add
func (h *StudentHandler) AddForm(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "add.tmpl", gin.H{"courses": courses})
}

// Add creates a student from the submitted form.
// POST /add
func (h *StudentHandler) Add(c *gin.Context) {
	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/add")
		return
	}

	if err := h.studentSvc.Create(c.Request.Context(), &form); err != nil {
		c.Redirect(http.StatusFound, "/add")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// EditForm shows the edit form populated with the student's current values.
// GET /edit/:id
func (h *StudentHandler) EditForm(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	student, err := h.studentSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "edit.tmpl", gin.H{
		"student": student,
		"courses": courses,
	})
}

// Edit applies the submitted form to the student.
// POST /edit/:id
func (h *StudentHandler) Edit(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.studentSvc.Update(c.Request.Context(), id, &form); err != nil {
		h.handleStudentError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete removes the student.
// GET /delete/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		c.String(http.StatusNotFound, "404 Not Found")
	case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrEmailTaken):
		c.Redirect(http.StatusFound, "/")
	default:
		c.String(http.StatusInternalServerError, "internal server error")
	}
}
