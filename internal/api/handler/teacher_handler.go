package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dbstarter/internal/dto"
	"dbstarter/internal/service"
)

// TeacherHandler serves the teacher HTML pages.
type TeacherHandler struct {
	teacherSvc service.TeacherService
	courseSvc  service.CourseService
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(teacherSvc service.TeacherService, courseSvc service.CourseService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc, courseSvc: courseSvc}
}

// Index lists all teachers with their assigned course.
// GET /teachers
func (h *TeacherHandler) Index(c *gin.Context) {
	teachers, err := h.teacherSvc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "teachers.tmpl", gin.H{"teachers": teachers})
}

// AddForm shows the add-teacher form with the course dropdown.
// GET /add-teacher
func (h *TeacherHandler) AddForm(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "add_teacher.tmpl", gin.H{"courses": courses})
}

// Add creates a teacher from the submitted form.
// POST /add-teacher
func (h *TeacherHandler) Add(c *gin.Context) {
	var form dto.TeacherForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/add-teacher")
		return
	}

	if err := h.teacherSvc.Create(c.Request.Context(), &form); err != nil {
		c.Redirect(http.StatusFound, "/add-teacher")
		return
	}

	c.Redirect(http.StatusFound, "/teachers")
}

// EditForm shows the edit form populated with the teacher's current values.
// GET /edit-teacher/:id
func (h *TeacherHandler) EditForm(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	teacher, err := h.teacherSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "edit_teacher.tmpl", gin.H{
		"teacher": teacher,
		"courses": courses,
	})
}

// Edit applies the submitted form to the teacher.
// POST /edit-teacher/:id
func (h *TeacherHandler) Edit(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	var form dto.TeacherForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/teachers")
		return
	}

	if err := h.teacherSvc.Update(c.Request.Context(), id, &form); err != nil {
		h.handleTeacherError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/teachers")
}

// Delete removes the teacher.
// GET /delete-teacher/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTeacherError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/teachers")
}

func (h *TeacherHandler) handleTeacherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		c.String(http.StatusNotFound, "404 Not Found")
	case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrEmailTaken):
		c.Redirect(http.StatusFound, "/teachers")
	default:
		c.String(http.StatusInternalServerError, "internal server error")
	}
}
