package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbstarter/internal/dto"
	"dbstarter/internal/service"
)

// CourseHandler serves the course HTML pages.
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// Index lists all courses.
// GET /courses
func (h *CourseHandler) Index(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "courses.tmpl", gin.H{"courses": courses})
}

// AddForm shows the add-course form.
// GET /add-course
func (h *CourseHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_course.tmpl", gin.H{})
}

// Add creates a course from the submitted form.
// POST /add-course
func (h *CourseHandler) Add(c *gin.Context) {
	var form dto.CourseForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/add-course")
		return
	}

	if err := h.courseSvc.Create(c.Request.Context(), &form); err != nil {
		c.Redirect(http.StatusFound, "/add-course")
		return
	}

	c.Redirect(http.StatusFound, "/courses")
}
