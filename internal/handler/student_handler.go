package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-admission-api/internal/models"
	"github.com/noah-isme/school-admission-api/pkg/response"
)

type studentReadService interface {
	Get(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error)
}

// StudentHandler exposes read-only student endpoints.
type StudentHandler struct {
	students studentReadService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentReadService) *StudentHandler {
	return &StudentHandler{students: students}
}

// Get godoc
// @Summary Get a single student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param classId query int false "Filter by current class"
// @Param academicYearId query string false "Filter by academic year"
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Search by name or student code"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var filter models.StudentFilter
	if classID, err := strconv.Atoi(c.Query("classId")); err == nil {
		filter.CurrentClassID = &classID
	}
	filter.AcademicYearID = c.Query("academicYearId")
	if active, err := strconv.ParseBool(c.Query("active")); err == nil {
		filter.Active = &active
	}
	filter.Search = c.Query("search")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	students, pagination, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, pagination)
}
