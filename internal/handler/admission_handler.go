package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-admission-api/internal/dto"
	"github.com/noah-isme/school-admission-api/internal/models"
	"github.com/noah-isme/school-admission-api/internal/service"
	appErrors "github.com/noah-isme/school-admission-api/pkg/errors"
	"github.com/noah-isme/school-admission-api/pkg/response"
)

type admissionWorkflow interface {
	CreateInquiry(ctx context.Context, req dto.CreateInquiryRequest) (*models.Admission, error)
	ConvertToApplication(ctx context.Context, id string, req dto.ApplicationRequest) (*models.Admission, error)
	ScheduleTest(ctx context.Context, id string, req dto.ScheduleTestRequest) (*models.Admission, error)
	RecordTestScore(ctx context.Context, id string, req dto.TestScoreRequest) (*models.Admission, error)
	ScheduleInterview(ctx context.Context, id string, req dto.ScheduleInterviewRequest) (*models.Admission, error)
	RecordInterview(ctx context.Context, id string, req dto.InterviewResultRequest) (*models.Admission, error)
	Admit(ctx context.Context, id string, req dto.AdmitRequest) (*models.Admission, error)
	Enroll(ctx context.Context, id string, req dto.EnrollRequest) (*service.EnrollmentResult, error)
	Reject(ctx context.Context, id string, req dto.RejectRequest) (*models.Admission, error)
	Withdraw(ctx context.Context, id string, req dto.WithdrawRequest) (*models.Admission, error)
	Get(ctx context.Context, id string) (*models.Admission, error)
	List(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, *models.Pagination, error)
	Statistics(ctx context.Context, filter models.StatisticsFilter) (*models.AdmissionStatistics, error)
}

// AdmissionHandler exposes the admission workflow endpoints.
type AdmissionHandler struct {
	admissions admissionWorkflow
}

// NewAdmissionHandler constructs AdmissionHandler.
func NewAdmissionHandler(admissions admissionWorkflow) *AdmissionHandler {
	return &AdmissionHandler{admissions: admissions}
}

// CreateInquiry godoc
// @Summary Open a new admission inquiry
// @Tags Admissions
// @Accept json
// @Produce json
// @Param payload body dto.CreateInquiryRequest true "Inquiry payload"
// @Success 201 {object} response.Envelope
// @Router /admissions/inquiries [post]
func (h *AdmissionHandler) CreateInquiry(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, admission)
}

// List godoc
// @Summary List admissions
// @Tags Admissions
// @Produce json
// @Param status query string false "Filter by status"
// @Param class query int false "Filter by applying class"
// @Param academicYearId query string false "Filter by academic year"
// @Param search query string false "Search by name"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /admissions [get]
func (h *AdmissionHandler) List(c *gin.Context) {
	var filter models.AdmissionFilter
	filter.Status = models.AdmissionStatus(strings.ToUpper(c.Query("status")))
	if class, err := strconv.Atoi(c.Query("class")); err == nil {
		filter.ApplyingForClass = &class
	}
	filter.AcademicYearID = c.Query("academicYearId")
	filter.Search = c.Query("search")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	admissions, pagination, err := h.admissions.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admissions, pagination)
}

// Statistics godoc
// @Summary Admission pipeline statistics
// @Tags Admissions
// @Produce json
// @Param academicYearId query string false "Filter by academic year"
// @Param class query int false "Filter by applying class"
// @Success 200 {object} response.Envelope
// @Router /admissions/statistics [get]
func (h *AdmissionHandler) Statistics(c *gin.Context) {
	var filter models.StatisticsFilter
	filter.AcademicYearID = c.Query("academicYearId")
	if class, err := strconv.Atoi(c.Query("class")); err == nil {
		filter.ApplyingForClass = &class
	}
	stats, err := h.admissions.Statistics(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Get godoc
// @Summary Get a single admission
// @Tags Admissions
// @Produce json
// @Param id path string true "Admission ID"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id} [get]
func (h *AdmissionHandler) Get(c *gin.Context) {
	admission, err := h.admissions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// ConvertToApplication godoc
// @Summary Convert an inquiry into a formal application
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.ApplicationRequest true "Application payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/application [put]
func (h *AdmissionHandler) ConvertToApplication(c *gin.Context) {
	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.ConvertToApplication(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// ScheduleTest godoc
// @Summary Schedule the admission test
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.ScheduleTestRequest true "Test schedule payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/test-schedule [put]
func (h *AdmissionHandler) ScheduleTest(c *gin.Context) {
	var req dto.ScheduleTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.ScheduleTest(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// RecordTestScore godoc
// @Summary Record the admission test outcome
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.TestScoreRequest true "Test score payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/test-score [put]
func (h *AdmissionHandler) RecordTestScore(c *gin.Context) {
	var req dto.TestScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.RecordTestScore(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// ScheduleInterview godoc
// @Summary Schedule the admission interview
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.ScheduleInterviewRequest true "Interview schedule payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/interview-schedule [put]
func (h *AdmissionHandler) ScheduleInterview(c *gin.Context) {
	var req dto.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.ScheduleInterview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// RecordInterview godoc
// @Summary Record interview feedback
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.InterviewResultRequest true "Interview result payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/interview-result [put]
func (h *AdmissionHandler) RecordInterview(c *gin.Context) {
	var req dto.InterviewResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.RecordInterview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// Admit godoc
// @Summary Admit the candidate and issue the offer letter
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.AdmitRequest false "Admit payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/admit [put]
func (h *AdmissionHandler) Admit(c *gin.Context) {
	var req dto.AdmitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
	}
	admission, err := h.admissions.Admit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// Enroll godoc
// @Summary Enroll the admitted candidate as a student
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.EnrollRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Router /admissions/{id}/enroll [post]
func (h *AdmissionHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.admissions.Enroll(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Reject godoc
// @Summary Reject the admission
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.RejectRequest true "Rejection payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/reject [put]
func (h *AdmissionHandler) Reject(c *gin.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.Reject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// Withdraw godoc
// @Summary Withdraw the admission
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param payload body dto.WithdrawRequest true "Withdrawal payload"
// @Success 200 {object} response.Envelope
// @Router /admissions/{id}/withdraw [put]
func (h *AdmissionHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	admission, err := h.admissions.Withdraw(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}
