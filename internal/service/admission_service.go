package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-admission-api/internal/dto"
	"github.com/noah-isme/school-admission-api/internal/models"
	appErrors "github.com/noah-isme/school-admission-api/pkg/errors"
)

// Workflow operation names, carried in invalid-transition errors and metrics.
const (
	OpCreateInquiry        = "createInquiry"
	OpConvertToApplication = "convertToApplication"
	OpScheduleTest         = "scheduleTest"
	OpRecordTestScore      = "recordTestScore"
	OpScheduleInterview    = "scheduleInterview"
	OpRecordInterview      = "recordInterview"
	OpAdmit                = "admit"
	OpEnroll               = "enroll"
	OpReject               = "reject"
	OpWithdraw             = "withdraw"
)

// defaultAdmitFrom is the inferred policy for which statuses allow the admit
// transition. Deployments can override it through configuration.
var defaultAdmitFrom = []models.AdmissionStatus{
	models.AdmissionStatusApplied,
	models.AdmissionStatusTested,
	models.AdmissionStatusInterviewed,
}

// transitionSources maps each fixed-guard operation to its legal source statuses.
var transitionSources = map[string][]models.AdmissionStatus{
	OpConvertToApplication: {models.AdmissionStatusInquiry},
	OpScheduleTest:         {models.AdmissionStatusApplied},
	OpRecordTestScore:      {models.AdmissionStatusTestScheduled},
	OpScheduleInterview:    {models.AdmissionStatusApplied, models.AdmissionStatusTested},
	OpRecordInterview:      {models.AdmissionStatusInterviewScheduled},
	OpEnroll:               {models.AdmissionStatusAdmitted},
}

type admissionStore interface {
	Create(ctx context.Context, admission *models.Admission) error
	FindByID(ctx context.Context, id string) (*models.Admission, error)
	UpdateWithStatus(ctx context.Context, admission *models.Admission, expected models.AdmissionStatus) error
	List(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, int, error)
	CountByStatus(ctx context.Context, filter models.StatisticsFilter) ([]models.StatusCount, error)
	CountByClass(ctx context.Context, filter models.StatisticsFilter) ([]models.ClassCount, error)
}

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

type auditLogger interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type actorKey struct{}

// WithActor tags the context with the acting user for the audit trail.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

func actorFrom(ctx context.Context) *string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return &v
	}
	return nil
}

// EnrollmentResult pairs the enrolled admission with the student it produced.
type EnrollmentResult struct {
	Admission *models.Admission `json:"admission"`
	Student   *models.Student   `json:"student"`
}

// AdmissionService orchestrates the admission lifecycle: it validates the
// requested transition against the current status, merges the payload,
// persists the aggregate through a status-conditional write, and triggers
// the notification, offer-letter, and student-code collaborators.
type AdmissionService struct {
	admissions admissionStore
	students   studentStore
	sequences  sequenceSource
	notifier   NotificationGateway
	letters    OfferLetterGenerator
	codes      StudentCodeIssuer
	audit      auditLogger
	cache      *CacheService
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger

	admitFrom     []models.AdmissionStatus
	collabTimeout time.Duration
	statsTTL      time.Duration
}

// AdmissionServiceOption configures the service.
type AdmissionServiceOption func(*AdmissionService)

// WithAuditLogger enables the workflow audit trail.
func WithAuditLogger(audit auditLogger) AdmissionServiceOption {
	return func(s *AdmissionService) { s.audit = audit }
}

// WithCacheService enables statistics caching.
func WithCacheService(cache *CacheService, ttl time.Duration) AdmissionServiceOption {
	return func(s *AdmissionService) {
		s.cache = cache
		if ttl > 0 {
			s.statsTTL = ttl
		}
	}
}

// WithMetricsService enables workflow instrumentation.
func WithMetricsService(metrics *MetricsService) AdmissionServiceOption {
	return func(s *AdmissionService) { s.metrics = metrics }
}

// WithAdmitFrom overrides the statuses the admit transition accepts.
func WithAdmitFrom(statuses []models.AdmissionStatus) AdmissionServiceOption {
	return func(s *AdmissionService) {
		if len(statuses) > 0 {
			s.admitFrom = statuses
		}
	}
}

// WithCollaboratorTimeout bounds offer-letter and student-code calls.
func WithCollaboratorTimeout(timeout time.Duration) AdmissionServiceOption {
	return func(s *AdmissionService) {
		if timeout > 0 {
			s.collabTimeout = timeout
		}
	}
}

// NewAdmissionService constructs the workflow engine.
func NewAdmissionService(
	admissions admissionStore,
	students studentStore,
	sequences sequenceSource,
	notifier NotificationGateway,
	letters OfferLetterGenerator,
	codes StudentCodeIssuer,
	validate *validator.Validate,
	logger *zap.Logger,
	opts ...AdmissionServiceOption,
) *AdmissionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AdmissionService{
		admissions:    admissions,
		students:      students,
		sequences:     sequences,
		notifier:      notifier,
		letters:       letters,
		codes:         codes,
		validator:     validate,
		logger:        logger,
		admitFrom:     defaultAdmitFrom,
		collabTimeout: 10 * time.Second,
		statsTTL:      5 * time.Minute,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// CreateInquiry opens a new admission record in status INQUIRY.
func (s *AdmissionService) CreateInquiry(ctx context.Context, req dto.CreateInquiryRequest) (*models.Admission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid inquiry payload")
	}
	dobAd, err := parseDate(req.DOBAd)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "dob_ad must be formatted as YYYY-MM-DD")
	}

	temporaryID, err := s.nextTemporaryID(ctx, req.AcademicYearID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to allocate admission reference")
	}

	now := time.Now().UTC()
	admission := &models.Admission{
		TemporaryID:      temporaryID,
		Status:           models.AdmissionStatusInquiry,
		FirstNameEn:      req.FirstNameEn,
		LastNameEn:       req.LastNameEn,
		FirstNameNp:      req.FirstNameNp,
		LastNameNp:       req.LastNameNp,
		DOBAd:            dobAd,
		DOBBs:            req.DOBBs,
		Gender:           req.Gender,
		Address:          req.Address,
		Phone:            req.Phone,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		FatherName:       req.FatherName,
		FatherPhone:      req.FatherPhone,
		MotherName:       req.MotherName,
		MotherPhone:      req.MotherPhone,
		ApplyingForClass: req.ApplyingForClass,
		AcademicYearID:   req.AcademicYearID,
		InquiryDate:      now,
	}
	if err := s.admissions.Create(ctx, admission); err != nil {
		s.recordTransition(OpCreateInquiry, false)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create admission")
	}

	s.recordTransition(OpCreateInquiry, true)
	s.invalidateStats(ctx)
	s.emitAudit(ctx, models.AuditActionInquiryCreate, admission, "", admission.Status)
	s.notify(ctx, admission, NotifyEventInquiry)
	return admission, nil
}

// ConvertToApplication turns an inquiry into a formal application.
func (s *AdmissionService) ConvertToApplication(ctx context.Context, id string, req dto.ApplicationRequest) (*models.Admission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}
	dobAd, err := parseDate(req.DOBAd)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "dob_ad must be formatted as YYYY-MM-DD")
	}

	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpConvertToApplication, admission); err != nil {
		return nil, err
	}

	mergeIfSet(&admission.FatherName, req.FatherName)
	mergeIfSet(&admission.FatherPhone, req.FatherPhone)
	mergeIfSet(&admission.MotherName, req.MotherName)
	mergeIfSet(&admission.MotherPhone, req.MotherPhone)
	mergeIfSet(&admission.GuardianName, req.GuardianName)
	mergeIfSet(&admission.GuardianPhone, req.GuardianPhone)
	mergeIfSet(&admission.Address, req.Address)
	mergeIfSet(&admission.DOBBs, req.DOBBs)
	mergeIfSet(&admission.Gender, req.Gender)
	if dobAd != nil {
		admission.DOBAd = dobAd
	}
	admission.ApplicationFeePaid = req.ApplicationFeePaid
	if req.ApplicationFeeAmount != nil {
		admission.ApplicationFeeAmount = req.ApplicationFeeAmount
	}
	if req.DocumentsVerified != nil {
		admission.DocumentsVerified = *req.DocumentsVerified
	}
	now := time.Now().UTC()
	admission.ApplicationDate = &now

	if err := s.transition(ctx, OpConvertToApplication, admission, models.AdmissionStatusApplied); err != nil {
		return nil, err
	}
	s.notify(ctx, admission, NotifyEventApplication)
	return admission, nil
}

// ScheduleTest books the admission test.
func (s *AdmissionService) ScheduleTest(ctx context.Context, id string, req dto.ScheduleTestRequest) (*models.Admission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid test schedule payload")
	}
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpScheduleTest, admission); err != nil {
		return nil, err
	}

	testDate := req.TestDate.UTC()
	admission.TestDate = &testDate

	if err := s.transition(ctx, OpScheduleTest, admission, models.AdmissionStatusTestScheduled); err != nil {
		return nil, err
	}
	s.notify(ctx, admission, NotifyEventTestScheduled)
	return admission, nil
}

// RecordTestScore stores the admission test outcome.
func (s *AdmissionService) RecordTestScore(ctx context.Context, id string, req dto.TestScoreRequest) (*models.Admission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid test score payload")
	}
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpRecordTestScore, admission); err != nil {
		return nil, err
	}

	score := req.Score
	maxScore := req.MaxScore
	admission.TestScore = &score
	admission.TestMaxScore = &maxScore
	mergeIfSet(&admission.TestRemarks, req.Remarks)

	if err := s.transition(ctx, OpRecordTestScore, admission, models.AdmissionStatusTested); err != nil {
		return nil, err
	}
	return admission, nil
}

// ScheduleInterview books the admission interview.
func (s *AdmissionService) ScheduleInterview(ctx context.Context, id string, req dto.ScheduleInterviewRequest) (*models.Admission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid interview schedule payload")
	}
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpScheduleInterview, admission); err != nil {
		return nil, err
	}

	interviewDate := req.InterviewDate.UTC()
	admission.InterviewDate = &interviewDate
	mergeIfSet(&admission.InterviewerName, req.InterviewerName)

	if err := s.transition(ctx, OpScheduleInterview, admission, models.AdmissionStatusInterviewScheduled); err != nil {
		return nil, err
	}
	s.notify(ctx, admission, NotifyEventInterviewScheduled)
	return admission, nil
}

// RecordInterview stores interview feedback.
func (s *AdmissionService) RecordInterview(ctx context.Context, id string, req dto.InterviewResultRequest) (*models.Admission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid interview result payload")
	}
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpRecordInterview, admission); err != nil {
		return nil, err
	}

	feedback := req.Feedback
	admission.InterviewFeedback = &feedback
	if req.Score != nil {
		admission.InterviewScore = req.Score
	}

	if err := s.transition(ctx, OpRecordInterview, admission, models.AdmissionStatusInterviewed); err != nil {
		return nil, err
	}
	return admission, nil
}

// Admit finalises the admission decision. The offer letter is generated
// before the write so its URL lands in the same persisted snapshot.
func (s *AdmissionService) Admit(ctx context.Context, id string, req dto.AdmitRequest) (*models.Admission, error) {
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpAdmit, admission); err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, s.collabTimeout)
	defer cancel()
	letterURL, err := s.letters.Generate(cctx, admission)
	if err != nil {
		s.recordTransition(OpAdmit, false)
		return nil, appErrors.Wrap(err, appErrors.ErrCollaborator.Code, appErrors.ErrCollaborator.Status, "offer letter generation failed")
	}

	if req.DocumentsVerified != nil {
		admission.DocumentsVerified = *req.DocumentsVerified
	}
	now := time.Now().UTC()
	admission.AdmissionDate = &now
	admission.OfferLetterURL = &letterURL

	if err := s.transition(ctx, OpAdmit, admission, models.AdmissionStatusAdmitted); err != nil {
		return nil, err
	}
	s.notify(ctx, admission, NotifyEventAdmitted)
	return admission, nil
}

// Enroll converts an admitted candidate into a student. Student code issuance
// and student creation precede the admission write; a failed admission write
// removes the just-created student again so no half-enrollment survives.
func (s *AdmissionService) Enroll(ctx context.Context, id string, req dto.EnrollRequest) (*EnrollmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpEnroll, admission); err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, s.collabTimeout)
	defer cancel()
	code, err := s.codes.Issue(cctx, admission.AcademicYearID, admission.ApplyingForClass)
	if err != nil {
		s.recordTransition(OpEnroll, false)
		return nil, appErrors.Wrap(err, appErrors.ErrCollaborator.Code, appErrors.ErrCollaborator.Status, "student code issuance failed")
	}

	student := newStudentFromAdmission(admission, code, req)
	if err := s.students.Create(ctx, student); err != nil {
		s.recordTransition(OpEnroll, false)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	now := time.Now().UTC()
	admission.EnrollmentDate = &now
	admission.EnrolledStudentID = &student.ID

	if err := s.transition(ctx, OpEnroll, admission, models.AdmissionStatusEnrolled); err != nil {
		if delErr := s.students.Delete(ctx, student.ID); delErr != nil {
			s.logger.Error("failed to remove student after enrollment write failure",
				zap.String("student_id", student.ID), zap.Error(delErr))
		}
		return nil, err
	}
	s.notify(ctx, admission, NotifyEventEnrolled)
	return &EnrollmentResult{Admission: admission, Student: student}, nil
}

// Reject closes the admission with a rejection. Legal from any non-terminal status.
func (s *AdmissionService) Reject(ctx context.Context, id string, req dto.RejectRequest) (*models.Admission, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "rejection reason is required")
	}
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpReject, admission); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reason := strings.TrimSpace(req.Reason)
	admission.RejectionDate = &now
	admission.RejectionReason = &reason

	if err := s.transition(ctx, OpReject, admission, models.AdmissionStatusRejected); err != nil {
		return nil, err
	}
	return admission, nil
}

// Withdraw closes the admission on the candidate's initiative.
func (s *AdmissionService) Withdraw(ctx context.Context, id string, req dto.WithdrawRequest) (*models.Admission, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "withdrawal reason is required")
	}
	admission, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard(OpWithdraw, admission); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reason := strings.TrimSpace(req.Reason)
	admission.WithdrawalDate = &now
	admission.WithdrawalReason = &reason

	if err := s.transition(ctx, OpWithdraw, admission, models.AdmissionStatusWithdrawn); err != nil {
		return nil, err
	}
	return admission, nil
}

// Get returns a single admission.
func (s *AdmissionService) Get(ctx context.Context, id string) (*models.Admission, error) {
	return s.load(ctx, id)
}

// List returns admissions with pagination metadata.
func (s *AdmissionService) List(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, *models.Pagination, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown admission status")
	}
	admissions, total, err := s.admissions.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list admissions")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return admissions, pagination, nil
}

// Statistics aggregates pipeline counts, optionally served from cache.
func (s *AdmissionService) Statistics(ctx context.Context, filter models.StatisticsFilter) (*models.AdmissionStatistics, error) {
	key := statsCacheKey(filter)
	if s.cache != nil {
		var cached models.AdmissionStatistics
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	statusCounts, err := s.admissions.CountByStatus(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate admissions by status")
	}
	classCounts, err := s.admissions.CountByClass(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate admissions by class")
	}

	stats := &models.AdmissionStatistics{
		ByStatus: make(map[models.AdmissionStatus]int, len(models.AllAdmissionStatuses)),
		ByClass:  make(map[int]int, len(classCounts)),
	}
	for _, status := range models.AllAdmissionStatuses {
		stats.ByStatus[status] = 0
	}
	for _, row := range statusCounts {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}
	for _, row := range classCounts {
		stats.ByClass[row.Class] = row.Count
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, stats, s.statsTTL)
	}
	return stats, nil
}

// transition persists the status change and runs the shared post-write hooks.
func (s *AdmissionService) transition(ctx context.Context, op string, admission *models.Admission, next models.AdmissionStatus) error {
	previous := admission.Status
	admission.Status = next
	if err := s.admissions.UpdateWithStatus(ctx, admission, previous); err != nil {
		admission.Status = previous
		s.recordTransition(op, false)
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrConflict, "admission was modified concurrently, retry with fresh state")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist admission")
	}
	s.recordTransition(op, true)
	s.invalidateStats(ctx)
	s.emitAudit(ctx, models.AuditActionStatusTransition, admission, previous, next)
	return nil
}

func (s *AdmissionService) load(ctx context.Context, id string) (*models.Admission, error) {
	admission, err := s.admissions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "admission not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load admission")
	}
	return admission, nil
}

// guard validates the operation against the current status before any field
// of the aggregate is touched.
func (s *AdmissionService) guard(op string, admission *models.Admission) error {
	var allowed []models.AdmissionStatus
	switch op {
	case OpAdmit:
		allowed = s.admitFrom
	case OpReject, OpWithdraw:
		if admission.Status.IsTerminal() {
			return s.invalidTransition(op, admission.Status)
		}
		return nil
	default:
		allowed = transitionSources[op]
	}
	for _, status := range allowed {
		if admission.Status == status {
			return nil
		}
	}
	return s.invalidTransition(op, admission.Status)
}

func (s *AdmissionService) invalidTransition(op string, status models.AdmissionStatus) error {
	s.recordTransition(op, false)
	return appErrors.Clone(appErrors.ErrInvalidTransition,
		fmt.Sprintf("operation %s is not allowed while the admission is %s", op, status))
}

// notify resolves the contact number and sends the event notification.
// Missing contact numbers and send failures never fail the workflow.
func (s *AdmissionService) notify(ctx context.Context, admission *models.Admission, event string) {
	if s.notifier == nil {
		return
	}
	phone, ok := admission.ContactPhone()
	if !ok {
		s.logger.Debug("no contact number on admission, skipping notification",
			zap.String("admission_id", admission.ID), zap.String("event", event))
		return
	}
	params := map[string]string{
		"name":         admission.FullNameEn(),
		"temporary_id": admission.TemporaryID,
	}
	if event == NotifyEventTestScheduled && admission.TestDate != nil {
		params["date"] = admission.TestDate.Format("2006-01-02")
	}
	if event == NotifyEventInterviewScheduled && admission.InterviewDate != nil {
		params["date"] = admission.InterviewDate.Format("2006-01-02")
	}
	if err := s.notifier.Send(ctx, phone, event, params); err != nil {
		s.logger.Warn("notification failed",
			zap.String("admission_id", admission.ID),
			zap.String("event", event),
			zap.Error(err))
		if s.metrics != nil {
			s.metrics.RecordNotification(event, false)
		}
		return
	}
	if s.metrics != nil {
		s.metrics.RecordNotification(event, true)
	}
}

func (s *AdmissionService) recordTransition(op string, success bool) {
	if s.metrics != nil {
		s.metrics.RecordTransition(op, success)
	}
}

func (s *AdmissionService) invalidateStats(ctx context.Context) {
	if s.cache != nil {
		s.cache.InvalidatePattern(ctx, "admissions:stats:*")
	}
}

func (s *AdmissionService) emitAudit(ctx context.Context, action string, admission *models.Admission, from, to models.AdmissionStatus) {
	if s.audit == nil {
		return
	}
	oldValues, _ := json.Marshal(map[string]string{"status": string(from)})
	newValues, _ := json.Marshal(map[string]string{"status": string(to)})
	log := &models.AuditLog{
		UserID:     actorFrom(ctx),
		Action:     action,
		Resource:   "admission",
		ResourceID: &admission.ID,
		OldValues:  oldValues,
		NewValues:  newValues,
		IPAddress:  "system",
		UserAgent:  "admission-service",
	}
	if err := s.audit.CreateAuditLog(ctx, log); err != nil {
		s.logger.Warn("failed to persist audit log", zap.Error(err))
	}
}

func (s *AdmissionService) nextTemporaryID(ctx context.Context, academicYearID string) (string, error) {
	seq, err := s.sequences.Next(ctx, "admission_ref:"+academicYearID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ADM-%s-%04d", academicYearID, seq), nil
}

func newStudentFromAdmission(admission *models.Admission, code string, req dto.EnrollRequest) *models.Student {
	return &models.Student{
		StudentCode:    code,
		FirstNameEn:    admission.FirstNameEn,
		LastNameEn:     admission.LastNameEn,
		FirstNameNp:    admission.FirstNameNp,
		LastNameNp:     admission.LastNameNp,
		DOBAd:          admission.DOBAd,
		DOBBs:          admission.DOBBs,
		Gender:         admission.Gender,
		Address:        admission.Address,
		Phone:          admission.Phone,
		GuardianName:   admission.GuardianName,
		GuardianPhone:  admission.GuardianPhone,
		FatherName:     admission.FatherName,
		MotherName:     admission.MotherName,
		AdmissionClass: admission.ApplyingForClass,
		CurrentClassID: req.CurrentClassID,
		RollNumber:     req.RollNumber,
		AcademicYearID: admission.AcademicYearID,
		AdmissionID:    admission.ID,
		Active:         true,
	}
}

func mergeIfSet(dst **string, src *string) {
	if src != nil && *src != "" {
		*dst = src
	}
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func statsCacheKey(filter models.StatisticsFilter) string {
	year := filter.AcademicYearID
	if year == "" {
		year = "all"
	}
	class := "all"
	if filter.ApplyingForClass != nil {
		class = fmt.Sprintf("%d", *filter.ApplyingForClass)
	}
	return fmt.Sprintf("admissions:stats:%s:%s", year, class)
}
