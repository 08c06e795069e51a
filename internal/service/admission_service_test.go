package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admission-api/internal/dto"
	"github.com/noah-isme/school-admission-api/internal/models"
	appErrors "github.com/noah-isme/school-admission-api/pkg/errors"
)

type fakeAdmissionStore struct {
	mu      sync.Mutex
	records map[string]*models.Admission

	createErr error
	updateErr error

	updateCalls int

	statusCounts []models.StatusCount
	classCounts  []models.ClassCount
}

func newFakeAdmissionStore() *fakeAdmissionStore {
	return &fakeAdmissionStore{records: map[string]*models.Admission{}}
}

func (f *fakeAdmissionStore) Create(ctx context.Context, admission *models.Admission) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if admission.ID == "" {
		admission.ID = fmt.Sprintf("adm-%d", len(f.records)+1)
	}
	snapshot := *admission
	f.records[admission.ID] = &snapshot
	return nil
}

func (f *fakeAdmissionStore) FindByID(ctx context.Context, id string) (*models.Admission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	snapshot := *stored
	return &snapshot, nil
}

func (f *fakeAdmissionStore) UpdateWithStatus(ctx context.Context, admission *models.Admission, expected models.AdmissionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.records[admission.ID]
	if !ok || stored.Status != expected {
		return sql.ErrNoRows
	}
	snapshot := *admission
	f.records[admission.ID] = &snapshot
	return nil
}

func (f *fakeAdmissionStore) List(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Admission
	for _, stored := range f.records {
		if filter.Status != "" && stored.Status != filter.Status {
			continue
		}
		out = append(out, *stored)
	}
	return out, len(out), nil
}

func (f *fakeAdmissionStore) CountByStatus(ctx context.Context, filter models.StatisticsFilter) ([]models.StatusCount, error) {
	return f.statusCounts, nil
}

func (f *fakeAdmissionStore) CountByClass(ctx context.Context, filter models.StatisticsFilter) ([]models.ClassCount, error) {
	return f.classCounts, nil
}

func (f *fakeAdmissionStore) stored(id string) *models.Admission {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := f.records[id]
	snapshot := *stored
	return &snapshot
}

type fakeStudentStore struct {
	created   []*models.Student
	deleted   []string
	createErr error
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	if student.ID == "" {
		student.ID = fmt.Sprintf("stu-%d", len(f.created)+1)
	}
	f.created = append(f.created, student)
	return nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSequences struct {
	counters map[string]int
	err      error
}

func (f *fakeSequences) Next(ctx context.Context, name string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.counters == nil {
		f.counters = map[string]int{}
	}
	f.counters[name]++
	return f.counters[name], nil
}

type sentNotification struct {
	phone string
	event string
}

type fakeNotifier struct {
	sent []sentNotification
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, phone, event string, params map[string]string) error {
	f.sent = append(f.sent, sentNotification{phone: phone, event: event})
	return f.err
}

type fakeLetterGenerator struct {
	url   string
	err   error
	calls int
}

func (f *fakeLetterGenerator) Generate(ctx context.Context, admission *models.Admission) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.url != "" {
		return f.url, nil
	}
	return "https://letters.example.com/" + admission.TemporaryID, nil
}

type fakeCodeIssuer struct {
	code  string
	err   error
	calls int
}

func (f *fakeCodeIssuer) Issue(ctx context.Context, academicYearID string, admissionClass int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.code != "" {
		return f.code, nil
	}
	return fmt.Sprintf("STU-%s-%04d", academicYearID, f.calls), nil
}

type workflowFixture struct {
	svc        *AdmissionService
	admissions *fakeAdmissionStore
	students   *fakeStudentStore
	notifier   *fakeNotifier
	letters    *fakeLetterGenerator
	codes      *fakeCodeIssuer
}

func newWorkflowFixture(opts ...AdmissionServiceOption) *workflowFixture {
	f := &workflowFixture{
		admissions: newFakeAdmissionStore(),
		students:   &fakeStudentStore{},
		notifier:   &fakeNotifier{},
		letters:    &fakeLetterGenerator{},
		codes:      &fakeCodeIssuer{},
	}
	f.svc = NewAdmissionService(f.admissions, f.students, &fakeSequences{}, f.notifier, f.letters, f.codes, nil, nil, opts...)
	return f
}

func (f *workflowFixture) seed(t *testing.T, status models.AdmissionStatus) *models.Admission {
	t.Helper()
	guardianPhone := "9800000001"
	admission := &models.Admission{
		ID:               "adm-seed",
		TemporaryID:      "ADM-2082-0001",
		Status:           status,
		FirstNameEn:      "Sita",
		LastNameEn:       "Sharma",
		GuardianPhone:    &guardianPhone,
		ApplyingForClass: 5,
		AcademicYearID:   "2082",
		InquiryDate:      time.Now().UTC(),
	}
	require.NoError(t, f.admissions.Create(context.Background(), admission))
	return admission
}

func stringPtr(s string) *string { return &s }

func TestCreateInquiry(t *testing.T) {
	f := newWorkflowFixture()

	admission, err := f.svc.CreateInquiry(context.Background(), dto.CreateInquiryRequest{
		FirstNameEn:      "Hari",
		LastNameEn:       "Thapa",
		ApplyingForClass: 3,
		AcademicYearID:   "2082",
		GuardianPhone:    stringPtr("9811111111"),
		DOBAd:            stringPtr("2015-04-12"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.AdmissionStatusInquiry, admission.Status)
	assert.Equal(t, "ADM-2082-0001", admission.TemporaryID)
	assert.False(t, admission.InquiryDate.IsZero())
	require.NotNil(t, admission.DOBAd)
	assert.Equal(t, 2015, admission.DOBAd.Year())

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, NotifyEventInquiry, f.notifier.sent[0].event)
	assert.Equal(t, "9811111111", f.notifier.sent[0].phone)
}

func TestCreateInquiryValidation(t *testing.T) {
	f := newWorkflowFixture()

	_, err := f.svc.CreateInquiry(context.Background(), dto.CreateInquiryRequest{
		FirstNameEn:      "Hari",
		ApplyingForClass: 99,
		AcademicYearID:   "2082",
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Empty(t, f.admissions.records)
	assert.Empty(t, f.notifier.sent)
}

func TestFullLifecycleHappyPath(t *testing.T) {
	f := newWorkflowFixture()
	ctx := context.Background()

	admission, err := f.svc.CreateInquiry(ctx, dto.CreateInquiryRequest{
		FirstNameEn:      "Gita",
		LastNameEn:       "Rai",
		ApplyingForClass: 7,
		AcademicYearID:   "2082",
		GuardianPhone:    stringPtr("9800000002"),
	})
	require.NoError(t, err)
	id := admission.ID

	admission, err = f.svc.ConvertToApplication(ctx, id, dto.ApplicationRequest{ApplicationFeePaid: true})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusApplied, admission.Status)
	assert.NotNil(t, admission.ApplicationDate)

	admission, err = f.svc.ScheduleTest(ctx, id, dto.ScheduleTestRequest{TestDate: time.Now().Add(48 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusTestScheduled, admission.Status)

	admission, err = f.svc.RecordTestScore(ctx, id, dto.TestScoreRequest{Score: 72, MaxScore: 100})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusTested, admission.Status)

	admission, err = f.svc.ScheduleInterview(ctx, id, dto.ScheduleInterviewRequest{InterviewDate: time.Now().Add(96 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusInterviewScheduled, admission.Status)

	admission, err = f.svc.RecordInterview(ctx, id, dto.InterviewResultRequest{Feedback: "confident, good fit"})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusInterviewed, admission.Status)

	admission, err = f.svc.Admit(ctx, id, dto.AdmitRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusAdmitted, admission.Status)
	require.NotNil(t, admission.OfferLetterURL)
	assert.NotEmpty(t, *admission.OfferLetterURL)
	assert.NotNil(t, admission.AdmissionDate)

	result, err := f.svc.Enroll(ctx, id, dto.EnrollRequest{CurrentClassID: 7, RollNumber: 14})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusEnrolled, result.Admission.Status)
	require.NotNil(t, result.Student)
	assert.Equal(t, "STU-2082-0001", result.Student.StudentCode)
	assert.Equal(t, id, result.Student.AdmissionID)
	require.NotNil(t, result.Admission.EnrolledStudentID)
	assert.Equal(t, result.Student.ID, *result.Admission.EnrolledStudentID)

	require.Len(t, f.students.created, 1)

	events := make([]string, 0, len(f.notifier.sent))
	for _, n := range f.notifier.sent {
		events = append(events, n.event)
	}
	assert.Equal(t, []string{
		NotifyEventInquiry,
		NotifyEventApplication,
		NotifyEventTestScheduled,
		NotifyEventInterviewScheduled,
		NotifyEventAdmitted,
		NotifyEventEnrolled,
	}, events)

	stored := f.admissions.stored(id)
	assert.Equal(t, models.AdmissionStatusEnrolled, stored.Status)
}

func TestInterviewDirectlyFromApplied(t *testing.T) {
	f := newWorkflowFixture()
	admission := f.seed(t, models.AdmissionStatusApplied)

	updated, err := f.svc.ScheduleInterview(context.Background(), admission.ID,
		dto.ScheduleInterviewRequest{InterviewDate: time.Now().Add(24 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusInterviewScheduled, updated.Status)
}

func TestInvalidTransitionsLeaveRecordUnchanged(t *testing.T) {
	cases := []struct {
		name   string
		status models.AdmissionStatus
		call   func(svc *AdmissionService, id string) error
	}{
		{"convert from applied", models.AdmissionStatusApplied, func(svc *AdmissionService, id string) error {
			_, err := svc.ConvertToApplication(context.Background(), id, dto.ApplicationRequest{})
			return err
		}},
		{"schedule test from inquiry", models.AdmissionStatusInquiry, func(svc *AdmissionService, id string) error {
			_, err := svc.ScheduleTest(context.Background(), id, dto.ScheduleTestRequest{TestDate: time.Now()})
			return err
		}},
		{"record score without schedule", models.AdmissionStatusApplied, func(svc *AdmissionService, id string) error {
			_, err := svc.RecordTestScore(context.Background(), id, dto.TestScoreRequest{Score: 5, MaxScore: 10})
			return err
		}},
		{"interview from tested-scheduled", models.AdmissionStatusTestScheduled, func(svc *AdmissionService, id string) error {
			_, err := svc.ScheduleInterview(context.Background(), id, dto.ScheduleInterviewRequest{InterviewDate: time.Now()})
			return err
		}},
		{"record interview without schedule", models.AdmissionStatusTested, func(svc *AdmissionService, id string) error {
			_, err := svc.RecordInterview(context.Background(), id, dto.InterviewResultRequest{Feedback: "ok"})
			return err
		}},
		{"admit from inquiry", models.AdmissionStatusInquiry, func(svc *AdmissionService, id string) error {
			_, err := svc.Admit(context.Background(), id, dto.AdmitRequest{})
			return err
		}},
		{"enroll without admission", models.AdmissionStatusInterviewed, func(svc *AdmissionService, id string) error {
			_, err := svc.Enroll(context.Background(), id, dto.EnrollRequest{CurrentClassID: 1, RollNumber: 1})
			return err
		}},
		{"enroll twice", models.AdmissionStatusEnrolled, func(svc *AdmissionService, id string) error {
			_, err := svc.Enroll(context.Background(), id, dto.EnrollRequest{CurrentClassID: 1, RollNumber: 1})
			return err
		}},
		{"reject after enrollment", models.AdmissionStatusEnrolled, func(svc *AdmissionService, id string) error {
			_, err := svc.Reject(context.Background(), id, dto.RejectRequest{Reason: "late"})
			return err
		}},
		{"withdraw after rejection", models.AdmissionStatusRejected, func(svc *AdmissionService, id string) error {
			_, err := svc.Withdraw(context.Background(), id, dto.WithdrawRequest{Reason: "moved"})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWorkflowFixture()
			admission := f.seed(t, tc.status)

			err := tc.call(f.svc, admission.ID)
			require.Error(t, err)
			assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidTransition), "expected invalid transition, got %v", err)

			stored := f.admissions.stored(admission.ID)
			assert.Equal(t, tc.status, stored.Status)
			assert.Zero(t, f.admissions.updateCalls)
			assert.Empty(t, f.notifier.sent)
			assert.Empty(t, f.students.created)
		})
	}
}

func TestRejectFromEveryNonTerminalStatus(t *testing.T) {
	nonTerminal := []models.AdmissionStatus{
		models.AdmissionStatusInquiry,
		models.AdmissionStatusApplied,
		models.AdmissionStatusTestScheduled,
		models.AdmissionStatusTested,
		models.AdmissionStatusInterviewScheduled,
		models.AdmissionStatusInterviewed,
		models.AdmissionStatusAdmitted,
	}
	for _, status := range nonTerminal {
		t.Run(string(status), func(t *testing.T) {
			f := newWorkflowFixture()
			admission := f.seed(t, status)

			updated, err := f.svc.Reject(context.Background(), admission.ID, dto.RejectRequest{Reason: "class full"})
			require.NoError(t, err)
			assert.Equal(t, models.AdmissionStatusRejected, updated.Status)
			require.NotNil(t, updated.RejectionReason)
			assert.Equal(t, "class full", *updated.RejectionReason)
			assert.NotNil(t, updated.RejectionDate)
		})
	}
}

func TestRejectRequiresReason(t *testing.T) {
	f := newWorkflowFixture()
	admission := f.seed(t, models.AdmissionStatusApplied)

	_, err := f.svc.Reject(context.Background(), admission.ID, dto.RejectRequest{Reason: "   "})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Equal(t, models.AdmissionStatusApplied, f.admissions.stored(admission.ID).Status)
}

func TestWithdraw(t *testing.T) {
	f := newWorkflowFixture()
	admission := f.seed(t, models.AdmissionStatusTestScheduled)

	updated, err := f.svc.Withdraw(context.Background(), admission.ID, dto.WithdrawRequest{Reason: "family relocated"})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusWithdrawn, updated.Status)
	require.NotNil(t, updated.WithdrawalReason)
	assert.Equal(t, "family relocated", *updated.WithdrawalReason)
}

func TestAdmitFromConfiguredStatuses(t *testing.T) {
	for _, status := range []models.AdmissionStatus{
		models.AdmissionStatusApplied,
		models.AdmissionStatusTested,
		models.AdmissionStatusInterviewed,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newWorkflowFixture()
			admission := f.seed(t, status)

			updated, err := f.svc.Admit(context.Background(), admission.ID, dto.AdmitRequest{})
			require.NoError(t, err)
			assert.Equal(t, models.AdmissionStatusAdmitted, updated.Status)
		})
	}
}

func TestAdmitPolicyOverride(t *testing.T) {
	f := newWorkflowFixture(WithAdmitFrom([]models.AdmissionStatus{models.AdmissionStatusInterviewed}))
	admission := f.seed(t, models.AdmissionStatusApplied)

	_, err := f.svc.Admit(context.Background(), admission.ID, dto.AdmitRequest{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidTransition))
}

func TestAdmitLetterFailureAbortsTransition(t *testing.T) {
	f := newWorkflowFixture()
	f.letters.err = errors.New("renderer down")
	admission := f.seed(t, models.AdmissionStatusInterviewed)

	_, err := f.svc.Admit(context.Background(), admission.ID, dto.AdmitRequest{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrCollaborator))

	stored := f.admissions.stored(admission.ID)
	assert.Equal(t, models.AdmissionStatusInterviewed, stored.Status)
	assert.Nil(t, stored.OfferLetterURL)
	assert.Zero(t, f.admissions.updateCalls)
	assert.Empty(t, f.notifier.sent)
}

func TestEnrollCodeFailureAbortsTransition(t *testing.T) {
	f := newWorkflowFixture()
	f.codes.err = errors.New("issuer unavailable")
	admission := f.seed(t, models.AdmissionStatusAdmitted)

	_, err := f.svc.Enroll(context.Background(), admission.ID, dto.EnrollRequest{CurrentClassID: 5, RollNumber: 2})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrCollaborator))

	assert.Equal(t, models.AdmissionStatusAdmitted, f.admissions.stored(admission.ID).Status)
	assert.Empty(t, f.students.created)
	assert.Empty(t, f.notifier.sent)
}

func TestEnrollWriteConflictRemovesStudent(t *testing.T) {
	f := newWorkflowFixture()
	admission := f.seed(t, models.AdmissionStatusAdmitted)
	f.admissions.updateErr = sql.ErrNoRows

	_, err := f.svc.Enroll(context.Background(), admission.ID, dto.EnrollRequest{CurrentClassID: 5, RollNumber: 2})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrConflict))

	require.Len(t, f.students.created, 1)
	require.Len(t, f.students.deleted, 1)
	assert.Equal(t, f.students.created[0].ID, f.students.deleted[0])
	assert.Empty(t, f.notifier.sent)
}

func TestConcurrentTransitionConflict(t *testing.T) {
	f := newWorkflowFixture()
	admission := f.seed(t, models.AdmissionStatusInquiry)
	f.admissions.updateErr = sql.ErrNoRows

	_, err := f.svc.ConvertToApplication(context.Background(), admission.ID, dto.ApplicationRequest{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrConflict))
	assert.Empty(t, f.notifier.sent)
}

func TestNotFound(t *testing.T) {
	f := newWorkflowFixture()

	_, err := f.svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))

	_, err = f.svc.ScheduleTest(context.Background(), "missing", dto.ScheduleTestRequest{TestDate: time.Now()})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestContactResolutionOrder(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(a *models.Admission)
		expected string
	}{
		{"guardian first", func(a *models.Admission) {
			a.GuardianPhone = stringPtr("guardian")
			a.FatherPhone = stringPtr("father")
			a.MotherPhone = stringPtr("mother")
			a.Phone = stringPtr("self")
		}, "guardian"},
		{"father when guardian missing", func(a *models.Admission) {
			a.GuardianPhone = nil
			a.FatherPhone = stringPtr("father")
			a.Phone = stringPtr("self")
		}, "father"},
		{"mother when guardian and father missing", func(a *models.Admission) {
			a.GuardianPhone = nil
			a.MotherPhone = stringPtr("mother")
		}, "mother"},
		{"candidate phone as last resort", func(a *models.Admission) {
			a.GuardianPhone = nil
			a.Phone = stringPtr("self")
		}, "self"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWorkflowFixture()
			admission := f.seed(t, models.AdmissionStatusInquiry)
			tc.mutate(admission)
			f.admissions.records[admission.ID] = admission

			_, err := f.svc.ConvertToApplication(context.Background(), admission.ID, dto.ApplicationRequest{})
			require.NoError(t, err)
			require.Len(t, f.notifier.sent, 1)
			assert.Equal(t, tc.expected, f.notifier.sent[0].phone)
		})
	}
}

func TestNoContactNumberSkipsNotification(t *testing.T) {
	f := newWorkflowFixture()
	admission := f.seed(t, models.AdmissionStatusInquiry)
	admission.GuardianPhone = nil
	f.admissions.records[admission.ID] = admission

	updated, err := f.svc.ConvertToApplication(context.Background(), admission.ID, dto.ApplicationRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusApplied, updated.Status)
	assert.Empty(t, f.notifier.sent)
}

func TestNotificationFailureDoesNotFailTransition(t *testing.T) {
	f := newWorkflowFixture()
	f.notifier.err = errors.New("sms gateway timeout")
	admission := f.seed(t, models.AdmissionStatusInquiry)

	updated, err := f.svc.ConvertToApplication(context.Background(), admission.ID, dto.ApplicationRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionStatusApplied, updated.Status)
	assert.Equal(t, models.AdmissionStatusApplied, f.admissions.stored(admission.ID).Status)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	f := newWorkflowFixture()

	_, _, err := f.svc.List(context.Background(), models.AdmissionFilter{Status: "PENDING"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestListPaginationDefaults(t *testing.T) {
	f := newWorkflowFixture()
	f.seed(t, models.AdmissionStatusInquiry)

	_, pagination, err := f.svc.List(context.Background(), models.AdmissionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PageSize)
	assert.Equal(t, 1, pagination.TotalCount)
}

func TestStatisticsZeroFillAndSums(t *testing.T) {
	f := newWorkflowFixture()
	f.admissions.statusCounts = []models.StatusCount{
		{Status: models.AdmissionStatusInquiry, Count: 4},
		{Status: models.AdmissionStatusApplied, Count: 3},
		{Status: models.AdmissionStatusEnrolled, Count: 2},
	}
	f.admissions.classCounts = []models.ClassCount{
		{Class: 1, Count: 5},
		{Class: 7, Count: 4},
	}

	stats, err := f.svc.Statistics(context.Background(), models.StatisticsFilter{})
	require.NoError(t, err)

	assert.Equal(t, 9, stats.Total)
	assert.Len(t, stats.ByStatus, len(models.AllAdmissionStatuses))
	assert.Equal(t, 4, stats.ByStatus[models.AdmissionStatusInquiry])
	assert.Equal(t, 0, stats.ByStatus[models.AdmissionStatusRejected])
	assert.Equal(t, 0, stats.ByStatus[models.AdmissionStatusWithdrawn])

	sum := 0
	for _, count := range stats.ByStatus {
		sum += count
	}
	assert.Equal(t, stats.Total, sum)
	assert.Equal(t, 5, stats.ByClass[1])
	assert.Equal(t, 4, stats.ByClass[7])
}

func TestTemporaryIDSequencePerYear(t *testing.T) {
	f := newWorkflowFixture()
	ctx := context.Background()

	first, err := f.svc.CreateInquiry(ctx, dto.CreateInquiryRequest{
		FirstNameEn: "A", LastNameEn: "B", ApplyingForClass: 1, AcademicYearID: "2082",
	})
	require.NoError(t, err)
	second, err := f.svc.CreateInquiry(ctx, dto.CreateInquiryRequest{
		FirstNameEn: "C", LastNameEn: "D", ApplyingForClass: 1, AcademicYearID: "2082",
	})
	require.NoError(t, err)
	otherYear, err := f.svc.CreateInquiry(ctx, dto.CreateInquiryRequest{
		FirstNameEn: "E", LastNameEn: "F", ApplyingForClass: 1, AcademicYearID: "2083",
	})
	require.NoError(t, err)

	assert.Equal(t, "ADM-2082-0001", first.TemporaryID)
	assert.Equal(t, "ADM-2082-0002", second.TemporaryID)
	assert.Equal(t, "ADM-2083-0001", otherYear.TemporaryID)
}
