package models

import "time"

// AdmissionStatus represents the stage of an admission in the enrollment pipeline.
type AdmissionStatus string

// Admission pipeline statuses.
const (
	AdmissionStatusInquiry            AdmissionStatus = "INQUIRY"
	AdmissionStatusApplied            AdmissionStatus = "APPLIED"
	AdmissionStatusTestScheduled      AdmissionStatus = "TEST_SCHEDULED"
	AdmissionStatusTested             AdmissionStatus = "TESTED"
	AdmissionStatusInterviewScheduled AdmissionStatus = "INTERVIEW_SCHEDULED"
	AdmissionStatusInterviewed        AdmissionStatus = "INTERVIEWED"
	AdmissionStatusAdmitted           AdmissionStatus = "ADMITTED"
	AdmissionStatusEnrolled           AdmissionStatus = "ENROLLED"
	AdmissionStatusRejected           AdmissionStatus = "REJECTED"
	AdmissionStatusWithdrawn          AdmissionStatus = "WITHDRAWN"
)

// AllAdmissionStatuses lists every pipeline status in workflow order.
var AllAdmissionStatuses = []AdmissionStatus{
	AdmissionStatusInquiry,
	AdmissionStatusApplied,
	AdmissionStatusTestScheduled,
	AdmissionStatusTested,
	AdmissionStatusInterviewScheduled,
	AdmissionStatusInterviewed,
	AdmissionStatusAdmitted,
	AdmissionStatusEnrolled,
	AdmissionStatusRejected,
	AdmissionStatusWithdrawn,
}

// IsTerminal reports whether no further transition is defined from the status.
func (s AdmissionStatus) IsTerminal() bool {
	switch s {
	case AdmissionStatusEnrolled, AdmissionStatusRejected, AdmissionStatusWithdrawn:
		return true
	}
	return false
}

// Valid reports whether the status is a known pipeline stage.
func (s AdmissionStatus) Valid() bool {
	for _, known := range AllAdmissionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Admission tracks a candidate's journey from first contact to enrollment or rejection.
type Admission struct {
	ID          string          `db:"id" json:"id"`
	TemporaryID string          `db:"temporary_id" json:"temporary_id"`
	Status      AdmissionStatus `db:"status" json:"status"`

	FirstNameEn string  `db:"first_name_en" json:"first_name_en"`
	LastNameEn  string  `db:"last_name_en" json:"last_name_en"`
	FirstNameNp *string `db:"first_name_np" json:"first_name_np,omitempty"`
	LastNameNp  *string `db:"last_name_np" json:"last_name_np,omitempty"`

	DOBAd   *time.Time `db:"dob_ad" json:"dob_ad,omitempty"`
	DOBBs   *string    `db:"dob_bs" json:"dob_bs,omitempty"`
	Gender  *string    `db:"gender" json:"gender,omitempty"`
	Address *string    `db:"address" json:"address,omitempty"`
	Phone   *string    `db:"phone" json:"phone,omitempty"`

	GuardianName  *string `db:"guardian_name" json:"guardian_name,omitempty"`
	GuardianPhone *string `db:"guardian_phone" json:"guardian_phone,omitempty"`
	FatherName    *string `db:"father_name" json:"father_name,omitempty"`
	FatherPhone   *string `db:"father_phone" json:"father_phone,omitempty"`
	MotherName    *string `db:"mother_name" json:"mother_name,omitempty"`
	MotherPhone   *string `db:"mother_phone" json:"mother_phone,omitempty"`

	ApplyingForClass int    `db:"applying_for_class" json:"applying_for_class"`
	AcademicYearID   string `db:"academic_year_id" json:"academic_year_id"`

	InquiryDate          time.Time  `db:"inquiry_date" json:"inquiry_date"`
	ApplicationDate      *time.Time `db:"application_date" json:"application_date,omitempty"`
	ApplicationFeePaid   bool       `db:"application_fee_paid" json:"application_fee_paid"`
	ApplicationFeeAmount *float64   `db:"application_fee_amount" json:"application_fee_amount,omitempty"`
	DocumentsVerified    bool       `db:"documents_verified" json:"documents_verified"`

	TestDate     *time.Time `db:"test_date" json:"test_date,omitempty"`
	TestScore    *float64   `db:"test_score" json:"test_score,omitempty"`
	TestMaxScore *float64   `db:"test_max_score" json:"test_max_score,omitempty"`
	TestRemarks  *string    `db:"test_remarks" json:"test_remarks,omitempty"`

	InterviewDate     *time.Time `db:"interview_date" json:"interview_date,omitempty"`
	InterviewerName   *string    `db:"interviewer_name" json:"interviewer_name,omitempty"`
	InterviewFeedback *string    `db:"interview_feedback" json:"interview_feedback,omitempty"`
	InterviewScore    *float64   `db:"interview_score" json:"interview_score,omitempty"`

	AdmissionDate  *time.Time `db:"admission_date" json:"admission_date,omitempty"`
	OfferLetterURL *string    `db:"offer_letter_url" json:"offer_letter_url,omitempty"`

	EnrollmentDate    *time.Time `db:"enrollment_date" json:"enrollment_date,omitempty"`
	EnrolledStudentID *string    `db:"enrolled_student_id" json:"enrolled_student_id,omitempty"`

	RejectionDate    *time.Time `db:"rejection_date" json:"rejection_date,omitempty"`
	RejectionReason  *string    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	WithdrawalDate   *time.Time `db:"withdrawal_date" json:"withdrawal_date,omitempty"`
	WithdrawalReason *string    `db:"withdrawal_reason" json:"withdrawal_reason,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// FullNameEn returns the candidate's English name.
func (a *Admission) FullNameEn() string {
	return a.FirstNameEn + " " + a.LastNameEn
}

// ContactPhone resolves the number notifications go to, in fixed priority
// order: guardian, father, mother, then the candidate's own phone.
// The boolean is false when no contact number is on record.
func (a *Admission) ContactPhone() (string, bool) {
	for _, candidate := range []*string{a.GuardianPhone, a.FatherPhone, a.MotherPhone, a.Phone} {
		if candidate != nil && *candidate != "" {
			return *candidate, true
		}
	}
	return "", false
}

// AdmissionFilter encapsulates allowed search parameters for listing admissions.
type AdmissionFilter struct {
	Status           AdmissionStatus
	ApplyingForClass *int
	AcademicYearID   string
	Search           string
	Page             int
	PageSize         int
	SortBy           string
	SortOrder        string
}

// StatisticsFilter narrows the statistics aggregation.
type StatisticsFilter struct {
	AcademicYearID   string
	ApplyingForClass *int
}

// AdmissionStatistics aggregates pipeline counts.
type AdmissionStatistics struct {
	Total    int                     `json:"total"`
	ByStatus map[AdmissionStatus]int `json:"by_status"`
	ByClass  map[int]int             `json:"by_class"`
}

// StatusCount is a status grouping row.
type StatusCount struct {
	Status AdmissionStatus `db:"status"`
	Count  int             `db:"count"`
}

// ClassCount is an applying-for-class grouping row.
type ClassCount struct {
	Class int `db:"applying_for_class"`
	Count int `db:"count"`
}
