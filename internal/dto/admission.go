package dto

import "time"

// CreateInquiryRequest opens a new admission record.
type CreateInquiryRequest struct {
	FirstNameEn      string   `json:"first_name_en" validate:"required"`
	LastNameEn       string   `json:"last_name_en" validate:"required"`
	ApplyingForClass int      `json:"applying_for_class" validate:"required,min=1,max=12"`
	AcademicYearID   string   `json:"academic_year_id" validate:"required"`
	FirstNameNp      *string  `json:"first_name_np,omitempty"`
	LastNameNp       *string  `json:"last_name_np,omitempty"`
	DOBAd            *string  `json:"dob_ad,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DOBBs            *string  `json:"dob_bs,omitempty"`
	Gender           *string  `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Address          *string  `json:"address,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	GuardianName     *string  `json:"guardian_name,omitempty"`
	GuardianPhone    *string  `json:"guardian_phone,omitempty"`
	FatherName       *string  `json:"father_name,omitempty"`
	FatherPhone      *string  `json:"father_phone,omitempty"`
	MotherName       *string  `json:"mother_name,omitempty"`
	MotherPhone      *string  `json:"mother_phone,omitempty"`
}

// ApplicationRequest converts an inquiry into a formal application.
type ApplicationRequest struct {
	FatherName           *string  `json:"father_name,omitempty"`
	FatherPhone          *string  `json:"father_phone,omitempty"`
	MotherName           *string  `json:"mother_name,omitempty"`
	MotherPhone          *string  `json:"mother_phone,omitempty"`
	GuardianName         *string  `json:"guardian_name,omitempty"`
	GuardianPhone        *string  `json:"guardian_phone,omitempty"`
	Address              *string  `json:"address,omitempty"`
	DOBAd                *string  `json:"dob_ad,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DOBBs                *string  `json:"dob_bs,omitempty"`
	Gender               *string  `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	ApplicationFeePaid   bool     `json:"application_fee_paid"`
	ApplicationFeeAmount *float64 `json:"application_fee_amount,omitempty" validate:"omitempty,min=0"`
	DocumentsVerified    *bool    `json:"documents_verified,omitempty"`
}

// ScheduleTestRequest books the admission test.
type ScheduleTestRequest struct {
	TestDate time.Time `json:"test_date" validate:"required"`
}

// TestScoreRequest records the admission test outcome.
type TestScoreRequest struct {
	Score    float64 `json:"score" validate:"min=0"`
	MaxScore float64 `json:"max_score" validate:"required,gtefield=Score"`
	Remarks  *string `json:"remarks,omitempty"`
}

// ScheduleInterviewRequest books the admission interview.
type ScheduleInterviewRequest struct {
	InterviewDate   time.Time `json:"interview_date" validate:"required"`
	InterviewerName *string   `json:"interviewer_name,omitempty"`
}

// InterviewResultRequest records interview feedback.
type InterviewResultRequest struct {
	Feedback string   `json:"feedback" validate:"required"`
	Score    *float64 `json:"score,omitempty" validate:"omitempty,min=0,max=10"`
}

// AdmitRequest finalises the admission decision.
type AdmitRequest struct {
	DocumentsVerified *bool `json:"documents_verified,omitempty"`
}

// EnrollRequest turns an admitted candidate into a student.
type EnrollRequest struct {
	CurrentClassID int `json:"current_class_id" validate:"required,min=1"`
	RollNumber     int `json:"roll_number" validate:"required,min=1"`
}

// RejectRequest closes the admission with a rejection.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// WithdrawRequest closes the admission on the candidate's initiative.
type WithdrawRequest struct {
	Reason string `json:"reason" validate:"required"`
}
