package models

import "time"

// Student represents an admitted-and-enrolled learner. It is created exactly
// once by the admission workflow and never mutated by it afterwards.
type Student struct {
	ID          string `db:"id" json:"id"`
	StudentCode string `db:"student_code" json:"student_code"`

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
	MotherName    *string `db:"mother_name" json:"mother_name,omitempty"`

	AdmissionClass int    `db:"admission_class" json:"admission_class"`
	CurrentClassID int    `db:"current_class_id" json:"current_class_id"`
	RollNumber     int    `db:"roll_number" json:"roll_number"`
	AcademicYearID string `db:"academic_year_id" json:"academic_year_id"`
	AdmissionID    string `db:"admission_id" json:"admission_id"`

	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search         string
	CurrentClassID *int
	AcademicYearID string
	Active         *bool
	Page           int
	PageSize       int
}
