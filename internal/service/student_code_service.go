package service

import (
	"context"
	"fmt"
)

// StudentCodeIssuer allocates a globally unique student code for an enrollment.
// Issuance is a synchronous prerequisite of the enroll transition.
type StudentCodeIssuer interface {
	Issue(ctx context.Context, academicYearID string, admissionClass int) (string, error)
}

type sequenceSource interface {
	Next(ctx context.Context, name string) (int, error)
}

// StudentCodeService issues student codes backed by an atomic counter,
// one sequence per academic year.
type StudentCodeService struct {
	sequences sequenceSource
}

// NewStudentCodeService constructs a StudentCodeService.
func NewStudentCodeService(sequences sequenceSource) *StudentCodeService {
	return &StudentCodeService{sequences: sequences}
}

// Issue returns the next student code for the academic year.
func (s *StudentCodeService) Issue(ctx context.Context, academicYearID string, admissionClass int) (string, error) {
	if academicYearID == "" {
		return "", fmt.Errorf("academic year required for student code")
	}
	seq, err := s.sequences.Next(ctx, "student_code:"+academicYearID)
	if err != nil {
		return "", fmt.Errorf("issue student code: %w", err)
	}
	return fmt.Sprintf("STU-%s-%04d", academicYearID, seq), nil
}
