package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admission-api/internal/models"
)

func TestCounterNext(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCounterRepository(db)

	mock.ExpectQuery("INSERT INTO counters").
		WithArgs("admission_ref:2082").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))

	value, err := repo.Next(context.Background(), "admission_ref:2082")
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterNextRequiresName(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewCounterRepository(db)

	_, err := repo.Next(context.Background(), "")
	require.Error(t, err)
}

func sampleStudent() *models.Student {
	return &models.Student{
		StudentCode:    "STU-2082-0001",
		FirstNameEn:    "Sita",
		LastNameEn:     "Sharma",
		AdmissionClass: 5,
		CurrentClassID: 5,
		RollNumber:     1,
		AcademicYearID: "2082",
		AdmissionID:    "adm-1",
		Active:         true,
	}
}

func TestStudentCreateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM students WHERE id = \\$1").
		WithArgs("stu-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	student := sampleStudent()
	student.ID = "stu-1"
	require.NoError(t, repo.Create(context.Background(), student))
	require.NoError(t, repo.Delete(context.Background(), "stu-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
