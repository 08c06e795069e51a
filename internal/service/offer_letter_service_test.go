package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admission-api/internal/models"
	"github.com/noah-isme/school-admission-api/pkg/config"
	"github.com/noah-isme/school-admission-api/pkg/export"
)

type fakeRenderer struct {
	data export.OfferLetterData
	err  error
}

func (f *fakeRenderer) Render(data export.OfferLetterData) ([]byte, error) {
	f.data = data
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeLetterStorage struct {
	saved map[string][]byte
	err   error
}

func (f *fakeLetterStorage) Save(filename string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[filename] = data
	return "/tmp/" + filename, nil
}

type fakeSigner struct {
	err error
}

func (f *fakeSigner) Generate(letterID, relPath string) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return "signed-" + letterID, time.Now().Add(time.Hour), nil
}

func letterAdmission() *models.Admission {
	return &models.Admission{
		ID:               "adm-1",
		TemporaryID:      "ADM-2082-0042",
		FirstNameEn:      "Mina",
		LastNameEn:       "Gurung",
		ApplyingForClass: 6,
		AcademicYearID:   "2082",
	}
}

func TestOfferLetterGenerate(t *testing.T) {
	renderer := &fakeRenderer{}
	storage := &fakeLetterStorage{}
	cfg := config.OfferLetterConfig{
		BaseURL:    "https://school.example.com/letters",
		SchoolName: "Shree Janata Secondary School",
	}
	svc := NewOfferLetterService(renderer, storage, &fakeSigner{}, cfg, nil)

	url, err := svc.Generate(context.Background(), letterAdmission())
	require.NoError(t, err)

	assert.Equal(t, "https://school.example.com/letters/signed-adm-1", url)
	assert.Contains(t, storage.saved, "2082/ADM-2082-0042.pdf")
	assert.Equal(t, "Mina Gurung", renderer.data.ApplicantName)
	assert.Equal(t, "Shree Janata Secondary School", renderer.data.SchoolName)
}

func TestOfferLetterGenerateFailures(t *testing.T) {
	t.Run("render error", func(t *testing.T) {
		svc := NewOfferLetterService(&fakeRenderer{err: errors.New("font missing")}, &fakeLetterStorage{}, &fakeSigner{}, config.OfferLetterConfig{}, nil)
		_, err := svc.Generate(context.Background(), letterAdmission())
		require.Error(t, err)
	})

	t.Run("storage error", func(t *testing.T) {
		svc := NewOfferLetterService(&fakeRenderer{}, &fakeLetterStorage{err: errors.New("disk full")}, &fakeSigner{}, config.OfferLetterConfig{}, nil)
		_, err := svc.Generate(context.Background(), letterAdmission())
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		svc := NewOfferLetterService(&fakeRenderer{}, &fakeLetterStorage{}, &fakeSigner{}, config.OfferLetterConfig{}, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Generate(ctx, letterAdmission())
		require.Error(t, err)
	})
}

func TestStudentCodeIssue(t *testing.T) {
	svc := NewStudentCodeService(&fakeSequences{})

	first, err := svc.Issue(context.Background(), "2082", 4)
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), "2082", 9)
	require.NoError(t, err)
	other, err := svc.Issue(context.Background(), "2083", 4)
	require.NoError(t, err)

	assert.Equal(t, "STU-2082-0001", first)
	assert.Equal(t, "STU-2082-0002", second)
	assert.Equal(t, "STU-2083-0001", other)
}

func TestStudentCodeRequiresYear(t *testing.T) {
	svc := NewStudentCodeService(&fakeSequences{})
	_, err := svc.Issue(context.Background(), "", 4)
	require.Error(t, err)
}

func TestStudentCodeSequenceFailure(t *testing.T) {
	svc := NewStudentCodeService(&fakeSequences{err: errors.New("counter table locked")})
	_, err := svc.Issue(context.Background(), "2082", 4)
	require.Error(t, err)
}
