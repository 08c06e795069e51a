package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admission-api/internal/models"
	"github.com/noah-isme/school-admission-api/pkg/config"
	"github.com/noah-isme/school-admission-api/pkg/export"
)

// OfferLetterGenerator produces an admission offer letter and returns a URL
// the candidate can download it from. Generation is a synchronous prerequisite
// of the admit transition.
type OfferLetterGenerator interface {
	Generate(ctx context.Context, admission *models.Admission) (string, error)
}

type letterRenderer interface {
	Render(data export.OfferLetterData) ([]byte, error)
}

type letterStorage interface {
	Save(filename string, data []byte) (string, error)
}

type letterSigner interface {
	Generate(letterID, relPath string) (string, time.Time, error)
}

// OfferLetterService renders offer letters to PDF, stores them on disk and
// returns a signed download URL.
type OfferLetterService struct {
	renderer letterRenderer
	storage  letterStorage
	signer   letterSigner
	cfg      config.OfferLetterConfig
	logger   *zap.Logger
}

// NewOfferLetterService constructs an OfferLetterService.
func NewOfferLetterService(renderer letterRenderer, storage letterStorage, signer letterSigner, cfg config.OfferLetterConfig, logger *zap.Logger) *OfferLetterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfferLetterService{renderer: renderer, storage: storage, signer: signer, cfg: cfg, logger: logger}
}

// Generate renders and stores the offer letter for the admission.
func (s *OfferLetterService) Generate(ctx context.Context, admission *models.Admission) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := export.OfferLetterData{
		TemporaryID:      admission.TemporaryID,
		ApplicantName:    admission.FullNameEn(),
		ApplyingForClass: admission.ApplyingForClass,
		AcademicYear:     admission.AcademicYearID,
		SchoolName:       s.cfg.SchoolName,
		SchoolAddress:    s.cfg.SchoolAddress,
		IssuedAt:         time.Now(),
	}

	pdf, err := s.renderer.Render(data)
	if err != nil {
		return "", fmt.Errorf("render offer letter for %s: %w", admission.ID, err)
	}

	relPath := fmt.Sprintf("%s/%s.pdf", admission.AcademicYearID, admission.TemporaryID)
	if _, err := s.storage.Save(relPath, pdf); err != nil {
		return "", fmt.Errorf("store offer letter for %s: %w", admission.ID, err)
	}

	token, expiresAt, err := s.signer.Generate(admission.ID, relPath)
	if err != nil {
		return "", fmt.Errorf("sign offer letter url for %s: %w", admission.ID, err)
	}

	s.logger.Info("offer letter generated",
		zap.String("admission_id", admission.ID),
		zap.String("path", relPath),
		zap.Time("url_expires_at", expiresAt),
	)
	return fmt.Sprintf("%s/%s", s.cfg.BaseURL, token), nil
}
