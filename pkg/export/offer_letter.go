package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// OfferLetterData carries the fields rendered into an admission offer letter.
type OfferLetterData struct {
	TemporaryID      string
	ApplicantName    string
	ApplyingForClass int
	AcademicYear     string
	SchoolName       string
	SchoolAddress    string
	IssuedAt         time.Time
}

// OfferLetterRenderer produces admission offer letters as PDF documents.
type OfferLetterRenderer struct{}

// NewOfferLetterRenderer constructs a PDF offer letter renderer.
func NewOfferLetterRenderer() *OfferLetterRenderer {
	return &OfferLetterRenderer{}
}

// Render creates the offer letter PDF for the given applicant.
func (r *OfferLetterRenderer) Render(data OfferLetterData) ([]byte, error) {
	if data.ApplicantName == "" {
		return nil, fmt.Errorf("offer letter requires an applicant name")
	}
	if data.TemporaryID == "" {
		return nil, fmt.Errorf("offer letter requires a reference number")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, strings.ToUpper(data.SchoolName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, data.SchoolAddress, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "ADMISSION OFFER LETTER", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	issued := data.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Ref: %s", data.TemporaryID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", issued.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	body := fmt.Sprintf(
		"Dear %s,\n\nWe are pleased to inform you that you have been offered admission to class %d",
		data.ApplicantName, data.ApplyingForClass,
	)
	if data.AcademicYear != "" {
		body += fmt.Sprintf(" for the academic year %s", data.AcademicYear)
	}
	body += ".\n\nPlease visit the school administration office with this letter and the required documents to complete the enrollment process.\n\nWe look forward to welcoming you."
	pdf.MultiCell(0, 6, body, "", "L", false)
	pdf.Ln(12)

	pdf.CellFormat(0, 6, "Sincerely,", "", 1, "L", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, "Admissions Office", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, data.SchoolName, "", 1, "L", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render offer letter: %w", err)
	}
	return buf.Bytes(), nil
}
