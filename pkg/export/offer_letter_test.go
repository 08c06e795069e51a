package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfferLetterRender(t *testing.T) {
	renderer := NewOfferLetterRenderer()

	data, err := renderer.Render(OfferLetterData{
		TemporaryID:      "ADM-2081-0042",
		ApplicantName:    "Ram Sharma",
		ApplyingForClass: 1,
		AcademicYear:     "2081",
		SchoolName:       "Shree Secondary School",
		SchoolAddress:    "Kathmandu, Nepal",
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestOfferLetterRenderRequiresApplicant(t *testing.T) {
	renderer := NewOfferLetterRenderer()

	_, err := renderer.Render(OfferLetterData{TemporaryID: "ADM-2081-0042"})
	require.Error(t, err)

	_, err = renderer.Render(OfferLetterData{ApplicantName: "Ram Sharma"})
	require.Error(t, err)
}
