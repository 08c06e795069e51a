package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/school-admission-api/pkg/errors"
	"github.com/noah-isme/school-admission-api/pkg/response"
)

type letterTokenParser interface {
	Parse(token string, allowExpired bool) (letterID, relPath string, expiresAt time.Time, err error)
}

type letterFileStore interface {
	Open(filename string) (*os.File, error)
}

// LetterHandler serves offer letter downloads through signed tokens.
// The token in the URL is the only credential; no session is required,
// so candidates can use the link straight from an SMS.
type LetterHandler struct {
	signer  letterTokenParser
	storage letterFileStore
	logger  *zap.Logger
}

// NewLetterHandler constructs LetterHandler.
func NewLetterHandler(signer letterTokenParser, storage letterFileStore, logger *zap.Logger) *LetterHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LetterHandler{signer: signer, storage: storage, logger: logger}
}

// Download godoc
// @Summary Download an offer letter via signed token
// @Tags Letters
// @Produce application/pdf
// @Param token path string true "Signed download token"
// @Success 200 {file} binary
// @Router /letters/{token} [get]
func (h *LetterHandler) Download(c *gin.Context) {
	token := c.Param("token")
	letterID, relPath, _, err := h.signer.Parse(token, false)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download link"))
		return
	}

	file, err := h.storage.Open(relPath)
	if err != nil {
		h.logger.Warn("offer letter file missing", zap.String("letter_id", letterID), zap.Error(err))
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "offer letter not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(relPath)))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file); err != nil {
		h.logger.Warn("offer letter stream interrupted", zap.String("letter_id", letterID), zap.Error(err))
	}
}
