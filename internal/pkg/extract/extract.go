// Package extract pulls plain text out of uploaded PDF documents.
package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
	"github.com/tastapp/tast-backend/internal/pkg/logger"
)

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether data starts with the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// Text extracts the plain text of a PDF document. name is only used for
// logging. Files that are not PDFs are rejected with ErrInvalidFormat.
func Text(name string, data []byte) (string, error) {
	if !IsPDF(data) {
		return "", apperrors.NewCustomError(apperrors.ErrInvalidFormat, "file is not a PDF document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("Failed to open PDF")
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("Failed to extract PDF text")
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := buf.String()
	logger.Debug().Str("file", name).Int("chars", len(text)).Msg("Extracted PDF text")
	return text, nil
}
