// Package pdftext recovers plain text from PDF bytes.
//
// It uses ledongthuc/pdf (pure Go, no CGO): page texts are concatenated in
// reading order into one string for the downstream extractors. There is no
// OCR fallback; scanned image-only PDFs come back empty and fail later in the
// pipeline with a no-data error.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nicoyogi/netlify-invoice-parser/internal/common"
)

// Extractor implements the pipeline's text recovery stage.
type Extractor struct{}

// NewExtractor creates a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the concatenation of all page texts in page order. Invalid
// or empty documents fail with ErrUnreadableDocument.
func (e *Extractor) Extract(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty upload", common.ErrUnreadableDocument)
	}
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnreadableDocument, err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// skip unreadable pages
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(pageText)
	}
	return text.String(), nil
}
