package constants

import (
	"path/filepath"
	"strings"
)

// ContentTypeXLSX is the MIME type for the exported workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DefaultFilename is used when the upload carries no usable filename.
const DefaultFilename = "unknown.pdf"

// ParsedFilename derives the download name for an upload, e.g.
// "rechnung_4711.pdf" -> "parsed_rechnung_4711.xlsx".
func ParsedFilename(upload string) string {
	base := filepath.Base(upload)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "invoice"
	}
	return "parsed_" + stem + ".xlsx"
}
