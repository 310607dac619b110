package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsedFilename(t *testing.T) {
	assert.Equal(t, "parsed_rechnung_4711.xlsx", ParsedFilename("rechnung_4711.pdf"))
	assert.Equal(t, "parsed_unknown.xlsx", ParsedFilename(DefaultFilename))
	assert.Equal(t, "parsed_doc.xlsx", ParsedFilename("uploads/doc.pdf"))
	assert.Equal(t, "parsed_invoice.xlsx", ParsedFilename(".pdf"))
}
