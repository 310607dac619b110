package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicoyogi/netlify-invoice-parser/internal/common"
)

func TestExtractEmptyUpload(t *testing.T) {
	_, err := NewExtractor().Extract(nil)
	assert.ErrorIs(t, err, common.ErrUnreadableDocument)
}

func TestExtractNotAPDF(t *testing.T) {
	_, err := NewExtractor().Extract([]byte("this is not a pdf document"))
	assert.ErrorIs(t, err, common.ErrUnreadableDocument)
}
