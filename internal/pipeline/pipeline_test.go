package pipeline

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicoyogi/netlify-invoice-parser/constants"
	"github.com/nicoyogi/netlify-invoice-parser/internal/common"
	"github.com/nicoyogi/netlify-invoice-parser/internal/extract"
)

// stubRecoverer stands in for the PDF text extractor.
type stubRecoverer struct {
	text string
	err  error
}

func (s stubRecoverer) Extract([]byte) (string, error) { return s.text, s.err }

// capturingHandler records every emitted log event so tests can assert on
// diagnostics without scraping console output.
type capturingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *capturingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *capturingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *capturingHandler) WithGroup(string) slog.Handler      { return h }

func (h *capturingHandler) find(msg string) (slog.Record, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.Message == msg {
			return r, true
		}
	}
	return slog.Record{}, false
}

const invoiceFixture = `Spedition Janssen B.V.
Rechnungs Nr.: 4711
Absender: PT Samudra Ekspor
Rechnungsdatum: 05-Mar-2024

Unsere Leistungen
Seefracht gem. Offerte
EUR 1.000,00
THC (Terminal Handling Charge) Rotterdam
EUR 50,00

Gesamtbetrag EUR 1.050,00
`

func newTestPipeline(text string, err error, h slog.Handler) *Pipeline {
	if h == nil {
		h = slog.NewTextHandler(io.Discard, nil)
	}
	return New(stubRecoverer{text: text, err: err}, extract.DefaultCatalog(), slog.New(h))
}

func TestProcessEndToEnd(t *testing.T) {
	p := newTestPipeline(invoiceFixture, nil, nil)

	rows, err := p.Process(context.Background(), "rechnung_4711.pdf", []byte("%PDF-"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, r := range rows {
		assert.Equal(t, "rechnung_4711.pdf", r.File)
		assert.Equal(t, "4711", r.Header[constants.ColInvoiceNumber])
		assert.Equal(t, "PT Samudra Ekspor", r.Header[constants.ColSender])
	}
	assert.Equal(t, "SFRT", rows[0].CostType)
	assert.InDelta(t, 1000.0, rows[0].Amount, 1e-9)
	assert.Equal(t, "THC", rows[1].CostType)
	assert.InDelta(t, 50.0, rows[1].Amount, 1e-9)
}

func TestProcessUnreadableDocument(t *testing.T) {
	p := newTestPipeline("", common.ErrUnreadableDocument, nil)

	_, err := p.Process(context.Background(), "broken.pdf", []byte("junk"))
	assert.ErrorIs(t, err, common.ErrUnreadableDocument)
}

func TestProcessRegionNotFound(t *testing.T) {
	text := "Rechnungs Nr.: 4711\nno services section anywhere"
	h := &capturingHandler{}
	p := newTestPipeline(text, nil, h)

	_, err := p.Process(context.Background(), "invoice.pdf", []byte("%PDF-"))
	require.ErrorIs(t, err, common.ErrCostRegionNotFound)

	// The full recovered text must be emitted for offline diagnosis.
	rec, ok := h.find("pipeline.region.not_found.text")
	require.True(t, ok)
	var logged string
	rec.Attrs(func(a slog.Attr) bool {
		if a.Key == "text" {
			logged = a.Value.String()
			return false
		}
		return true
	})
	assert.Equal(t, text, logged)
}

func TestProcessNoCostData(t *testing.T) {
	// Region bounds but contains none of the configured labels.
	text := "Unsere Leistungen\nLagergebühr EUR 10,00\nGesamtbetrag EUR 10,00"
	p := newTestPipeline(text, nil, nil)

	_, err := p.Process(context.Background(), "invoice.pdf", []byte("%PDF-"))
	assert.ErrorIs(t, err, common.ErrNoCostData)
}

func TestProcessHeaderSentinelsSurvive(t *testing.T) {
	// Header fields missing entirely; cost data present. The pipeline must
	// succeed with sentinel header values, not fail.
	text := "Unsere Leistungen\nSeefracht EUR 5,00\nGesamtbetrag EUR 5,00"
	p := newTestPipeline(text, nil, nil)

	rows, err := p.Process(context.Background(), "invoice.pdf", []byte("%PDF-"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].Header[constants.ColInvoiceNumber])
	assert.Equal(t, "0", rows[0].Header[constants.ColGrossWeightKG])
}
