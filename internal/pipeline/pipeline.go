// Package pipeline orchestrates the per-document extraction state machine:
// text recovery, header extraction, region bounding, cost-line matching and
// row assembly. Each invocation is independent; the pipeline holds no state
// across documents and never retries internally.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nicoyogi/netlify-invoice-parser/constants"
	"github.com/nicoyogi/netlify-invoice-parser/internal/common"
	"github.com/nicoyogi/netlify-invoice-parser/internal/extract"
)

// TextRecoverer turns raw document bytes into plain text in reading order.
type TextRecoverer interface {
	Extract(content []byte) (string, error)
}

// Pipeline wires the extraction stages together. The logger is an injected
// capability, not a global side channel, so tests can assert on emitted
// diagnostic events.
type Pipeline struct {
	recoverer TextRecoverer
	catalog   *extract.Catalog
	logger    *slog.Logger
}

// New creates a pipeline. A nil logger falls back to slog.Default().
func New(recoverer TextRecoverer, catalog *extract.Catalog, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{recoverer: recoverer, catalog: catalog, logger: logger}
}

// Process runs the full extraction for one uploaded document and returns the
// denormalized row set. Exactly three failures can escape: an unreadable
// document, a cost region that never bounded, and a region with zero label
// matches. Everything below that degrades to placeholder values inside the
// extractors.
func (p *Pipeline) Process(ctx context.Context, filename string, content []byte) ([]extract.Row, error) {
	start := time.Now()
	log := p.logger.With("job_id", uuid.New().String(), "file", filename)
	log.Info("pipeline.start", "bytes", len(content))

	text, err := p.recoverer.Extract(content)
	if err != nil {
		log.Warn("pipeline.text.failed", "error", err)
		return nil, err
	}
	log.Info("pipeline.text.ok", "chars", len(text))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	header := extract.ExtractHeader(p.catalog.HeaderFields, text)

	region, ok := p.catalog.Region.Bound(text)
	if !ok {
		// The full recovered text is the one artifact that lets us diagnose a
		// marker mismatch offline, so emit it wholesale.
		log.Warn("pipeline.region.not_found", "chars", len(text))
		log.Debug("pipeline.region.not_found.text", "text", text)
		return nil, common.ErrCostRegionNotFound
	}
	log.Info("pipeline.region.ok", "chars", len(region))

	lines := extract.ExtractCostLines(p.catalog.CostLabels, region)
	log.Info("pipeline.lines.extracted", "count", len(lines))

	rows, err := extract.Assemble(header, lines, filename)
	if err != nil {
		log.Warn("pipeline.no_cost_data")
		return nil, err
	}

	log.Info("pipeline.ok",
		"rows", len(rows),
		"invoice_number", header[constants.ColInvoiceNumber],
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}
