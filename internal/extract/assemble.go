package extract

import (
	"github.com/nicoyogi/netlify-invoice-parser/internal/common"
)

// Row is the denormalized export unit: one cost line joined with the shared
// invoice header and the originating filename. Every row of an invoice
// carries identical header values.
type Row struct {
	File     string
	Header   HeaderRecord
	CostType string
	Amount   float64
}

// Assemble cross-joins the header record with every cost line. An invoice
// that yields zero cost lines is a hard failure, not an empty result: the
// entire product purpose is the cost breakdown, a header alone is worthless.
func Assemble(header HeaderRecord, lines []CostLine, filename string) ([]Row, error) {
	if len(lines) == 0 {
		return nil, common.ErrNoCostData
	}
	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, Row{
			File:     filename,
			Header:   header,
			CostType: l.Code,
			Amount:   l.Amount,
		})
	}
	return rows, nil
}
