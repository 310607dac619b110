// Package export renders assembled invoice rows into a styled XLSX workbook.
package export

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nicoyogi/netlify-invoice-parser/constants"
	"github.com/nicoyogi/netlify-invoice-parser/internal/extract"
)

const sheetName = "InvoiceData"

// Service produces XLSX bytes for exports. All presentation is driven by
// column identity; the rows arrive already in final column order.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteXLSX returns a workbook with one sheet: a styled header row, the given
// rows flattened into the given column order, content-sized column widths, a
// right-aligned two-decimal amount column, a frozen header row and an
// auto-filter over the used range.
func (s *Service) WriteXLSX(rows []extract.Row, columns []string) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	// Track the widest cell per column for width sizing.
	widths := make([]int, len(columns))

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("write header %q: %w", col, err)
		}
		widths[i] = len(col)
	}

	for ri, r := range rows {
		for ci, col := range columns {
			v := cellValue(col, r)
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write cell %s: %w", cell, err)
			}
			if n := len(cellText(v)); n > widths[ci] {
				widths[ci] = n
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	lastRow := len(rows) + 1

	// Header: bold white on blue, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F81BD"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	// Amount column: right-aligned, two decimals with thousands grouping.
	numFmt := "#,##0.00"
	amountStyle, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("amount style: %w", err)
	}
	for i, col := range columns {
		if col != constants.ColAmount || len(rows) == 0 {
			continue
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetCellStyle(sheetName, name+"2", name+strconv.Itoa(lastRow), amountStyle); err != nil {
			return nil, fmt.Errorf("apply amount style: %w", err)
		}
	}

	for i := range columns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, name, name, float64(widths[i]+4)); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header row: %w", err)
	}
	if err := f.AutoFilter(sheetName, fmt.Sprintf("A1:%s%d", lastCol, lastRow), nil); err != nil {
		return nil, fmt.Errorf("auto filter: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// cellValue resolves a column identifier against one row. Columns that are
// not row-level fields come from the shared header record.
func cellValue(col string, r extract.Row) any {
	switch col {
	case constants.ColFile:
		return r.File
	case constants.ColCostType:
		return r.CostType
	case constants.ColAmount:
		return r.Amount
	default:
		return r.Header[col]
	}
}

func cellText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', 2, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
