package extract

import (
	"fmt"
	"regexp"
)

// CostLabel pairs the label text printed on the invoice with the short cost
// code it exports as. The compiled pattern spans non-greedily from the label
// to the first amount tagged with the currency marker.
type CostLabel struct {
	Label   string
	Code    string
	pattern FieldPattern
}

// NewCostLabel compiles a cost label entry. label is matched literally;
// currency is the marker preceding the amount token (e.g. "EUR").
func NewCostLabel(label, code, currency string) (CostLabel, error) {
	expr := regexp.QuoteMeta(label) + `.*?` + regexp.QuoteMeta(currency) + `\s+([\d.,]+)`
	p, err := CompileField(expr, false)
	if err != nil {
		return CostLabel{}, fmt.Errorf("cost label %q: %w", label, err)
	}
	return CostLabel{Label: label, Code: code, pattern: p}, nil
}

// CostLine is one extracted charge: the configured short code and the
// normalized amount.
type CostLine struct {
	Code   string
	Amount float64
}

// ExtractCostLines matches every catalog label against the bounded cost
// region, in catalog order. Output order follows the catalog, not the
// document. A label that matches with a zero amount still yields a line;
// only labels with no match at all are skipped.
func ExtractCostLines(labels []CostLabel, region string) []CostLine {
	lines := make([]CostLine, 0, len(labels))
	for _, cl := range labels {
		raw, ok := cl.pattern.Locate(region)
		if !ok {
			continue
		}
		lines = append(lines, CostLine{Code: cl.Code, Amount: ParseAmount(raw)})
	}
	return lines
}
