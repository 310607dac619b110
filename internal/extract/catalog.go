package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nicoyogi/netlify-invoice-parser/constants"
)

// Catalog is the compiled extraction vocabulary for one invoice variant:
// header field patterns, the ordered cost-label map, and the region markers.
// It is built once at startup and read-only afterwards.
type Catalog struct {
	HeaderFields []HeaderField
	CostLabels   []CostLabel
	Region       *RegionSpec
}

// catalogDoc is the external JSON shape, kept apart from the compiled form so
// new invoice variants can be configured without touching pipeline logic.
type catalogDoc struct {
	CurrencyMarker string           `json:"currency_marker"`
	StartMarker    string           `json:"start_marker"`
	EndMarkers     []string         `json:"end_markers"`
	HeaderFields   []headerFieldDoc `json:"header_fields"`
	CostLabels     []costLabelDoc   `json:"cost_labels"`
}

type headerFieldDoc struct {
	Name     string `json:"name"`
	Pattern  string `json:"pattern"`
	Sentinel string `json:"sentinel"`
}

type costLabelDoc struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// defaultCatalogDoc mirrors the freight-forwarder vocabulary the product was
// built against. The end markers list the most recent wording first; the
// older variants stay as fallbacks because the "right" marker turned out to
// be document-variant-dependent.
var defaultCatalogDoc = catalogDoc{
	CurrencyMarker: "EUR",
	StartMarker:    `Unsere Leistungen`,
	EndMarkers:     []string{"Gesamtbetrag", "Gesamtkosten", "Gesamt"},
	HeaderFields: []headerFieldDoc{
		{Name: constants.ColInvoiceNumber, Pattern: `Rechnungs Nr\.:\s*(\d+)`, Sentinel: "N/A"},
		{Name: constants.ColSender, Pattern: `Absender:\s*([^\n]+)`, Sentinel: "N/A"},
		{Name: constants.ColETDETA, Pattern: `ETD/ETA:\s*([^\n]+)`, Sentinel: "N/A"},
		{Name: constants.ColPortLoading, Pattern: `Port of Loading:\s*([^\n]+)`, Sentinel: "N/A"},
		{Name: constants.ColPortDischarge, Pattern: `Port of Discharge:\s*([^\n]+)`, Sentinel: "N/A"},
		{Name: constants.ColInvoiceDate, Pattern: `Rechnungsdatum:\s*(\d{2}-[A-Za-z]{3}-\d{4})`, Sentinel: "N/A"},
		{Name: constants.ColSTTNumber, Pattern: `STT Nr\.:\s*(\d+)`, Sentinel: "N/A"},
		{Name: constants.ColGrossWeightKG, Pattern: `Bruttogewicht\s*([\d.,]+)\s*KGS`, Sentinel: "0"},
		{Name: constants.ColVolumeCBM, Pattern: `Volumen\s*([\d.,]+)\s*CBM`, Sentinel: "0"},
	},
	CostLabels: []costLabelDoc{
		{Label: "Summarische Eingangsmeldung", Code: "ENS"},
		{Label: "Seefracht", Code: "SFRT"},
		{Label: "THC (Terminal Handling Charge)", Code: "THC"},
		{Label: "Abfertigungskosten im", Code: "CCDE"},
		{Label: "ISPS (Hafen & Terminal", Code: "ISPS"},
		{Label: "Nachlaufkosten", Code: "NL"},
		{Label: "Delivery-/Drop-Off-Gebühr", Code: "DROP"},
		{Label: "Importverzollung in NL", Code: "Zoll"},
	},
}

// DefaultCatalog compiles the built-in vocabulary.
func DefaultCatalog() *Catalog {
	c, err := defaultCatalogDoc.compile()
	if err != nil {
		// The built-in document is static; a compile failure is a programming
		// error, not an input error.
		panic(err)
	}
	return c
}

// LoadCatalog reads a JSON catalog from path, validates it against the
// catalog schema and compiles it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := validateCatalogJSON(data); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	var doc catalogDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	c, err := doc.compile()
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func (d catalogDoc) compile() (*Catalog, error) {
	region, err := NewRegionSpec(d.StartMarker, d.EndMarkers)
	if err != nil {
		return nil, err
	}

	fields := make([]HeaderField, 0, len(d.HeaderFields))
	for _, f := range d.HeaderFields {
		p, err := CompileField(f.Pattern, false)
		if err != nil {
			return nil, fmt.Errorf("header field %q: %w", f.Name, err)
		}
		fields = append(fields, HeaderField{Name: f.Name, Pattern: p, Sentinel: f.Sentinel})
	}

	labels := make([]CostLabel, 0, len(d.CostLabels))
	seen := make(map[string]struct{}, len(d.CostLabels))
	for _, cl := range d.CostLabels {
		if _, dup := seen[cl.Code]; dup {
			return nil, fmt.Errorf("duplicate cost code %q", cl.Code)
		}
		seen[cl.Code] = struct{}{}
		compiled, err := NewCostLabel(cl.Label, cl.Code, d.CurrencyMarker)
		if err != nil {
			return nil, err
		}
		labels = append(labels, compiled)
	}

	return &Catalog{HeaderFields: fields, CostLabels: labels, Region: region}, nil
}
