package extract

import (
	"errors"
	"fmt"
	"regexp"
)

// RegionSpec bounds the services section of an invoice: the span between a
// start marker and the first end-marker candidate occurring after it.
//
// End-marker wording drifts between invoice variants ("Gesamtbetrag",
// "Gesamtkosten", "Gesamt"), so candidates are tried in configured order and
// the first one that closes a region wins.
type RegionSpec struct {
	start      string
	candidates []*regexp.Regexp
}

// NewRegionSpec compiles a region spec. startMarker is a regular expression,
// endMarkers are literal strings tried in order.
func NewRegionSpec(startMarker string, endMarkers []string) (*RegionSpec, error) {
	if len(endMarkers) == 0 {
		return nil, errors.New("region spec requires at least one end marker")
	}
	rs := &RegionSpec{start: startMarker}
	for _, end := range endMarkers {
		re, err := regexp.Compile("(?s)" + startMarker + "(.*?)" + regexp.QuoteMeta(end))
		if err != nil {
			return nil, fmt.Errorf("compile region marker %q..%q: %w", startMarker, end, err)
		}
		rs.candidates = append(rs.candidates, re)
	}
	return rs, nil
}

// Bound returns the bounded span, or absence when no end-marker candidate
// occurs after the start marker. There is deliberately no fallback to the
// rest of the document: an unbounded span would bleed the wrap-up totals into
// the cost matching.
func (r *RegionSpec) Bound(text string) (string, bool) {
	for _, re := range r.candidates {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}
