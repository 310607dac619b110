package extract

// HeaderField names one invoice-level attribute: its export column name, the
// pattern locating it in the full document text, and the sentinel substituted
// when the pattern never matches.
type HeaderField struct {
	Name     string
	Pattern  FieldPattern
	Sentinel string
}

// HeaderRecord maps header field names to their extracted (or sentinel)
// values. Exactly one record exists per invoice and it is never mutated after
// extraction.
type HeaderRecord map[string]string

// ExtractHeader applies every configured header field against the full
// document text, never against the bounded cost region. It cannot fail: a
// field whose pattern finds nothing resolves to its sentinel, so the returned
// record is always fully populated.
func ExtractHeader(fields []HeaderField, text string) HeaderRecord {
	rec := make(HeaderRecord, len(fields))
	for _, f := range fields {
		v, ok := f.Pattern.Locate(text)
		if !ok {
			v = f.Sentinel
		}
		rec[f.Name] = v
	}
	return rec
}
