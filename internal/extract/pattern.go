package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldPattern is a compiled search pattern with exactly one capture group.
// All patterns match across line breaks: invoice values are frequently pushed
// onto the next line by the PDF text recovery.
type FieldPattern struct {
	expr string
	re   *regexp.Regexp
}

// CompileField compiles expr into a FieldPattern. The pattern must contain
// exactly one capture group.
func CompileField(expr string, caseInsensitive bool) (FieldPattern, error) {
	prefix := "(?s)"
	if caseInsensitive {
		prefix = "(?is)"
	}
	re, err := regexp.Compile(prefix + expr)
	if err != nil {
		return FieldPattern{}, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	if n := re.NumSubexp(); n != 1 {
		return FieldPattern{}, fmt.Errorf("pattern %q must have exactly one capture group, has %d", expr, n)
	}
	return FieldPattern{expr: expr, re: re}, nil
}

// MustCompileField is CompileField for statically known patterns.
func MustCompileField(expr string, caseInsensitive bool) FieldPattern {
	p, err := CompileField(expr, caseInsensitive)
	if err != nil {
		panic(err)
	}
	return p
}

// Locate runs a single first-match search over text and returns the trimmed
// content of the capture group. Absence is a normal outcome, signaled via the
// bool, never via an error: most optional invoice fields are missing.
func (p FieldPattern) Locate(text string) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// String returns the original pattern source, without injected flags.
func (p FieldPattern) String() string { return p.expr }
