package dataset

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

// ColumnFilter selects column fields by glob pattern.
type ColumnFilter struct {
	patterns []string
	globs    []glob.Glob
}

// NewColumnFilter compiles patterns. No patterns matches every field.
func NewColumnFilter(patterns []string) (*ColumnFilter, error) {
	f := &ColumnFilter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewValidationError("invalid column pattern").
				WithField("columns").WithValue(p).WithCause(err)
		}
		f.patterns = append(f.patterns, p)
		f.globs = append(f.globs, g)
	}
	return f, nil
}

// Match reports whether field is selected.
func (f *ColumnFilter) Match(field string) bool {
	if len(f.globs) == 0 {
		return true
	}
	for _, g := range f.globs {
		if g.Match(field) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled patterns.
func (f *ColumnFilter) Patterns() []string {
	return append([]string(nil), f.patterns...)
}

// SplitPatterns splits a comma-separated flag value into patterns. Commas
// inside braces belong to the pattern: "id,{first,last}_name" yields
// "id" and "{first,last}_name".
func SplitPatterns(s string) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = appendPattern(out, s[start:i])
				start = i + 1
			}
		}
	}
	return appendPattern(out, s[start:])
}

func appendPattern(out []string, p string) []string {
	if p = strings.TrimSpace(p); p != "" {
		out = append(out, p)
	}
	return out
}
