// Package coerce converts hand-entered clinical text into the canonical
// form each field kind requires. Records cross package boundaries as text,
// so "canonical" here means a normalized string: ISO dates, TRUE/FALSE
// booleans, plain decimal numbers.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/linyc74/cbioingest/internal/schema"
)

// ValueError reports a value that cannot be coerced to its field's kind.
type ValueError struct {
	Field string
	Text  string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("field %q: cannot parse %q: %v", e.Field, e.Text, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Canonical normalizes text according to the field's kind. Empty text is
// returned unchanged: a blank cell stays blank through every stage.
func Canonical(f schema.Field, text string) (string, error) {
	if text == "" {
		return "", nil
	}
	switch f.Kind {
	case schema.Int:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return "", &ValueError{Field: f.Name, Text: text, Err: err}
		}
		return strconv.Itoa(n), nil
	case schema.Float:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return "", &ValueError{Field: f.Name, Text: text, Err: err}
		}
		return FormatFloat(v), nil
	case schema.Date:
		t, err := Date(text)
		if err != nil {
			return "", &ValueError{Field: f.Name, Text: text, Err: err}
		}
		return FormatDate(t), nil
	case schema.DateList:
		out, err := DateList(text)
		if err != nil {
			return "", &ValueError{Field: f.Name, Text: text, Err: err}
		}
		return out, nil
	case schema.Bool:
		return FormatBool(Bool(text)), nil
	default:
		return text, nil
	}
}

// Date parses a date in any common format. Bare years and year-months
// resolve to the first day of the period.
func Date(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range []string{"2006", "2006-01"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return dateparse.ParseAny(text)
}

// FormatDate renders a date in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateList normalizes a semicolon-separated list of dates. Blank entries
// are dropped; surviving entries are joined with " ; ".
func DateList(text string) (string, error) {
	var out []string
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := Date(part)
		if err != nil {
			return "", err
		}
		out = append(out, FormatDate(t))
	}
	return strings.Join(out, " ; "), nil
}

// Bool reports whether text spells TRUE, case-insensitively. Anything
// else, including blank, is false.
func Bool(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "TRUE")
}

// FormatBool renders a boolean in the canonical TRUE/FALSE form.
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// FormatFloat renders a float the way the rest of the pipeline expects:
// shortest decimal form, with a trailing ".0" for whole numbers.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
