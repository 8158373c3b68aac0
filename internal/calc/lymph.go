package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linyc74/cbioingest/internal/coerce"
	"github.com/linyc74/cbioingest/internal/schema"
)

// lymphNodes aggregates "metastatic/total" lymph node counts: Level I from
// Ia+Ib, Level II from IIa+IIb, and the grand total from Levels I through
// V, falling back to the right/left counts when no level data exists.
// Hand-entered aggregates are never overwritten.
func (e *Engine) lymphNodes(rec map[string]string) error {
	if !e.schema.Has(schema.TotalLymphNode) {
		return nil
	}

	if err := e.synthesizeLevel(rec, schema.LymphNodeLevelI, schema.LymphNodeLevelIa, schema.LymphNodeLevelIb); err != nil {
		return err
	}
	if err := e.synthesizeLevel(rec, schema.LymphNodeLevelII, schema.LymphNodeLevelIIa, schema.LymphNodeLevelIIb); err != nil {
		return err
	}

	if rec[schema.TotalLymphNode] != "" {
		return nil
	}

	var m, n int
	for _, col := range []string{
		schema.LymphNodeLevelI,
		schema.LymphNodeLevelII,
		schema.LymphNodeLevelIII,
		schema.LymphNodeLevelIV,
		schema.LymphNodeLevelV,
	} {
		dm, dn, err := parseNodeCount(col, rec[col])
		if err != nil {
			return err
		}
		m += dm
		n += dn
	}

	if m+n == 0 {
		for _, col := range []string{schema.LymphNodeRight, schema.LymphNodeLeft} {
			dm, dn, err := parseNodeCount(col, rec[col])
			if err != nil {
				return err
			}
			m += dm
			n += dn
		}
	}

	rec[schema.TotalLymphNode] = fmt.Sprintf("%d/%d", m, n)
	return nil
}

// synthesizeLevel fills a blank aggregate level from its sub-levels. When
// both sub-levels are blank the aggregate is left untouched.
func (e *Engine) synthesizeLevel(rec map[string]string, agg, subA, subB string) error {
	if rec[agg] != "" {
		return nil
	}
	a, b := rec[subA], rec[subB]
	if a == "" && b == "" {
		return nil
	}

	var m, n int
	for _, pair := range []struct{ col, val string }{{subA, a}, {subB, b}} {
		dm, dn, err := parseNodeCount(pair.col, pair.val)
		if err != nil {
			return err
		}
		m += dm
		n += dn
	}
	rec[agg] = fmt.Sprintf("%d/%d", m, n)
	return nil
}

// parseNodeCount parses a "metastatic/total" pair. Blank counts as 0/0.
func parseNodeCount(col, val string) (int, int, error) {
	if val == "" {
		return 0, 0, nil
	}
	m, n, ok := strings.Cut(val, "/")
	if !ok {
		return 0, 0, &coerce.ValueError{Field: col, Text: val, Err: fmt.Errorf("expected m/n")}
	}
	mi, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, 0, &coerce.ValueError{Field: col, Text: val, Err: err}
	}
	ni, err := strconv.Atoi(strings.TrimSpace(n))
	if err != nil {
		return 0, 0, &coerce.ValueError{Field: col, Text: val, Err: err}
	}
	return mi, ni, nil
}
