package calc

import (
	"strings"

	"github.com/linyc74/cbioingest/internal/schema"
)

// stage derives the AJCC stage group from the TNM code. Clinical TNM is
// preferred; schemas without it fall back to pathological TNM. A code
// outside the decision table logs a warning and leaves the stage blank,
// since staging failures must not block the record.
func (e *Engine) stage(rec map[string]string) error {
	if !e.schema.Has(schema.AJCCStage) {
		return nil
	}

	source := schema.ClinicalTNM
	if !e.schema.Has(source) {
		source = schema.PathologicalTNM
	}
	if !e.schema.Has(source) {
		return nil
	}

	tnm := rec[source]
	if tnm == "" {
		rec[schema.AJCCStage] = ""
		return nil
	}

	t, n, m, ok := parseTNM(tnm)
	stage := ""
	if ok {
		stage = stageGroup(t, n, m)
	}
	if stage == "" {
		e.logger.Warn("cannot determine AJCC stage", "column", source, "value", tnm)
	}
	rec[schema.AJCCStage] = stage
	return nil
}

// parseTNM splits a code like "T4aN2bM0" into its components. X and x are
// read as 0 first, so "TXN0M0" stages like "T0N0M0".
func parseTNM(code string) (t, n, m string, ok bool) {
	code = strings.NewReplacer("X", "0", "x", "0").Replace(code)
	ti := strings.Index(code, "T")
	ni := strings.Index(code, "N")
	mi := strings.Index(code, "M")
	if ti < 0 || ni < ti || mi < ni {
		return "", "", "", false
	}
	return code[ti+1 : ni], code[ni+1 : mi], code[mi+1:], true
}

// stageGroup applies the AJCC 8th edition oral cavity decision table,
// checked from the most to the least advanced group.
func stageGroup(t, n, m string) string {
	in := func(s string, set ...string) bool {
		for _, v := range set {
			if s == v {
				return true
			}
		}
		return false
	}

	switch {
	case m == "1":
		return "Stage IVC"
	case t == "4b" && m == "0":
		return "Stage IVB"
	case in(n, "3", "3a", "3b") && m == "0":
		return "Stage IVB"
	case in(t, "1", "2", "3", "4a") && in(n, "2", "2a", "2b", "2c") && m == "0":
		return "Stage IVA"
	case t == "4a" && in(n, "0", "1") && m == "0":
		return "Stage IVA"
	case in(t, "1", "2", "3") && n == "1" && m == "0":
		return "Stage III"
	case t == "3" && n == "0" && m == "0":
		return "Stage III"
	case t == "2" && n == "0" && m == "0":
		return "Stage II"
	case t == "1" && n == "0" && m == "0":
		return "Stage I"
	case t == "is" && n == "0" && m == "0":
		return "Stage 0"
	default:
		return ""
	}
}
