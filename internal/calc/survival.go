package calc

import (
	"fmt"
	"strings"

	"github.com/linyc74/cbioingest/internal/coerce"
	"github.com/linyc74/cbioingest/internal/schema"
)

const (
	daysPerMonth = 30.0
	daysPerYear  = 365.0
)

// diagnosisAge computes age at clinical diagnosis in 365-day years.
func (e *Engine) diagnosisAge(rec map[string]string) error {
	if !e.schema.Has(schema.BirthDate) || !e.schema.Has(schema.ClinicalDiagnosisDate) {
		return nil
	}

	birth := rec[schema.BirthDate]
	diagnosis := rec[schema.ClinicalDiagnosisDate]
	if birth == "" || diagnosis == "" {
		rec[schema.ClinicalDiagnosisAge] = ""
		return nil
	}

	days, err := deltaDays(birth, diagnosis)
	if err != nil {
		return err
	}
	rec[schema.ClinicalDiagnosisAge] = coerce.FormatFloat(days / daysPerYear)
	return nil
}

// survival computes the disease-free, disease-specific, and overall
// endpoints. The baseline is the surgical excision date when one was
// entered, otherwise the initial treatment completion date.
func (e *Engine) survival(rec map[string]string) error {
	for _, name := range []string{
		schema.InitialTreatmentCompletionDate,
		schema.LastFollowUpDate,
		schema.RecurDateAfterInitialTreatment,
		schema.ExpireDate,
		schema.CauseOfDeath,
	} {
		if !e.schema.Has(name) {
			return nil
		}
	}

	alive := rec[schema.ExpireDate] == ""
	cause := rec[schema.CauseOfDeath]
	causedByCancer := strings.EqualFold(cause, "Cancer")

	if !alive {
		if err := e.checkCauseOfDeath(cause); err != nil {
			return err
		}
	}

	t0 := rec[schema.InitialTreatmentCompletionDate]
	if e.schema.Has(schema.SurgicalExcisionDate) && rec[schema.SurgicalExcisionDate] != "" {
		t0 = rec[schema.SurgicalExcisionDate]
	}

	// Disease free: recurrence ends the interval; otherwise follow-up or
	// death, counting a cancer death as progression.
	var end, status string
	switch {
	case rec[schema.RecurDateAfterInitialTreatment] != "":
		end, status = rec[schema.RecurDateAfterInitialTreatment], schema.StatusRecurredProgressed
	case alive:
		end, status = rec[schema.LastFollowUpDate], schema.StatusDiseaseFree
	case causedByCancer:
		end, status = rec[schema.ExpireDate], schema.StatusRecurredProgressed
	default:
		end, status = rec[schema.ExpireDate], schema.StatusDiseaseFree
	}
	if err := e.setEndpoint(rec, schema.DiseaseFreeMonths, schema.DiseaseFreeStatus, t0, end, status); err != nil {
		return err
	}

	// Disease specific: only a cancer death counts.
	switch {
	case alive:
		end, status = rec[schema.LastFollowUpDate], schema.StatusTumorFree
	case causedByCancer:
		end, status = rec[schema.ExpireDate], schema.StatusDeadWithTumor
	default:
		end, status = rec[schema.ExpireDate], schema.StatusTumorFree
	}
	if err := e.setEndpoint(rec, schema.DiseaseSpecificSurvivalMonths, schema.DiseaseSpecificSurvivalStatus, t0, end, status); err != nil {
		return err
	}

	// Overall: any death counts.
	if alive {
		end, status = rec[schema.LastFollowUpDate], schema.StatusLiving
	} else {
		end, status = rec[schema.ExpireDate], schema.StatusDeceased
	}
	return e.setEndpoint(rec, schema.OverallSurvivalMonths, schema.OverallSurvivalStatus, t0, end, status)
}

func (e *Engine) checkCauseOfDeath(cause string) error {
	f, ok := e.schema.Field(schema.CauseOfDeath)
	if !ok {
		return nil
	}
	for _, opt := range f.Options {
		if cause == opt {
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid cause of death", cause)
}

// setEndpoint writes one duration/status pair. A missing boundary or a
// negative interval blanks both fields; status never appears without a
// duration.
func (e *Engine) setEndpoint(rec map[string]string, monthsCol, statusCol, t0, end, status string) error {
	if t0 == "" || end == "" {
		rec[monthsCol] = ""
		rec[statusCol] = ""
		return nil
	}

	days, err := deltaDays(t0, end)
	if err != nil {
		return err
	}
	if days < 0 {
		e.logger.Warn("negative survival duration, leaving fields blank",
			"column", monthsCol, "start", t0, "end", end)
		rec[monthsCol] = ""
		rec[statusCol] = ""
		return nil
	}

	rec[monthsCol] = coerce.FormatFloat(days / daysPerMonth)
	rec[statusCol] = status
	return nil
}

func deltaDays(start, end string) (float64, error) {
	s, err := coerce.Date(start)
	if err != nil {
		return 0, fmt.Errorf("cannot parse date %q: %w", start, err)
	}
	t, err := coerce.Date(end)
	if err != nil {
		return 0, fmt.Errorf("cannot parse date %q: %w", end, err)
	}
	return t.Sub(s).Hours() / 24, nil
}
