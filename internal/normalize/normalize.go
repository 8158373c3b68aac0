// Package normalize turns a flat clinical table into the patient-level
// and sample-level tables that the portal format requires, removing
// identifying columns along the way.
package normalize

import (
	"fmt"

	"github.com/linyc74/cbioingest/internal/clinical"
	"github.com/linyc74/cbioingest/internal/schema"
)

// Canonical columns added during normalization. The schema's own sample
// identifier column is renamed to SampleIDColumn in the sample table.
const (
	StudyIDColumn   = "Study ID"
	PatientIDColumn = "Patient ID"
	SampleIDColumn  = "Sample ID"
)

// Split separates a clinical table into a patient table and a sample
// table. Columns flagged for removal are dropped here, after all derived
// fields have been computed. Each sample identifier doubles as the
// patient identifier, so sample ids must be unique.
func Split(table *clinical.Table, s *schema.Schema, studyID string) (patient, sample *clinical.Table, err error) {
	seen := make(map[string]bool, len(table.Rows))
	for _, id := range table.Column(s.SampleIDColumn) {
		if seen[id] {
			return nil, nil, fmt.Errorf("duplicate sample id %q", id)
		}
		seen[id] = true
	}

	dropped := make(map[string]bool)
	for _, name := range s.DropColumns() {
		dropped[name] = true
	}

	patientCols := []string{PatientIDColumn}
	sampleCols := []string{StudyIDColumn, PatientIDColumn, SampleIDColumn}
	for _, name := range table.Columns {
		if dropped[name] || name == s.SampleIDColumn {
			continue
		}
		if f, ok := s.Field(name); ok && f.PatientLevel {
			patientCols = append(patientCols, name)
		} else {
			sampleCols = append(sampleCols, name)
		}
	}

	patient = clinical.NewTable(patientCols)
	sample = clinical.NewTable(sampleCols)
	for _, row := range table.Rows {
		id := row[s.SampleIDColumn]

		prow := map[string]string{PatientIDColumn: id}
		for _, name := range patientCols[1:] {
			prow[name] = row[name]
		}
		patient.Append(prow)

		srow := map[string]string{
			StudyIDColumn:   studyID,
			PatientIDColumn: id,
			SampleIDColumn:  id,
		}
		for _, name := range sampleCols[3:] {
			srow[name] = row[name]
		}
		sample.Append(srow)
	}
	return patient, sample, nil
}
