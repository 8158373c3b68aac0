package export

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/linyc74/cbioingest/internal/clinical"
)

// renameColumns maps normalized survival headers to the short attribute
// names the portal expects.
var renameColumns = map[string]string{
	"DISEASE_FREE_MONTHS":              "DF_MONTHS",
	"DISEASE_FREE_STATUS":              "DF_STATUS",
	"DISEASE_SPECIFIC_SURVIVAL_MONTHS": "DSS_MONTHS",
	"DISEASE_SPECIFIC_SURVIVAL_STATUS": "DSS_STATUS",
	"OVERALL_SURVIVAL_MONTHS":          "OS_MONTHS",
	"OVERALL_SURVIVAL_STATUS":          "OS_STATUS",
	"PROGRESSION_FREE_SURVIVAL_MONTHS": "PFS_MONTHS",
	"PROGRESSION_FREE_SURVIVAL_STATUS": "PFS_STATUS",
}

// writeClinicalData writes the patient and sample attribute files. A
// patient table reduced to its identifier column alone is skipped with a
// warning; the portal then derives patients from the sample file.
func (e *Exporter) writeClinicalData(logger *slog.Logger, study *StudyInfo, patient, sample *clinical.Table) error {
	patient = e.removeEmptyColumns(logger, patient)

	if len(patient.Columns) <= 1 {
		logger.Warn("empty patient data, skipping patient data file")
	} else {
		if err := e.writeFile(metaPatientFile, attributeMeta(study.ID(), "PATIENT_ATTRIBUTES", dataPatientFile)); err != nil {
			return err
		}
		if err := e.writeAttributeData(dataPatientFile, patient); err != nil {
			return err
		}
	}

	if err := e.writeFile(metaSampleFile, attributeMeta(study.ID(), "SAMPLE_ATTRIBUTES", dataSampleFile)); err != nil {
		return err
	}
	return e.writeAttributeData(dataSampleFile, sample)
}

func attributeMeta(studyID, datatype, dataFile string) string {
	return fmt.Sprintf(`cancer_study_identifier: %s
genetic_alteration_type: CLINICAL
datatype: %s
data_filename: %s`, studyID, datatype, dataFile)
}

// removeEmptyColumns drops columns without a single value.
func (e *Exporter) removeEmptyColumns(logger *slog.Logger, t *clinical.Table) *clinical.Table {
	var kept []string
	for _, name := range t.Columns {
		empty := true
		for _, v := range t.Column(name) {
			if v != "" {
				empty = false
				break
			}
		}
		if empty {
			logger.Info("removing empty column", "column", name)
			continue
		}
		kept = append(kept, name)
	}
	return t.Select(kept)
}

// writeAttributeData writes one clinical attribute file: two display-name
// header lines, a datatype line, a priority line (all '#'-prefixed), then
// the normalized column ids and the tab-separated rows.
func (e *Exporter) writeAttributeData(name string, t *clinical.Table) error {
	var b strings.Builder

	displayLine := "#" + strings.Join(t.Columns, "\t") + "\n"
	b.WriteString(displayLine)
	b.WriteString(displayLine)

	datatypes := make([]string, len(t.Columns))
	priorities := make([]string, len(t.Columns))
	ids := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		datatypes[i] = e.datatypeFor(col)
		priorities[i] = "1"
		ids[i] = attributeID(col)
	}
	b.WriteString("#" + strings.Join(datatypes, "\t") + "\n")
	b.WriteString("#" + strings.Join(priorities, "\t") + "\n")
	b.WriteString(strings.Join(ids, "\t") + "\n")

	row := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i, col := range t.Columns {
			v := r[col]
			if v == "" && datatypes[i] == "BOOLEAN" {
				v = "FALSE"
			}
			row[i] = v
		}
		b.WriteString(strings.Join(row, "\t") + "\n")
	}

	return e.writeFile(name, b.String())
}

// datatypeFor maps a column to its portal datatype. Columns added during
// normalization are not in the schema and default to STRING.
func (e *Exporter) datatypeFor(column string) string {
	if f, ok := e.schema.Field(column); ok {
		return f.Kind.String()
	}
	return "STRING"
}

// attributeID turns a display column name into a portal attribute id:
// upper case, separators to underscores, parentheses stripped, survival
// columns renamed to their conventional short ids.
func attributeID(column string) string {
	id := strings.ToUpper(column)
	for _, sep := range []string{" ", "-", ",", "/"} {
		id = strings.ReplaceAll(id, sep, "_")
	}
	id = strings.ReplaceAll(id, "(", "")
	id = strings.ReplaceAll(id, ")", "")
	if renamed, ok := renameColumns[id]; ok {
		return renamed
	}
	return id
}
