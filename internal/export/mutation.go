package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/linyc74/cbioingest/internal/clinical"
	"github.com/linyc74/cbioingest/internal/maf"
	"github.com/linyc74/cbioingest/internal/normalize"
)

// writeMutationData concatenates one MAF per sample, in sample table
// order, into a single mutation data file. Each sample's MAF must exist
// in mafDir as "<sample id>.maf".
func (e *Exporter) writeMutationData(logger *slog.Logger, study *StudyInfo, sample *clinical.Table, mafDir string) error {
	meta := fmt.Sprintf(`cancer_study_identifier: %s
genetic_alteration_type: MUTATION_EXTENDED
stable_id: mutations
datatype: MAF
show_profile_in_analysis_tab: true
profile_description: %s
profile_name: Mutations
data_filename: %s`, study.ID(), study.Get("description"), dataMutationFile)
	if err := e.writeFile(metaMutationFile, meta); err != nil {
		return err
	}

	var records []*maf.Record
	for _, id := range sample.Column(normalize.SampleIDColumn) {
		path := filepath.Join(mafDir, id+".maf")
		logger.Debug("reading MAF", "path", path)
		recs, err := maf.ReadFile(path)
		if err != nil {
			return err
		}
		records = append(records, recs...)
	}

	f, err := os.Create(filepath.Join(e.outDir, dataMutationFile))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dataMutationFile, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(w)); err != nil {
		return fmt.Errorf("failed to write %s: %w", dataMutationFile, err)
	}
	return nil
}
