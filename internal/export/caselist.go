package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/linyc74/cbioingest/internal/clinical"
	"github.com/linyc74/cbioingest/internal/normalize"
)

// writeCaseLists writes the two case lists the portal needs to group
// samples: all samples, and samples with mutation data. Every exported
// sample has mutation data, so the lists share their membership.
func (e *Exporter) writeCaseLists(study *StudyInfo, sample *clinical.Table) error {
	ids := sample.Column(normalize.SampleIDColumn)
	joined := strings.Join(ids, "\t")
	studyID := study.ID()

	allText := fmt.Sprintf(`cancer_study_identifier: %s
stable_id: %s_all
case_list_name: All samples
case_list_description: All samples (%d samples)
case_list_category: all_cases_in_study
case_list_ids: %s`, studyID, studyID, len(ids), joined)
	if err := e.writeFile(filepath.Join(caseListDir, "cases_all.txt"), allText); err != nil {
		return err
	}

	sequencedText := fmt.Sprintf(`cancer_study_identifier: %s
stable_id: %s_sequenced
case_list_name: Samples with mutation data
case_list_description: Samples with mutation data (%d samples)
case_list_category: all_cases_with_mutation_data
case_list_ids: %s`, studyID, studyID, len(ids), joined)
	return e.writeFile(filepath.Join(caseListDir, "cases_sequenced.txt"), sequencedText)
}
