// Package commands implements the cbioingest subcommands.
package commands

import (
	"fmt"

	"github.com/linyc74/cbioingest/internal/cli/config"
	"github.com/linyc74/cbioingest/internal/clinical"
	"github.com/linyc74/cbioingest/internal/export"
	"github.com/linyc74/cbioingest/internal/schema"
)

// studyInputs holds everything a study-level command reads from disk.
type studyInputs struct {
	schema *schema.Schema
	study  *export.StudyInfo
	tags   map[string]any
	table  *clinical.Table
}

// loadStudyInputs resolves the schema and reads the clinical table, study
// info, and optional tags named by the configuration.
func loadStudyInputs(cfg *config.Config) (*studyInputs, error) {
	s, err := schema.ByName(cfg.Schema)
	if err != nil {
		return nil, err
	}

	if cfg.ClinicalData == "" {
		return nil, fmt.Errorf("no clinical data table specified (--clinical-data)")
	}
	if cfg.StudyInfo == "" {
		return nil, fmt.Errorf("no study info file specified (--study-info)")
	}

	table, err := clinical.Read(cfg.ClinicalData, s)
	if err != nil {
		return nil, err
	}

	study, err := export.ReadStudyInfo(cfg.StudyInfo)
	if err != nil {
		return nil, err
	}

	var tags map[string]any
	if cfg.Tags != "" {
		tags, err = export.ReadTags(cfg.Tags)
		if err != nil {
			return nil, err
		}
	}

	return &studyInputs{schema: s, study: study, tags: tags, table: table}, nil
}
