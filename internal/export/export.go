// Package export writes a cBioPortal study bundle: study metadata,
// patient and sample clinical attribute files, concatenated mutation
// data, and case lists. File formats follow the portal's file-formats
// documentation byte for byte.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/linyc74/cbioingest/internal/calc"
	"github.com/linyc74/cbioingest/internal/clinical"
	"github.com/linyc74/cbioingest/internal/normalize"
	"github.com/linyc74/cbioingest/internal/schema"
)

// Bundle file names.
const (
	metaStudyFile    = "meta_study.txt"
	tagsFile         = "tags.json"
	metaPatientFile  = "meta_clinical_patient.txt"
	dataPatientFile  = "data_clinical_patient.txt"
	metaSampleFile   = "meta_clinical_sample.txt"
	dataSampleFile   = "data_clinical_sample.txt"
	metaMutationFile = "meta_mutations_extended.txt"
	dataMutationFile = "data_mutations_extended.txt"
	caseListDir      = "case_lists"
)

// Exporter writes study bundles for one schema.
type Exporter struct {
	schema *schema.Schema
	engine *calc.Engine
	logger *slog.Logger
	outDir string
}

// Config holds exporter dependencies.
type Config struct {
	Schema *schema.Schema
	Engine *calc.Engine // defaults to a fresh engine for the schema
	Logger *slog.Logger // defaults to a discard logger
	OutDir string
}

// New creates an exporter.
func New(cfg Config) *Exporter {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Engine == nil {
		cfg.Engine = calc.New(calc.Config{Schema: cfg.Schema, Logger: cfg.Logger})
	}
	return &Exporter{
		schema: cfg.Schema,
		engine: cfg.Engine,
		logger: cfg.Logger,
		outDir: cfg.OutDir,
	}
}

// Run exports one study bundle. Every record is reprocessed through the
// calculation engine before identifying columns are dropped, so derived
// fields are always consistent with their inputs. tags may be nil.
func (e *Exporter) Run(study *StudyInfo, tags map[string]any, table *clinical.Table, mafDir string) error {
	if study.ID() == "" {
		return fmt.Errorf("study info is missing %q", StudyIdentifierKey)
	}

	logger := e.logger.With("run_id", uuid.New().String(), "study", study.ID())
	logger.Info("exporting study bundle", "out_dir", e.outDir, "samples", len(table.Rows))

	if err := os.MkdirAll(filepath.Join(e.outDir, caseListDir), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := e.writeStudyInfo(study, tags); err != nil {
		return err
	}

	processed := clinical.NewTable(table.Columns)
	for _, row := range table.Rows {
		out, err := e.engine.Process(row)
		if err != nil {
			return err
		}
		processed.Append(out)
	}

	patient, sample, err := normalize.Split(processed, e.schema, study.ID())
	if err != nil {
		return err
	}

	if err := e.writeClinicalData(logger, study, patient, sample); err != nil {
		return err
	}
	if err := e.writeMutationData(logger, study, sample, mafDir); err != nil {
		return err
	}
	if err := e.writeCaseLists(study, sample); err != nil {
		return err
	}

	logger.Info("study bundle complete")
	return nil
}

// writeStudyInfo writes meta_study.txt and, when tags were supplied,
// tags.json referenced from it.
func (e *Exporter) writeStudyInfo(study *StudyInfo, tags map[string]any) error {
	var text string
	for _, p := range study.Pairs {
		text += fmt.Sprintf("%s: %s\n", p.Key, p.Value)
	}
	if tags != nil {
		text += fmt.Sprintf("tags_file: %s\n", tagsFile)
	}
	if err := e.writeFile(metaStudyFile, text); err != nil {
		return err
	}

	if tags == nil {
		return nil
	}
	data, err := json.MarshalIndent(tags, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	return e.writeFile(tagsFile, string(data))
}

func (e *Exporter) writeFile(name, content string) error {
	path := filepath.Join(e.outDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
