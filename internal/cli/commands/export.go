package commands

import (
	"fmt"
	"os"

	"github.com/linyc74/cbioingest/internal/cli/config"
	"github.com/linyc74/cbioingest/internal/export"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export a cBioPortal study bundle",
		Long: `Read a clinical data table, recompute its derived fields, and write a
complete cBioPortal study bundle: study metadata, patient and sample
clinical attributes, concatenated mutation data, and case lists.

Identifying columns are dropped from the exported tables after the
derived fields have been computed.`,
		Example: `  # Export with inputs from cbioingest.yaml
  cbioingest export

  # Export a VGHTPE LUAD study
  cbioingest export --schema "VGHTPE LUAD" \
    --clinical-data clinical.csv --study-info study.yaml \
    --maf-dir maf --out-dir luad_study`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd)
		},
	}
}

func runExport(cmd *cobra.Command) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	in, err := loadStudyInputs(cfg)
	if err != nil {
		return err
	}
	if err := in.study.ValidateKeys(in.schema); err != nil {
		return err
	}

	exp := export.New(export.Config{
		Schema: in.schema,
		Logger: logger,
		OutDir: cfg.OutDir,
	})
	if err := exp.Run(in.study, in.tags, in.table, cfg.MafDir); err != nil {
		// Do not leave a partial bundle behind.
		if rmErr := os.RemoveAll(cfg.OutDir); rmErr != nil {
			logger.Warn("failed to remove partial output", "dir", cfg.OutDir, "error", rmErr)
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Study bundle written to %s\n", cfg.OutDir)
	return nil
}
