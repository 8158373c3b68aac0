package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/linyc74/cbioingest/internal/calc"
	"github.com/linyc74/cbioingest/internal/cli/config"
	"github.com/linyc74/cbioingest/internal/normalize"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate study inputs without writing anything",
		Long: `Check that a study is ready to export: the clinical data table matches
the schema, every record passes the calculation engine, sample ids are
unique, the study info keys are known, and every sample has a MAF file
in the MAF directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd)
		},
	}
}

func runValidate(cmd *cobra.Command) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	in, err := loadStudyInputs(cfg)
	if err != nil {
		return err
	}
	if err := in.study.ValidateKeys(in.schema); err != nil {
		return err
	}

	engine := calc.New(calc.Config{Schema: in.schema, Logger: logger})
	seen := make(map[string]bool, len(in.table.Rows))
	var missing []string
	for _, row := range in.table.Rows {
		if _, err := engine.Process(row); err != nil {
			return err
		}

		id := row[in.schema.SampleIDColumn]
		if seen[id] {
			return fmt.Errorf("duplicate %s %q", normalize.SampleIDColumn, id)
		}
		seen[id] = true

		mafPath := filepath.Join(cfg.MafDir, id+".maf")
		if _, err := os.Stat(mafPath); err != nil {
			missing = append(missing, mafPath)
		}
	}

	if len(missing) > 0 {
		for _, path := range missing {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "missing MAF: %s\n", path)
		}
		return fmt.Errorf("%d of %d samples have no MAF file", len(missing), len(in.table.Rows))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %d samples, study %s\n",
		len(in.table.Rows), in.study.ID())
	return nil
}
