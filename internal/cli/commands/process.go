package commands

import (
	"fmt"

	"github.com/linyc74/cbioingest/internal/calc"
	"github.com/linyc74/cbioingest/internal/cli/config"
	"github.com/linyc74/cbioingest/internal/clinical"
	"github.com/linyc74/cbioingest/internal/schema"
	"github.com/spf13/cobra"
)

// ProcessOptions holds options for the process command.
type ProcessOptions struct {
	Output string
}

// NewProcessCommand creates the process command.
func NewProcessCommand() *cobra.Command {
	opts := &ProcessOptions{}

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Recompute derived fields in a clinical data table",
		Long: `Run every record of a clinical data table through the calculation
engine and write the result back. Survival endpoints, diagnosis age,
ICD codes, lymph node totals, AJCC stages, and therapy flags are
recomputed from their source columns; values are canonicalized.

Processing is idempotent, so a table can be reprocessed after every
round of data entry.`,
		Example: `  # Rewrite the table in place
  cbioingest process --clinical-data clinical.csv

  # Write the processed table elsewhere
  cbioingest process --clinical-data clinical.csv --output processed.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output path (default: overwrite the input table)")

	return cmd
}

func runProcess(cmd *cobra.Command, opts *ProcessOptions) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	s, err := schema.ByName(cfg.Schema)
	if err != nil {
		return err
	}
	if cfg.ClinicalData == "" {
		return fmt.Errorf("no clinical data table specified (--clinical-data)")
	}

	table, err := clinical.Read(cfg.ClinicalData, s)
	if err != nil {
		return err
	}

	engine := calc.New(calc.Config{Schema: s, Logger: logger})
	processed := clinical.NewTable(table.Columns)
	for _, row := range table.Rows {
		out, err := engine.Process(row)
		if err != nil {
			return err
		}
		processed.Append(out)
	}

	output := opts.Output
	if output == "" {
		output = cfg.ClinicalData
	}
	if err := clinical.Write(output, processed); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Processed %d records into %s\n", len(processed.Rows), output)
	return nil
}
