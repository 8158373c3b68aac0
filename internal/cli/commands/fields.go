package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/linyc74/cbioingest/internal/cli/config"
	"github.com/linyc74/cbioingest/internal/schema"
	"github.com/spf13/cobra"
)

// NewFieldsCommand creates the fields command.
func NewFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [schema]",
		Short: "Show the fields of a clinical data schema",
		Long: `Display the columns of a clinical data schema: their types and whether
they are patient-level, derived by the calculation engine, or dropped
at export time. Defaults to the configured schema.`,
		Example: `  # Show the configured schema
  cbioingest fields

  # Show a specific schema
  cbioingest fields "VGHTPE LUAD"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.GetCurrentConfig().Schema
			if len(args) > 0 {
				name = args[0]
			}
			return runFields(cmd, name)
		},
	}
}

func runFields(cmd *cobra.Command, name string) error {
	s, err := schema.ByName(name)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Level", "Derived", "Dropped"})

	for _, f := range s.Fields() {
		level := "sample"
		if f.PatientLevel {
			level = "patient"
		}
		t.AppendRow(table.Row{f.Name, f.Kind.Name(), level, mark(f.Derived), mark(f.Drop)})
	}
	t.Render()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Schema: %s (%d fields)\n", s.Name, len(s.Fields()))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Available schemas: %s\n", strings.Join(schema.Names(), ", "))
	return nil
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
