// Package clinical reads and writes tabular clinical data. Values stay as
// text; typing is the schema's concern.
package clinical

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/linyc74/cbioingest/internal/schema"
)

// Table is an ordered set of columns with one row per sample.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row. Keys outside the table's columns are ignored at
// write time.
func (t *Table) Append(row map[string]string) {
	t.Rows = append(t.Rows, row)
}

// Column returns the values of one column in row order.
func (t *Table) Column(name string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out
}

// Select returns a new table restricted to the given columns, sharing the
// underlying rows.
func (t *Table) Select(columns []string) *Table {
	out := &Table{Columns: columns, Rows: t.Rows}
	return out
}

// delimiterFor picks the field delimiter from the file extension:
// tab-separated for .tsv and .txt, comma otherwise.
func delimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		return '\t'
	default:
		return ','
	}
}

// Read loads a delimited file and validates it against the schema. Every
// schema column must be present in the file header; extra file columns
// are dropped and the result follows schema column order.
func Read(path string, s *schema.Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open clinical table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiterFor(path)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	header := records[0]
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	for _, name := range s.Columns() {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("column %q not found in %q", name, path)
		}
	}

	table := NewTable(s.Columns())
	for _, fields := range records[1:] {
		row := make(map[string]string, len(table.Columns))
		for _, name := range table.Columns {
			i := colIndex[name]
			if i < len(fields) {
				row[name] = fields[i]
			}
		}
		table.Append(row)
	}
	return table, nil
}

// Write saves the table as a delimited file, delimiter chosen from the
// extension.
func Write(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delimiterFor(path)

	if err := w.Write(t.Columns); err != nil {
		return err
	}
	row := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i, name := range t.Columns {
			row[i] = r[name]
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
