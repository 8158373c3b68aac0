package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/linyc74/cbioingest/internal/cli/config"
	"github.com/linyc74/cbioingest/internal/clinical"
	"github.com/linyc74/cbioingest/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeClinicalTable(t *testing.T, path string, s *schema.Schema, rows ...map[string]string) {
	t.Helper()
	table := clinical.NewTable(s.Columns())
	for _, row := range rows {
		table.Append(row)
	}
	require.NoError(t, clinical.Write(path, table))
}

func writeMAF(t *testing.T, dir, sampleID string) {
	t.Helper()
	header := "Hugo_Symbol\tNCBI_Build\tChromosome\tVariant_Classification\t" +
		"Reference_Allele\tTumor_Seq_Allele2\tTumor_Sample_Barcode\tHGVSp_Short"
	content := "#version 2.4\n" + header + "\n" +
		"TP53\tGRCh38\tchr17\tMissense_Mutation\tC\tT\tx\tp.R175H\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, sampleID+".maf"), []byte(content), 0644))
}

func writeStudyYAML(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`type_of_cancer: hnsc
cancer_study_identifier: hnsc_vghtpe_2024
name: Test Study
description: WES
`), 0644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cbioingest v"+Version)
}

func TestFieldsCommand(t *testing.T) {
	out, err := executeCommand(t, "fields", "VGHTPE LUAD")
	require.NoError(t, err)
	assert.Contains(t, out, "Serial No")
	assert.Contains(t, out, "Schema: VGHTPE LUAD")
	assert.Contains(t, out, "Available schemas: NYCU OSCC, VGHTPE HNSCC, VGHTPE LUAD")
}

func TestFieldsCommandUnknownSchema(t *testing.T) {
	_, err := executeCommand(t, "fields", "no such schema")
	assert.Error(t, err)
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clinical.csv")
	writeClinicalTable(t, input, schema.VghtpeLuad, map[string]string{
		"Serial No":     "C0001",
		"Gender":        "F",
		"Last f/u date": "2020/1/5",
	})
	output := filepath.Join(dir, "processed.csv")

	out, err := executeCommand(t, "process",
		"--schema", "VGHTPE LUAD",
		"--clinical-data", input,
		"--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 1 records")

	processed, err := clinical.Read(output, schema.VghtpeLuad)
	require.NoError(t, err)
	require.Len(t, processed.Rows, 1)
	assert.Equal(t, "2020-01-05", processed.Rows[0]["Last f/u date"])
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clinical.csv")
	writeClinicalTable(t, input, schema.VghtpeHnscc,
		map[string]string{"Study_num": "H0001", "T": "2", "N": "0", "M": "0"})
	study := writeStudyYAML(t, dir)
	mafDir := filepath.Join(dir, "maf")
	require.NoError(t, os.MkdirAll(mafDir, 0755))
	writeMAF(t, mafDir, "H0001")
	outDir := filepath.Join(dir, "bundle")

	out, err := executeCommand(t, "export",
		"--schema", "VGHTPE HNSCC",
		"--clinical-data", input,
		"--study-info", study,
		"--maf-dir", mafDir,
		"--out-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Study bundle written to "+outDir)

	assert.FileExists(t, filepath.Join(outDir, "meta_study.txt"))
	assert.FileExists(t, filepath.Join(outDir, "data_clinical_sample.txt"))
	assert.FileExists(t, filepath.Join(outDir, "data_mutations_extended.txt"))
	assert.FileExists(t, filepath.Join(outDir, "case_lists", "cases_all.txt"))
}

func TestExportCommandRemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clinical.csv")
	writeClinicalTable(t, input, schema.VghtpeHnscc,
		map[string]string{"Study_num": "H0001"})
	study := writeStudyYAML(t, dir)
	mafDir := filepath.Join(dir, "maf") // no MAF for H0001
	require.NoError(t, os.MkdirAll(mafDir, 0755))
	outDir := filepath.Join(dir, "bundle")

	_, err := executeCommand(t, "export",
		"--schema", "VGHTPE HNSCC",
		"--clinical-data", input,
		"--study-info", study,
		"--maf-dir", mafDir,
		"--out-dir", outDir)
	require.Error(t, err)
	assert.NoDirExists(t, outDir)
}

func TestExportCommandRequiresClinicalData(t *testing.T) {
	_, err := executeCommand(t, "export", "--schema", "VGHTPE HNSCC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clinical-data")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clinical.csv")
	writeClinicalTable(t, input, schema.VghtpeHnscc,
		map[string]string{"Study_num": "H0001"},
		map[string]string{"Study_num": "H0002"})
	study := writeStudyYAML(t, dir)
	mafDir := filepath.Join(dir, "maf")
	require.NoError(t, os.MkdirAll(mafDir, 0755))
	writeMAF(t, mafDir, "H0001")
	writeMAF(t, mafDir, "H0002")

	out, err := executeCommand(t, "validate",
		"--schema", "VGHTPE HNSCC",
		"--clinical-data", input,
		"--study-info", study,
		"--maf-dir", mafDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Validation passed: 2 samples, study hnsc_vghtpe_2024")
}

func TestValidateCommandMissingMAF(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clinical.csv")
	writeClinicalTable(t, input, schema.VghtpeHnscc,
		map[string]string{"Study_num": "H0001"})
	study := writeStudyYAML(t, dir)
	mafDir := filepath.Join(dir, "maf")
	require.NoError(t, os.MkdirAll(mafDir, 0755))

	_, err := executeCommand(t, "validate",
		"--schema", "VGHTPE HNSCC",
		"--clinical-data", input,
		"--study-info", study,
		"--maf-dir", mafDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no MAF file")
}

func TestGetConfigFallback(t *testing.T) {
	cfg := GetConfig(context.Background())
	assert.Equal(t, config.DefaultSchema, cfg.Schema)
}
