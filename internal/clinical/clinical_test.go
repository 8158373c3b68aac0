package clinical

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linyc74/cbioingest/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	s := schema.VghtpeHnscc
	header := "Study_num,T,N,M,stage,recurrence,pathological_diagnosis_date,ENE,PNI,LVI,T Emboli,WPOI,Extra"
	path := writeFile(t, "data.csv", header+"\n"+
		"H0001,2,0,0,II,0,2020-01-01,0,0,0,0,1,ignored\n"+
		"H0002,4a,1,0,IVA,1,2020-02-02,1,1,0,0,0,ignored\n")

	table, err := Read(path, s)
	require.NoError(t, err)

	assert.Equal(t, s.Columns(), table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "H0001", table.Rows[0]["Study_num"])
	assert.Equal(t, "4a", table.Rows[1]["T"])
	assert.NotContains(t, table.Rows[0], "Extra")
	assert.Equal(t, []string{"H0001", "H0002"}, table.Column("Study_num"))
}

func TestReadTSV(t *testing.T) {
	s := schema.VghtpeHnscc
	header := "Study_num\tT\tN\tM\tstage\trecurrence\tpathological_diagnosis_date\tENE\tPNI\tLVI\tT Emboli\tWPOI"
	path := writeFile(t, "data.tsv", header+"\nH0001\t2\t0\t0\tII\t0\t2020-01-01\t0\t0\t0\t0\t1\n")

	table, err := Read(path, s)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "II", table.Rows[0]["stage"])
}

func TestReadMissingColumn(t *testing.T) {
	path := writeFile(t, "data.csv", "Study_num,T\nH0001,2\n")
	_, err := Read(path, schema.VghtpeHnscc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "N" not found`)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"), schema.VghtpeHnscc)
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	s := schema.VghtpeHnscc
	table := NewTable(s.Columns())
	table.Append(map[string]string{"Study_num": "H0001", "T": "2", "N": "0", "M": "0"})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, table))

	back, err := Read(path, s)
	require.NoError(t, err)
	require.Len(t, back.Rows, 1)
	assert.Equal(t, "H0001", back.Rows[0]["Study_num"])
	assert.Equal(t, "2", back.Rows[0]["T"])
	assert.Equal(t, "", back.Rows[0]["WPOI"])
}

func TestSelect(t *testing.T) {
	table := NewTable([]string{"a", "b", "c"})
	table.Append(map[string]string{"a": "1", "b": "2", "c": "3"})

	sub := table.Select([]string{"c", "a"})
	assert.Equal(t, []string{"c", "a"}, sub.Columns)
	assert.Equal(t, []string{"3"}, sub.Column("c"))
}
