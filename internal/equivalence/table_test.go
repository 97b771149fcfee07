package equivalence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestApply(t *testing.T) {
	table := New()
	table.Add(GroupModelo, "3RC240/NARANJA", "ABR-240-NJ")
	table.Add(GroupDestino, "MAD01", "MADRID CENTRO")

	assert.Equal(t, "ABR-240-NJ", table.Apply(GroupModelo, "3RC240/NARANJA"))
	assert.Equal(t, "MADRID CENTRO", table.Apply(GroupDestino, "MAD01"))

	// Unmapped codes, wrong groups and empty values pass through.
	assert.Equal(t, "3RC240/NARANJA", table.Apply(GroupDestino, "3RC240/NARANJA"))
	assert.Equal(t, "OTRO", table.Apply(GroupModelo, "OTRO"))
	assert.Equal(t, "", table.Apply(GroupModelo, ""))
}

func TestApplyNilTable(t *testing.T) {
	var table *Table
	assert.Equal(t, "3RC240/NARANJA", table.Apply(GroupModelo, "3RC240/NARANJA"))
	assert.Equal(t, 0, table.Len())
}

func TestAddSkipsBlankEntries(t *testing.T) {
	table := New()
	table.Add("", "A", "B")
	table.Add(GroupTipo, "", "B")
	table.Add(GroupTipo, "  PEDIDO  ", "  ORDEN  ")

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "ORDEN", table.Apply(GroupTipo, "PEDIDO"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equivalencias.xlsx")
	writeMappingWorkbook(t, path, [][]string{
		{"GRUPO", "ORIGEN", "DESTINO"},
		{GroupModelo, "3RC240/NARANJA", "ABR-240-NJ"},
		{GroupTipo, "REEMPLAZO PEDIDO", "REEMPLAZO"},
		{"", "sin grupo", "ignorada"},
		{GroupPatron, "incompleta"},
	})

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "ABR-240-NJ", table.Apply(GroupModelo, "3RC240/NARANJA"))
	assert.Equal(t, "REEMPLAZO", table.Apply(GroupTipo, "REEMPLAZO PEDIDO"))
	// The header row is never treated as data.
	assert.Equal(t, "ORIGEN", table.Apply("GRUPO", "ORIGEN"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.xlsx"))
	assert.Error(t, err)
}

// writeMappingWorkbook builds a minimal XLSX mapping file for tests.
func writeMappingWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
}
