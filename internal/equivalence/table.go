// =============================================================================
// EDIWIN Order Extractor - Equivalence Mapping Table
// =============================================================================
//
// Some Eurofiel customers keep their own canonical codes for the extracted
// fields. The mapping lives in an XLSX workbook with at least three columns:
//
//   | Column A      | Column B      | Column C      |
//   |---------------|---------------|---------------|
//   | Field group   | Source code   | Target code   |
//   | MODELO        | 3RC240/NARANJA| ABR-240-NJ    |
//   | DESTINO       | MAD01         | MADRID CENTRO |
//
// The first row is treated as headers and skipped; extra columns are
// ignored. Lookups are exact-match substitutions: unmapped codes pass
// through unchanged, and an absent table behaves as an empty one.
//
// =============================================================================

package equivalence

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Known field groups used by the Eurofiel output builder.
const (
	GroupTipo    = "TIPO"
	GroupDestino = "DESTINO"
	GroupModelo  = "MODELO"
	GroupPatron  = "PATRON"
)

// Table maps field group -> (source code -> target code).
type Table struct {
	groups map[string]map[string]string
}

// New returns an empty table (the identity transform).
func New() *Table {
	return &Table{groups: make(map[string]map[string]string)}
}

// Load reads a mapping workbook. Rows with a blank group or source are
// skipped; a workbook with fewer than three columns yields an empty table.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return New(), nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping sheet: %w", err)
	}

	table := New()
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		if len(row) < 3 {
			continue
		}
		table.Add(row[0], row[1], row[2])
	}

	return table, nil
}

// Add registers one group/source/target mapping. Blank group or source
// entries are ignored.
func (t *Table) Add(group, source, target string) {
	group = strings.TrimSpace(group)
	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)
	if group == "" || source == "" {
		return
	}
	if t.groups[group] == nil {
		t.groups[group] = make(map[string]string)
	}
	t.groups[group][source] = target
}

// Apply translates value within a field group. Empty values, unmapped codes
// and nil tables all pass through unchanged.
func (t *Table) Apply(group, value string) string {
	if t == nil || value == "" {
		return value
	}
	if target, ok := t.groups[group][value]; ok {
		return target
	}
	return value
}

// Len returns the total number of mappings across all groups.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, m := range t.groups {
		n += len(m)
	}
	return n
}
