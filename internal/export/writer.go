// =============================================================================
// EDIWIN Order Extractor - Record Export
// =============================================================================
//
// This module writes the final record set to disk. Two formats are
// supported, chosen by output extension:
//   - .xlsx / .xls : one styled worksheet ("Pedidos") via excelize
//   - anything else: plain UTF-8 CSV
//
// An empty record set still produces a file containing the header row only;
// callers decide whether to warn. Writes are atomic: content is staged in a
// temporary file next to the target and renamed into place.
//
// =============================================================================

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsuspe/ediwin-parser/internal/types"
	"github.com/tsuspe/ediwin-parser/pkg/utils"
)

// SheetName is the single worksheet holding the records.
const SheetName = "Pedidos"

// Write renders rows under the given column order and writes them to path,
// picking the format from the extension.
func Write(path string, columns []string, rows []types.Row) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return WriteXLSX(path, columns, rows)
	default:
		return WriteCSV(path, columns, rows)
	}
}

// =============================================================================
// XLSX
// =============================================================================

// WriteXLSX writes the records as a styled workbook: bold white-on-blue
// header row with thin borders, one data row per record.
func WriteXLSX(path string, columns []string, rows []types.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	if err := styleHeader(f, len(columns)); err != nil {
		return err
	}

	for r, row := range rows {
		for c, name := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, row[name]); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to render workbook: %w", err)
	}
	return utils.WriteFileAtomic(path, buf.Bytes())
}

// styleHeader applies the header-row style across the first row.
func styleHeader(f *excelize.File, columnCount int) error {
	if columnCount == 0 {
		return nil
	}

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Border: thin,
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(columnCount, 1)
	if err != nil {
		return fmt.Errorf("failed to address header range: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}
	return nil
}

// =============================================================================
// CSV
// =============================================================================

// WriteCSV writes the records as plain UTF-8 CSV with a header row.
func WriteCSV(path string, columns []string, rows []types.Row) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, name := range columns {
			record[i] = row[name]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return utils.WriteFileAtomic(path, buf.Bytes())
}
