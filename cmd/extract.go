// =============================================================================
// EDIWIN Order Extractor - Shared Extraction Helpers
// =============================================================================
//
// Both single-document commands end the same way: render the record set and
// write it out. A zero-record result is a distinct, non-fatal outcome for
// either vendor — the command warns and still writes a header-only file, so
// downstream tooling always finds an output at the expected path.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/phuslu/log"

	"github.com/tsuspe/ediwin-parser/internal/export"
	"github.com/tsuspe/ediwin-parser/internal/pdftext"
	"github.com/tsuspe/ediwin-parser/internal/types"
)

// pages is the document page source. A package variable so tests can swap in
// a fixture-backed source.
var pages pdftext.PageSource = pdftext.Extractor{}

// writeRecords writes the final record set and reports the outcome.
func writeRecords(outPath, vendor string, columns []string, rows []types.Row) error {
	if len(rows) == 0 {
		log.Warn().
			Str("vendor", vendor).
			Str("output", outPath).
			Msg("no order lines detected; writing header-only output")
	}

	if err := export.Write(outPath, columns, rows); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info().
		Str("vendor", vendor).
		Int("rows", len(rows)).
		Str("output", outPath).
		Msg("extraction complete")
	fmt.Printf("OK: %d rows -> %s\n", len(rows), outPath)
	return nil
}
