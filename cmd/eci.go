// =============================================================================
// EDIWIN Order Extractor - El Corte Inglés Command
// =============================================================================
//
// COMMAND USAGE:
//   ediwin eci --pdf <path> --out <path>
//
// Extracts one row per distinct (order, model, color) tuple from an
// El Corte Inglés EDIWIN PDF, with quantities summed across duplicate
// occurrences.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/tsuspe/ediwin-parser/internal/eci"
	"github.com/tsuspe/ediwin-parser/internal/types"
)

var (
	eciPDF string
	eciOut string
)

// eciCmd represents the 'eci' command.
var eciCmd = &cobra.Command{
	Use:   "eci",
	Short: "Extract order lines from an El Corte Inglés EDIWIN PDF",
	Long: `Reads an El Corte Inglés EDIWIN PDF page by page and extracts per item
line: document type, order number, department, description (merging
two-line descriptions), model, color, gross unit price, delivery date,
delivery branch and the total units summed across duplicate
(order, model, color) occurrences.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runECI()
	},
}

func init() {
	rootCmd.AddCommand(eciCmd)

	eciCmd.Flags().StringVar(&eciPDF, "pdf", "", "Path to the El Corte Inglés EDIWIN PDF (required)")
	eciCmd.Flags().StringVar(&eciOut, "out", "", "Output file path, .xlsx or .csv (required)")
	eciCmd.MarkFlagRequired("pdf")
	eciCmd.MarkFlagRequired("out")
}

// runECI executes the ECI extraction pipeline.
func runECI() error {
	pageTexts, err := pages.ExtractPages(eciPDF)
	if err != nil {
		return fmt.Errorf("failed to extract page text: %w", err)
	}

	records := eci.Parse(pageTexts, eci.Options{})
	log.Debug().Int("pages", len(pageTexts)).Int("records", len(records)).Msg("eci document parsed")

	return writeRecords(eciOut, "eci", types.ECIColumns, eci.Rows(records))
}
