// =============================================================================
// EDIWIN Order Extractor - Eurofiel Command
// =============================================================================
//
// COMMAND USAGE:
//   ediwin eurofiel --pdf <path> --out <path> [--map <path>]
//
// Extracts one summary row per order from a Eurofiel EDIWIN PDF. Without
// --map the plain summary column set is written. With --map the equivalence
// workbook is applied (TIPO, DESTINO, MODELO, PATRON groups) and the output
// switches to the extended column set with per-order unit and amount totals.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/tsuspe/ediwin-parser/internal/equivalence"
	"github.com/tsuspe/ediwin-parser/internal/eurofiel"
	"github.com/tsuspe/ediwin-parser/internal/types"
)

var (
	eurofielPDF string
	eurofielOut string
	eurofielMap string
)

// eurofielCmd represents the 'eurofiel' command.
var eurofielCmd = &cobra.Command{
	Use:   "eurofiel",
	Short: "Extract an order summary from a Eurofiel EDIWIN PDF",
	Long: `Reads a Eurofiel EDIWIN PDF, segments it into one chunk per order-number
marker, and extracts per order: document type, order number, delivery date,
country, description, the first detail line's model/pattern/net price, and
the header-level total-unit count.

With --map, a three-column equivalence workbook (group, source code, target
code) translates extracted codes and the output gains the order date, the
destination and per-order totals across all detail lines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEurofiel()
	},
}

func init() {
	rootCmd.AddCommand(eurofielCmd)

	eurofielCmd.Flags().StringVar(&eurofielPDF, "pdf", "", "Path to the Eurofiel EDIWIN PDF (required)")
	eurofielCmd.Flags().StringVar(&eurofielOut, "out", "", "Output file path, .xlsx or .csv (required)")
	eurofielCmd.Flags().StringVar(&eurofielMap, "map", "", "Equivalence mapping workbook (optional)")
	eurofielCmd.MarkFlagRequired("pdf")
	eurofielCmd.MarkFlagRequired("out")
}

// runEurofiel executes the Eurofiel extraction pipeline.
func runEurofiel() error {
	pageTexts, err := pages.ExtractPages(eurofielPDF)
	if err != nil {
		return fmt.Errorf("failed to extract page text: %w", err)
	}

	orders := eurofiel.Parse(pageTexts)
	log.Debug().Int("pages", len(pageTexts)).Int("orders", len(orders)).Msg("eurofiel document parsed")

	columns := types.EurofielSummaryColumns
	var rows []types.Row

	if eurofielMap != "" {
		table, err := equivalence.Load(eurofielMap)
		if err != nil {
			return fmt.Errorf("failed to load equivalence table: %w", err)
		}
		log.Debug().Int("mappings", table.Len()).Str("map", eurofielMap).Msg("equivalence table loaded")

		columns = types.EurofielExtendedColumns
		rows = eurofiel.ExtendedRows(orders, table)
	} else {
		rows = eurofiel.SummaryRows(orders, nil)
	}

	return writeRecords(eurofielOut, "eurofiel", columns, rows)
}
