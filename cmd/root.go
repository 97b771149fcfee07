// =============================================================================
// EDIWIN Order Extractor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (ediwin)
//   ├── eurofielCmd (ediwin eurofiel)
//   ├── eciCmd      (ediwin eci)
//   ├── processCmd  (ediwin process)
//   └── versionCmd  (ediwin version)
//
// The root command owns the global flags (--config, --verbose) and the
// logger setup.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file (batch mode only).
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ediwin",
	Short: "EDIWIN Order Extractor - Extract structured order records from vendor PDFs",
	Long: `EDIWIN Order Extractor reads EDIWIN purchase-order PDFs in two vendor
layouts (Eurofiel and El Corte Inglés) and extracts a flat record per order
or per item (order number, delivery date, model/pattern codes, unit price,
quantities), written as an XLSX or CSV summary.

Unrecognized lines are skipped, never fatal: the parsers target exactly two
fixed vendor grammars and degrade gracefully on anything else.

Example Usage:
  ediwin eurofiel --pdf pedidos.pdf --out resumen.xlsx
  ediwin eurofiel --pdf pedidos.pdf --out resumen.xlsx --map equivalencias.xlsx
  ediwin eci --pdf pedido_eci.pdf --out resumen_eci.xlsx
  ediwin process --config config.yaml`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger configures the process-wide logger. Console output, info level
// unless --verbose raises it.
func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	log.DefaultLogger = log.Logger{
		Level:  level,
		Writer: &log.ConsoleWriter{ColorOutput: true},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (batch mode)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
