// =============================================================================
// EDIWIN Order Extractor - Process Command
// =============================================================================
//
// This file defines the 'process' command, which batch-converts every PDF in
// the configured input directory.
//
// COMMAND USAGE:
//   ediwin process [--config config.yaml] [--dry-run]
//
// PROCESSING PIPELINE:
//   1. Load the configuration file
//   2. Discover PDF files in the input directory
//   3. Match each file to a vendor by filename pattern
//   4. For each file (one worker per document):
//      a. Extract per-page text
//      b. Run the vendor parser
//      c. Write the output file
//      d. Archive the input on success
//   5. Print a summary report
//
// One worker per document is the only safe level of parallelism: header
// accumulation and aggregation are scoped to a single document's record set.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/tsuspe/ediwin-parser/internal/config"
	"github.com/tsuspe/ediwin-parser/internal/eci"
	"github.com/tsuspe/ediwin-parser/internal/equivalence"
	"github.com/tsuspe/ediwin-parser/internal/eurofiel"
	"github.com/tsuspe/ediwin-parser/internal/export"
	"github.com/tsuspe/ediwin-parser/internal/types"
	"github.com/tsuspe/ediwin-parser/pkg/utils"
)

// dryRun simulates processing without writing or archiving files.
var dryRun bool

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Batch-process all PDFs in the configured input directory",
	Long: `The process command scans the input directory for PDF files, matches them
to a vendor grammar by filename pattern, and extracts each one to the output
directory. Documents are processed concurrently (one worker per document),
and errors in one document do not affect the processing of others.

On successful processing the input PDF is moved to the archive directory.
Failed files remain in the input directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Simulate processing without writing output files",
	)
}

// result is the outcome of one document.
type result struct {
	file   string
	vendor string
	output string
	rows   int
	err    error
}

// runProcess orchestrates the batch pipeline.
func runProcess() error {
	startTime := time.Now()

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	inputFiles, err := filepath.Glob(filepath.Join(cfg.InputDir, "*.pdf"))
	if err != nil {
		return fmt.Errorf("failed to scan input directory: %w", err)
	}
	if len(inputFiles) == 0 {
		fmt.Println("No PDF files found in the input directory.")
		return nil
	}

	log.Info().Int("files", len(inputFiles)).Str("input_dir", cfg.InputDir).Msg("starting batch")

	var wg sync.WaitGroup
	results := make(chan result, len(inputFiles))
	sem := make(chan struct{}, cfg.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results <- processDocument(path, cfg)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var successCount, errorCount int
	for res := range results {
		if res.err != nil {
			errorCount++
			log.Error().Err(res.err).Str("file", res.file).Msg("document failed")
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(res.file), res.err)
			continue
		}
		successCount++
		fmt.Printf("  ✓ %s -> %s (%d rows)\n", filepath.Base(res.file), res.output, res.rows)
	}

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	if errorCount > 0 && !cfg.ContinueOnError {
		return fmt.Errorf("%d of %d documents failed", errorCount, len(inputFiles))
	}
	return nil
}

// processDocument runs the full pipeline for one input PDF.
func processDocument(path string, cfg *config.MainConfig) result {
	res := result{file: path}

	vendor, vendorCfg := matchVendor(path, cfg)
	if vendorCfg == nil {
		res.err = fmt.Errorf("no vendor pattern matches %s", filepath.Base(path))
		return res
	}
	res.vendor = vendor

	pageTexts, err := pages.ExtractPages(path)
	if err != nil {
		res.err = fmt.Errorf("failed to extract page text: %w", err)
		return res
	}

	columns, rows, err := extractRows(vendor, vendorCfg, pageTexts)
	if err != nil {
		res.err = err
		return res
	}
	res.rows = len(rows)

	if len(rows) == 0 {
		log.Warn().Str("file", path).Str("vendor", vendor).Msg("no order lines detected; writing header-only output")
	}

	outName := utils.GenerateOutputFileName(cfg.OutputName, vendor, path)
	res.output = filepath.Join(cfg.OutputDir, outName)

	if dryRun {
		return res
	}

	if err := export.Write(res.output, columns, rows); err != nil {
		res.err = fmt.Errorf("failed to write output: %w", err)
		return res
	}

	if _, err := utils.ArchiveFile(path, cfg.ArchiveDir); err != nil {
		res.err = err
		return res
	}
	return res
}

// extractRows dispatches page text to the matched vendor grammar.
func extractRows(vendor string, vendorCfg *config.VendorConfig, pageTexts []string) ([]string, []types.Row, error) {
	switch vendor {
	case config.VendorEurofiel:
		orders := eurofiel.Parse(pageTexts)
		if vendorCfg.MapFile == "" {
			return types.EurofielSummaryColumns, eurofiel.SummaryRows(orders, nil), nil
		}
		table, err := equivalence.Load(vendorCfg.MapFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load equivalence table: %w", err)
		}
		return types.EurofielExtendedColumns, eurofiel.ExtendedRows(orders, table), nil

	case config.VendorECI:
		records := eci.Parse(pageTexts, eci.Options{NoiseMarkers: vendorCfg.NoiseMarkers})
		return types.ECIColumns, eci.Rows(records), nil

	default:
		return nil, nil, fmt.Errorf("unknown vendor %q", vendor)
	}
}

// matchVendor returns the first vendor whose patterns match the file name.
func matchVendor(path string, cfg *config.MainConfig) (string, *config.VendorConfig) {
	fileName := filepath.Base(path)

	// Deterministic order: eurofiel first, then eci.
	for _, vendor := range []string{config.VendorEurofiel, config.VendorECI} {
		vendorCfg := cfg.Vendors[vendor]
		if vendorCfg == nil {
			continue
		}
		for _, pattern := range vendorCfg.FileMatchingPatterns {
			matched, err := filepath.Match(pattern, fileName)
			if err != nil {
				// Invalid pattern, skip it.
				continue
			}
			if matched {
				return vendor, vendorCfg
			}
		}
	}
	return "", nil
}
