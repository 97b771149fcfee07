// =============================================================================
// EDIWIN Order Extractor - Main Entry Point
// =============================================================================
//
// This is the main entry point for the EDIWIN order extractor CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   ediwin eurofiel      - Extract an order summary from a Eurofiel PDF
//   ediwin eci           - Extract order lines from an El Corte Inglés PDF
//   ediwin process       - Batch-process all PDFs in the configured input directory
//   ediwin version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/tsuspe/ediwin-parser/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
