// =============================================================================
// EDIWIN Order Extractor - Configuration Module
// =============================================================================
//
// This module loads the application configuration used by the batch
// 'process' command. The single-document commands (eurofiel, eci) take all
// their inputs as flags and do not require a configuration file.
//
// CONFIGURATION FILE (config.yaml):
//   input_dir:   ./input
//   output_dir:  ./output
//   archive_dir: ./archive
//   output_name: "{source}_{vendor}_{timestamp}.xlsx"
//   log_level:   info
//   max_concurrency: 4
//   continue_on_error: true
//   vendors:
//     eurofiel:
//       file_matching_patterns: ["*eurofiel*.pdf"]
//       map_file: ./equivalencias/tabla_equivalencias_Eurofiel.xlsx
//     eci:
//       file_matching_patterns: ["*eci*.pdf"]
//       noise_markers: ["WOMAN FIESTA"]
//
// Configurations are loaded with defaults applied first and validated after
// (required directories are created when missing).
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vendor keys recognized by the batch pipeline.
const (
	VendorEurofiel = "eurofiel"
	VendorECI      = "eci"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// InputDir is the directory scanned for input PDFs.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where extracted record files are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is where input PDFs are moved after successful processing.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// OutputName is the output file name format. Placeholders:
	//   {uuid}      - a random UUID
	//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
	//   {vendor}    - the vendor key that matched the input file
	//   {source}    - the input file name without extension
	// Default: "{source}_{vendor}_{timestamp}.xlsx"
	OutputName string `yaml:"output_name"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// MaxConcurrency is the number of documents processed in parallel.
	// All parser state is scoped to one document, so one worker per
	// document is the only safe level of parallelism. Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps the batch running when one document fails.
	// Default: true
	ContinueOnError bool `yaml:"continue_on_error"`

	// Vendors maps a vendor key to its matching and parsing settings.
	Vendors map[string]*VendorConfig `yaml:"vendors"`
}

// VendorConfig holds the per-vendor batch settings.
type VendorConfig struct {
	// FileMatchingPatterns are glob patterns matched against input file
	// names; the first vendor with a matching pattern processes the file.
	FileMatchingPatterns []string `yaml:"file_matching_patterns"`

	// MapFile is the equivalence mapping workbook (Eurofiel only).
	// Empty means the identity mapping.
	MapFile string `yaml:"map_file,omitempty"`

	// NoiseMarkers are substrings marking a page line as noise (ECI only).
	// Empty keeps the built-in defaults.
	NoiseMarkers []string `yaml:"noise_markers,omitempty"`
}

// =============================================================================
// LOADING
// =============================================================================

// LoadMainConfig loads and validates the configuration file at configPath.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Boolean defaults must be set before unmarshalling: an absent key
	// leaves the field untouched, an explicit "false" overrides it.
	cfg := MainConfig{ContinueOnError: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills in every unset option.
func ApplyDefaults(cfg *MainConfig) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "{source}_{vendor}_{timestamp}.xlsx"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.Vendors == nil {
		cfg.Vendors = make(map[string]*VendorConfig)
	}
	if cfg.Vendors[VendorEurofiel] == nil {
		cfg.Vendors[VendorEurofiel] = &VendorConfig{}
	}
	if cfg.Vendors[VendorECI] == nil {
		cfg.Vendors[VendorECI] = &VendorConfig{}
	}
	if len(cfg.Vendors[VendorEurofiel].FileMatchingPatterns) == 0 {
		cfg.Vendors[VendorEurofiel].FileMatchingPatterns = []string{"*eurofiel*.pdf", "*EUROFIEL*.pdf"}
	}
	if len(cfg.Vendors[VendorECI].FileMatchingPatterns) == 0 {
		cfg.Vendors[VendorECI].FileMatchingPatterns = []string{"*eci*.pdf", "*ECI*.pdf"}
	}
}

// validate checks the configuration and creates missing directories.
func validate(cfg *MainConfig) error {
	for vendor := range cfg.Vendors {
		if vendor != VendorEurofiel && vendor != VendorECI {
			return fmt.Errorf("unknown vendor %q", vendor)
		}
	}

	for _, dir := range []string{cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}
	return nil
}
