package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg MainConfig
	ApplyDefaults(&cfg)

	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./archive", cfg.ArchiveDir)
	assert.Equal(t, "{source}_{vendor}_{timestamp}.xlsx", cfg.OutputName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.MaxConcurrency)

	require.Contains(t, cfg.Vendors, VendorEurofiel)
	require.Contains(t, cfg.Vendors, VendorECI)
	assert.NotEmpty(t, cfg.Vendors[VendorEurofiel].FileMatchingPatterns)
	assert.NotEmpty(t, cfg.Vendors[VendorECI].FileMatchingPatterns)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := MainConfig{
		InputDir:       "/srv/pedidos",
		MaxConcurrency: 2,
		Vendors: map[string]*VendorConfig{
			VendorECI: {FileMatchingPatterns: []string{"corte_ingles_*.pdf"}},
		},
	}
	ApplyDefaults(&cfg)

	assert.Equal(t, "/srv/pedidos", cfg.InputDir)
	assert.Equal(t, 2, cfg.MaxConcurrency)
	assert.Equal(t, []string{"corte_ingles_*.pdf"}, cfg.Vendors[VendorECI].FileMatchingPatterns)
}

func TestLoadMainConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
input_dir: ` + filepath.Join(dir, "in") + `
output_dir: ` + filepath.Join(dir, "out") + `
archive_dir: ` + filepath.Join(dir, "done") + `
max_concurrency: 8
vendors:
  eurofiel:
    map_file: ./equivalencias.xlsx
  eci:
    noise_markers: ["WOMAN FIESTA", "HOMBRE BASICO"]
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MaxConcurrency)
	assert.True(t, cfg.ContinueOnError, "continue_on_error defaults to true")
	assert.Equal(t, "./equivalencias.xlsx", cfg.Vendors[VendorEurofiel].MapFile)
	assert.Equal(t, []string{"WOMAN FIESTA", "HOMBRE BASICO"}, cfg.Vendors[VendorECI].NoiseMarkers)

	// Validation creates the configured directories.
	for _, d := range []string{cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLoadMainConfigExplicitFalseWins(t *testing.T) {
	dir := t.TempDir()
	content := `
input_dir: ` + filepath.Join(dir, "in") + `
output_dir: ` + filepath.Join(dir, "out") + `
archive_dir: ` + filepath.Join(dir, "done") + `
continue_on_error: false
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadMainConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.ContinueOnError)
}

func TestLoadMainConfigRejectsUnknownVendor(t *testing.T) {
	dir := t.TempDir()
	content := `
input_dir: ` + filepath.Join(dir, "in") + `
output_dir: ` + filepath.Join(dir, "out") + `
archive_dir: ` + filepath.Join(dir, "done") + `
vendors:
  zara: {}
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadMainConfig(path)
	assert.ErrorContains(t, err, "unknown vendor")
}

func TestLoadMainConfigMissingFile(t *testing.T) {
	_, err := LoadMainConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.Error(t, err)
}
