package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "salida.csv")

	require.NoError(t, WriteFileAtomic(path, []byte("hola")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hola", string(data))

	// Overwrites replace the previous content in one step.
	require.NoError(t, WriteFileAtomic(path, []byte("adios")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "adios", string(data))

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, FileExists(filepath.Join(dir, "missing")))
	assert.False(t, FileExists(dir), "directories do not count as files")

	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.True(t, FileExists(path))
}

func TestArchiveFile(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "archive")

	src := filepath.Join(dir, "pedido_eurofiel.pdf")
	require.NoError(t, os.WriteFile(src, []byte("pdf"), 0644))

	target, err := ArchiveFile(src, archive)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(archive, "pedido_eurofiel.pdf"), target)
	assert.False(t, FileExists(src))
	assert.True(t, FileExists(target))

	// A second file with the same name gets a timestamp suffix.
	require.NoError(t, os.WriteFile(src, []byte("pdf"), 0644))
	second, err := ArchiveFile(src, archive)
	require.NoError(t, err)
	assert.NotEqual(t, target, second)
	assert.True(t, strings.HasPrefix(filepath.Base(second), "pedido_eurofiel_"))
	assert.True(t, strings.HasSuffix(second, ".pdf"))
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("{source}_{vendor}.xlsx", "eci", "/input/Pedido ECI 2025.pdf")
	assert.Equal(t, "Pedido ECI 2025_eci.xlsx", name)

	name = GenerateOutputFileName("{timestamp}.csv", "eurofiel", "x.pdf")
	assert.Regexp(t, `^\d{8}_\d{6}\.csv$`, name)

	name = GenerateOutputFileName("{uuid}.xlsx", "eci", "x.pdf")
	assert.Regexp(t, `^[0-9a-f-]{36}\.xlsx$`, name)

	// Formats without placeholders pass through verbatim.
	assert.Equal(t, "fijo.xlsx", GenerateOutputFileName("fijo.xlsx", "eci", "x.pdf"))
}
