package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalPDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n"

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestStorageService_SaveTempPDF(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	path, cleanup, err := storage.SaveTemp(strings.NewReader(minimalPDF))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "resume_"))
	assert.FileExists(t, path)

	cleanup()
	assert.NoFileExists(t, path)

	// Calling cleanup twice is harmless.
	cleanup()
}

func TestStorageService_RejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	_, cleanup, err := storage.SaveTemp(strings.NewReader("just some plain text, not a document"))
	require.ErrorIs(t, err, ErrNotPDF)
	require.NotNil(t, cleanup)

	cleanup()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStorageService_ReadFailureStillCleansUp(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	_, cleanup, err := storage.SaveTemp(failingReader{})
	require.Error(t, err)

	cleanup()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStorageService_UniqueNames(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	first, cleanupFirst, err := storage.SaveTemp(strings.NewReader(minimalPDF))
	require.NoError(t, err)
	defer cleanupFirst()

	second, cleanupSecond, err := storage.SaveTemp(strings.NewReader(minimalPDF))
	require.NoError(t, err)
	defer cleanupSecond()

	assert.NotEqual(t, first, second)
}

func TestStorageService_EnsureUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	storage := NewStorageService(dir)

	require.NoError(t, storage.EnsureUploadDir())
	assert.DirExists(t, dir)
}
