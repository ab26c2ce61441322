package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	searchErrors "github.com/gcbaptista/pdf-phrase-search/internal/errors"
	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/store"
)

// fakeExtractor returns one page holding the file's base name, and fails for
// names containing "broken".
type fakeExtractor struct{}

func (fakeExtractor) Extract(path string) ([]model.Page, error) {
	if strings.Contains(path, "broken") {
		return nil, errors.New("malformed xref table")
	}
	return []model.Page{
		{Page: 1, Text: "Cover page of " + filepath.Base(path) + "."},
		{Page: 2, Text: "Body text."},
	}, nil
}

type failingWriter struct{}

func (failingWriter) WritePages(ctx context.Context, file string, pages []model.Page) error {
	return errors.New("database is locked")
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	}
}

func TestFindDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.pdf", "a.PDF", "notes.txt", "sub/c.pdf")

	paths, err := FindDocuments(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.PDF"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "sub", "c.pdf"),
	}, paths)

	_, err = FindDocuments(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "EFTA00001.pdf", "EFTA00002.pdf", "broken.pdf", "readme.md")

	ms := store.NewMemoryStore()
	svc, err := NewService(ms, fakeExtractor{}, 2)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 4, report.Pages)
	assert.Equal(t, []string{filepath.Join(dir, "broken.pdf")}, report.Skipped)
	assert.Equal(t, 4, ms.Len())

	files := map[string]int{}
	for p, err := range ms.Pages(context.Background()) {
		require.NoError(t, err)
		files[p.File]++
	}
	assert.Equal(t, map[string]int{"EFTA00001.pdf": 2, "EFTA00002.pdf": 2}, files)
}

func TestRun_WriteFailureAborts(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "EFTA00001.pdf")

	svc, err := NewService(failingWriter{}, fakeExtractor{}, 1)
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, searchErrors.ErrStorageUnavailable))
}

func TestNewService(t *testing.T) {
	_, err := NewService(nil, nil, 0)
	assert.Error(t, err)

	svc, err := NewService(store.NewMemoryStore(), nil, 0)
	require.NoError(t, err)
	assert.IsType(t, PDFExtractor{}, svc.extractor)
	assert.Equal(t, DefaultWorkers, svc.workers)
}

func TestPDFExtractor_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))

	_, err := PDFExtractor{}.Extract(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, searchErrors.ErrUnsupportedFile))
}
