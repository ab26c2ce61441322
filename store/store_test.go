package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/store"
)

// setupStore creates a temporary SQLite store for testing.
func setupStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "pages.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Init())

	t.Cleanup(func() { s.Close() })
	return s
}

func collect(t *testing.T, pages func(yield func(model.Page, error) bool)) []model.Page {
	t.Helper()
	var out []model.Page
	for p, err := range pages {
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestSQLiteStore_WriteAndScan(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.WritePages(ctx, "EFTA00010.pdf", []model.Page{
		{Page: 1, Text: "first page"},
		{Page: 2, Text: "second page"},
	}))
	require.NoError(t, s.WritePages(ctx, "EFTA00020.pdf", []model.Page{
		{Page: 1, Text: "other file"},
	}))

	got := collect(t, s.Pages(ctx))
	assert.Equal(t, []model.Page{
		{File: "EFTA00010.pdf", Page: 1, Text: "first page"},
		{File: "EFTA00010.pdf", Page: 2, Text: "second page"},
		{File: "EFTA00020.pdf", Page: 1, Text: "other file"},
	}, got)

	pages, files, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
	assert.Equal(t, 2, files)
}

func TestSQLiteStore_WriteReplacesFile(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.WritePages(ctx, "a.pdf", []model.Page{{Page: 1, Text: "old"}, {Page: 2, Text: "old"}}))
	require.NoError(t, s.WritePages(ctx, "a.pdf", []model.Page{{Page: 1, Text: "new"}}))

	got := collect(t, s.Pages(ctx))
	assert.Equal(t, []model.Page{{File: "a.pdf", Page: 1, Text: "new"}}, got)
}

func TestSQLiteStore_EmptyCorpus(t *testing.T) {
	s := setupStore(t)
	assert.Empty(t, collect(t, s.Pages(context.Background())))
}

func TestSQLiteStore_EarlyStopClosesCursor(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	require.NoError(t, s.WritePages(ctx, "a.pdf", []model.Page{{Page: 1, Text: "x"}, {Page: 2, Text: "y"}}))

	for range s.Pages(ctx) {
		break
	}

	// A write after an abandoned scan must not block on the read cursor.
	require.NoError(t, s.WritePages(ctx, "b.pdf", []model.Page{{Page: 1, Text: "z"}}))
}

func TestSQLiteStore_MissingTableFails(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bare.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	var scanErr error
	for _, err := range s.Pages(context.Background()) {
		scanErr = err
	}
	assert.Error(t, scanErr)
}

func TestOpen_InvalidPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := store.Open(filepath.Join(blocker, "nested", "pages.db"))
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore(
		model.Page{File: "a.pdf", Page: 1, Text: "a1"},
		model.Page{File: "b.pdf", Page: 1, Text: "b1"},
		model.Page{File: "a.pdf", Page: 2, Text: "a2"},
	)
	assert.Equal(t, 3, ms.Len())

	require.NoError(t, ms.WritePages(ctx, "a.pdf", []model.Page{{Page: 1, Text: "A1"}}))
	require.NoError(t, ms.WritePages(ctx, "c.pdf", []model.Page{{Page: 7, Text: "c7"}}))

	got := collect(t, ms.Pages(ctx))
	assert.Equal(t, []model.Page{
		{File: "a.pdf", Page: 1, Text: "A1"},
		{File: "b.pdf", Page: 1, Text: "b1"},
		{File: "c.pdf", Page: 7, Text: "c7"},
	}, got)
}
