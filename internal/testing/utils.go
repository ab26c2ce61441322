// Package testing provides fixtures and helpers for testing phrase search.
package testing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/services"
	"github.com/gcbaptista/pdf-phrase-search/store"
)

// SampleCorpus returns a small page corpus. "epstein" occurs five times:
// four on EFTA00020.pdf page 1 and once on EFTA00010.pdf page 3.
func SampleCorpus() []model.Page {
	return []model.Page{
		{File: "EFTA00010.pdf", Page: 3, Text: "The meeting occurred. Epstein was present. Nothing else matters."},
		{File: "EFTA00020.pdf", Page: 1, Text: "Epstein, Epstein. Epstein and Epstein were listed again and again."},
		{File: "EFTA00030.pdf", Page: 7, Text: "Unrelated page about flight schedules."},
	}
}

// CreateTestStore opens an initialised SQLite page store in a temporary
// directory. The store is closed when the test ends.
func CreateTestStore(t *testing.T) (*store.SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pages.db")

	db, err := store.Open(path)
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Init(), "Failed to initialise test store")

	return db, path
}

// SeedPages writes pages through w, grouped by file in first-seen order.
func SeedPages(t *testing.T, w services.PageWriter, pages ...model.Page) {
	t.Helper()
	var order []string
	byFile := make(map[string][]model.Page)
	for _, p := range pages {
		if _, ok := byFile[p.File]; !ok {
			order = append(order, p.File)
		}
		byFile[p.File] = append(byFile[p.File], p)
	}
	for _, file := range order {
		require.NoError(t, w.WritePages(context.Background(), file, byFile[file]), "Failed to seed %s", file)
	}
}

// SearchTestCase represents a test case for search operations
type SearchTestCase struct {
	Name          string
	Phrase        string
	Mode          services.Mode
	ExpectedTotal int
	ExpectedFirst string // Expected first result file
	ValidateFunc  func(t *testing.T, resp *model.SearchResponse)
}

// RunSearchTests runs a suite of search tests against a searcher
func RunSearchTests(t *testing.T, searcher services.Searcher, tests []SearchTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			resp, err := searcher.Search(context.Background(), tt.Phrase, tt.Mode)
			require.NoError(t, err, "Search should not fail")

			assert.Equal(t, tt.ExpectedTotal, resp.Total, "Total should match")

			if tt.ExpectedFirst != "" {
				require.NotEmpty(t, resp.Results, "Expected at least one result")
				assert.Equal(t, tt.ExpectedFirst, resp.Results[0].File, "First result should match expected")
			}

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, &resp)
			}
		})
	}
}
