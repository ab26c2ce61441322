package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/pdf-phrase-search/internal/search"
	testutil "github.com/gcbaptista/pdf-phrase-search/internal/testing"
	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

func TestSearch_OverSQLiteStore(t *testing.T) {
	db, _ := testutil.CreateTestStore(t)
	testutil.SeedPages(t, db, testutil.SampleCorpus()...)

	svc, err := search.NewService(db)
	require.NoError(t, err)

	testutil.RunSearchTests(t, svc, []testutil.SearchTestCase{
		{
			Name:          "sample mode caps samples",
			Phrase:        "epstein",
			Mode:          services.ModeSample,
			ExpectedTotal: 5,
			ExpectedFirst: "EFTA00020.pdf",
			ValidateFunc: func(t *testing.T, resp *model.SearchResponse) {
				require.Len(t, resp.Results, 2)
				assert.Len(t, resp.Results[0].Samples, 3)
				assert.Equal(t, "EFTA00010.pdf", resp.Results[1].File)
			},
		},
		{
			Name:          "all mode keeps every occurrence",
			Phrase:        "EPSTEIN",
			Mode:          services.ModeAll,
			ExpectedTotal: 5,
			ExpectedFirst: "EFTA00020.pdf",
			ValidateFunc: func(t *testing.T, resp *model.SearchResponse) {
				assert.Len(t, resp.Results[0].Samples, 4)
			},
		},
		{
			Name:          "count only",
			Phrase:        "flight schedules",
			Mode:          services.ModeCountOnly,
			ExpectedTotal: 1,
			ExpectedFirst: "EFTA00030.pdf",
			ValidateFunc: func(t *testing.T, resp *model.SearchResponse) {
				assert.Empty(t, resp.Results[0].Samples)
			},
		},
		{
			Name:          "no match",
			Phrase:        "zebra",
			Mode:          services.ModeSample,
			ExpectedTotal: 0,
			ValidateFunc: func(t *testing.T, resp *model.SearchResponse) {
				assert.Empty(t, resp.Results)
			},
		},
	})
}
