package search

import (
	"sort"

	"github.com/gcbaptista/pdf-phrase-search/internal/snippet"
	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

// FormatOptions controls how retained occurrences are rendered.
type FormatOptions struct {
	Window  int              // Fallback snippet window in runes; snippet.DefaultWindow when zero
	Locator services.Locator // Optional; samples get no URL when nil
}

// Rank orders the tallied files by descending count, keeping first-observed
// order among ties, and renders every retained occurrence as a Sample.
func Rank(t *Tally, phrase string, opts FormatOptions) model.SearchResponse {
	files := make([]*fileTally, len(t.files))
	copy(files, t.files)
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].count > files[j].count
	})

	resp := model.SearchResponse{
		Total:   t.Total(),
		Results: make([]model.FileResult, 0, len(files)),
	}
	for _, ft := range files {
		result := model.FileResult{
			File:    ft.file,
			Count:   ft.count,
			Samples: make([]model.Sample, 0, len(ft.samples)),
		}
		for _, r := range ft.samples {
			sample := model.Sample{
				Page:    r.page,
				Context: snippet.Extract(r.text, r.offset, phrase, opts.Window),
			}
			if opts.Locator != nil {
				if url, ok := opts.Locator.URL(ft.file, r.page); ok {
					sample.URL = url
				}
			}
			result.Samples = append(result.Samples, sample)
		}
		resp.Results = append(resp.Results, result)
	}
	return resp
}
