package services

import (
	"context"
	"iter"

	"github.com/gcbaptista/pdf-phrase-search/model"
)

// Mode selects how many occurrences per file are kept as samples.
type Mode int

const (
	// ModeCountOnly counts occurrences without retaining samples.
	ModeCountOnly Mode = iota
	// ModeSample retains up to the configured sample limit per file.
	ModeSample
	// ModeAll retains every occurrence.
	ModeAll
)

// ParseMode maps a request mode value to a Mode. Unrecognised values,
// including the empty string, select ModeCountOnly.
func ParseMode(s string) Mode {
	switch s {
	case "all":
		return ModeAll
	case "sample":
		return ModeSample
	default:
		return ModeCountOnly
	}
}

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeSample:
		return "sample"
	default:
		return "count"
	}
}

// PageSource yields every stored page once per call. Iteration stops at the
// first non-nil error, which is yielded with a zero Page.
type PageSource interface {
	Pages(ctx context.Context) iter.Seq2[model.Page, error]
}

// PageWriter stores the pages of a single file, replacing any previous pages for it.
type PageWriter interface {
	WritePages(ctx context.Context, file string, pages []model.Page) error
}

// Searcher runs a phrase search over the page corpus.
type Searcher interface {
	Search(ctx context.Context, phrase string, mode Mode) (model.SearchResponse, error)
}

// Locator derives a link into an external document archive for a file page.
// ok is false when no link can be derived.
type Locator interface {
	URL(file string, page int) (url string, ok bool)
}
