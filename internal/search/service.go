package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	searchErrors "github.com/gcbaptista/pdf-phrase-search/internal/errors"
	"github.com/gcbaptista/pdf-phrase-search/internal/metrics"
	"github.com/gcbaptista/pdf-phrase-search/internal/snippet"
	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

// Service implements phrase search over a page corpus.
// It fulfills the services.Searcher interface.
type Service struct {
	source      services.PageSource
	locator     services.Locator
	sampleLimit int
	window      int
	metrics     bool
}

var _ services.Searcher = (*Service)(nil)

// Option configures a Service.
type Option func(*Service)

// WithSampleLimit sets the number of samples kept per file in sample mode.
func WithSampleLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleLimit = n
		}
	}
}

// WithWindow sets the fallback snippet window, in runes on each side of a match.
func WithWindow(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.window = n
		}
	}
}

// WithLocator attaches document URLs to samples.
func WithLocator(l services.Locator) Option {
	return func(s *Service) {
		s.locator = l
	}
}

// WithMetrics enables Prometheus recording of each search.
func WithMetrics(enabled bool) Option {
	return func(s *Service) {
		s.metrics = enabled
	}
}

// NewService creates a new search Service reading pages from source.
func NewService(source services.PageSource, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("page source cannot be nil")
	}

	s := &Service{
		source:      source,
		sampleLimit: DefaultSampleLimit,
		window:      snippet.DefaultWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search scans the whole corpus for phrase. The phrase is trimmed and must
// not be empty. A storage failure aborts the search without partial results.
func (s *Service) Search(ctx context.Context, phrase string, mode services.Mode) (model.SearchResponse, error) {
	startTime := time.Now()

	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return model.SearchResponse{}, searchErrors.NewEmptyQueryError("q")
	}

	tally, err := Aggregate(s.source.Pages(ctx), phrase, mode, s.sampleLimit)
	if err != nil {
		s.record(mode, "error", 0, 0, startTime)
		return model.SearchResponse{}, searchErrors.NewStorageError("scan pages", err)
	}

	resp := Rank(tally, phrase, FormatOptions{Window: s.window, Locator: s.locator})
	s.record(mode, "ok", tally.PagesScanned(), resp.Total, startTime)

	log.Debug().
		Str("phrase", phrase).
		Stringer("mode", mode).
		Int("pages", tally.PagesScanned()).
		Int("files", len(resp.Results)).
		Int("total", resp.Total).
		Dur("took", time.Since(startTime)).
		Msg("search completed")

	return resp, nil
}

func (s *Service) record(mode services.Mode, status string, pages, total int, start time.Time) {
	if !s.metrics {
		return
	}
	metrics.RecordSearch(mode.String(), status, pages, total, time.Since(start).Seconds())
}
