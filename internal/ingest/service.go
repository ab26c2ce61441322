// Package ingest fills the page store from a directory of source documents.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	searchErrors "github.com/gcbaptista/pdf-phrase-search/internal/errors"
	"github.com/gcbaptista/pdf-phrase-search/internal/metrics"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

// DefaultWorkers bounds concurrent extractions.
const DefaultWorkers = 4

// Report summarises one ingest run.
type Report struct {
	Files   int      `json:"files"`   // Documents written to the store
	Pages   int      `json:"pages"`   // Pages written to the store
	Skipped []string `json:"skipped"` // Documents that could not be extracted
}

// Service extracts documents and writes their pages.
type Service struct {
	writer    services.PageWriter
	extractor Extractor
	workers   int

	mu sync.Mutex // serialises writes
}

// NewService creates an ingest Service. A nil extractor selects PDFExtractor.
func NewService(writer services.PageWriter, extractor Extractor, workers int) (*Service, error) {
	if writer == nil {
		return nil, fmt.Errorf("page writer cannot be nil")
	}
	if extractor == nil {
		extractor = PDFExtractor{}
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Service{writer: writer, extractor: extractor, workers: workers}, nil
}

// Run ingests every *.pdf file below dir. Documents are stored under their
// base name. A document that fails extraction is skipped and reported; a
// failed write aborts the run.
func (s *Service) Run(ctx context.Context, dir string) (Report, error) {
	paths, err := FindDocuments(dir)
	if err != nil {
		return Report{}, err
	}

	var (
		report   Report
		reportMu sync.Mutex
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pages, err := s.extractor.Extract(path)
			if err != nil {
				if !errors.Is(err, searchErrors.ErrUnsupportedFile) {
					err = searchErrors.NewExtractionError(path, err)
				}
				log.Warn().Err(err).Str("path", path).Msg("skipping document")
				metrics.RecordIngest("skipped", 1)

				reportMu.Lock()
				report.Skipped = append(report.Skipped, path)
				reportMu.Unlock()
				return nil
			}

			file := filepath.Base(path)
			s.mu.Lock()
			err = s.writer.WritePages(ctx, file, pages)
			s.mu.Unlock()
			if err != nil {
				metrics.RecordIngest("error", len(pages))
				return searchErrors.NewStorageError("write pages of "+file, err)
			}

			metrics.RecordIngest("ok", len(pages))
			log.Debug().Str("file", file).Int("pages", len(pages)).Msg("document ingested")

			reportMu.Lock()
			report.Files++
			report.Pages += len(pages)
			reportMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	sort.Strings(report.Skipped)
	return report, nil
}

// FindDocuments returns every *.pdf path below dir (case-insensitive), sorted.
func FindDocuments(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
