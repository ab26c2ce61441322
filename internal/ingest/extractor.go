package ingest

import (
	"strings"

	"github.com/ledongthuc/pdf"

	searchErrors "github.com/gcbaptista/pdf-phrase-search/internal/errors"
	"github.com/gcbaptista/pdf-phrase-search/model"
)

// Extractor splits a source document into per-page text.
type Extractor interface {
	Extract(path string) ([]model.Page, error)
}

// PDFExtractor extracts plain text from each page of a PDF file.
type PDFExtractor struct{}

// Extract returns one Page per PDF page, numbered from 1. Pages without a
// content stream or whose text cannot be decoded are stored with empty text
// so page numbers stay aligned with the source document.
func (PDFExtractor) Extract(path string) ([]model.Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, searchErrors.NewExtractionError(path, err)
	}
	defer f.Close()

	n := r.NumPage()
	pages := make([]model.Page, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		text := ""
		if !p.V.IsNull() {
			if t, err := p.GetPlainText(nil); err == nil {
				text = strings.TrimSpace(t)
			}
		}
		pages = append(pages, model.Page{Page: i, Text: text})
	}
	return pages, nil
}
