package search

import (
	"iter"

	"github.com/gcbaptista/pdf-phrase-search/internal/matcher"
	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

// DefaultSampleLimit is the number of samples kept per file in sample mode.
const DefaultSampleLimit = 3

// Aggregate scans every page yielded by pages and tallies the occurrences of
// phrase per file. Every occurrence is counted. Whether it is also retained
// as a sample depends on mode: all retains everything, sample retains until
// the file holds limit samples, count-only retains nothing.
//
// The first error yielded by pages aborts the scan and is returned as is.
func Aggregate(pages iter.Seq2[model.Page, error], phrase string, mode services.Mode, limit int) (*Tally, error) {
	if limit <= 0 {
		limit = DefaultSampleLimit
	}

	tally := newTally()
	for p, err := range pages {
		if err != nil {
			return nil, err
		}
		tally.pages++

		folded := matcher.Fold(p.Text)
		for offset := range folded.Occurrences(phrase) {
			ft := tally.file(p.File)
			ft.count++

			switch mode {
			case services.ModeAll:
			case services.ModeSample:
				if len(ft.samples) >= limit {
					continue
				}
			default:
				continue
			}
			ft.samples = append(ft.samples, retained{page: p.Page, text: folded.Runes, offset: offset})
		}
	}
	return tally, nil
}
