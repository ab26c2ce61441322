// Package locator derives links from a stored file page back to the public
// archive the document was released in.
package locator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gcbaptista/pdf-phrase-search/services"
)

// DefaultBaseURL is the archive root used by DatasetLocator.
const DefaultBaseURL = "https://www.justice.gov/epstein/files"

// Bucket maps every file number up to and including Max to Dataset.
type Bucket struct {
	Max     int
	Dataset int
}

// DefaultBuckets reproduce the archive's release layout. Numbers above the
// last bucket belong to FallbackDataset.
var DefaultBuckets = []Bucket{
	{Max: 50000, Dataset: 1},
	{Max: 80000, Dataset: 4},
	{Max: 100000, Dataset: 8},
	{Max: 13000000, Dataset: 10},
	{Max: 23000000, Dataset: 11},
}

// FallbackDataset holds every file numbered above the last bucket.
const FallbackDataset = 12

// DatasetLocator builds archive URLs from file names of the form
// <Prefix><number><Suffix>, e.g. "EFTA00012345.pdf".
type DatasetLocator struct {
	BaseURL  string
	Prefix   string
	Suffix   string
	Buckets  []Bucket
	Fallback int
}

var _ services.Locator = (*DatasetLocator)(nil)

// NewDatasetLocator returns a DatasetLocator with the default archive layout.
// An empty baseURL selects DefaultBaseURL.
func NewDatasetLocator(baseURL string) *DatasetLocator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &DatasetLocator{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Prefix:   "EFTA",
		Suffix:   ".pdf",
		Buckets:  DefaultBuckets,
		Fallback: FallbackDataset,
	}
}

// Dataset returns the dataset number holding file. ok is false when the file
// name carries no parseable number.
func (l *DatasetLocator) Dataset(file string) (dataset int, ok bool) {
	token := strings.TrimSuffix(strings.TrimPrefix(file, l.Prefix), l.Suffix)
	num, err := strconv.Atoi(token)
	if err != nil || num < 0 {
		return 0, false
	}
	for _, b := range l.Buckets {
		if num <= b.Max {
			return b.Dataset, true
		}
	}
	return l.Fallback, true
}

// URL implements services.Locator.
func (l *DatasetLocator) URL(file string, page int) (string, bool) {
	dataset, ok := l.Dataset(file)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s/DataSet%%20%d/%s#page=%d", l.BaseURL, dataset, file, page), true
}

// None never yields a URL.
type None struct{}

// URL implements services.Locator.
func (None) URL(string, int) (string, bool) {
	return "", false
}

// New returns the locator named by kind: "dataset" or "none".
func New(kind, baseURL string) (services.Locator, error) {
	switch kind {
	case "", "dataset":
		return NewDatasetLocator(baseURL), nil
	case "none":
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown locator kind '%s'", kind)
	}
}
