package model

// Sample is a highlighted snippet taken from one occurrence.
type Sample struct {
	Page    int    `json:"page"`
	Context string `json:"context"`
	URL     string `json:"url,omitempty"` // Link into the document archive, when a locator is configured
}

// FileResult aggregates every occurrence found in a single file.
// Count is never capped by the number of retained samples.
type FileResult struct {
	File    string   `json:"file"`
	Count   int      `json:"count"`
	Samples []Sample `json:"samples"`
}

// SearchResponse is the body returned for a phrase search.
type SearchResponse struct {
	Total   int          `json:"total"`
	Results []FileResult `json:"results"`
}
