package model

// Page is one extracted page of a source document, as stored in the pages table.
type Page struct {
	File string `json:"file"` // Source document identifier, e.g. "EFTA00010.pdf"
	Page int    `json:"page"` // Page number within the file (1-based for ingested PDFs)
	Text string `json:"text"` // Extracted page text
}

// Occurrence is a located case-insensitive match of a phrase within a page.
// Offset is a rune offset into Text.
type Occurrence struct {
	File   string
	Page   int
	Text   []rune
	Offset int
}
