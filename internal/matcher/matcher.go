// Package matcher finds case-insensitive phrase occurrences in page text.
//
// Matching lowercases text and phrase rune by rune with unicode.ToLower. This
// is simple lowercasing, not full Unicode case folding: "ß" does not match
// "SS" and multi-rune foldings are never considered. Because lowercasing is
// done per rune, offsets into the lowered text are valid offsets into the
// original text.
package matcher

import (
	"iter"
	"unicode"
)

// Folded is page text prepared for repeated case-insensitive scans.
type Folded struct {
	Runes []rune // Original text
	lower []rune
}

// Fold prepares text for scanning.
func Fold(text string) Folded {
	runes := []rune(text)
	return Folded{Runes: runes, lower: Lower(runes)}
}

// Lower returns a lowercased copy of runes with the same length.
func Lower(runes []rune) []rune {
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}
	return lower
}

// Occurrences yields the rune offsets of every non-overlapping occurrence of
// phrase in the folded text, left to right. After a match at i the scan
// resumes at i+len(phrase). An empty phrase yields nothing.
func (f Folded) Occurrences(phrase string) iter.Seq[int] {
	needle := Lower([]rune(phrase))
	return func(yield func(int) bool) {
		if len(needle) == 0 {
			return
		}
		pos := 0
		for {
			idx := indexFrom(f.lower, needle, pos)
			if idx == -1 {
				return
			}
			if !yield(idx) {
				return
			}
			pos = idx + len(needle)
		}
	}
}

// Occurrences is a convenience wrapper around Fold(text).Occurrences(phrase).
func Occurrences(text, phrase string) iter.Seq[int] {
	return Fold(text).Occurrences(phrase)
}

// indexFrom returns the first index >= from at which needle occurs in haystack, or -1.
func indexFrom(haystack, needle []rune, from int) int {
	last := len(haystack) - len(needle)
	for i := from; i <= last; i++ {
		if haystack[i] != needle[0] {
			continue
		}
		match := true
		for j := 1; j < len(needle); j++ {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
