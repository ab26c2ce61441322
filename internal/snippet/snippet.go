// Package snippet turns a phrase occurrence into a short highlighted excerpt.
package snippet

import (
	"strings"
	"unicode/utf8"

	"github.com/gcbaptista/pdf-phrase-search/internal/matcher"
)

const (
	// DefaultWindow is the number of runes kept on each side of an occurrence
	// when no usable sentence surrounds it.
	DefaultWindow = 120

	// MaxSentenceSpan bounds the distance between the two periods enclosing a sentence.
	MaxSentenceSpan = 400

	// MinSentenceLength is the shortest trimmed sentence accepted as a snippet.
	MinSentenceLength = 20

	ellipsis = "..."
)

// Extract builds the snippet for the occurrence at offset (a rune offset into
// text). The enclosing sentence, delimited by '.', is preferred; otherwise a
// window of runes on each side of offset is used. Every occurrence of phrase
// in the snippet is wrapped in brackets.
//
// Only '.' delimits sentences, so '?', '!', abbreviations and decimal numbers
// all produce imperfect boundaries.
func Extract(text []rune, offset int, phrase string, window int) string {
	if window <= 0 {
		window = DefaultWindow
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	if sentence, ok := enclosingSentence(text, offset); ok {
		return Highlight(sentence, phrase)
	}

	start := max(0, offset-window)
	end := min(len(text), offset+window)
	excerpt := strings.ReplaceAll(string(text[start:end]), "\n", " ")
	excerpt = strings.TrimSpace(excerpt)

	return Highlight(ellipsis+" "+excerpt+" "+ellipsis, phrase)
}

// enclosingSentence returns the trimmed text between the last '.' before
// offset (exclusive) and the first '.' at or after offset (inclusive).
func enclosingSentence(text []rune, offset int) (string, bool) {
	start := lastIndex(text[:offset], '.')
	if start == -1 {
		return "", false
	}
	end := index(text[offset:], '.')
	if end == -1 {
		return "", false
	}
	end += offset

	if end-start >= MaxSentenceSpan {
		return "", false
	}

	sentence := strings.TrimSpace(string(text[start+1 : end+1]))
	if utf8.RuneCountInString(sentence) < MinSentenceLength {
		return "", false
	}
	return sentence, true
}

// Highlight wraps every case-insensitive, non-overlapping occurrence of phrase
// in s with '[' and ']', preserving the original casing of s.
func Highlight(s, phrase string) string {
	folded := matcher.Fold(s)
	n := utf8.RuneCountInString(phrase)
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	pos := 0
	for off := range folded.Occurrences(phrase) {
		b.WriteString(string(folded.Runes[pos:off]))
		b.WriteByte('[')
		b.WriteString(string(folded.Runes[off : off+n]))
		b.WriteByte(']')
		pos = off + n
	}
	b.WriteString(string(folded.Runes[pos:]))
	return b.String()
}

func index(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}
	return -1
}

func lastIndex(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
