package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BlankMarker replaces the target word in question text.
const BlankMarker = "__"

// boundaryPunct lists the non-space characters that may delimit a word.
const boundaryPunct = ".,;:!?'\"()[]{}<>/\\|-_*&#%~`…" +
	"。，、；：！？「」『』（）《》〈〉【】“”‘’—～·"

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// ContextExtractor finds whole-word occurrences of a term in source text.
type ContextExtractor struct {
	// cjkBoundaries makes Han, Kana and Hangul neighbours count as word boundaries.
	// Those scripts are written without spaces between words.
	cjkBoundaries bool
}

func NewContextExtractor(cjkBoundaries bool) *ContextExtractor {
	return &ContextExtractor{cjkBoundaries: cjkBoundaries}
}

// Extract returns a context window around every boundary-delimited occurrence of word.
// A window spans radius characters before the leading delimiter and radius characters
// after the word, clamped to the text, with line breaks removed and spaces trimmed.
func (e *ContextExtractor) Extract(word, text string, radius int) []string {
	radius = max(radius, 0)

	matches := e.find(word, text)
	if len(matches) == 0 {
		return nil
	}

	runes := []rune(text)
	out := make([]string, 0, len(matches))

	// Matches are ordered, so rune offsets are carried forward from the previous one.
	prevByte, prevRune := 0, 0
	for _, m := range matches {
		start := prevRune + utf8.RuneCountInString(text[prevByte:m[0]])
		end := start + utf8.RuneCountInString(text[m[0]:m[1]])
		prevByte, prevRune = m[1], end

		lead := start
		if start > 0 {
			lead-- // include the delimiter
		}

		from := max(lead-radius, 0)
		to := min(end+radius, len(runes))

		window := lineBreaks.Replace(string(runes[from:to]))
		out = append(out, strings.TrimSpace(window))
	}

	return out
}

// Blank replaces every boundary-delimited occurrence of word with BlankMarker.
func (e *ContextExtractor) Blank(text, word string) string {
	matches := e.find(word, text)
	if len(matches) == 0 {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(text[last:m[0]])
		sb.WriteString(BlankMarker)
		last = m[1]
	}
	sb.WriteString(text[last:])

	return sb.String()
}

// find returns byte offsets of the non-overlapping bounded occurrences of word.
func (e *ContextExtractor) find(word, text string) [][2]int {
	if word == "" || text == "" {
		return nil
	}

	// The word is user input and must be matched literally.
	re := regexp.MustCompile(regexp.QuoteMeta(word))

	var out [][2]int
	for pos := 0; pos < len(text); {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}

		start, end := pos+loc[0], pos+loc[1]
		if e.bounded(text, start, end) {
			out = append(out, [2]int{start, end})
			pos = end
			continue
		}

		// Retry one character later so overlapping candidates are still considered.
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}

	return out
}

func (e *ContextExtractor) bounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if !e.isBoundary(r) {
			return false
		}
	}

	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if !e.isBoundary(r) {
			return false
		}
	}

	return true
}

func (e *ContextExtractor) isBoundary(r rune) bool {
	if unicode.IsSpace(r) || strings.ContainsRune(boundaryPunct, r) {
		return true
	}
	return e.cjkBoundaries && unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}
