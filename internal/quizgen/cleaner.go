package quizgen

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minSentenceLen is the shortest cleaned sentence (in runes) that can seed
// a question. Anything at or below this is treated as a heading or noise.
const minSentenceLen = 20

// Punctuation allowed to survive cleaning; everything else outside
// letters/digits/whitespace is dropped.
const allowedPunct = ".,;:()-—–?"

// Characters stripped once from the end of a cleaned sentence.
const trailingPunct = ".,;:-"

// Sentences splits raw extracted text into cleaned candidate sentences.
// The boundary is a period followed by a space; periods inside
// abbreviations are deliberately not boundaries. The returned sequence is
// finite, deterministic and restartable: ranging over it twice yields the
// same sentences in document order.
func Sentences(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, unit := range strings.Split(raw, ". ") {
			s := cleanSentence(unit)
			if utf8.RuneCountInString(s) <= minSentenceLen {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// cleanSentence normalizes one candidate unit: newlines become spaces,
// list markers ("• ", "1. ") are stripped, internal whitespace is
// collapsed, disallowed characters are removed and a single trailing
// punctuation mark is dropped.
func cleanSentence(unit string) string {
	s := strings.NewReplacer("\n", " ", "\r", " ").Replace(unit)
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "•")
	s = strings.TrimLeft(s, "0123456789. ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(allowedPunct, r) {
			return r
		}
		return -1
	}, s)
	if s != "" {
		if r, size := utf8.DecodeLastRuneInString(s); strings.ContainsRune(trailingPunct, r) {
			s = strings.TrimSpace(s[:len(s)-size])
		}
	}
	return s
}
