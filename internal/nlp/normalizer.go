package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for comparison: lower-case, diacritics
// stripped, punctuation replaced by spaces, whitespace collapsed. The
// result of normalizing a normalized string is the string itself.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	// Decompose to NFD and drop the combining marks, so "déjà" and "deja"
	// compare equal. Transformer chains carry internal state, build one
	// per call to stay safe under concurrent use.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens normalizes text and splits it into words.
func Tokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
