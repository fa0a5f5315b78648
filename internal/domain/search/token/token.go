// Package token normalizes free-text search queries into matchable tokens.
package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes accented characters and drops the combining
// marks, so "café" and "cafe" normalize to the same bytes.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases s and strips diacritics.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Tokenize splits a query into lowercase, accent-stripped, alphanumeric
// tokens. Tokens of length <= 1 are dropped and duplicates are removed,
// keeping the order of first appearance. Empty input yields nil.
func Tokenize(input string) []string {
	if input == "" {
		return nil
	}

	folded := Fold(input)
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(words))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 1 {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
