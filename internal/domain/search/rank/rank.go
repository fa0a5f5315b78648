// Package rank scores listings against query tokens by aggregate edit
// distance. Lower scores are better; an exact match on every token scores 0.
package rank

import (
	"sort"
	"strings"

	"github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/fuzzy"
	"github.com/tradepost-io/tradepost/internal/domain/search/token"
)

// NoTextPenalty is the per-token score for listings without any source text.
// Keeps them sorting after textual matches without blowing up the comparator.
const NoTextPenalty = 10

// sourceWords extracts the whitespace-delimited words of a listing's
// searchable text: title, description, tags, category, subcategory.
func sourceWords(l *listing.Listing) []string {
	parts := make([]string, 0, 4+len(l.Tags()))
	parts = append(parts, l.Title(), l.Description())
	parts = append(parts, l.Tags()...)
	parts = append(parts, l.Category(), l.Subcategory())

	folded := token.Fold(strings.Join(parts, " "))
	return strings.Fields(folded)
}

// sourceText returns the folded, concatenated searchable text.
func sourceText(l *listing.Listing) string {
	return strings.Join(sourceWords(l), " ")
}

// Score returns the sum over tokens of the best edit distance against any
// source word. Empty token sets score 0.
func Score(l *listing.Listing, tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}

	words := sourceWords(l)
	total := 0
	for _, tok := range tokens {
		d := fuzzy.BestWordDistance(words, tok)
		if d < 0 {
			d = NoTextPenalty
		}
		total += d
	}
	return total
}

// Rank sorts listings ascending by Score, stable for ties. With no tokens the
// input order is preserved.
func Rank(listings []listing.Listing, tokens []string) []listing.Listing {
	if len(tokens) == 0 || len(listings) == 0 {
		return listings
	}

	scores := make([]int, len(listings))
	for i := range listings {
		scores[i] = Score(&listings[i], tokens)
	}

	idx := make([]int, len(listings))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	out := make([]listing.Listing, len(listings))
	for i, j := range idx {
		out[i] = listings[j]
	}
	return out
}

// IsGoodMatch reports whether any token appears as a literal substring of the
// listing's source text or lies within the length-proportional edit-distance
// threshold of any source word. Used by the broad fallback filter only.
func IsGoodMatch(l *listing.Listing, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}

	text := sourceText(l)
	words := strings.Fields(text)

	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
		for _, w := range words {
			if fuzzy.Distance(w, tok) <= fuzzy.MaxWordDistance(w, tok) {
				return true
			}
		}
	}
	return false
}
