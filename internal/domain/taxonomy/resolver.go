package taxonomy

import (
	"strings"

	"github.com/tradepost-io/tradepost/internal/domain/search/fuzzy"
)

// subcategorySentinel is the UI's "no subcategory filter" value.
const subcategorySentinel = "all"

// ResolveCategory resolves free-text category input to a canonical entry.
// Returns false when the input is empty or no canonical entry is close
// enough; callers treat that as "filter not applied".
func ResolveCategory(input string) (Resolved, bool) {
	return resolve(input, categoryEntries, categoryAliases, func(slug string) (string, bool) {
		c, ok := categoryBySlug[slug]
		return c.Display, ok
	})
}

// ResolveSubcategory resolves free-text subcategory input to a canonical
// entry. The literal sentinel "all" (case-insensitive) resolves to nothing.
func ResolveSubcategory(input string) (Resolved, bool) {
	if strings.EqualFold(strings.TrimSpace(input), subcategorySentinel) {
		return Resolved{}, false
	}
	return resolve(input, subcategoryEntries, subcategoryAliases, SubcategoryDisplay)
}

// NormalizeCategory returns the canonical display name for input, or the
// input unchanged when nothing resolves. Callers rely on a non-empty result.
func NormalizeCategory(input string) string {
	if r, ok := ResolveCategory(input); ok {
		return r.Display
	}
	return input
}

// resolve runs the shared resolution order: alias hit, exact key hit, then
// nearest canonical entry by edit distance within the adaptive threshold.
func resolve(
	input string,
	entries []entry,
	aliases map[string]string,
	displayBySlug func(slug string) (string, bool),
) (Resolved, bool) {
	key := NormalizeKey(input)
	if key == "" {
		return Resolved{}, false
	}

	if slug, ok := aliases[key]; ok {
		if display, ok := displayBySlug(slug); ok {
			return Resolved{Display: display, Slug: slug}, true
		}
	}

	var (
		best     *entry
		bestKey  string
		bestDist = -1
	)
	for i := range entries {
		e := &entries[i]
		for _, k := range e.keys {
			if k == key {
				return Resolved{Display: e.display, Slug: e.slug}, true
			}
			d := fuzzy.Distance(key, k)
			if bestDist < 0 || d < bestDist {
				best, bestKey, bestDist = e, k, d
			}
		}
	}

	if best == nil {
		return Resolved{}, false
	}

	// Threshold scales with the longer of the compared strings; a nearest
	// match that fails it is a miss, not a low-confidence guess.
	longer := len(key)
	if len(bestKey) > longer {
		longer = len(bestKey)
	}
	if bestDist > fuzzy.MaxResolveDistance(longer) {
		return Resolved{}, false
	}

	return Resolved{Display: best.display, Slug: best.slug}, true
}
