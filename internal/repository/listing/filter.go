package listing

import (
	"sort"
	"strings"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
	"github.com/tradepost-io/tradepost/internal/domain/search/token"
	"github.com/tradepost-io/tradepost/internal/domain/taxonomy"
)

// matchesQuery evaluates the strict filter semantics against one listing.
// The category/subcategory on q are expected to be canonical display names
// (resolved by the caller); subcategory equality additionally accepts the
// canonical slug because upstream rows store either form.
func matchesQuery(l *domlst.Listing, q *query.Query, tokens []string) bool {
	if l.Status() != domlst.StatusActive {
		return false
	}
	if !matchesText(l, q.Text(), tokens) {
		return false
	}
	if c := q.Category(); c != "" && !strings.EqualFold(l.Category(), c) {
		return false
	}
	if sc := q.Subcategory(); sc != "" && !matchesSubcategory(l.Subcategory(), sc) {
		return false
	}
	if loc := q.Location(); loc != "" && !matchesLocation(l, loc) {
		return false
	}
	if minP := q.MinPrice(); minP != nil && l.Price() < *minP {
		return false
	}
	if maxP := q.MaxPrice(); maxP != nil && l.Price() > *maxP {
		return false
	}
	if c := q.Condition(); c != "" && l.Condition() != c {
		return false
	}
	return true
}

// matchesText applies the token containment rules: every token must
// substring-match at least one of title/description/tags. With no tokens but
// a non-empty raw query, the whole trimmed string is matched instead.
func matchesText(l *domlst.Listing, raw string, tokens []string) bool {
	if len(tokens) == 0 && raw == "" {
		return true
	}

	fields := []string{
		token.Fold(l.Title()),
		token.Fold(l.Description()),
		token.Fold(strings.Join(l.Tags(), " ")),
	}

	if len(tokens) == 0 {
		return anyContains(fields, token.Fold(raw))
	}

	for _, tok := range tokens {
		if !anyContains(fields, tok) {
			return false
		}
	}
	return true
}

func anyContains(fields []string, needle string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(f, needle) {
			return true
		}
	}
	return false
}

func matchesSubcategory(stored, want string) bool {
	if strings.EqualFold(stored, want) {
		return true
	}
	if slug, ok := taxonomy.SubcategorySlug(want); ok && strings.EqualFold(stored, slug) {
		return true
	}
	return false
}

func matchesLocation(l *domlst.Listing, loc string) bool {
	needle := token.Fold(loc)
	for _, f := range []string{l.Location(), l.City(), l.Province()} {
		if f != "" && strings.Contains(token.Fold(f), needle) {
			return true
		}
	}
	return false
}

// sortListings orders listings per the requested sort. Newest-first is the
// store's natural index order but is re-applied here so filtered subsets stay
// correct regardless of fetch order.
func sortListings(listings []domlst.Listing, s query.Sort) {
	switch s {
	case query.SortPriceLow:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price() < listings[j].Price()
		})
	case query.SortPriceHigh:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price() > listings[j].Price()
		})
	default:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt() > listings[j].CreatedAt()
		})
	}
}
