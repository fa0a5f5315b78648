// Package query defines the validated search query value object.
package query

import (
	"fmt"
	"strings"

	"github.com/tradepost-io/tradepost/internal/domain"
	"github.com/tradepost-io/tradepost/internal/domain/listing"
)

// Sort is the requested result ordering.
type Sort string

// Supported sort orders.
const (
	SortNewest    Sort = "newest"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
)

// IsValid reports whether s is a known sort order.
func (s Sort) IsValid() bool {
	switch s {
	case SortNewest, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// MaxTextLength bounds the raw query string.
const MaxTextLength = 512

// Query is a validated search request: free text plus optional filters.
// Category and subcategory are carried as the caller supplied them; the
// orchestrator resolves them against the canonical taxonomy.
type Query struct {
	text        string
	category    string
	subcategory string
	location    string
	minPrice    *float64
	maxPrice    *float64
	condition   listing.Condition
	sort        Sort
	limit       int
}

// New validates and normalizes search parameters. Defaults: sort=newest.
// The limit is supplied by the caller (the orchestrator passes its strict cap).
func New(
	text, category, subcategory, location string,
	minPrice, maxPrice *float64,
	condition listing.Condition,
	sort Sort,
	limit int,
) (Query, error) {
	text = strings.TrimSpace(text)
	if len(text) > MaxTextLength {
		return Query{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidArgument, MaxTextLength)
	}
	if sort == "" {
		sort = SortNewest
	}
	if !sort.IsValid() {
		return Query{}, fmt.Errorf("%w: unknown sort order %q", domain.ErrInvalidArgument, sort)
	}
	if !condition.IsValid() {
		return Query{}, fmt.Errorf("%w: unknown condition %q", domain.ErrInvalidArgument, condition)
	}
	if minPrice != nil && *minPrice < 0 {
		return Query{}, fmt.Errorf("%w: min_price must not be negative", domain.ErrInvalidArgument)
	}
	if maxPrice != nil && *maxPrice < 0 {
		return Query{}, fmt.Errorf("%w: max_price must not be negative", domain.ErrInvalidArgument)
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return Query{}, fmt.Errorf("%w: min_price exceeds max_price", domain.ErrInvalidArgument)
	}
	if limit <= 0 {
		return Query{}, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
	}

	return Query{
		text:        text,
		category:    strings.TrimSpace(category),
		subcategory: strings.TrimSpace(subcategory),
		location:    strings.TrimSpace(location),
		minPrice:    minPrice,
		maxPrice:    maxPrice,
		condition:   condition,
		sort:        sort,
		limit:       limit,
	}, nil
}

// Text returns the trimmed free-text query.
func (q *Query) Text() string { return q.text }

// Category returns the raw category filter input.
func (q *Query) Category() string { return q.category }

// Subcategory returns the raw subcategory filter input.
func (q *Query) Subcategory() string { return q.subcategory }

// Location returns the location substring filter.
func (q *Query) Location() string { return q.location }

// MinPrice returns the inclusive lower price bound, nil when unset.
func (q *Query) MinPrice() *float64 { return q.minPrice }

// MaxPrice returns the inclusive upper price bound, nil when unset.
func (q *Query) MaxPrice() *float64 { return q.maxPrice }

// Condition returns the exact condition filter ("" when unset).
func (q *Query) Condition() listing.Condition { return q.condition }

// Sort returns the requested ordering.
func (q *Query) Sort() Sort { return q.sort }

// Limit returns the result cap.
func (q *Query) Limit() int { return q.limit }

// WithResolved returns a copy with category/subcategory replaced by their
// canonical forms ("" clears the filter).
func (q *Query) WithResolved(category, subcategory string) Query {
	c := *q
	c.category = category
	c.subcategory = subcategory
	return c
}
