package search

import (
	"context"

	"github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
)

// Repository defines the listing store contract for search operations.
type Repository interface {
	// Search runs the strict filtered query: token containment, canonical
	// category/subcategory equality, location, price bounds, condition,
	// sort and cap.
	Search(ctx context.Context, q *query.Query, tokens []string) ([]listing.Listing, error)

	// FetchRecent returns up to limit active listings, newest first.
	FetchRecent(ctx context.Context, limit int) ([]listing.Listing, error)
}
