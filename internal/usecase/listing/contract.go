package listing

import (
	"context"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
)

// Repository defines the store contract for listing management.
type Repository interface {
	Put(ctx context.Context, l *domlst.Listing) error
	Get(ctx context.Context, id string) (domlst.Listing, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domlst.Status) (domlst.Listing, error)
	FetchRecent(ctx context.Context, limit int) ([]domlst.Listing, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}
