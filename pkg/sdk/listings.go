package tradepost

import (
	"context"
	"fmt"
	"time"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
)

// ListingService manages listings.
type ListingService struct {
	svc listingUseCase
	obs *observer
}

// Upsert writes a listing, normalizing its category and subcategory to the
// canonical taxonomy. Returns the stored listing.
func (s *ListingService) Upsert(ctx context.Context, l Listing) (out Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing_upsert", start, err) }()

	dl, err := l.toDomain()
	if err != nil {
		return Listing{}, fmt.Errorf("build listing: %w", err)
	}

	stored, err := s.svc.Upsert(ctx, dl)
	if err != nil {
		return Listing{}, err
	}
	return listingFromDomain(&stored), nil
}

// Get returns a listing by ID.
func (s *ListingService) Get(ctx context.Context, id string) (out Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing_get", start, err) }()

	l, err := s.svc.Get(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	return listingFromDomain(&l), nil
}

// Delete removes a listing.
func (s *ListingService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing_delete", start, err) }()

	return s.svc.Delete(ctx, id)
}

// SetStatus transitions a listing to the given status ("active", "paused",
// "sold" or "removed") and returns the updated listing.
func (s *ListingService) SetStatus(ctx context.Context, id, status string) (out Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing_set_status", start, err) }()

	l, err := s.svc.SetStatus(ctx, id, domlst.Status(status))
	if err != nil {
		return Listing{}, err
	}
	return listingFromDomain(&l), nil
}

// Recent returns active listings, newest first.
func (s *ListingService) Recent(ctx context.Context, limit int) (out []Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing_recent", start, err) }()

	listings, err := s.svc.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return listingsFromDomain(listings), nil
}

// CategoryCounts returns the number of active listings per category slug.
func (s *ListingService) CategoryCounts(ctx context.Context) (out map[string]int64, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing_category_counts", start, err) }()

	return s.svc.CategoryCounts(ctx)
}
