// Package listing implements listing lifecycle operations: upsert, lookup,
// status transitions, deletion and the recent/category browse views.
package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/tradepost-io/tradepost/internal/domain"
	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/taxonomy"
)

// Pagination defaults for the recent-listings view.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Service manages listings.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
}

// New creates a listing service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
}

// WithPagination overrides the default and maximum page sizes.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// Upsert writes a listing. Category and subcategory are normalized to their
// canonical display names before storage so strict filters match later.
func (s *Service) Upsert(ctx context.Context, l domlst.Listing) (domlst.Listing, error) {
	canonical := l
	if cat := l.Category(); cat != "" {
		resolvedCat := taxonomy.NormalizeCategory(cat)
		sub := l.Subcategory()
		if sub != "" {
			if r, ok := taxonomy.ResolveSubcategory(sub); ok {
				sub = r.Display
			}
		}
		canonical = l.WithTaxonomy(resolvedCat, sub)
	}
	if err := s.repo.Put(ctx, &canonical); err != nil {
		return domlst.Listing{}, fmt.Errorf("put listing %s: %w", l.ID(), err)
	}
	return canonical, nil
}

// Get returns a listing by ID.
func (s *Service) Get(ctx context.Context, id string) (domlst.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return domlst.Listing{}, fmt.Errorf("%w: listing ID is required", domain.ErrInvalidArgument)
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a listing and its index entries.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: listing ID is required", domain.ErrInvalidArgument)
	}
	return s.repo.Delete(ctx, id)
}

// SetStatus transitions a listing to the given status and returns the
// updated listing.
func (s *Service) SetStatus(ctx context.Context, id string, status domlst.Status) (domlst.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return domlst.Listing{}, fmt.Errorf("%w: listing ID is required", domain.ErrInvalidArgument)
	}
	if !status.IsValid() {
		return domlst.Listing{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidArgument, status)
	}
	return s.repo.SetStatus(ctx, id, status)
}

// Recent returns active listings, newest first. A non-positive limit uses
// the default page size; oversized limits are clamped.
func (s *Service) Recent(ctx context.Context, limit int) ([]domlst.Listing, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	return s.repo.FetchRecent(ctx, limit)
}

// CategoryCounts returns the number of active listings per category slug.
func (s *Service) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	return s.repo.CountByCategory(ctx)
}
