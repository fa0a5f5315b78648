// Package search orchestrates the two-stage listing search: a strict
// filtered query with a broad fuzzy-filtered fallback when it comes up empty.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
	"github.com/tradepost-io/tradepost/internal/domain/search/rank"
	"github.com/tradepost-io/tradepost/internal/domain/search/token"
	"github.com/tradepost-io/tradepost/internal/domain/taxonomy"
	"github.com/tradepost-io/tradepost/internal/metrics"
)

// DefaultFallbackScan is how many recent listings the broad fallback loads.
const DefaultFallbackScan = 120

// Service runs listing searches.
type Service struct {
	repo         Repository
	logger       *zap.Logger
	fallbackScan int
}

// New creates a search service.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, fallbackScan: DefaultFallbackScan}
}

// WithFallbackScan overrides the broad fallback scan size.
func (s *Service) WithFallbackScan(n int) *Service {
	if n > 0 {
		s.fallbackScan = n
	}
	return s
}

// Search returns an ordered, capped listing set for the query. Store
// failures are absorbed: they are logged and yield an empty result, so a
// broken search degrades to "no results" instead of an error page.
func (s *Service) Search(ctx context.Context, q *query.Query) []listing.Listing {
	start := time.Now()

	tokens := token.Tokenize(q.Text())
	resolved := resolveFilters(q)

	results, err := s.repo.Search(ctx, &resolved, tokens)
	if err != nil {
		s.logger.Error("strict search query failed",
			zap.String("query", q.Text()),
			zap.Error(err),
		)
		metrics.IncStoreError()
		metrics.ObserveSearch(metrics.SearchOutcomeError, time.Since(start))
		return nil
	}

	outcome := metrics.SearchOutcomeStrict
	if len(results) == 0 && len(tokens) > 0 {
		results, outcome = s.fallback(ctx, q, tokens, start)
		if outcome == metrics.SearchOutcomeError {
			return nil
		}
	}

	if len(tokens) > 0 {
		results = rank.Rank(results, tokens)
	}

	if len(results) == 0 {
		outcome = metrics.SearchOutcomeEmpty
	}
	metrics.ObserveSearch(outcome, time.Since(start))
	return results
}

// fallback loads a broad newest-first scan and keeps the fuzzy-relevant rows;
// when even the fuzzy filter matches nothing it returns the scan unfiltered,
// so the caller always has something to show.
func (s *Service) fallback(
	ctx context.Context, q *query.Query, tokens []string, start time.Time,
) ([]listing.Listing, string) {
	broad, err := s.repo.FetchRecent(ctx, s.fallbackScan)
	if err != nil {
		s.logger.Error("fallback scan failed",
			zap.String("query", q.Text()),
			zap.Error(err),
		)
		metrics.IncStoreError()
		metrics.ObserveSearch(metrics.SearchOutcomeError, time.Since(start))
		return nil, metrics.SearchOutcomeError
	}

	matched := make([]listing.Listing, 0, len(broad))
	for i := range broad {
		if rank.IsGoodMatch(&broad[i], tokens) {
			matched = append(matched, broad[i])
		}
	}

	outcome := metrics.SearchOutcomeFallbackFuzzy
	if len(matched) == 0 {
		matched = broad
		outcome = metrics.SearchOutcomeFallbackBroad
	}
	if len(matched) > q.Limit() {
		matched = matched[:q.Limit()]
	}
	return matched, outcome
}

// resolveFilters maps raw category/subcategory input to canonical display
// names. A resolution miss clears the filter rather than guessing.
func resolveFilters(q *query.Query) query.Query {
	var cat, sub string
	if q.Category() != "" {
		if r, ok := taxonomy.ResolveCategory(q.Category()); ok {
			cat = r.Display
		}
	}
	if q.Subcategory() != "" {
		if r, ok := taxonomy.ResolveSubcategory(q.Subcategory()); ok {
			sub = r.Display
		}
	}
	return q.WithResolved(cat, sub)
}
