// Package listing implements the listing store over Redis hashes plus
// sorted-set recency indexes.
package listing

import (
	"context"
	"fmt"

	"github.com/tradepost-io/tradepost/internal/db"
	"github.com/tradepost-io/tradepost/internal/domain"
	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
	"github.com/tradepost-io/tradepost/internal/domain/taxonomy"
)

// store is the consumer interface for listings (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	ZAdd(ctx context.Context, key string, members ...db.ZMember) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZCard(ctx context.Context, key string) (int64, error)
	ZRevRange(ctx context.Context, key string, offset, limit int64) ([]string, error)
}

// Repo implements the listing store contracts of the use cases.
type Repo struct {
	store     store
	keyPrefix string
	maxScan   int64
}

// New creates a listing repository. maxScan bounds how many recent active
// listings a strict search evaluates.
func New(s store, keyPrefix string, maxScan int) *Repo {
	if maxScan <= 0 {
		maxScan = 1000
	}
	return &Repo{store: s, keyPrefix: keyPrefix, maxScan: int64(maxScan)}
}

func (r *Repo) listingKey(id string) string {
	return r.keyPrefix + "listing:" + id
}

func (r *Repo) activeIndexKey() string {
	return r.keyPrefix + "idx:active"
}

func (r *Repo) categoryIndexKey(slug string) string {
	return r.keyPrefix + "idx:category:" + slug
}

// Put stores a listing and maintains the recency indexes. Active listings
// are indexed globally and per canonical category; any other status removes
// the listing from both indexes.
func (r *Repo) Put(ctx context.Context, l *domlst.Listing) error {
	if err := r.store.HSet(ctx, r.listingKey(l.ID()), buildHashFields(l)); err != nil {
		return fmt.Errorf("put listing %s: %w", l.ID(), err)
	}
	return r.reindex(ctx, l)
}

// Get returns a listing by ID.
func (r *Repo) Get(ctx context.Context, id string) (domlst.Listing, error) {
	m, err := r.store.HGetAll(ctx, r.listingKey(id))
	if err != nil {
		return domlst.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	if len(m) == 0 {
		return domlst.Listing{}, domain.ErrListingNotFound
	}
	return parseHashFields(id, m), nil
}

// Delete removes a listing and its index entries.
func (r *Repo) Delete(ctx context.Context, id string) error {
	l, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.Del(ctx, r.listingKey(id)); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return r.deindex(ctx, &l)
}

// SetStatus transitions a listing's moderation status and re-indexes it.
func (r *Repo) SetStatus(ctx context.Context, id string, status domlst.Status) (domlst.Listing, error) {
	l, err := r.Get(ctx, id)
	if err != nil {
		return domlst.Listing{}, err
	}

	updated := l.WithStatus(status)
	if err := r.store.HSet(ctx, r.listingKey(id), map[string]string{"status": string(status)}); err != nil {
		return domlst.Listing{}, fmt.Errorf("set status %s: %w", id, err)
	}
	if err := r.reindex(ctx, &updated); err != nil {
		return domlst.Listing{}, err
	}
	return updated, nil
}

// Search evaluates the strict filtered query over recent active listings:
// token containment, canonical category/subcategory equality, location
// substring, inclusive price bounds, exact condition, then sort and cap.
func (r *Repo) Search(ctx context.Context, q *query.Query, tokens []string) ([]domlst.Listing, error) {
	candidates, err := r.fetchActive(ctx, r.maxScan)
	if err != nil {
		return nil, err
	}

	matched := make([]domlst.Listing, 0, q.Limit())
	for i := range candidates {
		if matchesQuery(&candidates[i], q, tokens) {
			matched = append(matched, candidates[i])
		}
	}

	sortListings(matched, q.Sort())
	if len(matched) > q.Limit() {
		matched = matched[:q.Limit()]
	}
	return matched, nil
}

// FetchRecent returns up to limit active listings, newest first. Backs the
// broad fallback scan.
func (r *Repo) FetchRecent(ctx context.Context, limit int) ([]domlst.Listing, error) {
	return r.fetchActive(ctx, int64(limit))
}

// CountByCategory returns active listing counts per canonical category slug.
func (r *Repo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, c := range taxonomy.Categories() {
		n, err := r.store.ZCard(ctx, r.categoryIndexKey(c.Slug))
		if err != nil {
			return nil, fmt.Errorf("count category %s: %w", c.Slug, err)
		}
		counts[c.Slug] = n
	}
	return counts, nil
}

// fetchActive loads up to limit active listings in index (newest-first) order.
func (r *Repo) fetchActive(ctx context.Context, limit int64) ([]domlst.Listing, error) {
	ids, err := r.store.ZRevRange(ctx, r.activeIndexKey(), 0, limit)
	if err != nil {
		return nil, fmt.Errorf("scan active index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.listingKey(id)
	}
	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load active listings: %w", err)
	}

	listings := make([]domlst.Listing, 0, len(rows))
	for i, m := range rows {
		if len(m) == 0 {
			// index entry without a hash -- listing was deleted out of band
			continue
		}
		listings = append(listings, parseHashFields(ids[i], m))
	}
	return listings, nil
}

// reindex adds an active listing to the recency indexes and drops any other
// status from them.
func (r *Repo) reindex(ctx context.Context, l *domlst.Listing) error {
	if l.Status() == domlst.StatusActive {
		member := db.ZMember{Member: l.ID(), Score: float64(l.CreatedAt())}
		if err := r.store.ZAdd(ctx, r.activeIndexKey(), member); err != nil {
			return fmt.Errorf("index listing %s: %w", l.ID(), err)
		}
		if slug, ok := categorySlug(l.Category()); ok {
			if err := r.store.ZAdd(ctx, r.categoryIndexKey(slug), member); err != nil {
				return fmt.Errorf("index listing %s in category %s: %w", l.ID(), slug, err)
			}
		}
		return nil
	}
	return r.deindex(ctx, l)
}

func (r *Repo) deindex(ctx context.Context, l *domlst.Listing) error {
	if err := r.store.ZRem(ctx, r.activeIndexKey(), l.ID()); err != nil {
		return fmt.Errorf("deindex listing %s: %w", l.ID(), err)
	}
	if slug, ok := categorySlug(l.Category()); ok {
		if err := r.store.ZRem(ctx, r.categoryIndexKey(slug), l.ID()); err != nil {
			return fmt.Errorf("deindex listing %s from category %s: %w", l.ID(), slug, err)
		}
	}
	return nil
}

func categorySlug(category string) (string, bool) {
	if category == "" {
		return "", false
	}
	resolved, ok := taxonomy.ResolveCategory(category)
	if !ok {
		return "", false
	}
	return resolved.Slug, true
}
