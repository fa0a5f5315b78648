package tradepost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tradepost-io/tradepost/internal/db"
	dbRedis "github.com/tradepost-io/tradepost/internal/db/redis"
	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
	listingrepo "github.com/tradepost-io/tradepost/internal/repository/listing"
	healthuc "github.com/tradepost-io/tradepost/internal/usecase/health"
	listinguc "github.com/tradepost-io/tradepost/internal/usecase/listing"
	searchuc "github.com/tradepost-io/tradepost/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "tradepost:"
	defaultSearchLimit      = 60
	defaultMaxScan          = 1000
)

// Internal interfaces for test substitution.
type listingUseCase interface {
	Upsert(ctx context.Context, l domlst.Listing) (domlst.Listing, error)
	Get(ctx context.Context, id string) (domlst.Listing, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domlst.Status) (domlst.Listing, error)
	Recent(ctx context.Context, limit int) ([]domlst.Listing, error)
	CategoryCounts(ctx context.Context) (map[string]int64, error)
}

type searchUseCase interface {
	Search(ctx context.Context, q *query.Query) []domlst.Listing
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the tradepost SDK entry point.
type Client struct {
	store       db.Store
	listingSvc  listingUseCase
	searchSvc   searchUseCase
	healthSvc   healthUseCase
	searchLimit int
	obs         *observer
}

// New creates a tradepost Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:   defaultKeyPrefix,
		searchLimit: defaultSearchLimit,
		maxScan:     defaultMaxScan,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("tradepost: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("tradepost: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("tradepost: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	repo := listingrepo.New(store, cfg.keyPrefix, cfg.maxScan)

	listingSvc := listinguc.New(repo)
	if cfg.defaultPageSize > 0 || cfg.maxPageSize > 0 {
		listingSvc = listingSvc.WithPagination(cfg.defaultPageSize, cfg.maxPageSize)
	}

	searchSvc := searchuc.New(repo, zap.NewNop())
	if cfg.fallbackScan > 0 {
		searchSvc = searchSvc.WithFallbackScan(cfg.fallbackScan)
	}

	searchLimit := cfg.searchLimit
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}

	return &Client{
		store:       store,
		listingSvc:  listingSvc,
		searchSvc:   searchSvc,
		healthSvc:   healthuc.New(store),
		searchLimit: searchLimit,
		obs:         obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Listings returns the listing management service.
func (c *Client) Listings() *ListingService {
	return &ListingService{svc: c.listingSvc, obs: c.obs}
}

// Search runs a listing search. Store failures surface as an empty result.
func (c *Client) Search(ctx context.Context, sq SearchQuery) ([]Listing, error) {
	start := time.Now()

	limit := sq.Limit
	if limit <= 0 || limit > c.searchLimit {
		limit = c.searchLimit
	}

	q, err := query.New(
		sq.Text, sq.Category, sq.Subcategory, sq.Location,
		sq.MinPrice, sq.MaxPrice,
		domlst.Condition(sq.Condition), query.Sort(sq.Sort),
		limit,
	)
	if err != nil {
		c.obs.observe("search", start, err)
		return nil, fmt.Errorf("tradepost: build query: %w", err)
	}

	results := c.searchSvc.Search(ctx, &q)
	c.obs.observe("search", start, nil)
	return listingsFromDomain(results), nil
}
