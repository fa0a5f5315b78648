package tradepost

import (
	"context"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
	healthuc "github.com/tradepost-io/tradepost/internal/usecase/health"
)

// --- listingUseCase mock ---

type mockListingUC struct {
	upsertFn func(ctx context.Context, l domlst.Listing) (domlst.Listing, error)
	getFn    func(ctx context.Context, id string) (domlst.Listing, error)
	deleteFn func(ctx context.Context, id string) error
	statusFn func(ctx context.Context, id string, status domlst.Status) (domlst.Listing, error)
	recentFn func(ctx context.Context, limit int) ([]domlst.Listing, error)
	countsFn func(ctx context.Context) (map[string]int64, error)
}

func (m *mockListingUC) Upsert(ctx context.Context, l domlst.Listing) (domlst.Listing, error) {
	return m.upsertFn(ctx, l)
}

func (m *mockListingUC) Get(ctx context.Context, id string) (domlst.Listing, error) {
	return m.getFn(ctx, id)
}

func (m *mockListingUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockListingUC) SetStatus(ctx context.Context, id string, status domlst.Status) (domlst.Listing, error) {
	return m.statusFn(ctx, id, status)
}

func (m *mockListingUC) Recent(ctx context.Context, limit int) ([]domlst.Listing, error) {
	return m.recentFn(ctx, limit)
}

func (m *mockListingUC) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	return m.countsFn(ctx)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, q *query.Query) []domlst.Listing
}

func (m *mockSearchUC) Search(ctx context.Context, q *query.Query) []domlst.Listing {
	return m.searchFn(ctx, q)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}
