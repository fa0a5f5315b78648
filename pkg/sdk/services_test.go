package tradepost

import (
	"context"
	"errors"
	"testing"
	"time"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
	healthuc "github.com/tradepost-io/tradepost/internal/usecase/health"
)

func domListing(t *testing.T, id string) domlst.Listing {
	t.Helper()
	l, err := domlst.New(
		id, "Espresso Machine", "gently used", []string{"kitchen"},
		"Appliances", "Coffee Makers",
		75, domlst.ConditionGood,
		"Halifax", "Nova Scotia", "Halifax, NS",
		1700000000000,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestListingUpsertRoundTrip(t *testing.T) {
	uc := &mockListingUC{
		upsertFn: func(_ context.Context, l domlst.Listing) (domlst.Listing, error) {
			return l, nil
		},
	}
	svc := &ListingService{svc: uc}

	got, err := svc.Upsert(context.Background(), Listing{
		ID:        "ad-1",
		Title:     "Espresso Machine",
		Category:  "Appliances",
		Price:     75,
		Condition: "good",
		CreatedAt: time.UnixMilli(1700000000000).UTC(),
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if got.ID != "ad-1" || got.Status != "active" {
		t.Errorf("got %+v, want active ad-1", got)
	}
	if !got.CreatedAt.Equal(time.UnixMilli(1700000000000).UTC()) {
		t.Errorf("created_at = %v, want supplied timestamp", got.CreatedAt)
	}
}

func TestListingUpsertRejectsInvalid(t *testing.T) {
	svc := &ListingService{svc: &mockListingUC{}}

	_, err := svc.Upsert(context.Background(), Listing{ID: "ad-1"})
	if !errors.Is(err, ErrInvalidListing) {
		t.Fatalf("err = %v, want ErrInvalidListing", err)
	}
}

func TestListingGetNotFound(t *testing.T) {
	uc := &mockListingUC{
		getFn: func(_ context.Context, _ string) (domlst.Listing, error) {
			return domlst.Listing{}, ErrListingNotFound
		},
	}
	svc := &ListingService{svc: uc}

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("err = %v, want ErrListingNotFound", err)
	}
}

func TestClientSearchClampsLimit(t *testing.T) {
	var gotLimit int
	c := &Client{
		searchSvc: &mockSearchUC{
			searchFn: func(_ context.Context, q *query.Query) []domlst.Listing {
				gotLimit = q.Limit()
				return nil
			},
		},
		searchLimit: 60,
	}

	if _, err := c.Search(context.Background(), SearchQuery{Text: "iphone", Limit: 500}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotLimit != 60 {
		t.Errorf("limit = %d, want clamped 60", gotLimit)
	}

	if _, err := c.Search(context.Background(), SearchQuery{Text: "iphone"}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotLimit != 60 {
		t.Errorf("default limit = %d, want 60", gotLimit)
	}
}

func TestClientSearchConvertsResults(t *testing.T) {
	c := &Client{
		searchSvc: &mockSearchUC{
			searchFn: func(_ context.Context, _ *query.Query) []domlst.Listing {
				return []domlst.Listing{domListing(t, "ad-1")}
			},
		},
		searchLimit: 60,
	}

	got, err := c.Search(context.Background(), SearchQuery{Text: "espresso"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Espresso Machine" {
		t.Fatalf("got %+v, want the espresso listing", got)
	}
}

func TestClientSearchRejectsBadSort(t *testing.T) {
	c := &Client{searchSvc: &mockSearchUC{}, searchLimit: 60}

	_, err := c.Search(context.Background(), SearchQuery{Sort: "alphabetical"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestClientHealth(t *testing.T) {
	c := &Client{
		healthSvc: &mockHealthUC{
			checkFn: func(_ context.Context) healthuc.Report {
				return healthuc.Report{
					Status: healthuc.Healthy,
					Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
				}
			},
		},
	}

	h := c.Health(context.Background())
	if h.Status != "ok" || h.Checks["database"] != "ok" {
		t.Fatalf("got %+v, want healthy", h)
	}
}

func TestResolveHelpers(t *testing.T) {
	if c, ok := ResolveCategory("electroncs"); !ok || c.Name != "Electronics" {
		t.Errorf("ResolveCategory = %+v %v, want Electronics", c, ok)
	}
	if _, ok := ResolveSubcategory("all"); ok {
		t.Error("sentinel \"all\" should not resolve")
	}
	if len(Categories()) == 0 {
		t.Error("Categories returned nothing")
	}
	if len(Subcategories("electronics")) == 0 {
		t.Error("Subcategories(electronics) returned nothing")
	}
}
