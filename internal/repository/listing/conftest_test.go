package listing

import (
	"context"
	"sort"
	"strconv"
	"testing"

	"github.com/tradepost-io/tradepost/internal/db"
	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
)

// mockStore is an in-memory stand-in for the Redis store.
type mockStore struct {
	hashes map[string]map[string]string
	zsets  map[string]map[string]float64

	hsetErr  error
	rangeErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		hashes: make(map[string]map[string]string),
		zsets:  make(map[string]map[string]float64),
	}
}

func (m *mockStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if m.hsetErr != nil {
		return m.hsetErr
	}
	h := m.hashes[key]
	if h == nil {
		h = make(map[string]string)
		m.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

func (m *mockStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	out := make(map[string]string, len(m.hashes[key]))
	for k, v := range m.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i], _ = m.HGetAll(ctx, k)
	}
	return out, nil
}

func (m *mockStore) Del(_ context.Context, key string) error {
	delete(m.hashes, key)
	return nil
}

func (m *mockStore) ZAdd(_ context.Context, key string, members ...db.ZMember) error {
	z := m.zsets[key]
	if z == nil {
		z = make(map[string]float64)
		m.zsets[key] = z
	}
	for _, mm := range members {
		z[mm.Member] = mm.Score
	}
	return nil
}

func (m *mockStore) ZRem(_ context.Context, key string, members ...string) error {
	for _, mm := range members {
		delete(m.zsets[key], mm)
	}
	return nil
}

func (m *mockStore) ZCard(_ context.Context, key string) (int64, error) {
	return int64(len(m.zsets[key])), nil
}

func (m *mockStore) ZRevRange(_ context.Context, key string, offset, limit int64) ([]string, error) {
	if m.rangeErr != nil {
		return nil, m.rangeErr
	}
	type pair struct {
		member string
		score  float64
	}
	all := make([]pair, 0, len(m.zsets[key]))
	for mm, s := range m.zsets[key] {
		all = append(all, pair{mm, s})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].member > all[j].member
	})
	out := []string{}
	for i := offset; i < int64(len(all)) && i < offset+limit; i++ {
		out = append(out, all[i].member)
	}
	return out, nil
}

func newTestRepo() (*Repo, *mockStore) {
	ms := newMockStore()
	return New(ms, "tradepost:", 1000), ms
}

var listingSeq = 0

// seedListing stores an active listing with sensible defaults.
func seedListing(t *testing.T, repo *Repo, id, title, category string, price float64, createdAt int64) domlst.Listing {
	t.Helper()
	listingSeq++
	l, err := domlst.New(
		id, title, "description of "+strconv.Itoa(listingSeq),
		nil, category, "", price, domlst.ConditionGood,
		"Halifax", "Nova Scotia", "Halifax, NS", createdAt,
	)
	if err != nil {
		t.Fatalf("New listing: %v", err)
	}
	if err := repo.Put(context.Background(), &l); err != nil {
		t.Fatalf("Put: %v", err)
	}
	return l
}

func mustQuery(
	t *testing.T,
	text, category, subcategory, location string,
	minPrice, maxPrice *float64,
	cond domlst.Condition,
	s query.Sort,
	limit int,
) *query.Query {
	t.Helper()
	q, err := query.New(text, category, subcategory, location, minPrice, maxPrice, cond, s, limit)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return &q
}

func f64(v float64) *float64 { return &v }
