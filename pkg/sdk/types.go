package tradepost

import (
	"time"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
)

// Listing is a classified ad.
type Listing struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Category    string
	Subcategory string
	Price       float64
	Condition   string
	City        string
	Province    string
	Location    string
	Status      string
	CreatedAt   time.Time
}

// SearchQuery describes one search. All fields are optional; an empty
// query matches nothing.
type SearchQuery struct {
	Text        string
	Category    string
	Subcategory string
	Location    string
	MinPrice    *float64
	MaxPrice    *float64
	Condition   string
	Sort        string // "newest" (default), "price-low", "price-high"
	Limit       int    // 0 uses the configured result cap
}

func listingFromDomain(l *domlst.Listing) Listing {
	return Listing{
		ID:          l.ID(),
		Title:       l.Title(),
		Description: l.Description(),
		Tags:        l.Tags(),
		Category:    l.Category(),
		Subcategory: l.Subcategory(),
		Price:       l.Price(),
		Condition:   string(l.Condition()),
		City:        l.City(),
		Province:    l.Province(),
		Location:    l.Location(),
		Status:      string(l.Status()),
		CreatedAt:   time.UnixMilli(l.CreatedAt()).UTC(),
	}
}

func listingsFromDomain(in []domlst.Listing) []Listing {
	out := make([]Listing, len(in))
	for i := range in {
		out[i] = listingFromDomain(&in[i])
	}
	return out
}

func (l Listing) toDomain() (domlst.Listing, error) {
	createdAt := l.CreatedAt.UnixMilli()
	if l.CreatedAt.IsZero() {
		createdAt = time.Now().UnixMilli()
	}
	return domlst.New(
		l.ID, l.Title, l.Description, l.Tags,
		l.Category, l.Subcategory,
		l.Price, domlst.Condition(l.Condition),
		l.City, l.Province, l.Location,
		createdAt,
	)
}
