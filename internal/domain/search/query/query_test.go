package query

import (
	"errors"
	"testing"

	"github.com/tradepost-io/tradepost/internal/domain"
	"github.com/tradepost-io/tradepost/internal/domain/listing"
)

func f64(v float64) *float64 { return &v }

func TestNew_Defaults(t *testing.T) {
	q, err := New("  iphone  ", "", "", "", nil, nil, "", "", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text() != "iphone" {
		t.Errorf("Text = %q, want trimmed iphone", q.Text())
	}
	if q.Sort() != SortNewest {
		t.Errorf("Sort = %q, want newest", q.Sort())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (Query, error)
	}{
		{"bad sort", func() (Query, error) {
			return New("x", "", "", "", nil, nil, "", "relevance", 60)
		}},
		{"bad condition", func() (Query, error) {
			return New("x", "", "", "", nil, nil, listing.Condition("mint"), "", 60)
		}},
		{"negative min", func() (Query, error) {
			return New("x", "", "", "", f64(-1), nil, "", "", 60)
		}},
		{"min above max", func() (Query, error) {
			return New("x", "", "", "", f64(100), f64(50), "", "", 60)
		}},
		{"zero limit", func() (Query, error) {
			return New("x", "", "", "", nil, nil, "", "", 0)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("error %v is not ErrInvalidArgument", err)
			}
		})
	}
}

func TestWithResolved(t *testing.T) {
	q, err := New("", "electronics", "all", "", nil, nil, "", "", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := q.WithResolved("Electronics", "")
	if r.Category() != "Electronics" || r.Subcategory() != "" {
		t.Errorf("WithResolved = %q/%q", r.Category(), r.Subcategory())
	}
	if q.Category() != "electronics" {
		t.Error("original query mutated")
	}
}
