package tradepost

import "github.com/tradepost-io/tradepost/internal/domain/taxonomy"

// Category is a canonical taxonomy entry.
type Category struct {
	Name string
	Slug string
}

// Categories returns the canonical category taxonomy.
func Categories() []Category {
	cats := taxonomy.Categories()
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = Category{Name: c.Display, Slug: c.Slug}
	}
	return out
}

// Subcategories returns the subcategories of a category slug.
func Subcategories(categorySlug string) []Category {
	subs := taxonomy.SubcategoriesOf(categorySlug)
	out := make([]Category, len(subs))
	for i, s := range subs {
		out[i] = Category{Name: s.Display, Slug: s.Slug}
	}
	return out
}

// ResolveCategory maps free-text input (aliases and typos included) to a
// canonical category. Returns false when nothing is close enough.
func ResolveCategory(input string) (Category, bool) {
	r, ok := taxonomy.ResolveCategory(input)
	if !ok {
		return Category{}, false
	}
	return Category{Name: r.Display, Slug: r.Slug}, true
}

// ResolveSubcategory maps free-text input to a canonical subcategory.
// The sentinel "all" resolves to nothing.
func ResolveSubcategory(input string) (Category, bool) {
	r, ok := taxonomy.ResolveSubcategory(input)
	if !ok {
		return Category{}, false
	}
	return Category{Name: r.Display, Slug: r.Slug}, true
}
