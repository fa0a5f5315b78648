package taxonomy

import "testing"

func TestResolveCategory_ExactForms(t *testing.T) {
	want := Resolved{Display: "Real Estate", Slug: "real-estate"}

	fromDisplay, ok := ResolveCategory("Real Estate")
	if !ok || fromDisplay != want {
		t.Errorf("ResolveCategory(display) = %+v, %v", fromDisplay, ok)
	}

	fromSlug, ok := ResolveCategory("real-estate")
	if !ok || fromSlug != want {
		t.Errorf("ResolveCategory(slug) = %+v, %v", fromSlug, ok)
	}
}

func TestResolveCategory_Alias(t *testing.T) {
	got, ok := ResolveCategory("property")
	if !ok || got.Slug != "real-estate" {
		t.Errorf("ResolveCategory(property) = %+v, %v", got, ok)
	}
}

func TestResolveCategory_Empty(t *testing.T) {
	if _, ok := ResolveCategory(""); ok {
		t.Error("empty input should not resolve")
	}
	if _, ok := ResolveCategory("!!!"); ok {
		t.Error("punctuation-only input should not resolve")
	}
}

func TestResolveCategory_RejectsShortNoise(t *testing.T) {
	if got, ok := ResolveCategory("TV"); ok {
		t.Errorf("ResolveCategory(TV) resolved to %+v, want miss", got)
	}
}

func TestResolveCategory_AcceptsTypo(t *testing.T) {
	got, ok := ResolveCategory("electroncs")
	if !ok || got.Slug != "electronics" {
		t.Errorf("ResolveCategory(electroncs) = %+v, %v", got, ok)
	}
}

func TestResolveCategory_RejectsUnrelated(t *testing.T) {
	if got, ok := ResolveCategory("spaceship-parts-and-rockets"); ok {
		t.Errorf("resolved unrelated input to %+v", got)
	}
}

func TestResolveSubcategory_NearMiss(t *testing.T) {
	got, ok := ResolveSubcategory("Coffee Makrs")
	if !ok {
		t.Fatal("expected Coffee Makrs to resolve")
	}
	want := Resolved{Display: "Coffee Makers", Slug: "coffee-makers"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveSubcategory_Sentinel(t *testing.T) {
	for _, in := range []string{"all", "All", " ALL "} {
		if _, ok := ResolveSubcategory(in); ok {
			t.Errorf("sentinel %q should not resolve", in)
		}
	}
}

func TestResolveSubcategory_Alias(t *testing.T) {
	got, ok := ResolveSubcategory("smartphones")
	if !ok || got.Slug != "mobile-phones" {
		t.Errorf("ResolveSubcategory(smartphones) = %+v, %v", got, ok)
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("electronics"); got != "Electronics" {
		t.Errorf("NormalizeCategory = %q, want Electronics", got)
	}
	// Best-effort: unresolvable input passes through unchanged.
	if got := NormalizeCategory("xyzzy plugh"); got != "xyzzy plugh" {
		t.Errorf("NormalizeCategory fallback = %q", got)
	}
}
