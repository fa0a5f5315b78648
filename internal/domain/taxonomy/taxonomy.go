// Package taxonomy holds the canonical category tree of the marketplace and
// resolves free-text category input against it.
//
// The tables below are static: they are turned into immutable lookup
// structures once at init and never mutated afterwards.
package taxonomy

import (
	"strings"
	"unicode"

	"github.com/tradepost-io/tradepost/internal/domain/search/token"
)

// Category is one top-level canonical category.
type Category struct {
	Display string
	Slug    string
}

// Subcategory is a canonical subcategory scoped under a parent category.
type Subcategory struct {
	Display      string
	Slug         string
	CategorySlug string
}

// Resolved is the outcome of resolving user input to a canonical entry.
type Resolved struct {
	Display string
	Slug    string
}

// categories is the canonical top-level list. Order is presentation order.
var categories = []Category{
	{"Electronics", "electronics"},
	{"Appliances", "appliances"},
	{"Furniture", "furniture"},
	{"Vehicles", "vehicles"},
	{"Real Estate", "real-estate"},
	{"Fashion", "fashion"},
	{"Sports & Outdoors", "sports-outdoors"},
	{"Home & Garden", "home-garden"},
	{"Books & Media", "books-media"},
	{"Baby & Kids", "baby-kids"},
	{"Pets", "pets"},
	{"Services", "services"},
	{"Jobs", "jobs"},
	{"Free Stuff", "free-stuff"},
}

// subcategories maps parent category slug to its canonical subcategories.
var subcategories = map[string][]Subcategory{
	"electronics": {
		{"Mobile Phones", "mobile-phones", "electronics"},
		{"Computers & Laptops", "computers-laptops", "electronics"},
		{"TVs & Audio", "tvs-audio", "electronics"},
		{"Cameras", "cameras", "electronics"},
		{"Video Games", "video-games", "electronics"},
		{"Wearables", "wearables", "electronics"},
	},
	"appliances": {
		{"Refrigerators & Freezers", "refrigerators-freezers", "appliances"},
		{"Washers & Dryers", "washers-dryers", "appliances"},
		{"Coffee Makers", "coffee-makers", "appliances"},
		{"Microwaves", "microwaves", "appliances"},
		{"Vacuums", "vacuums", "appliances"},
	},
	"furniture": {
		{"Sofas & Couches", "sofas-couches", "furniture"},
		{"Beds & Mattresses", "beds-mattresses", "furniture"},
		{"Tables & Desks", "tables-desks", "furniture"},
		{"Chairs", "chairs", "furniture"},
		{"Storage & Shelving", "storage-shelving", "furniture"},
	},
	"vehicles": {
		{"Cars", "cars", "vehicles"},
		{"Motorcycles", "motorcycles", "vehicles"},
		{"Bicycles", "bicycles", "vehicles"},
		{"Auto Parts", "auto-parts", "vehicles"},
		{"Trailers", "trailers", "vehicles"},
	},
	"real-estate": {
		{"Apartments for Rent", "apartments-for-rent", "real-estate"},
		{"Houses for Sale", "houses-for-sale", "real-estate"},
		{"Rooms & Shared", "rooms-shared", "real-estate"},
		{"Commercial", "commercial", "real-estate"},
		{"Parking & Storage", "parking-storage", "real-estate"},
	},
	"fashion": {
		{"Men's Clothing", "mens-clothing", "fashion"},
		{"Women's Clothing", "womens-clothing", "fashion"},
		{"Shoes", "shoes", "fashion"},
		{"Bags & Accessories", "bags-accessories", "fashion"},
		{"Jewellery & Watches", "jewellery-watches", "fashion"},
	},
	"sports-outdoors": {
		{"Exercise Equipment", "exercise-equipment", "sports-outdoors"},
		{"Camping & Hiking", "camping-hiking", "sports-outdoors"},
		{"Winter Sports", "winter-sports", "sports-outdoors"},
		{"Team Sports", "team-sports", "sports-outdoors"},
		{"Fishing", "fishing", "sports-outdoors"},
	},
	"home-garden": {
		{"Tools", "tools", "home-garden"},
		{"Garden & Patio", "garden-patio", "home-garden"},
		{"Kitchen & Dining", "kitchen-dining", "home-garden"},
		{"Decor", "decor", "home-garden"},
		{"Lighting", "lighting", "home-garden"},
	},
	"books-media": {
		{"Books", "books", "books-media"},
		{"Music & Vinyl", "music-vinyl", "books-media"},
		{"Movies", "movies", "books-media"},
		{"Musical Instruments", "musical-instruments", "books-media"},
	},
	"baby-kids": {
		{"Strollers", "strollers", "baby-kids"},
		{"Toys", "toys", "baby-kids"},
		{"Kids Clothing", "kids-clothing", "baby-kids"},
	},
	"pets": {
		{"Dogs", "dogs", "pets"},
		{"Cats", "cats", "pets"},
		{"Pet Supplies", "pet-supplies", "pets"},
	},
	"services": {
		{"Moving", "moving", "services"},
		{"Cleaning", "cleaning", "services"},
		{"Lessons & Tutoring", "lessons-tutoring", "services"},
		{"Repairs", "repairs", "services"},
	},
	"jobs": {
		{"Full-Time", "full-time", "jobs"},
		{"Part-Time", "part-time", "jobs"},
		{"Gigs", "gigs", "jobs"},
	},
}

// categoryAliases maps common user phrasings to a canonical category slug.
var categoryAliases = map[string]string{
	"property":        "real-estate",
	"realestate":      "real-estate",
	"housing":         "real-estate",
	"cars":            "vehicles",
	"autos":           "vehicles",
	"automotive":      "vehicles",
	"home-appliances": "appliances",
	"tech":            "electronics",
	"gadgets":         "electronics",
	"clothing":        "fashion",
	"apparel":         "fashion",
	"sport":           "sports-outdoors",
	"outdoors":        "sports-outdoors",
	"garden":          "home-garden",
	"books":           "books-media",
	"free":            "free-stuff",
}

// subcategoryAliases maps common user phrasings to a canonical subcategory slug.
var subcategoryAliases = map[string]string{
	"cell-phones":   "mobile-phones",
	"cellphones":    "mobile-phones",
	"mobiles":       "mobile-phones",
	"smartphones":   "mobile-phones",
	"phones":        "mobile-phones",
	"laptops":       "computers-laptops",
	"computers":     "computers-laptops",
	"tvs":           "tvs-audio",
	"televisions":   "tvs-audio",
	"fridges":       "refrigerators-freezers",
	"refrigerators": "refrigerators-freezers",
	"couches":       "sofas-couches",
	"sofas":         "sofas-couches",
	"bikes":         "bicycles",
	"motorbikes":    "motorcycles",
	"flats":         "apartments-for-rent",
	"apartments":    "apartments-for-rent",
	"sneakers":      "shoes",
	"gaming":        "video-games",
}

// entry is a taxonomy row prepared for matching: the canonical pair plus its
// precomputed search keys (display-name key and slug).
type entry struct {
	display string
	slug    string
	keys    []string
}

var (
	categoryEntries    []entry
	subcategoryEntries []entry

	// bidirectional subcategory maps
	subSlugToDisplay map[string]string
	subDisplayToSlug map[string]string

	categoryBySlug    map[string]Category
	subcategoryBySlug map[string]Subcategory
)

func init() {
	categoryBySlug = make(map[string]Category, len(categories))
	categoryEntries = make([]entry, 0, len(categories))
	for _, c := range categories {
		categoryBySlug[c.Slug] = c
		categoryEntries = append(categoryEntries, newEntry(c.Display, c.Slug))
	}

	subSlugToDisplay = make(map[string]string)
	subDisplayToSlug = make(map[string]string)
	subcategoryBySlug = make(map[string]Subcategory)
	for _, c := range categories {
		for _, s := range subcategories[c.Slug] {
			subcategoryEntries = append(subcategoryEntries, newEntry(s.Display, s.Slug))
			subSlugToDisplay[s.Slug] = s.Display
			subDisplayToSlug[strings.ToLower(s.Display)] = s.Slug
			subcategoryBySlug[s.Slug] = s
		}
	}
}

func newEntry(display, slug string) entry {
	keys := []string{slug}
	if k := NormalizeKey(display); k != slug {
		keys = append(keys, k)
	}
	return entry{display: display, slug: slug, keys: keys}
}

// NormalizeKey turns free text into a slug-shaped search key: lowercase,
// diacritics stripped, "&" treated as a separator, runs of non-alphanumeric
// characters collapsed to single hyphens, leading/trailing hyphens trimmed.
func NormalizeKey(s string) string {
	s = token.Fold(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " ")

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Categories returns the canonical category list in presentation order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// SubcategoriesOf returns the canonical subcategories of a category slug.
func SubcategoriesOf(categorySlug string) []Subcategory {
	subs := subcategories[categorySlug]
	out := make([]Subcategory, len(subs))
	copy(out, subs)
	return out
}

// CategoryBySlug looks up a canonical category by slug.
func CategoryBySlug(slug string) (Category, bool) {
	c, ok := categoryBySlug[slug]
	return c, ok
}

// SubcategoryDisplay maps a subcategory slug to its display name.
func SubcategoryDisplay(slug string) (string, bool) {
	d, ok := subSlugToDisplay[slug]
	return d, ok
}

// SubcategorySlug maps a subcategory display name (case-insensitive) to its slug.
func SubcategorySlug(display string) (string, bool) {
	s, ok := subDisplayToSlug[strings.ToLower(display)]
	return s, ok
}
