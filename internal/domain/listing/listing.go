// Package listing defines the Listing aggregate consumed by search and
// moderation.
package listing

import (
	"fmt"
	"regexp"

	"github.com/tradepost-io/tradepost/internal/domain"
)

// Status is the moderation lifecycle state of a listing.
type Status string

// Listing lifecycle states.
const (
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusSold    Status = "sold"
	StatusRemoved Status = "removed"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusSold, StatusRemoved:
		return true
	}
	return false
}

// Condition describes the physical state of the advertised item.
type Condition string

// Item conditions.
const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionSalvage Condition = "salvage"
)

// IsValid reports whether c is a known condition. Empty is allowed (unset).
func (c Condition) IsValid() bool {
	switch c {
	case "", ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionSalvage:
		return true
	}
	return false
}

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxTitleLen and MaxDescriptionLen bound user-supplied text.
const (
	MaxTitleLen       = 256
	MaxDescriptionLen = 8192
)

// Listing is an immutable classified ad (value object).
type Listing struct {
	id          string
	title       string
	description string
	tags        []string
	category    string
	subcategory string
	price       float64
	condition   Condition
	city        string
	province    string
	location    string
	status      Status
	createdAt   int64 // unix milliseconds
}

// New validates and creates a Listing. Status defaults to active and
// createdAt is set by the caller (storage hydration uses Reconstruct).
func New(
	id, title, description string,
	tags []string,
	category, subcategory string,
	price float64,
	condition Condition,
	city, province, location string,
	createdAt int64,
) (Listing, error) {
	if id == "" {
		return Listing{}, fmt.Errorf("%w: listing ID is required", domain.ErrInvalidListing)
	}
	if len(id) > 128 {
		return Listing{}, fmt.Errorf("%w: listing ID too long (max 128)", domain.ErrInvalidListing)
	}
	if !idRegex.MatchString(id) {
		return Listing{}, fmt.Errorf(
			"%w: listing ID must be alphanumeric with underscores and hyphens", domain.ErrInvalidListing)
	}
	if title == "" {
		return Listing{}, fmt.Errorf("%w: title is required", domain.ErrInvalidListing)
	}
	if len(title) > MaxTitleLen {
		return Listing{}, fmt.Errorf("%w: title too long (max %d)", domain.ErrInvalidListing, MaxTitleLen)
	}
	if len(description) > MaxDescriptionLen {
		return Listing{}, fmt.Errorf(
			"%w: description too long (max %d)", domain.ErrInvalidListing, MaxDescriptionLen)
	}
	if price < 0 {
		return Listing{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidListing)
	}
	if !condition.IsValid() {
		return Listing{}, fmt.Errorf("%w: unknown condition %q", domain.ErrInvalidListing, condition)
	}

	return Listing{
		id:          id,
		title:       title,
		description: description,
		tags:        cloneStrings(tags),
		category:    category,
		subcategory: subcategory,
		price:       price,
		condition:   condition,
		city:        city,
		province:    province,
		location:    location,
		status:      StatusActive,
		createdAt:   createdAt,
	}, nil
}

// Reconstruct creates a Listing without validation (storage hydration).
func Reconstruct(
	id, title, description string,
	tags []string,
	category, subcategory string,
	price float64,
	condition Condition,
	city, province, location string,
	status Status,
	createdAt int64,
) Listing {
	return Listing{
		id: id, title: title, description: description, tags: tags,
		category: category, subcategory: subcategory,
		price: price, condition: condition,
		city: city, province: province, location: location,
		status: status, createdAt: createdAt,
	}
}

// ID returns the listing identifier.
func (l *Listing) ID() string { return l.id }

// Title returns the listing title.
func (l *Listing) Title() string { return l.title }

// Description returns the listing description.
func (l *Listing) Description() string { return l.description }

// Tags returns the free-form tag list.
func (l *Listing) Tags() []string { return l.tags }

// Category returns the category display name.
func (l *Listing) Category() string { return l.category }

// Subcategory returns the subcategory display name or slug (upstream data is
// stored inconsistently; matching must accept both).
func (l *Listing) Subcategory() string { return l.subcategory }

// Price returns the asking price.
func (l *Listing) Price() float64 { return l.price }

// Condition returns the item condition.
func (l *Listing) Condition() Condition { return l.condition }

// City returns the seller city.
func (l *Listing) City() string { return l.city }

// Province returns the seller province.
func (l *Listing) Province() string { return l.province }

// Location returns the free-form location string.
func (l *Listing) Location() string { return l.location }

// Status returns the moderation status.
func (l *Listing) Status() Status { return l.status }

// CreatedAt returns the creation time in unix milliseconds.
func (l *Listing) CreatedAt() int64 { return l.createdAt }

// WithStatus returns a copy with the given status set.
func (l *Listing) WithStatus(s Status) Listing {
	c := *l
	c.status = s
	return c
}

// WithTaxonomy returns a copy with the category and subcategory replaced.
func (l *Listing) WithTaxonomy(category, subcategory string) Listing {
	c := *l
	c.category = category
	c.subcategory = subcategory
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
