package chi

import (
	"time"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	healthuc "github.com/tradepost-io/tradepost/internal/usecase/health"
)

// errorCode is a machine-readable error identifier in error responses.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeListingNotFound  errorCode = "listing_not_found"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type listingResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Category    string    `json:"category,omitempty"`
	Subcategory string    `json:"subcategory,omitempty"`
	Price       float64   `json:"price"`
	Condition   string    `json:"condition,omitempty"`
	City        string    `json:"city,omitempty"`
	Province    string    `json:"province,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type upsertListingRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`
	Price       float64    `json:"price"`
	Condition   string     `json:"condition"`
	City        string     `json:"city"`
	Province    string     `json:"province"`
	Location    string     `json:"location"`
	CreatedAt   *time.Time `json:"created_at"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type listingListResponse struct {
	Items []listingResponse `json:"items"`
	Total int               `json:"total"`
}

type subcategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type categoryResponse struct {
	Name          string                `json:"name"`
	Slug          string                `json:"slug"`
	ActiveCount   int64                 `json:"active_count"`
	Subcategories []subcategoryResponse `json:"subcategories"`
}

type categoryListResponse struct {
	Items []categoryResponse `json:"items"`
}

type resolveResponse struct {
	Input    string `json:"input"`
	Resolved bool   `json:"resolved"`
	Name     string `json:"name,omitempty"`
	Slug     string `json:"slug,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func listingToResponse(l *domlst.Listing) listingResponse {
	return listingResponse{
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

func listingsToResponse(listings []domlst.Listing) listingListResponse {
	items := make([]listingResponse, len(listings))
	for i := range listings {
		items[i] = listingToResponse(&listings[i])
	}
	return listingListResponse{Items: items, Total: len(items)}
}

func healthToResponse(r healthuc.Report) healthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return healthResponse{Status: string(r.Status), Checks: checks}
}
