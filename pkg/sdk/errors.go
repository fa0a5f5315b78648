package tradepost

import "github.com/tradepost-io/tradepost/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrListingNotFound = domain.ErrListingNotFound
	ErrInvalidListing  = domain.ErrInvalidListing
	ErrInvalidArgument = domain.ErrInvalidArgument
)
