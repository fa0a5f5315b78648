// Package domain holds sentinel errors shared across the service layers.
package domain

import "errors"

var (
	// ErrListingNotFound signals a missing listing.
	ErrListingNotFound = errors.New("listing not found")
	// ErrInvalidListing signals a listing that fails validation.
	ErrInvalidListing = errors.New("invalid listing")
	// ErrInvalidArgument signals a malformed request parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)
