package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the geocoder had no match for the query.
	ErrNotFound = errors.New("location not found")
	// ErrEmptyQuery is a not-found that never reached the geocoder.
	ErrEmptyQuery = fmt.Errorf("%w: empty query", ErrNotFound)
	// ErrLookupFailed covers an unreachable or misbehaving geocoding service.
	ErrLookupFailed = errors.New("lookup failed")
	// ErrRateLimited is a lookup failure caused by the provider throttling us.
	ErrRateLimited = fmt.Errorf("%w: rate limited", ErrLookupFailed)
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrSaveFailed        = errors.New("failed to save location")
	// ErrNothingToShow is returned when a map is requested before anything was resolved.
	ErrNothingToShow = errors.New("no location to show")
)
