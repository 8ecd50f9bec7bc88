package domain

import "errors"

var (
	// ErrItemNotFound is the hard not-found failure: returned where a missing item must
	// reach the caller as an error instead of an empty result.
	ErrItemNotFound = errors.New("item not found")
	ErrNegativeID   = errors.New("id must be zero or positive")
)
