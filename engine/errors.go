package engine

import (
	"errors"
	"fmt"
)

// Error taxonomy. The first four are caller mistakes and must never be
// retried; ErrStoreUnavailable wraps whatever the store adapter returned
// and is surfaced as-is (no internal retries, no stale fallback).
var (
	ErrInvalidPaging         = errors.New("invalid paging parameters")
	ErrUnsupportedEntityType = errors.New("unsupported entity type")
	ErrUnsupportedSortKey    = errors.New("unsupported sort key")
	ErrUnsupportedDimension  = errors.New("unsupported facet dimension")
	ErrStoreUnavailable      = errors.New("backing store unavailable")
)

// storeErr tags a store adapter failure with ErrStoreUnavailable while
// keeping the cause in the chain, so callers can dispatch on either with
// errors.Is.
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
