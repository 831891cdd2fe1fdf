package engine

import (
	"context"
	"fmt"
)

// Dimension is a facetable offer/product attribute.
type Dimension string

const (
	DimensionCategory Dimension = "category"
	DimensionBrand    Dimension = "brand"
)

// ParseDimension validates a facet dimension string from the API.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionCategory, DimensionBrand:
		return Dimension(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDimension, s)
}

// Facets computes group-by counts over one dimension under the active
// filters, with the faceted dimension's own filter excluded: a retailer
// or minDiscount filter still applies, but a category filter must not
// apply when counting category facets, otherwise the UI could never show
// counts for categories other than the selected one.
//
// Rows with a NULL dimension value are excluded. Output is ordered by
// count DESC, ties broken by value ASC.
func (e *Engine) Facets(ctx context.Context, entity EntityType, f Filter, dim Dimension) ([]Facet, error) {
	if _, err := ParseDimension(string(dim)); err != nil {
		return nil, err
	}
	p := f.Predicate().Without(string(dim))
	return e.CountBy(ctx, entity, p, string(dim))
}
