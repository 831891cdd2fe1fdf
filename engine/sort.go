package engine

import "fmt"

// SortKey is one of the fixed orderings supported by the paginated query.
// Every ordering is made total by a secondary id ASC tie-break so that
// equal-ranked rows keep a stable position across repeated calls and
// across page boundaries.
type SortKey string

const (
	SortDiscountDesc SortKey = "discount-desc" // NULL discounts sort last
	SortValidityDesc SortKey = "validity-desc"
	SortNameAsc      SortKey = "name-asc"
	SortPriceAsc     SortKey = "price-asc"
)

// ParseSortKey validates a sort key string from the API.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortDiscountDesc, SortValidityDesc, SortNameAsc, SortPriceAsc:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSortKey, s)
}

// entitySortKeys lists which sort keys each entity type supports.
var entitySortKeys = map[EntityType]map[SortKey]bool{
	EntityOffer: {
		SortDiscountDesc: true,
		SortValidityDesc: true,
		SortNameAsc:      true,
		SortPriceAsc:     true,
	},
	EntityFlyer: {
		SortValidityDesc: true,
		SortNameAsc:      true,
	},
	EntityRetailer: {
		SortNameAsc: true,
	},
	EntityProduct: {
		SortNameAsc: true,
	},
	EntityStore: {
		SortNameAsc: true, // orders stores by city
	},
}

// SupportedBy reports whether the sort key applies to the entity type.
func (k SortKey) SupportedBy(e EntityType) bool {
	return entitySortKeys[e][k]
}

// DefaultSort returns the natural ordering of an entity type.
func DefaultSort(e EntityType) SortKey {
	switch e {
	case EntityOffer:
		return SortDiscountDesc
	case EntityFlyer:
		return SortValidityDesc
	default:
		return SortNameAsc
	}
}
