package engine

import "strings"

// Filter is the sparse set of optional list filters accepted by the API.
// Empty strings and nil pointers are absent filters and impose no
// constraint. The struct is closed (no free-form map) so the predicate
// builder stays exhaustive at compile time.
type Filter struct {
	RetailerID  string
	Category    string
	Brand       string
	Search      string
	MinDiscount *float64
}

// Predicate builds the logical AND of the filters that are present.
//
// An equality filter whose value exists nowhere in the catalog simply
// matches zero rows; that is not an error. Offers with a NULL
// discountPercentage never satisfy a present MinDiscount filter.
func (f Filter) Predicate() Predicate {
	p := MatchAll()
	if f.RetailerID != "" {
		p = p.And(Condition{Field: FieldRetailerID, Op: OpEq, Value: f.RetailerID})
	}
	if f.Category != "" {
		p = p.And(Condition{Field: FieldCategory, Op: OpEq, Value: f.Category})
	}
	if f.Brand != "" {
		p = p.And(Condition{Field: FieldBrand, Op: OpEq, Value: f.Brand})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p = p.And(Condition{Field: FieldName, Op: OpContains, Value: s})
	}
	if f.MinDiscount != nil {
		p = p.And(Condition{Field: FieldDiscountPercentage, Op: OpGte, Value: *f.MinDiscount})
	}
	return p
}
