package engine

import (
	"context"
	"strings"
)

// SearchPredicate builds the degraded search predicate: an OR of
// case-insensitive substring matches over product name, brand and
// category. This is containment, not scored relevance.
func SearchPredicate(query string) Predicate {
	q := strings.TrimSpace(query)
	if q == "" {
		return MatchNone()
	}
	return MatchAll().AnyOf(
		Condition{Field: FieldName, Op: OpContains, Value: q},
		Condition{Field: FieldBrand, Op: OpContains, Value: q},
		Condition{Field: FieldCategory, Op: OpContains, Value: q},
	)
}

// Search runs the search matcher over offers with the discount-desc
// ranking. An empty or whitespace-only query short-circuits to an empty
// result without touching the store.
func (e *Engine) Search(ctx context.Context, query string, page, limit int) (Result, error) {
	if strings.TrimSpace(query) == "" {
		return Result{Items: []Entity{}, Total: 0}, nil
	}
	return e.List(ctx, EntityOffer, SearchPredicate(query), SortDiscountDesc, page, limit)
}
