package engine

import (
	"context"
	"fmt"
)

const (
	// DefaultPageSize is applied when the caller omits a limit.
	DefaultPageSize = 20
	// MaxPageSize caps the page window to avoid unbounded scans.
	MaxPageSize = 100
)

// Engine executes catalog queries against an injected Store. It holds no
// mutable state; any number of calls may run concurrently.
type Engine struct {
	store Store
}

// New creates an engine on top of the given store adapter.
func New(store Store) *Engine {
	return &Engine{store: store}
}

// Result is the outcome of a paginated query. Total counts every row
// matching the predicate ignoring pagination.
type Result struct {
	Items []Entity
	Total int64
}

// List runs the paginated sorted query: predicate + sort key + 1-based
// page window. Items are totally ordered by the sort key with an id ASC
// tie-break, so page N's last row and page N+1's first row are never
// ambiguous under ties.
//
// Total and Items come from two independent store reads; the ingestion
// pipeline may write between them. That eventual-consistency relaxation
// is accepted by contract.
func (e *Engine) List(ctx context.Context, entity EntityType, p Predicate, sort SortKey, page, limit int) (Result, error) {
	if page < 1 || limit <= 0 {
		return Result{}, fmt.Errorf("%w: page=%d limit=%d", ErrInvalidPaging, page, limit)
	}
	if !knownEntity(entity) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedEntityType, entity)
	}
	if !sort.SupportedBy(entity) {
		return Result{}, fmt.Errorf("%w: %q for entity %q", ErrUnsupportedSortKey, sort, entity)
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	total, err := e.store.Count(ctx, entity, p)
	if err != nil {
		return Result{}, storeErr(err)
	}

	items, err := e.store.Find(ctx, entity, p, sort, (page-1)*limit, limit)
	if err != nil {
		return Result{}, storeErr(err)
	}

	return Result{Items: items, Total: total}, nil
}

// Get fetches a single entity by id. The second return is false when no
// row matches.
func (e *Engine) Get(ctx context.Context, entity EntityType, id string) (Entity, bool, error) {
	if !knownEntity(entity) {
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedEntityType, entity)
	}
	p := MatchAll().And(Condition{Field: FieldID, Op: OpEq, Value: id})
	items, err := e.store.Find(ctx, entity, p, DefaultSort(entity), 0, 1)
	if err != nil {
		return nil, false, storeErr(err)
	}
	if len(items) == 0 {
		return nil, false, nil
	}
	return items[0], true, nil
}

// CountBy returns grouped counts over an arbitrary dimension under the
// given predicate, ordered count DESC then value ASC, NULL-valued rows
// excluded. Used for facet counts and the grouped top-N phase 1.
func (e *Engine) CountBy(ctx context.Context, entity EntityType, p Predicate, dimension string) ([]Facet, error) {
	if !knownEntity(entity) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEntityType, entity)
	}
	facets, err := e.store.GroupCount(ctx, entity, p, dimension)
	if err != nil {
		return nil, storeErr(err)
	}
	return facets, nil
}
