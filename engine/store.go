package engine

import "context"

// Facet is a (value, count) summary over one dimension of the catalog.
type Facet struct {
	Value string `json:"name"`
	Count int64  `json:"count"`
}

// Store is the read-only accessor over the persisted catalog. The engine
// never writes; rows are owned and mutated by the ingestion pipeline on
// its own schedule.
//
// Implementations must honor predicate semantics exactly (see Op) and the
// ordering contracts:
//   - Find: total order by sort key, id ASC tie-break, then skip/take.
//   - GroupCount: rows with a NULL dimension value excluded, ordered by
//     count DESC, then value ASC.
//
// Count and Find are independent reads; the engine accepts that the store
// may be mutated between them.
type Store interface {
	Count(ctx context.Context, entity EntityType, p Predicate) (int64, error)
	Find(ctx context.Context, entity EntityType, p Predicate, sort SortKey, skip, take int) ([]Entity, error)
	GroupCount(ctx context.Context, entity EntityType, p Predicate, dimension string) ([]Facet, error)
}
