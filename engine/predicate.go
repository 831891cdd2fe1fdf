package engine

// Op is a predicate comparison operator.
type Op string

const (
	OpEq       Op = "eq"       // exact match on the stored value
	OpGte      Op = "gte"      // numeric >=; NULL never matches
	OpContains Op = "contains" // case-insensitive substring; NULL never matches
	OpIn       Op = "in"       // membership in a []string value
)

// Condition is a single field comparison.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Predicate is a pure, combinable filter value over one entity type.
// All conditions are ANDed; Any conditions (if present) form one ORed
// clause ANDed with the rest. A none predicate matches zero rows.
//
// Predicates carry no state and no side effects, so a single value can be
// shared between the paginated query, the facet aggregator and the
// grouped top-N selector without recomputation drift.
type Predicate struct {
	All  []Condition
	Any  []Condition
	none bool
}

// MatchAll returns the predicate that imposes no constraint.
func MatchAll() Predicate {
	return Predicate{}
}

// MatchNone returns the predicate that matches zero rows.
func MatchNone() Predicate {
	return Predicate{none: true}
}

// IsNone reports whether the predicate matches zero rows by construction.
func (p Predicate) IsNone() bool {
	return p.none
}

// And returns a copy of p with one more ANDed condition.
func (p Predicate) And(c Condition) Predicate {
	all := make([]Condition, 0, len(p.All)+1)
	all = append(all, p.All...)
	all = append(all, c)
	return Predicate{All: all, Any: p.Any, none: p.none}
}

// AnyOf returns a copy of p whose OR clause is exactly the given
// conditions. Used by the search matcher.
func (p Predicate) AnyOf(conds ...Condition) Predicate {
	anyConds := make([]Condition, len(conds))
	copy(anyConds, conds)
	return Predicate{All: p.All, Any: anyConds, none: p.none}
}

// Without returns a copy of p with every ANDed condition on the given
// field removed. The facet aggregator uses it to drop the faceted
// dimension's own filter before counting.
func (p Predicate) Without(field string) Predicate {
	all := make([]Condition, 0, len(p.All))
	for _, c := range p.All {
		if c.Field != field {
			all = append(all, c)
		}
	}
	return Predicate{All: all, Any: p.Any, none: p.none}
}
