package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mehran282/off-board-v1/models"
)

// MemStore is an in-memory Store with the same predicate, ordering and
// grouping semantics as the SQL adapter. It backs the engine and handler
// test suites and small fixtures.
type MemStore struct {
	mu   sync.RWMutex
	rows map[EntityType][]Entity
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[EntityType][]Entity)}
}

// Add appends rows for an entity type.
func (s *MemStore) Add(entity EntityType, rows ...Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[entity] = append(s.rows[entity], rows...)
}

// Reset removes all rows of an entity type.
func (s *MemStore) Reset(entity EntityType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, entity)
}

// Count implements Store.
func (s *MemStore) Count(ctx context.Context, entity EntityType, p Predicate) (int64, error) {
	matched, err := s.matching(entity, p)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

// Find implements Store.
func (s *MemStore) Find(ctx context.Context, entity EntityType, p Predicate, key SortKey, skip, take int) ([]Entity, error) {
	matched, err := s.matching(entity, p)
	if err != nil {
		return nil, err
	}
	if err := sortEntities(matched, entity, key); err != nil {
		return nil, err
	}
	if skip < 0 {
		skip = 0
	}
	if skip >= len(matched) {
		return []Entity{}, nil
	}
	end := skip + take
	if take < 0 || end > len(matched) {
		end = len(matched)
	}
	out := make([]Entity, end-skip)
	copy(out, matched[skip:end])
	return out, nil
}

// GroupCount implements Store. Rows with an absent dimension value are
// excluded; output is ordered count DESC, value ASC.
func (s *MemStore) GroupCount(ctx context.Context, entity EntityType, p Predicate, dimension string) ([]Facet, error) {
	matched, err := s.matching(entity, p)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for _, e := range matched {
		v, present, err := fieldOf(e, dimension)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}
		sv, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("dimension %q of %T is not textual", dimension, e)
		}
		counts[sv]++
	}
	facets := make([]Facet, 0, len(counts))
	for v, c := range counts {
		facets = append(facets, Facet{Value: v, Count: c})
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Value < facets[j].Value
	})
	return facets, nil
}

func (s *MemStore) matching(entity EntityType, p Predicate) ([]Entity, error) {
	s.mu.RLock()
	rows := make([]Entity, len(s.rows[entity]))
	copy(rows, s.rows[entity])
	s.mu.RUnlock()

	if p.IsNone() {
		return []Entity{}, nil
	}
	out := make([]Entity, 0, len(rows))
	for _, e := range rows {
		ok, err := matches(e, p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func matches(e Entity, p Predicate) (bool, error) {
	for _, c := range p.All {
		ok, err := evalCondition(e, c)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if len(p.Any) > 0 {
		hit := false
		for _, c := range p.Any {
			ok, err := evalCondition(e, c)
			if err != nil {
				return false, err
			}
			if ok {
				hit = true
				break
			}
		}
		if !hit {
			return false, nil
		}
	}
	return true, nil
}

func evalCondition(e Entity, c Condition) (bool, error) {
	v, present, err := fieldOf(e, c.Field)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case OpEq:
		if !present {
			return false, nil
		}
		return v == c.Value, nil
	case OpGte:
		if !present {
			return false, nil
		}
		fv, ok := v.(float64)
		if !ok {
			return false, fmt.Errorf("field %q of %T is not numeric", c.Field, e)
		}
		threshold, ok := c.Value.(float64)
		if !ok {
			return false, fmt.Errorf("gte threshold for %q is not numeric", c.Field)
		}
		return fv >= threshold, nil
	case OpContains:
		if !present {
			return false, nil
		}
		sv, ok := v.(string)
		if !ok {
			return false, fmt.Errorf("field %q of %T is not textual", c.Field, e)
		}
		q, ok := c.Value.(string)
		if !ok {
			return false, fmt.Errorf("contains value for %q is not textual", c.Field)
		}
		return strings.Contains(strings.ToLower(sv), strings.ToLower(q)), nil
	case OpIn:
		if !present {
			return false, nil
		}
		list, ok := c.Value.([]string)
		if !ok {
			return false, fmt.Errorf("in value for %q is not a string list", c.Field)
		}
		for _, candidate := range list {
			if v == candidate {
				return true, nil
			}
		}
		return false, nil
	}
	return false, fmt.Errorf("unknown predicate op %q", c.Op)
}

// fieldOf resolves a logical field on a concrete model. present=false
// means the stored value is NULL.
func fieldOf(e Entity, field string) (interface{}, bool, error) {
	switch row := e.(type) {
	case models.Offer:
		switch field {
		case FieldID:
			return row.ID, true, nil
		case FieldRetailerID:
			return row.RetailerID, true, nil
		case FieldFlyerID:
			return optString(row.FlyerID)
		case FieldCategory:
			return optString(row.Category)
		case FieldBrand:
			return optString(row.Brand)
		case FieldName:
			return row.ProductName, true, nil
		case FieldDiscountPercentage:
			return optFloat(row.DiscountPercentage)
		}
	case models.Flyer:
		switch field {
		case FieldID:
			return row.ID, true, nil
		case FieldRetailerID:
			return row.RetailerID, true, nil
		case FieldName:
			return row.Title, true, nil
		}
	case models.Retailer:
		switch field {
		case FieldID:
			return row.ID, true, nil
		case FieldCategory:
			return row.Category, true, nil
		case FieldName:
			return row.Name, true, nil
		}
	case models.Product:
		switch field {
		case FieldID:
			return row.ID, true, nil
		case FieldCategory:
			return optString(row.Category)
		case FieldBrand:
			return optString(row.Brand)
		case FieldName:
			return row.Name, true, nil
		}
	case models.Store:
		switch field {
		case FieldID:
			return row.ID, true, nil
		case FieldRetailerID:
			return row.RetailerID, true, nil
		case FieldCity:
			return row.City, true, nil
		case FieldName:
			return row.City, true, nil
		}
	default:
		return nil, false, fmt.Errorf("unknown entity %T", e)
	}
	return nil, false, fmt.Errorf("unknown field %q for %T", field, e)
}

func optString(v *string) (interface{}, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	return *v, true, nil
}

func optFloat(v *float64) (interface{}, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	return *v, true, nil
}

// sortEntities orders rows by the sort key with the id ASC tie-break.
func sortEntities(rows []Entity, entity EntityType, key SortKey) error {
	var sortErr error
	less := func(a, b Entity) bool {
		switch key {
		case SortDiscountDesc:
			av, aok := discountOf(a)
			bv, bok := discountOf(b)
			if aok != bok {
				return aok // rows with a discount sort before NULLs
			}
			if aok && av != bv {
				return av > bv
			}
		case SortValidityDesc:
			av, aok := validityOf(a)
			bv, bok := validityOf(b)
			if aok != bok {
				return aok
			}
			if aok && !av.Equal(bv) {
				return av.After(bv)
			}
		case SortNameAsc:
			av, bv := nameOf(a), nameOf(b)
			if av != bv {
				return av < bv
			}
		case SortPriceAsc:
			ao, aok := a.(models.Offer)
			bo, bok := b.(models.Offer)
			if !aok || !bok {
				sortErr = fmt.Errorf("price sort on non-offer entity %q", entity)
				return false
			}
			if ao.CurrentPrice != bo.CurrentPrice {
				return ao.CurrentPrice < bo.CurrentPrice
			}
		default:
			sortErr = fmt.Errorf("unknown sort key %q", key)
			return false
		}
		return a.EntityID() < b.EntityID()
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	return sortErr
}

func discountOf(e Entity) (float64, bool) {
	if o, ok := e.(models.Offer); ok && o.DiscountPercentage != nil {
		return *o.DiscountPercentage, true
	}
	return 0, false
}

func validityOf(e Entity) (time.Time, bool) {
	switch row := e.(type) {
	case models.Flyer:
		return row.ValidUntil, true
	case models.Offer:
		if row.ValidUntil != nil {
			return *row.ValidUntil, true
		}
	}
	return time.Time{}, false
}

func nameOf(e Entity) string {
	v, present, err := fieldOf(e, FieldName)
	if err != nil || !present {
		return ""
	}
	s, _ := v.(string)
	return s
}
