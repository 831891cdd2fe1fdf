package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/mehran282/off-board-v1/engine"
	"github.com/mehran282/off-board-v1/models"
	"gorm.io/gorm"
)

// GormStore implements engine.Store on top of GORM/Postgres. All access
// is read-only; rows are written by the scraper on its own schedule.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates the store adapter around an injected connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// entityMapping translates logical engine fields onto table columns.
type entityMapping struct {
	columns map[string]string
	sorts   map[engine.SortKey]string
}

var entityMappings = map[engine.EntityType]entityMapping{
	engine.EntityOffer: {
		columns: map[string]string{
			engine.FieldID:                 "id",
			engine.FieldRetailerID:         "retailer_id",
			engine.FieldFlyerID:            "flyer_id",
			engine.FieldCategory:           "category",
			engine.FieldBrand:              "brand",
			engine.FieldName:               "product_name",
			engine.FieldDiscountPercentage: "discount_percentage",
		},
		sorts: map[engine.SortKey]string{
			engine.SortDiscountDesc: "discount_percentage DESC NULLS LAST",
			engine.SortValidityDesc: "valid_until DESC NULLS LAST",
			engine.SortNameAsc:      "product_name ASC",
			engine.SortPriceAsc:     "current_price ASC",
		},
	},
	engine.EntityFlyer: {
		columns: map[string]string{
			engine.FieldID:         "id",
			engine.FieldRetailerID: "retailer_id",
			engine.FieldName:       "title",
		},
		sorts: map[engine.SortKey]string{
			engine.SortValidityDesc: "valid_until DESC",
			engine.SortNameAsc:      "title ASC",
		},
	},
	engine.EntityRetailer: {
		columns: map[string]string{
			engine.FieldID:       "id",
			engine.FieldCategory: "category",
			engine.FieldName:     "name",
		},
		sorts: map[engine.SortKey]string{
			engine.SortNameAsc: "name ASC",
		},
	},
	engine.EntityProduct: {
		columns: map[string]string{
			engine.FieldID:       "id",
			engine.FieldCategory: "category",
			engine.FieldBrand:    "brand",
			engine.FieldName:     "name",
		},
		sorts: map[engine.SortKey]string{
			engine.SortNameAsc: "name ASC",
		},
	},
	engine.EntityStore: {
		columns: map[string]string{
			engine.FieldID:         "id",
			engine.FieldRetailerID: "retailer_id",
			engine.FieldCity:       "city",
			engine.FieldName:       "city",
		},
		sorts: map[engine.SortKey]string{
			engine.SortNameAsc: "city ASC",
		},
	},
}

func mappingFor(entity engine.EntityType) (entityMapping, error) {
	m, ok := entityMappings[entity]
	if !ok {
		return entityMapping{}, fmt.Errorf("no table mapping for entity %q", entity)
	}
	return m, nil
}

func modelFor(entity engine.EntityType) interface{} {
	switch entity {
	case engine.EntityOffer:
		return &models.Offer{}
	case engine.EntityFlyer:
		return &models.Flyer{}
	case engine.EntityRetailer:
		return &models.Retailer{}
	case engine.EntityProduct:
		return &models.Product{}
	case engine.EntityStore:
		return &models.Store{}
	}
	return nil
}

// Count implements engine.Store.
func (s *GormStore) Count(ctx context.Context, entity engine.EntityType, p engine.Predicate) (int64, error) {
	m, err := mappingFor(entity)
	if err != nil {
		return 0, err
	}
	tx, err := s.scoped(ctx, entity, m, p)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", entity, err)
	}
	return total, nil
}

// Find implements engine.Store. Ordering is the sort key plus the id ASC
// tie-break, so repeated calls return byte-identical pages.
func (s *GormStore) Find(ctx context.Context, entity engine.EntityType, p engine.Predicate, key engine.SortKey, skip, take int) ([]engine.Entity, error) {
	m, err := mappingFor(entity)
	if err != nil {
		return nil, err
	}
	order, ok := m.sorts[key]
	if !ok {
		return nil, fmt.Errorf("no sort mapping for %q on entity %q", key, entity)
	}
	tx, err := s.scoped(ctx, entity, m, p)
	if err != nil {
		return nil, err
	}
	tx = tx.Order(order + ", id ASC").Offset(skip).Limit(take)

	switch entity {
	case engine.EntityOffer:
		var rows []models.Offer
		if err := tx.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("find %s: %w", entity, err)
		}
		return asEntities(rows), nil
	case engine.EntityFlyer:
		var rows []models.Flyer
		if err := tx.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("find %s: %w", entity, err)
		}
		return asEntities(rows), nil
	case engine.EntityRetailer:
		var rows []models.Retailer
		if err := tx.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("find %s: %w", entity, err)
		}
		return asEntities(rows), nil
	case engine.EntityProduct:
		var rows []models.Product
		if err := tx.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("find %s: %w", entity, err)
		}
		return asEntities(rows), nil
	case engine.EntityStore:
		var rows []models.Store
		if err := tx.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("find %s: %w", entity, err)
		}
		return asEntities(rows), nil
	}
	return nil, fmt.Errorf("no model for entity %q", entity)
}

// GroupCount implements engine.Store: a single GROUP BY over the
// dimension column, NULL values excluded, count DESC then value ASC.
func (s *GormStore) GroupCount(ctx context.Context, entity engine.EntityType, p engine.Predicate, dimension string) ([]engine.Facet, error) {
	m, err := mappingFor(entity)
	if err != nil {
		return nil, err
	}
	col, ok := m.columns[dimension]
	if !ok {
		return nil, fmt.Errorf("no column mapping for dimension %q on entity %q", dimension, entity)
	}
	tx, err := s.scoped(ctx, entity, m, p)
	if err != nil {
		return nil, err
	}
	var facets []engine.Facet
	err = tx.
		Select(col + " AS value, COUNT(*) AS count").
		Where(col + " IS NOT NULL").
		Group(col).
		Order("count DESC, value ASC").
		Scan(&facets).Error
	if err != nil {
		return nil, fmt.Errorf("group count %s by %s: %w", entity, dimension, err)
	}
	return facets, nil
}

// scoped builds the predicate-filtered query root.
func (s *GormStore) scoped(ctx context.Context, entity engine.EntityType, m entityMapping, p engine.Predicate) (*gorm.DB, error) {
	tx := s.db.WithContext(ctx).Model(modelFor(entity))
	where, args, err := buildWhere(m, p)
	if err != nil {
		return nil, err
	}
	if where != "" {
		tx = tx.Where(where, args...)
	}
	return tx, nil
}

// buildWhere renders a predicate into one SQL condition string. An empty
// string means no constraint.
func buildWhere(m entityMapping, p engine.Predicate) (string, []interface{}, error) {
	if p.IsNone() {
		return "1 = 0", nil, nil
	}
	var exprs []string
	var args []interface{}
	for _, c := range p.All {
		expr, arg, err := conditionSQL(m, c)
		if err != nil {
			return "", nil, err
		}
		exprs = append(exprs, expr)
		args = append(args, arg)
	}
	if len(p.Any) > 0 {
		var ors []string
		for _, c := range p.Any {
			expr, arg, err := conditionSQL(m, c)
			if err != nil {
				return "", nil, err
			}
			ors = append(ors, expr)
			args = append(args, arg)
		}
		exprs = append(exprs, "("+strings.Join(ors, " OR ")+")")
	}
	return strings.Join(exprs, " AND "), args, nil
}

// conditionSQL renders one condition. Comparisons against NULL columns
// evaluate to NULL in SQL and therefore never match, which is exactly the
// contract for gte and contains on optional fields.
func conditionSQL(m entityMapping, c engine.Condition) (string, interface{}, error) {
	col, ok := m.columns[c.Field]
	if !ok {
		return "", nil, fmt.Errorf("no column mapping for field %q", c.Field)
	}
	switch c.Op {
	case engine.OpEq:
		return col + " = ?", c.Value, nil
	case engine.OpGte:
		return col + " >= ?", c.Value, nil
	case engine.OpContains:
		text, ok := c.Value.(string)
		if !ok {
			return "", nil, fmt.Errorf("contains value for %q is not textual", c.Field)
		}
		return col + " ILIKE ?", "%" + escapeLike(text) + "%", nil
	case engine.OpIn:
		return col + " IN ?", c.Value, nil
	}
	return "", nil, fmt.Errorf("unknown predicate op %q", c.Op)
}

// escapeLike neutralizes LIKE metacharacters so user text matches
// literally. Postgres uses backslash as the default escape character.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func asEntities[T engine.Entity](rows []T) []engine.Entity {
	out := make([]engine.Entity, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
