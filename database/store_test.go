package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehran282/off-board-v1/engine"
)

func offerMapping(t *testing.T) entityMapping {
	t.Helper()
	m, err := mappingFor(engine.EntityOffer)
	require.NoError(t, err)
	return m
}

func TestBuildWhereEmptyPredicate(t *testing.T) {
	where, args, err := buildWhere(offerMapping(t), engine.MatchAll())
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhereNonePredicate(t *testing.T) {
	where, args, err := buildWhere(offerMapping(t), engine.MatchNone())
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", where)
	assert.Empty(t, args)
}

func TestBuildWhereAndsConditions(t *testing.T) {
	f := engine.Filter{RetailerID: "r1", Category: "Food", MinDiscount: floatPtr(25)}
	where, args, err := buildWhere(offerMapping(t), f.Predicate())
	require.NoError(t, err)
	assert.Equal(t, "retailer_id = ? AND category = ? AND discount_percentage >= ?", where)
	assert.Equal(t, []interface{}{"r1", "Food", 25.0}, args)
}

func TestBuildWhereOrClause(t *testing.T) {
	p := engine.SearchPredicate("milk")
	where, args, err := buildWhere(offerMapping(t), p)
	require.NoError(t, err)
	assert.Equal(t, "(product_name ILIKE ? OR brand ILIKE ? OR category ILIKE ?)", where)
	assert.Equal(t, []interface{}{"%milk%", "%milk%", "%milk%"}, args)
}

func TestConditionSQLContainsEscapesLikeMetacharacters(t *testing.T) {
	c := engine.Condition{Field: engine.FieldName, Op: engine.OpContains, Value: `50%_off\now`}
	expr, arg, err := conditionSQL(offerMapping(t), c)
	require.NoError(t, err)
	assert.Equal(t, "product_name ILIKE ?", expr)
	assert.Equal(t, `%50\%\_off\\now%`, arg)
}

func TestConditionSQLInOperator(t *testing.T) {
	c := engine.Condition{Field: engine.FieldID, Op: engine.OpIn, Value: []string{"o1", "o2"}}
	expr, arg, err := conditionSQL(offerMapping(t), c)
	require.NoError(t, err)
	assert.Equal(t, "id IN ?", expr)
	assert.Equal(t, []string{"o1", "o2"}, arg)
}

func TestConditionSQLUnknownField(t *testing.T) {
	c := engine.Condition{Field: "weight", Op: engine.OpEq, Value: "1kg"}
	_, _, err := conditionSQL(offerMapping(t), c)
	assert.Error(t, err)
}

func TestMappingForUnknownEntity(t *testing.T) {
	_, err := mappingFor(engine.EntityType("coupon"))
	assert.Error(t, err)
}

// Every sort key the engine accepts for an entity must have an ORDER BY
// mapping here, and vice versa, or a valid API request would fail at the
// store layer.
func TestSortMappingsMatchEngineSupportTable(t *testing.T) {
	keys := []engine.SortKey{
		engine.SortDiscountDesc,
		engine.SortValidityDesc,
		engine.SortNameAsc,
		engine.SortPriceAsc,
	}
	entities := []engine.EntityType{
		engine.EntityOffer,
		engine.EntityFlyer,
		engine.EntityRetailer,
		engine.EntityProduct,
		engine.EntityStore,
	}
	for _, e := range entities {
		m, err := mappingFor(e)
		require.NoError(t, err)
		for _, k := range keys {
			_, mapped := m.sorts[k]
			assert.Equal(t, k.SupportedBy(e), mapped, "entity %s key %s", e, k)
		}
	}
}

// Descending orderings over nullable columns must push NULLs last, or
// null-discount offers would lead every listing.
func TestNullableDescendingSortsKeepNullsLast(t *testing.T) {
	m := offerMapping(t)
	assert.Equal(t, "discount_percentage DESC NULLS LAST", m.sorts[engine.SortDiscountDesc])
	assert.Equal(t, "valid_until DESC NULLS LAST", m.sorts[engine.SortValidityDesc])
}

func TestModelForCoversEveryEntity(t *testing.T) {
	for e := range entityMappings {
		assert.NotNil(t, modelFor(e), "entity %s", e)
	}
	assert.Nil(t, modelFor(engine.EntityType("coupon")))
}
