package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPredicateEmpty(t *testing.T) {
	p := Filter{}.Predicate()
	assert.Empty(t, p.All)
	assert.Empty(t, p.Any)
	assert.False(t, p.IsNone())
}

func TestFilterPredicateEmptyStringsAreAbsent(t *testing.T) {
	p := Filter{RetailerID: "", Category: "", Brand: "", Search: "   "}.Predicate()
	assert.Empty(t, p.All, "empty filter values must not constrain anything")
}

func TestFilterPredicateCombinesPresentFilters(t *testing.T) {
	p := Filter{
		RetailerID:  "r1",
		Category:    "Food",
		Search:      "milk",
		MinDiscount: fp(25),
	}.Predicate()

	require.Len(t, p.All, 4)
	assert.Equal(t, Condition{Field: FieldRetailerID, Op: OpEq, Value: "r1"}, p.All[0])
	assert.Equal(t, Condition{Field: FieldCategory, Op: OpEq, Value: "Food"}, p.All[1])
	assert.Equal(t, Condition{Field: FieldName, Op: OpContains, Value: "milk"}, p.All[2])
	assert.Equal(t, Condition{Field: FieldDiscountPercentage, Op: OpGte, Value: 25.0}, p.All[3])
}

func TestPredicateIsAPureValue(t *testing.T) {
	base := Filter{RetailerID: "r1"}.Predicate()
	narrowed := base.And(Condition{Field: FieldCategory, Op: OpEq, Value: "Food"})

	assert.Len(t, base.All, 1, "And must not mutate the receiver")
	assert.Len(t, narrowed.All, 2)
}

func TestPredicateWithout(t *testing.T) {
	p := Filter{RetailerID: "r1", Category: "Food", MinDiscount: fp(10)}.Predicate()
	stripped := p.Without(FieldCategory)

	require.Len(t, stripped.All, 2)
	for _, c := range stripped.All {
		assert.NotEqual(t, FieldCategory, c.Field)
	}
	assert.Len(t, p.All, 3, "Without must not mutate the receiver")
}

func TestMatchNone(t *testing.T) {
	p := MatchNone()
	assert.True(t, p.IsNone())
	assert.True(t, p.And(Condition{Field: FieldCategory, Op: OpEq, Value: "Food"}).IsNone())
}

func TestUnknownFilterValueMatchesZeroRows(t *testing.T) {
	eng := New(catalogFixture())

	res, err := eng.List(ctx(), EntityOffer, Filter{Category: "No Such Category"}.Predicate(), SortDiscountDesc, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)
}
