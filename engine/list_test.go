package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehran282/off-board-v1/models"
)

func TestListRejectsInvalidPaging(t *testing.T) {
	eng := New(catalogFixture())

	cases := []struct{ page, limit int }{
		{0, 20},
		{-1, 20},
		{1, 0},
		{1, -5},
	}
	for _, tc := range cases {
		_, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, tc.page, tc.limit)
		assert.ErrorIs(t, err, ErrInvalidPaging, "page=%d limit=%d", tc.page, tc.limit)
	}
}

func TestListRejectsUnknownEntity(t *testing.T) {
	eng := New(catalogFixture())

	_, err := eng.List(ctx(), EntityType("coupon"), MatchAll(), SortNameAsc, 1, 20)
	assert.ErrorIs(t, err, ErrUnsupportedEntityType)
}

func TestListRejectsUnsupportedSortKey(t *testing.T) {
	eng := New(catalogFixture())

	_, err := eng.List(ctx(), EntityRetailer, MatchAll(), SortPriceAsc, 1, 20)
	assert.ErrorIs(t, err, ErrUnsupportedSortKey)

	_, err = eng.List(ctx(), EntityFlyer, MatchAll(), SortDiscountDesc, 1, 20)
	assert.ErrorIs(t, err, ErrUnsupportedSortKey)
}

// Equal discounts must not make page boundaries ambiguous: the id ASC
// tie-break pins every row to exactly one page.
func TestListBreaksTiesByID(t *testing.T) {
	ms := NewMemStore()
	ms.Add(EntityOffer,
		testOffer("b", "r1", fp(50)),
		testOffer("c", "r1", fp(30)),
		testOffer("a", "r1", fp(50)),
	)
	eng := New(ms)

	page1, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, idsOf(page1.Items))
	assert.Equal(t, int64(3), page1.Total)

	page2, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, idsOf(page2.Items))
}

func TestListPagesCoverEveryRowExactlyOnce(t *testing.T) {
	eng := New(catalogFixture())

	seen := map[string]int{}
	for page := 1; ; page++ {
		res, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, page, 3)
		require.NoError(t, err)
		if len(res.Items) == 0 {
			break
		}
		for _, id := range idsOf(res.Items) {
			seen[id]++
		}
	}

	assert.Len(t, seen, 10)
	for id, n := range seen {
		assert.Equal(t, 1, n, "offer %s appeared on %d pages", id, n)
	}
}

func TestListPageBeyondDataIsEmptyNotError(t *testing.T) {
	eng := New(catalogFixture())

	res, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, 99, 20)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(10), res.Total)
}

func TestListNarrowingMinDiscountShrinksTotal(t *testing.T) {
	eng := New(catalogFixture())

	var prev int64 = 1 << 30
	for _, threshold := range []float64{0, 20, 40, 60, 100} {
		f := Filter{MinDiscount: fp(threshold)}
		res, err := eng.List(ctx(), EntityOffer, f.Predicate(), SortDiscountDesc, 1, 100)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Total, prev, "threshold %v", threshold)
		prev = res.Total
	}
}

// A NULL discount fails every minDiscount comparison, including zero.
func TestListMinDiscountZeroExcludesNullDiscounts(t *testing.T) {
	eng := New(catalogFixture())

	f := Filter{MinDiscount: fp(0)}
	res, err := eng.List(ctx(), EntityOffer, f.Predicate(), SortDiscountDesc, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.Total)
	assert.NotContains(t, idsOf(res.Items), "o04")
	assert.NotContains(t, idsOf(res.Items), "o10")
}

func TestListNullDiscountsSortLast(t *testing.T) {
	eng := New(catalogFixture())

	res, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, 1, 100)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"o09", "o01", "o05", "o06", "o02", "o08", "o03", "o07", "o04", "o10"},
		idsOf(res.Items))
}

func TestListIsIdempotent(t *testing.T) {
	eng := New(catalogFixture())
	f := Filter{RetailerID: "r1"}

	first, err := eng.List(ctx(), EntityOffer, f.Predicate(), SortDiscountDesc, 1, 2)
	require.NoError(t, err)
	second, err := eng.List(ctx(), EntityOffer, f.Predicate(), SortDiscountDesc, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Total and Items are two independent reads. A write landing between them
// may make them disagree; the call still succeeds.
func TestListToleratesWritesBetweenCountAndFind(t *testing.T) {
	ws := &writingStore{
		inner:   catalogFixture(),
		pending: []models.Offer{testOffer("o11", "r4", fp(70))},
	}
	eng := New(ws)

	res, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Total)
	assert.Len(t, res.Items, 11)
}

func TestListClampsLimitToMaxPageSize(t *testing.T) {
	cs := &capturingStore{inner: catalogFixture()}
	eng := New(cs)

	_, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, cs.lastTake)
	assert.Equal(t, 0, cs.lastSkip)
}

func TestListWrapsStoreFailures(t *testing.T) {
	eng := New(failingStore{})

	_, err := eng.List(ctx(), EntityOffer, MatchAll(), SortDiscountDesc, 1, 20)
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")

	// The adapter's own error stays reachable through the wrap.
	assert.ErrorIs(t, err, errConnRefused)
}

func TestGet(t *testing.T) {
	eng := New(catalogFixture())

	e, found, err := eng.Get(ctx(), EntityRetailer, "r2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "r2", e.EntityID())

	_, found, err = eng.Get(ctx(), EntityRetailer, "nope")
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = New(failingStore{}).Get(ctx(), EntityRetailer, "r2")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
