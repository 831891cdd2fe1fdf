package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	for _, s := range []string{"discount-desc", "validity-desc", "name-asc", "price-asc"} {
		k, err := ParseSortKey(s)
		require.NoError(t, err)
		assert.Equal(t, SortKey(s), k)
	}

	for _, s := range []string{"", "discount", "price-desc", "DISCOUNT-DESC"} {
		_, err := ParseSortKey(s)
		assert.ErrorIs(t, err, ErrUnsupportedSortKey, "input %q", s)
	}
}

func TestSortKeySupportedBy(t *testing.T) {
	assert.True(t, SortPriceAsc.SupportedBy(EntityOffer))
	assert.True(t, SortValidityDesc.SupportedBy(EntityFlyer))
	assert.True(t, SortNameAsc.SupportedBy(EntityStore))

	assert.False(t, SortDiscountDesc.SupportedBy(EntityFlyer))
	assert.False(t, SortPriceAsc.SupportedBy(EntityRetailer))
	assert.False(t, SortNameAsc.SupportedBy(EntityType("coupon")))
}

func TestDefaultSort(t *testing.T) {
	assert.Equal(t, SortDiscountDesc, DefaultSort(EntityOffer))
	assert.Equal(t, SortValidityDesc, DefaultSort(EntityFlyer))
	assert.Equal(t, SortNameAsc, DefaultSort(EntityRetailer))
	assert.Equal(t, SortNameAsc, DefaultSort(EntityProduct))
	assert.Equal(t, SortNameAsc, DefaultSort(EntityStore))
}
