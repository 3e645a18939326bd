package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  SortDirective
	}{
		{token: "priceLowToHigh", want: SortPriceAsc},
		{token: "priceHighToLow", want: SortPriceDesc},
		{token: "default", want: SortNone},
		{token: "", want: SortNone},
		{token: "PRICELOWTOHIGH", want: SortNone},
		{token: "newest", want: SortNone},
	}

	for _, tt := range tests {
		t.Run("token_"+tt.token, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveSort(tt.token))
		})
	}
}

func TestSortDirective_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", SortNone.String())
	assert.Equal(t, "price_asc", SortPriceAsc.String())
	assert.Equal(t, "price_desc", SortPriceDesc.String())
}
