package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

func seededRepo() *memRepo {
	r := &memRepo{
		brands:     []string{"Adidas", "Nike", "Puma"},
		categories: []string{"Shirts", "Shoes"},
	}
	for i := range 10 {
		brand := "Adidas"
		if i < 3 {
			brand = "Nike"
		}
		gender := domain.GenderMale
		if i%2 == 1 {
			gender = domain.GenderFemale
		}
		p := product(fmt.Sprintf("p%02d", i), fmt.Sprintf("Item %d", i), brand, "Shirts", gender, int64(1000-i*37%500))
		p.Colors = []string{"Red"}
		p.Sizes = []domain.SizeStock{{Size: "XL", Stock: 1}, {Size: "S", Stock: 2}}
		r.products = append(r.products, p)
	}
	return r
}

func TestPipeline_List_FilterAndPage(t *testing.T) {
	t.Parallel()

	pl := NewPipeline(seededRepo())

	res, err := pl.List(context.Background(), &ListingRequest{
		Selections: Selections{Brands: []string{"Nike"}},
		Page:       1,
		PageSize:   8,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
	require.Len(t, res.Products, 3)
	for _, p := range res.Products {
		assert.Equal(t, "Nike", p.Brand)
	}
	assert.Equal(t, []string{"Nike"}, res.FilterBrands)
	assert.Equal(t, []string{}, res.FilterColors)
	assert.Equal(t, "default", res.SortOption)
}

func TestPipeline_List_Facets(t *testing.T) {
	t.Parallel()

	res, err := NewPipeline(seededRepo()).List(context.Background(), &ListingRequest{PageSize: 8})
	require.NoError(t, err)

	assert.Equal(t, []string{"Adidas", "Nike", "Puma"}, res.Brands)
	assert.Equal(t, []string{"Shirts", "Shoes"}, res.Categories)
	assert.Equal(t, []string{"Red"}, res.Colors)
	assert.Equal(t, []string{"S", "XL"}, res.Sizes)
}

func TestPipeline_List_Pagination(t *testing.T) {
	t.Parallel()

	pl := NewPipeline(seededRepo())

	first, err := pl.List(context.Background(), &ListingRequest{Page: 1, PageSize: 4})
	require.NoError(t, err)
	second, err := pl.List(context.Background(), &ListingRequest{Page: 2, PageSize: 4})
	require.NoError(t, err)
	last, err := pl.List(context.Background(), &ListingRequest{Page: 3, PageSize: 4})
	require.NoError(t, err)
	beyond, err := pl.List(context.Background(), &ListingRequest{Page: 9, PageSize: 4})
	require.NoError(t, err)

	assert.Equal(t, 3, first.TotalPages)
	assert.Len(t, first.Products, 4)
	assert.Len(t, second.Products, 4)
	assert.Len(t, last.Products, 2)
	assert.NotEqual(t, first.Products[0].ID, second.Products[0].ID)
	assert.Equal(t, []domain.ProductSummary{}, beyond.Products)
	assert.Equal(t, 10, beyond.Count)
}

func TestPipeline_List_Unconstrained(t *testing.T) {
	t.Parallel()

	res, err := NewPipeline(seededRepo()).List(context.Background(), &ListingRequest{Page: 4})
	require.NoError(t, err)

	assert.Len(t, res.Products, 10)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 4, res.CurrentPage)
}

func TestPipeline_List_Sort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		ok    func(a, b int64) bool
	}{
		{name: "ascending", token: SortTokenPriceLowToHigh, ok: func(a, b int64) bool { return a <= b }},
		{name: "descending", token: SortTokenPriceHighToLow, ok: func(a, b int64) bool { return a >= b }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := NewPipeline(seededRepo()).List(context.Background(), &ListingRequest{
				Sort:     tt.token,
				PageSize: 0,
			})
			require.NoError(t, err)
			require.Len(t, res.Products, 10)
			for i := 1; i < len(res.Products); i++ {
				assert.True(t, tt.ok(res.Products[i-1].SalePrice, res.Products[i].SalePrice),
					"prices out of order at %d", i)
			}
			assert.Equal(t, tt.token, res.SortOption)
		})
	}
}

func TestPipeline_List_GenderAndLiteralSearch(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	dotted := product("dot", "model a.b", "Puma", "Shoes", domain.GenderFemale, 500)
	decoy := product("decoy", "model axb", "Puma", "Shoes", domain.GenderFemale, 500)
	repo.products = append(repo.products, dotted, decoy)

	res, err := NewPipeline(repo).List(context.Background(), &ListingRequest{
		Selections: Selections{Gender: domain.GenderFemale, Search: "a.b"},
		PageSize:   8,
	})
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, "dot", res.Products[0].ID)
	assert.Equal(t, "a.b", res.SearchQuery)
	assert.Equal(t, domain.GenderFemale, res.Gender)
}

func TestPipeline_List_EmptyCatalog(t *testing.T) {
	t.Parallel()

	res, err := NewPipeline(&memRepo{}).List(context.Background(), &ListingRequest{Page: 1, PageSize: 8})
	require.NoError(t, err)

	assert.Zero(t, res.Count)
	assert.Zero(t, res.TotalPages)
	assert.Equal(t, []domain.ProductSummary{}, res.Products)
	assert.Equal(t, []string{}, res.Brands)
	assert.Equal(t, []string{}, res.Sizes)
}

func TestPipeline_List_Idempotent(t *testing.T) {
	t.Parallel()

	pl := NewPipeline(seededRepo())
	req := &ListingRequest{
		Selections: Selections{Colors: []string{"Red"}, Search: "item"},
		Sort:       SortTokenPriceHighToLow,
		Page:       2,
		PageSize:   3,
	}

	a, err := pl.List(context.Background(), req)
	require.NoError(t, err)
	b, err := pl.List(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPipeline_List_RepositoryFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")

	tests := []struct {
		name      string
		repo      *memRepo
		wantFind  bool
		wantCause error
	}{
		{name: "count fails", repo: &memRepo{countErr: boom}, wantFind: false, wantCause: boom},
		{name: "find fails", repo: &memRepo{findErr: boom}, wantFind: true, wantCause: boom},
		{name: "facet fails", repo: &memRepo{distinctErr: boom}, wantFind: true, wantCause: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := NewPipeline(tt.repo).List(context.Background(), &ListingRequest{PageSize: 8})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrRepositoryUnavailable)
			assert.ErrorIs(t, err, tt.wantCause)
			if !tt.wantFind {
				assert.NotContains(t, tt.repo.calls, "find")
			}
		})
	}
}
