//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-catalog/internal/store"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// runStoreSuite exercises behavior every Store backend must share.
func runStoreSuite(t *testing.T, s store.Store) {
	t.Helper()

	require.NoError(t, s.Ping(context.Background()))

	t.Run("brands", func(t *testing.T) { testBrands(t, s) })
	t.Run("categories", func(t *testing.T) { testCategories(t, s) })
	t.Run("products", func(t *testing.T) { testProducts(t, s) })
	t.Run("listing", func(t *testing.T) { testListing(t, s) })
}

func testBrands(t *testing.T, s store.Store) {
	ctx := context.Background()

	b := &domain.Brand{Name: "Acme", Active: true}
	require.NoError(t, s.CreateBrand(ctx, b))
	require.NotEmpty(t, b.ID)

	err := s.CreateBrand(ctx, &domain.Brand{Name: "Acme"})
	require.ErrorIs(t, err, store.ErrDuplicate)

	got, err := s.GetBrandByName(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	b.Image = "brand.jpg"
	b.Active = false
	require.NoError(t, s.UpdateBrand(ctx, b))

	got, err = s.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "brand.jpg", got.Image)
	assert.False(t, got.Active)

	require.NoError(t, s.DeleteBrand(ctx, b.ID))
	_, err = s.GetBrand(ctx, b.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.DeleteBrand(ctx, b.ID), store.ErrNotFound)
}

func testCategories(t *testing.T, s store.Store) {
	ctx := context.Background()

	expired := &domain.Category{
		Name:      "Sale",
		Active:    true,
		Promotion: &domain.Promotion{Offer: 10, MinAmount: 100, MaxDiscount: 50, Expiry: "2020-01-01"},
	}
	current := &domain.Category{
		Name:      "Fresh",
		Promotion: &domain.Promotion{Offer: 5, Expiry: "2999-01-01"},
	}
	plain := &domain.Category{Name: "Plain"}
	for _, c := range []*domain.Category{expired, current, plain} {
		require.NoError(t, s.CreateCategory(ctx, c))
	}

	got, err := s.GetCategory(ctx, expired.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Promotion)
	assert.InDelta(t, 10, got.Promotion.Offer, 0.001)

	n, err := s.ExpirePromotions(ctx, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err = s.GetCategory(ctx, expired.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Promotion)

	got, err = s.GetCategory(ctx, current.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Promotion)

	current.Promotion = nil
	require.NoError(t, s.UpdateCategory(ctx, current))
	got, err = s.GetCategoryByName(ctx, "Fresh")
	require.NoError(t, err)
	assert.Nil(t, got.Promotion)

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 3)

	require.NoError(t, s.DeleteCategory(ctx, plain.ID))
}

func testProducts(t *testing.T, s store.Store) {
	ctx := context.Background()

	p := &domain.Product{
		Name:         "Runner",
		Description:  "Light shoe",
		Colors:       []string{"Blue"},
		Sizes:        []domain.SizeStock{{Size: "M", Stock: 4}},
		Brand:        "Acme",
		Category:     "Shoes",
		RegularPrice: 1000,
		SalePrice:    800,
		OfferPrice:   200,
		Images:       []domain.Image{{ID: "img-1", URL: "/static/images/a.jpg"}, {ID: "img-2", URL: "/static/images/b.jpg"}},
		Gender:       domain.GenderMale,
		Active:       true,
	}
	require.NoError(t, s.CreateProduct(ctx, p))
	require.NotEmpty(t, p.ID)

	active, err := s.ToggleProductActive(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, s.RemoveProductImage(ctx, p.ID, "img-1"))
	require.NoError(t, s.AddReview(ctx, p.ID, &domain.Review{Name: "Sam", Rating: 80, Comment: "Good", AddedOn: "Jan 2, 2025"}))

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "img-2", got.Images[0].ID)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "Sam", got.Reviews[0].Name)

	got.SalePrice = 700
	got.OfferPrice = 300
	require.NoError(t, s.UpdateProduct(ctx, got))

	sibling := &domain.Product{Name: "Trail", Brand: "Acme", Category: "Shoes", Gender: domain.GenderMale}
	require.NoError(t, s.CreateProduct(ctx, sibling))

	related, err := s.ListRelatedProducts(ctx, got, 4)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, sibling.ID, related[0].ID)

	list, total, err := s.ListProducts(ctx, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 1)

	_, err = s.GetProduct(ctx, "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testListing(t *testing.T, s store.Store) {
	ctx := context.Background()

	seed := []*domain.Product{
		{Name: "model a.b", Brand: "Dot", Category: "Gadgets", Colors: []string{"Red"}, Sizes: []domain.SizeStock{{Size: "XL"}}, SalePrice: 30, Gender: domain.GenderFemale},
		{Name: "model axb", Brand: "Dot", Category: "Gadgets", Colors: []string{"Green"}, Sizes: []domain.SizeStock{{Size: "S"}}, SalePrice: 10, Gender: domain.GenderFemale},
		{Name: "50% cotton", Brand: "Dot", Category: "Gadgets", Colors: []string{"Red"}, SalePrice: 20, Gender: domain.GenderFemale},
	}
	for _, p := range seed {
		require.NoError(t, s.CreateProduct(ctx, p))
	}

	dot := catalog.BuildFilter(catalog.Selections{Brands: []string{"Dot"}})
	n, err := s.CountProducts(ctx, dot)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	asc, err := s.FindProducts(ctx, dot, catalog.SortPriceAsc, 0, 0)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{asc[0].SalePrice, asc[1].SalePrice, asc[2].SalePrice})

	page2, err := s.FindProducts(ctx, dot, catalog.SortPriceDesc, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, int64(10), page2[0].SalePrice)

	natural, err := s.FindProducts(ctx, dot, catalog.SortNone, 0, 0)
	require.NoError(t, err)
	require.Len(t, natural, 3)
	assert.Equal(t, seed[0].ID, natural[0].ID)

	literal := catalog.BuildFilter(catalog.Selections{Search: "A.B"})
	found, err := s.FindProducts(ctx, literal, catalog.SortNone, 0, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, seed[0].ID, found[0].ID)

	percent := catalog.BuildFilter(catalog.Selections{Search: "50%"})
	n, err = s.CountProducts(ctx, percent)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sized := catalog.BuildFilter(catalog.Selections{Sizes: []string{"XL"}, Colors: []string{"Red"}})
	n, err = s.CountProducts(ctx, sized)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	colors, err := s.DistinctValues(ctx, catalog.FieldColor)
	require.NoError(t, err)
	assert.Subset(t, colors, []string{"Green", "Red"})

	sizes, err := s.DistinctValues(ctx, catalog.FieldSize)
	require.NoError(t, err)
	assert.Subset(t, sizes, []string{"S", "XL"})

	_, err = s.DistinctValues(ctx, catalog.FieldBrand)
	require.NoError(t, err)

	// Store and in-memory semantics agree.
	all, err := s.FindProducts(ctx, nil, catalog.SortNone, 0, 0)
	require.NoError(t, err)
	pred := catalog.BuildFilter(catalog.Selections{Colors: []string{"Red"}, Gender: domain.GenderFemale})
	var want int
	for _, ps := range all {
		p := domain.Product{Colors: ps.Colors, Gender: ps.Gender}
		if pred.Match(&p) {
			want++
		}
	}
	n, err = s.CountProducts(ctx, pred)
	require.NoError(t, err)
	assert.Equal(t, want, n)
}
