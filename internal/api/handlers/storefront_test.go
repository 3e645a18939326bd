package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"reflect"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-catalog/internal/api/handlers"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	storeMocks "github.com/donaldgifford/storefront-catalog/internal/store/mocks"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

var discard = slog.New(slog.DiscardHandler)

func newStorefrontAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()

	p := catalog.NewPipeline(ms, catalog.WithLogger(discard))
	h := handlers.NewStorefrontHandler(ms, p, handlers.StorefrontConfig{
		PageSize:        2,
		SearchPageSize:  8,
		RelatedProducts: 4,
	}, discard)

	_, api := humatest.New(t)
	handlers.RegisterStorefrontRoutes(api, h)
	return api
}

func expectFacets(ms *storeMocks.MockStore) {
	ms.EXPECT().DistinctValues(mock.Anything, catalog.FieldBrand).Return([]string{"Nike", "Puma"}, nil).Once()
	ms.EXPECT().DistinctValues(mock.Anything, catalog.FieldCategory).Return([]string{"Shoes"}, nil).Once()
	ms.EXPECT().DistinctValues(mock.Anything, catalog.FieldColor).Return([]string{"Red"}, nil).Once()
	ms.EXPECT().DistinctValues(mock.Anything, catalog.FieldSize).Return([]string{"XL", "S"}, nil).Once()
}

func hasClause(p *catalog.Predicate, want catalog.Clause) bool {
	for _, c := range p.Clauses {
		if reflect.DeepEqual(c, want) {
			return true
		}
	}
	return false
}

func TestStorefront_ListMen(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	expectFacets(ms)

	brands := catalog.InClause{Field: catalog.FieldBrand, Values: []string{"Nike", "Adidas", "Puma"}}
	men := catalog.EqClause{Field: catalog.FieldGender, Value: "Male"}

	ms.EXPECT().
		CountProducts(mock.Anything, mock.MatchedBy(func(p *catalog.Predicate) bool {
			return len(p.Clauses) == 2 && hasClause(p, brands) && hasClause(p, men)
		})).
		Return(3, nil).
		Once()
	ms.EXPECT().
		FindProducts(mock.Anything, mock.Anything, catalog.SortPriceAsc, 2, 2).
		Return([]domain.ProductSummary{{ID: "p3", Name: "Runner"}}, nil).
		Once()

	api := newStorefrontAPI(t, ms)
	resp := api.Get("/api/v1/shop/men?brands=Nike&brands%5B%5D=Puma&brands=Adidas&sort=priceLowToHigh&page=2")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var got catalog.ListingResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))

	assert.Equal(t, 2, got.CurrentPage)
	assert.Equal(t, 2, got.TotalPages)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, domain.GenderMale, got.Gender)
	assert.Equal(t, "priceLowToHigh", got.SortOption)
	assert.Equal(t, []string{"Nike", "Adidas", "Puma"}, got.FilterBrands)
	assert.Equal(t, []string{"S", "XL"}, got.Sizes)
	assert.Equal(t, []string{"Nike", "Puma"}, got.Brands)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "p3", got.Products[0].ID)
}

func TestStorefront_QueryShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{name: "repeated keys", query: "colors=Red&colors=Blue"},
		{name: "bracket keys", query: "colors%5B%5D=Red&colors%5B%5D=Blue"},
		{name: "comma list", query: "colors=Red,Blue"},
		{name: "mixed with blanks", query: "colors=Red,&colors%5B%5D=Blue&colors="},
	}

	want := catalog.InClause{Field: catalog.FieldColor, Values: []string{"Red", "Blue"}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			expectFacets(ms)
			ms.EXPECT().
				CountProducts(mock.Anything, mock.MatchedBy(func(p *catalog.Predicate) bool {
					return len(p.Clauses) == 1 && hasClause(p, want)
				})).
				Return(0, nil).
				Once()
			ms.EXPECT().
				FindProducts(mock.Anything, mock.Anything, catalog.SortNone, 0, 2).
				Return(nil, nil).
				Once()

			api := newStorefrontAPI(t, ms)
			resp := api.Get("/api/v1/shop/products?" + tt.query)
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), `"filter_colors":["Red","Blue"]`)
			assert.Contains(t, resp.Body.String(), `"products":[]`)
			assert.Contains(t, resp.Body.String(), `"sort_option":"default"`)
		})
	}
}

func TestStorefront_Search(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	expectFacets(ms)

	ms.EXPECT().
		CountProducts(mock.Anything, mock.MatchedBy(func(p *catalog.Predicate) bool {
			return len(p.Clauses) == 1 && hasClause(p, catalog.ContainsClause{
				Fields: []catalog.Field{catalog.FieldName, catalog.FieldBrand, catalog.FieldCategory},
				Term:   "a.b",
			})
		})).
		Return(9, nil).
		Once()
	ms.EXPECT().
		FindProducts(mock.Anything, mock.Anything, catalog.SortNone, 0, 8).
		Return([]domain.ProductSummary{{ID: "p1"}}, nil).
		Once()

	api := newStorefrontAPI(t, ms)
	resp := api.Get("/api/v1/shop/search?search=a.b&page=0")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"search_query":"a.b"`)
	assert.Contains(t, resp.Body.String(), `"total_pages":2`)
	assert.Contains(t, resp.Body.String(), `"current_page":1`)
}

func TestStorefront_RepositoryFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().DistinctValues(mock.Anything, mock.Anything).Return([]string{}, nil).Maybe()
	ms.EXPECT().
		CountProducts(mock.Anything, mock.Anything).
		Return(0, assert.AnError).
		Once()

	api := newStorefrontAPI(t, ms)
	resp := api.Get("/api/v1/shop/women")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "internal server error")
	assert.NotContains(t, resp.Body.String(), assert.AnError.Error())
}

func TestStorefront_SearchFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "filters by search and facets",
			body: map[string]any{"search": "run", "brands": []string{"Nike"}, "sizes": []string{"M"}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					FindProducts(mock.Anything, mock.MatchedBy(func(p *catalog.Predicate) bool {
						return len(p.Clauses) == 3 &&
							hasClause(p, catalog.InClause{Field: catalog.FieldBrand, Values: []string{"Nike"}}) &&
							hasClause(p, catalog.InClause{Field: catalog.FieldSize, Values: []string{"M"}})
					}), catalog.SortNone, 0, 0).
					Return([]domain.ProductSummary{{ID: "p1", Name: "Runner"}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Runner"`,
		},
		{
			name: "no matches returns empty list",
			body: map[string]any{},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					FindProducts(mock.Anything, mock.Anything, catalog.SortNone, 0, 0).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"products":[]`,
		},
		{
			name: "store error returns 500",
			body: map[string]any{"search": "x"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					FindProducts(mock.Anything, mock.Anything, catalog.SortNone, 0, 0).
					Return(nil, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			api := newStorefrontAPI(t, ms)
			resp := api.Post("/api/v1/shop/search/filter", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestStorefront_GetProduct(t *testing.T) {
	t.Parallel()

	product := &domain.Product{ID: "p1", Name: "Runner", Category: "Shoes", Gender: domain.GenderMale}

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns product and related",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetProduct(mock.Anything, "p1").Return(product, nil).Once()
				m.EXPECT().
					ListRelatedProducts(mock.Anything, product, 4).
					Return([]domain.ProductSummary{{ID: "p2", Name: "Trail"}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"related":[{"id":"p2"`,
		},
		{
			name: "no related products",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetProduct(mock.Anything, "p1").Return(product, nil).Once()
				m.EXPECT().ListRelatedProducts(mock.Anything, product, 4).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"related":[]`,
		},
		{
			name: "not found",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetProduct(mock.Anything, "p1").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "product not found",
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetProduct(mock.Anything, "p1").Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			api := newStorefrontAPI(t, ms)
			resp := api.Get("/api/v1/shop/products/p1")
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestStorefront_AddReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "stores rating as percentage",
			body: map[string]any{"name": "Ann", "rating": 4, "comment": "Comfortable"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					AddReview(mock.Anything, "p1", mock.MatchedBy(func(r *domain.Review) bool {
						return r.Name == "Ann" && r.Rating == 80 && r.Comment == "Comfortable" && r.AddedOn != ""
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"rating":80`,
		},
		{
			name:       "rating above five is rejected",
			body:       map[string]any{"name": "Ann", "rating": 6},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "blank name is rejected",
			body:       map[string]any{"name": "  ", "rating": 3},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown product",
			body: map[string]any{"name": "Ann", "rating": 5},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().AddReview(mock.Anything, "p1", mock.Anything).Return(store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			api := newStorefrontAPI(t, ms)
			resp := api.Post("/api/v1/shop/products/p1/reviews", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
