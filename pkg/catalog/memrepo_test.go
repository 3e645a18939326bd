package catalog

import (
	"context"
	"slices"
	"sync"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// memRepo is an in-memory Repository backed by Predicate.Match.
type memRepo struct {
	mu         sync.Mutex
	products   []domain.Product
	brands     []string
	categories []string

	countErr    error
	findErr     error
	distinctErr error

	calls []string
}

func (r *memRepo) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *memRepo) matching(p *Predicate) []domain.Product {
	var out []domain.Product
	for i := range r.products {
		if p.Match(&r.products[i]) {
			out = append(out, r.products[i])
		}
	}
	return out
}

func (r *memRepo) CountProducts(_ context.Context, p *Predicate) (int, error) {
	r.record("count")
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.matching(p)), nil
}

func (r *memRepo) FindProducts(
	_ context.Context,
	p *Predicate,
	sort SortDirective,
	skip, limit int,
) ([]domain.ProductSummary, error) {
	r.record("find")
	if r.findErr != nil {
		return nil, r.findErr
	}
	matched := r.matching(p)
	switch sort {
	case SortPriceAsc:
		slices.SortStableFunc(matched, func(a, b domain.Product) int {
			return int(a.SalePrice - b.SalePrice)
		})
	case SortPriceDesc:
		slices.SortStableFunc(matched, func(a, b domain.Product) int {
			return int(b.SalePrice - a.SalePrice)
		})
	}
	if skip >= len(matched) {
		return nil, nil
	}
	matched = matched[skip:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	out := make([]domain.ProductSummary, 0, len(matched))
	for i := range matched {
		out = append(out, matched[i].Summary())
	}
	return out, nil
}

func (r *memRepo) DistinctValues(_ context.Context, field Field) ([]string, error) {
	r.record("distinct")
	if r.distinctErr != nil {
		return nil, r.distinctErr
	}
	switch field {
	case FieldBrand:
		return r.brands, nil
	case FieldCategory:
		return r.categories, nil
	}
	var out []string
	for i := range r.products {
		for _, v := range fieldValues(&r.products[i], field) {
			if !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	return out, nil
}

func product(id, name, brand, category string, gender domain.Gender, price int64) domain.Product {
	return domain.Product{
		ID:           id,
		Name:         name,
		Brand:        brand,
		Category:     category,
		Gender:       gender,
		RegularPrice: price + 100,
		SalePrice:    price,
		OfferPrice:   100,
		Active:       true,
	}
}
