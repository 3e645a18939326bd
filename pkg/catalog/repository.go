package catalog

import (
	"context"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// Repository is the read capability the pipeline needs from a product
// store.
type Repository interface {
	// CountProducts returns the number of products matching p.
	CountProducts(ctx context.Context, p *Predicate) (int, error)

	// FindProducts returns at most limit products matching p, ordered by
	// sort, after skipping skip results. A limit of 0 means no limit.
	FindProducts(
		ctx context.Context,
		p *Predicate,
		sort SortDirective,
		skip, limit int,
	) ([]domain.ProductSummary, error)

	// DistinctValues returns the facet values for field. Brand and
	// category facets list every stored brand or category name; color
	// and size facets list values present on products.
	DistinctValues(ctx context.Context, field Field) ([]string, error)
}

// SizeEnumeration is the canonical size order.
var SizeEnumeration = []string{"S", "M", "L", "XL", "XXL"}

// OrderSizes keeps the members of SizeEnumeration present in sizes, in
// enumeration order.
func OrderSizes(sizes []string) []string {
	present := make(map[string]struct{}, len(sizes))
	for _, s := range sizes {
		present[s] = struct{}{}
	}
	out := make([]string, 0, len(SizeEnumeration))
	for _, s := range SizeEnumeration {
		if _, ok := present[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
