// Package store defines the datastore abstraction for the storefront catalog.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a write would violate a unique name.
	ErrDuplicate = errors.New("duplicate")
)

// Store defines all data access operations for the storefront catalog.
type Store interface {
	// Storefront listing reads.
	catalog.Repository

	// Brands
	CreateBrand(ctx context.Context, b *domain.Brand) error
	GetBrand(ctx context.Context, id string) (*domain.Brand, error)
	GetBrandByName(ctx context.Context, name string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	UpdateBrand(ctx context.Context, b *domain.Brand) error
	DeleteBrand(ctx context.Context, id string) error

	// Categories
	CreateCategory(ctx context.Context, c *domain.Category) error
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	// ExpirePromotions clears promotions whose expiry date is before now
	// and returns how many categories were changed.
	ExpirePromotions(ctx context.Context, now time.Time) (int, error)

	// Products
	CreateProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, skip, limit int) ([]domain.Product, int, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	// ToggleProductActive flips the product's active flag and returns the
	// new value.
	ToggleProductActive(ctx context.Context, id string) (bool, error)
	RemoveProductImage(ctx context.Context, productID, imageID string) error
	AddReview(ctx context.Context, productID string, r *domain.Review) error
	// ListRelatedProducts returns up to limit products sharing p's
	// category and gender, excluding p itself.
	ListRelatedProducts(ctx context.Context, p *domain.Product, limit int) ([]domain.ProductSummary, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

// expiredCategoryIDs returns the ids of categories whose promotion has
// expired as of now.
func expiredCategoryIDs(cats []domain.Category, now time.Time) []string {
	var ids []string
	for i := range cats {
		if cats[i].Promotion.Expired(now) {
			ids = append(ids, cats[i].ID)
		}
	}
	return ids
}

// prepareProduct fills nil collections so that stored documents always
// hold arrays.
func prepareProduct(p *domain.Product) {
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []domain.SizeStock{}
	}
	if p.Images == nil {
		p.Images = []domain.Image{}
	}
	if p.Reviews == nil {
		p.Reviews = []domain.Review{}
	}
}
