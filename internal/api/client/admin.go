package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

const adminPath = "/api/v1/admin"

// ListBrands returns every brand.
func (c *Client) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := c.get(ctx, adminPath+"/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// DeleteBrand deletes a brand and its image.
func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	return c.del(ctx, adminPath+"/brands/"+url.PathEscape(id), nil)
}

// ListCategories returns every category.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.get(ctx, adminPath+"/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.del(ctx, adminPath+"/categories/"+url.PathEscape(id), nil)
}

// ToggleProductActive flips a product's active flag and returns the new
// value.
func (c *Client) ToggleProductActive(ctx context.Context, id string) (bool, error) {
	var resp struct {
		Active bool `json:"active"`
	}
	path := adminPath + "/products/" + url.PathEscape(id) + "/toggle-active"
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Active, nil
}
