package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// ListingParams selects a storefront listing. A non-empty Search uses the
// search endpoint; otherwise Gender ("men", "women" or empty) picks the
// listing.
type ListingParams struct {
	Gender     string
	Search     string
	Sort       string
	Page       int
	Brands     []string
	Categories []string
	Colors     []string
	Sizes      []string
}

func (p *ListingParams) path() (string, error) {
	switch {
	case p.Search != "":
		return "/api/v1/shop/search", nil
	case p.Gender == "":
		return "/api/v1/shop/products", nil
	case p.Gender == "men" || p.Gender == "women":
		return "/api/v1/shop/" + p.Gender, nil
	default:
		return "", fmt.Errorf("unknown gender %q (want men or women)", p.Gender)
	}
}

func (p *ListingParams) query() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Page > 1 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	for _, v := range p.Brands {
		q.Add("brands", v)
	}
	for _, v := range p.Categories {
		q.Add("categories", v)
	}
	for _, v := range p.Colors {
		q.Add("colors", v)
	}
	for _, v := range p.Sizes {
		q.Add("sizes", v)
	}
	return q
}

// ListProducts returns one page of a storefront listing.
func (c *Client) ListProducts(
	ctx context.Context,
	params *ListingParams,
) (*catalog.ListingResult, error) {
	path, err := params.path()
	if err != nil {
		return nil, err
	}
	if q := params.query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res catalog.ListingResult
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetProduct returns a product and its related products.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error) {
	var d domain.ProductDetail
	if err := c.get(ctx, "/api/v1/shop/products/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// AddReview submits a review with a 0-5 star rating.
func (c *Client) AddReview(
	ctx context.Context,
	productID, name string,
	rating float64,
	comment string,
) (*domain.Review, error) {
	body := map[string]any{
		"name":    name,
		"rating":  rating,
		"comment": comment,
	}

	var r domain.Review
	path := "/api/v1/shop/products/" + url.PathEscape(productID) + "/reviews"
	if err := c.post(ctx, path, body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
