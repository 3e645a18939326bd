// Package domain defines the core business types for the storefront catalog.
package domain

import (
	"time"
)

// Gender is the audience a product is merchandised for.
type Gender string

// Gender constants. GenderAny is the zero value and means unrestricted.
const (
	GenderAny    Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender maps a form or query value to a Gender. Unknown values map to
// GenderAny.
func ParseGender(s string) Gender {
	switch s {
	case "Male", "male", "men":
		return GenderMale
	case "Female", "female", "women":
		return GenderFemale
	default:
		return GenderAny
	}
}

// StatusActive is the admin form value that marks a record active.
const StatusActive = "Active"

// Brand is a product manufacturer or label.
type Brand struct {
	ID        string    `json:"id"              db:"id"                bson:"_id,omitempty"`
	Name      string    `json:"name"            db:"name"              bson:"name"`
	Image     string    `json:"image,omitempty" db:"image"             bson:"image,omitempty"`
	Active    bool      `json:"active"          db:"active"            bson:"active"`
	CreatedAt time.Time `json:"created_at"      db:"created_at"        bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at"      db:"updated_at"        bson:"updated_at"`
}

// Category groups products. A category optionally carries a promotion.
type Category struct {
	ID        string     `json:"id"                  db:"id"         bson:"_id,omitempty"`
	Name      string     `json:"name"                db:"name"       bson:"name"`
	Active    bool       `json:"active"              db:"active"     bson:"active"`
	Promotion *Promotion `json:"promotion,omitempty" db:"promotion"  bson:"promotion,omitempty"`
	CreatedAt time.Time  `json:"created_at"          db:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"          db:"updated_at" bson:"updated_at"`
}

// Promotion is a category-wide offer. A nil *Promotion means no promotion.
type Promotion struct {
	Offer       float64 `json:"offer"        bson:"offer"`
	MinAmount   float64 `json:"min_amount"   bson:"min_amount"`
	MaxDiscount float64 `json:"max_discount" bson:"max_discount"`
	// Expiry is a calendar date (YYYY-MM-DD); empty means open-ended.
	Expiry string `json:"expiry,omitempty" bson:"expiry,omitempty"`
}

// PromotionDateLayout is the layout of Promotion.Expiry.
const PromotionDateLayout = "2006-01-02"

// Expired reports whether the promotion's expiry date is before now's date.
// Promotions without a parseable expiry never expire.
func (p *Promotion) Expired(now time.Time) bool {
	if p == nil || p.Expiry == "" {
		return false
	}
	exp, err := time.Parse(PromotionDateLayout, p.Expiry)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return exp.Before(today)
}

// SizeStock is the stock level of one size of a product.
type SizeStock struct {
	Size  string `json:"size"  bson:"size"`
	Stock int    `json:"stock" bson:"stock"`
}

// Image is a stored product image.
type Image struct {
	ID  string `json:"id"  bson:"id"`
	URL string `json:"url" bson:"url"`
}

// ReviewDateLayout is the layout of Review.AddedOn.
const ReviewDateLayout = "January 2, 2006 at 3:04 PM"

// Review is a customer review. Rating is a percentage (0-100).
type Review struct {
	Name    string  `json:"name"     bson:"name"`
	Rating  float64 `json:"rating"   bson:"rating"`
	Comment string  `json:"comment"  bson:"comment"`
	AddedOn string  `json:"added_on" bson:"added_on"`
}

// Product is a sellable catalog item. Brand and Category hold the names of
// the referenced brand and category records.
type Product struct {
	ID           string      `json:"id"                    db:"id"            bson:"_id,omitempty"`
	Name         string      `json:"name"                  db:"name"          bson:"name"`
	Description  string      `json:"description"           db:"description"   bson:"description"`
	Colors       []string    `json:"colors"                db:"colors"        bson:"colors"`
	Sizes        []SizeStock `json:"sizes"                 db:"sizes"         bson:"sizes"`
	Brand        string      `json:"brand"                 db:"brand"         bson:"brand"`
	Category     string      `json:"category"              db:"category"      bson:"category"`
	RegularPrice int64       `json:"regular_price"         db:"regular_price" bson:"regular_price"`
	SalePrice    int64       `json:"sale_price"            db:"sale_price"    bson:"sale_price"`
	OfferPrice   int64       `json:"offer_price"           db:"offer_price"   bson:"offer_price"`
	Images       []Image     `json:"images"                db:"images"        bson:"images"`
	Gender       Gender      `json:"gender"                db:"gender"        bson:"gender"`
	Active       bool        `json:"active"                db:"active"        bson:"active"`
	Reviews      []Review    `json:"reviews,omitempty"     db:"reviews"       bson:"reviews,omitempty"`
	CreatedAt    time.Time   `json:"created_at"            db:"created_at"    bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"            db:"updated_at"    bson:"updated_at"`
}

// SizeNames returns the product's sizes without stock levels.
func (p *Product) SizeNames() []string {
	out := make([]string, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		out = append(out, s.Size)
	}
	return out
}

// Summary projects the product onto the fields a listing page needs.
func (p *Product) Summary() ProductSummary {
	s := ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		Colors:       p.Colors,
		Sizes:        p.SizeNames(),
		RegularPrice: p.RegularPrice,
		SalePrice:    p.SalePrice,
		OfferPrice:   p.OfferPrice,
		Gender:       p.Gender,
		Active:       p.Active,
	}
	if len(p.Images) > 0 {
		s.ImageURL = p.Images[0].URL
	}
	return s
}

// ProductSummary is the listing projection of a Product.
type ProductSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Colors       []string `json:"colors"`
	Sizes        []string `json:"sizes"`
	RegularPrice int64    `json:"regular_price"`
	SalePrice    int64    `json:"sale_price"`
	OfferPrice   int64    `json:"offer_price"`
	ImageURL     string   `json:"image_url,omitempty"`
	Gender       Gender   `json:"gender"`
	Active       bool     `json:"active"`
}

// ProductDetail is a product together with related products.
type ProductDetail struct {
	Product Product          `json:"product"`
	Related []ProductSummary `json:"related"`
}

// Job run statuses.
const (
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
)

// JobRun records one execution of a scheduled job.
type JobRun struct {
	JobName    string    `json:"job_name"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Status     string    `json:"status"`
	// Affected is the number of records the run changed.
	Affected int    `json:"affected"`
	Error    string `json:"error,omitempty"`
}
