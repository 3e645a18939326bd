package catalog

// SortDirective is the ordering imposed on a listing.
type SortDirective int

// Sort directives.
const (
	SortNone SortDirective = iota
	SortPriceAsc
	SortPriceDesc
)

// Sort tokens accepted from clients.
const (
	SortTokenDefault        = "default"
	SortTokenPriceLowToHigh = "priceLowToHigh"
	SortTokenPriceHighToLow = "priceHighToLow"
)

// ResolveSort maps a sort token to a directive. Unknown and empty tokens
// resolve to SortNone.
func ResolveSort(token string) SortDirective {
	switch token {
	case SortTokenPriceLowToHigh:
		return SortPriceAsc
	case SortTokenPriceHighToLow:
		return SortPriceDesc
	default:
		return SortNone
	}
}

func (d SortDirective) String() string {
	switch d {
	case SortPriceAsc:
		return "price_asc"
	case SortPriceDesc:
		return "price_desc"
	default:
		return "none"
	}
}
