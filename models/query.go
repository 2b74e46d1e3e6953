package models

// Selector value meaning "no constraint" for category, price and rating.
const SelectAll = "all"

// PriceBand buckets a service's base price.
type PriceBand string

const (
	PriceAll    PriceBand = SelectAll
	PriceLow    PriceBand = "low"    // < 1000
	PriceMedium PriceBand = "medium" // 1000..2000 inclusive
	PriceHigh   PriceBand = "high"   // > 2000
)

// SortKey selects the single ordering applied to query results.
type SortKey string

const (
	SortRating     SortKey = "rating"     // rating desc
	SortPriceLow   SortKey = "price-low"  // price asc
	SortPriceHigh  SortKey = "price-high" // price desc
	SortReviews    SortKey = "reviews"    // review count desc
	SortExperience SortKey = "experience" // experience desc
)

// QueryParameters is the full set of catalog filter and sort inputs.
// Category and Rating hold raw selector text; "all" or any unparsable value
// disables the filter.
type QueryParameters struct {
	Search   string    `json:"search"`
	Location string    `json:"location"`
	Category string    `json:"category"`
	Price    PriceBand `json:"price"`
	Rating   string    `json:"rating"`
	Sort     SortKey   `json:"sort"`
}

// DefaultQuery matches everything, highest rated first.
func DefaultQuery() QueryParameters {
	return QueryParameters{
		Category: SelectAll,
		Price:    PriceAll,
		Rating:   SelectAll,
		Sort:     SortRating,
	}
}

// CatalogPage is the listing response.
type CatalogPage struct {
	Services      []Service       `json:"services"`
	Count         int             `json:"count"`
	Summary       string          `json:"summary"`
	ActiveFilters []string        `json:"activeFilters"`
	Query         QueryParameters `json:"query"`
}
