package catalog

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"evently/models"
)

// Price band bounds, compared against the base price for every category.
const (
	lowPriceCeiling = 1000.0
	highPriceFloor  = 2000.0
)

// Query filters services by every active parameter and orders the result by
// params.Sort. The input slice is never modified. Malformed selectors are
// treated as "all".
func Query(services []models.Service, params models.QueryParameters) []models.Service {
	search := strings.ToLower(params.Search)
	location := strings.ToLower(params.Location)
	category, filterCategory := categorySelector(params.Category)
	minRating, filterRating := ratingSelector(params.Rating)

	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(string(s.Category)), search) &&
			!strings.Contains(strings.ToLower(s.Description), search) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(s.Location), location) {
			continue
		}
		if filterCategory && s.Category != category {
			continue
		}
		if !inPriceBand(s.Price, params.Price) {
			continue
		}
		if filterRating && s.Rating < minRating {
			continue
		}
		out = append(out, s)
	}

	if compare := comparator(params.Sort); compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

func categorySelector(raw string) (models.Category, bool) {
	if raw == "" || raw == models.SelectAll {
		return "", false
	}
	return models.ParseCategory(raw)
}

func ratingSelector(raw string) (float64, bool) {
	if raw == "" || raw == models.SelectAll {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func inPriceBand(price float64, band models.PriceBand) bool {
	switch band {
	case models.PriceLow:
		return price < lowPriceCeiling
	case models.PriceMedium:
		return price >= lowPriceCeiling && price <= highPriceFloor
	case models.PriceHigh:
		return price > highPriceFloor
	default:
		return true
	}
}

// comparator returns nil for unknown keys, leaving filter order intact.
func comparator(key models.SortKey) func(a, b models.Service) int {
	switch key {
	case models.SortRating:
		return func(a, b models.Service) int { return cmp.Compare(b.Rating, a.Rating) }
	case models.SortPriceLow:
		return func(a, b models.Service) int { return cmp.Compare(a.Price, b.Price) }
	case models.SortPriceHigh:
		return func(a, b models.Service) int { return cmp.Compare(b.Price, a.Price) }
	case models.SortReviews:
		return func(a, b models.Service) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	case models.SortExperience:
		return func(a, b models.Service) int { return cmp.Compare(b.Experience, a.Experience) }
	default:
		return nil
	}
}
