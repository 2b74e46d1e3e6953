package catalog

import (
	"slices"
	"testing"

	"evently/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(services []models.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.ID
	}
	return out
}

func threeServices() []models.Service {
	return []models.Service{
		{ID: "dj", Name: "Night Owl", Category: models.CategoryDJ, Price: 800, Rating: 4.6, ReviewCount: 10, Experience: 3, Location: "Miami, FL"},
		{ID: "photo", Name: "Shutter", Category: models.CategoryPhotographer, Price: 2500, Rating: 4.8, ReviewCount: 40, Experience: 12, Location: "Chicago, IL"},
		{ID: "cater", Name: "Feast", Category: models.CategoryCaterer, Price: 85, Rating: 4.7, ReviewCount: 25, Experience: 15, Location: "Portland, OR"},
	}
}

func TestQuery_LowBandUsesBasePrice(t *testing.T) {
	params := models.DefaultQuery()
	params.Price = models.PriceLow

	got := Query(threeServices(), params)

	assert.ElementsMatch(t, []string{"dj", "cater"}, ids(got))
}

func TestQuery_CategoryAndRatingFloor(t *testing.T) {
	params := models.DefaultQuery()
	params.Category = "Photographer"
	params.Rating = "4.8"
	assert.Equal(t, []string{"photo"}, ids(Query(threeServices(), params)))

	params.Rating = "4.9"
	assert.Empty(t, Query(threeServices(), params))
}

func TestQuery_PriceBandBounds(t *testing.T) {
	catalog := []models.Service{
		{ID: "999", Price: 999},
		{ID: "1000", Price: 1000},
		{ID: "2000", Price: 2000},
		{ID: "2001", Price: 2001},
	}
	tests := []struct {
		band models.PriceBand
		want []string
	}{
		{models.PriceLow, []string{"999"}},
		{models.PriceMedium, []string{"1000", "2000"}},
		{models.PriceHigh, []string{"2001"}},
		{models.PriceAll, []string{"999", "1000", "2000", "2001"}},
		{"bogus", []string{"999", "1000", "2000", "2001"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.band), func(t *testing.T) {
			got := Query(catalog, models.QueryParameters{Price: tt.band})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQuery_SearchMatchesNameCategoryDescription(t *testing.T) {
	catalog := SeedServices()

	byName := Query(catalog, models.QueryParameters{Search: "LENS"})
	assert.Equal(t, []string{"2"}, ids(byName))

	byCategory := Query(catalog, models.QueryParameters{Search: "caterer"})
	assert.ElementsMatch(t, []string{"3", "6"}, ids(byCategory))

	byDescription := Query(catalog, models.QueryParameters{Search: "hip-hop"})
	assert.Equal(t, []string{"4"}, ids(byDescription))
}

func TestQuery_LocationSubstring(t *testing.T) {
	got := Query(SeedServices(), models.QueryParameters{Location: "ca"})
	assert.ElementsMatch(t, []string{"1", "2", "5"}, ids(got)) // "Chicago" contains "ca"
}

func TestQuery_MalformedSelectorsMeanAll(t *testing.T) {
	catalog := threeServices()
	params := models.QueryParameters{Category: "Juggler", Rating: "lots", Price: "cheap", Sort: "random"}

	got := Query(catalog, params)

	assert.Equal(t, ids(catalog), ids(got))
}

func TestQuery_SortKeys(t *testing.T) {
	catalog := threeServices()
	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortRating, []string{"photo", "cater", "dj"}},
		{models.SortPriceLow, []string{"cater", "dj", "photo"}},
		{models.SortPriceHigh, []string{"photo", "dj", "cater"}},
		{models.SortReviews, []string{"photo", "cater", "dj"}},
		{models.SortExperience, []string{"cater", "photo", "dj"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Query(catalog, models.QueryParameters{Sort: tt.key})))
		})
	}
}

func TestQuery_TiesKeepInputOrder(t *testing.T) {
	catalog := []models.Service{
		{ID: "a", Rating: 4.9},
		{ID: "b", Rating: 4.5},
		{ID: "c", Rating: 4.9},
		{ID: "d", Rating: 4.9},
	}
	got := Query(catalog, models.QueryParameters{Sort: models.SortRating})
	assert.Equal(t, []string{"a", "c", "d", "b"}, ids(got))
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	catalog := threeServices()
	before := ids(catalog)

	_ = Query(catalog, models.QueryParameters{Sort: models.SortPriceLow})

	assert.Equal(t, before, ids(catalog))
}

func allParams() []models.QueryParameters {
	var out []models.QueryParameters
	for _, search := range []string{"", "dj", "catering", "wedding"} {
		for _, cat := range []string{"all", "DJ", "Photographer", "Caterer"} {
			for _, price := range []models.PriceBand{models.PriceAll, models.PriceLow, models.PriceMedium, models.PriceHigh} {
				for _, rating := range []string{"all", "4.5", "4.8"} {
					for _, sort := range []models.SortKey{models.SortRating, models.SortPriceLow, models.SortReviews} {
						out = append(out, models.QueryParameters{Search: search, Category: cat, Price: price, Rating: rating, Sort: sort})
					}
				}
			}
		}
	}
	return out
}

func TestQuery_ResultIsSubsequenceWithoutDuplicates(t *testing.T) {
	catalog := SeedServices()
	for _, p := range allParams() {
		got := Query(catalog, p)
		seen := map[string]bool{}
		for _, s := range got {
			require.False(t, seen[s.ID], "duplicate %s for %+v", s.ID, p)
			seen[s.ID] = true
			require.True(t, slices.ContainsFunc(catalog, func(c models.Service) bool { return c.ID == s.ID }))
		}
	}
}

func TestQuery_AddingConstraintNeverGrowsResult(t *testing.T) {
	catalog := SeedServices()
	base := models.DefaultQuery()
	all := len(Query(catalog, base))
	for _, p := range allParams() {
		assert.LessOrEqual(t, len(Query(catalog, p)), all)

		narrowed := p
		narrowed.Location = "CA"
		assert.LessOrEqual(t, len(Query(catalog, narrowed)), len(Query(catalog, p)))
	}
}

func TestQuery_RatingOrderIsTotal(t *testing.T) {
	got := Query(SeedServices(), models.DefaultQuery())
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestQuery_FilteringIsIdempotent(t *testing.T) {
	catalog := SeedServices()
	for _, p := range allParams() {
		once := Query(catalog, p)
		twice := Query(once, p)
		assert.ElementsMatch(t, ids(once), ids(twice))
	}
}
