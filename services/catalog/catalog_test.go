package catalog

import (
	"net/url"
	"testing"

	"evently/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$85/person", FormatPrice(models.Service{Category: models.CategoryCaterer, Price: 85}))
	assert.Equal(t, "$1,200", FormatPrice(models.Service{Category: models.CategoryDJ, Price: 1200}))
	assert.Equal(t, "$800", FormatPrice(models.Service{Category: models.CategoryDJ, Price: 800}))
	assert.Equal(t, "$12,500", FormatAmount(12500))
}

func TestActiveFilters(t *testing.T) {
	assert.Empty(t, ActiveFilters(models.DefaultQuery()))

	params := models.QueryParameters{
		Search:   "wedding",
		Location: "Miami",
		Category: "DJ",
		Price:    models.PriceMedium,
		Rating:   "4.5",
	}
	assert.Equal(t, []string{"DJ", "medium price", "4.5+ rating", "in Miami"}, ActiveFilters(params))

	bogus := models.QueryParameters{Category: "Juggler", Price: "cheap", Rating: "x"}
	assert.Empty(t, ActiveFilters(bogus))
}

func TestResultSummary(t *testing.T) {
	assert.Equal(t, "Found 1 service matching your criteria", ResultSummary(1))
	assert.Equal(t, "Found 0 services matching your criteria", ResultSummary(0))
	assert.Equal(t, "Found 6 services matching your criteria", ResultSummary(6))
}

func TestParseQuery(t *testing.T) {
	params := ParseQuery(url.Values{
		"q":        {"  dj "},
		"location": {"LA"},
		"price":    {"LOW"},
		"sort":     {"price-high"},
	})

	assert.Equal(t, "dj", params.Search)
	assert.Equal(t, "LA", params.Location)
	assert.Equal(t, models.SelectAll, params.Category)
	assert.Equal(t, models.PriceLow, params.Price)
	assert.Equal(t, models.SelectAll, params.Rating)
	assert.Equal(t, models.SortPriceHigh, params.Sort)

	assert.Equal(t, models.DefaultQuery(), ParseQuery(url.Values{}))
}

func TestCatalogService_GetAndDetails(t *testing.T) {
	svc := NewSeedCatalogService()

	s, err := svc.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "Gourmet Occasions Catering", s.Name)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	details, err := svc.Details("1")
	require.NoError(t, err)
	assert.Len(t, details.Reviews, 2)
	assert.Equal(t, "$1,200", details.DisplayPrice)
	assert.Equal(t, "2024-03-15", details.NextAvailable)

	details, err = svc.Details("3")
	require.NoError(t, err)
	assert.Empty(t, details.Reviews)
	assert.Equal(t, "$85/person", details.DisplayPrice)
}

func TestCatalogService_ReturnsCopies(t *testing.T) {
	svc := NewSeedCatalogService()

	s, err := svc.Get("1")
	require.NoError(t, err)
	s.Availability[0] = "1999-01-01"
	s.Name = "changed"

	again, err := svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", again.Availability[0])
	assert.Equal(t, "Elite Sound Productions", again.Name)
}

func TestCatalogService_Search(t *testing.T) {
	svc := NewSeedCatalogService()
	params := models.DefaultQuery()
	params.Category = "DJ"

	page := svc.Search(params)

	assert.Equal(t, 2, page.Count)
	assert.Equal(t, []string{"1", "4"}, ids(page.Services))
	assert.Equal(t, "Found 2 services matching your criteria", page.Summary)
	assert.Equal(t, []string{"DJ"}, page.ActiveFilters)
}
