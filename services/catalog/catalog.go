package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"evently/models"
)

var ErrServiceNotFound = errors.New("service not found")

// CatalogService defines read access to the service catalog.
type CatalogService interface {
	All() []models.Service
	Get(id string) (models.Service, error)
	Details(id string) (*models.ServiceDetails, error)
	Reviews(serviceID string) []models.Review
	Search(params models.QueryParameters) models.CatalogPage
}

// DefaultCatalogService serves a fixed, read-only catalog held in memory.
type DefaultCatalogService struct {
	services []models.Service
	byID     map[string]int
	reviews  map[string][]models.Review
}

// NewCatalogService copies services and reviews; later changes to the
// arguments are not observed.
func NewCatalogService(services []models.Service, reviews []models.Review) *DefaultCatalogService {
	svc := &DefaultCatalogService{
		services: make([]models.Service, len(services)),
		byID:     make(map[string]int, len(services)),
		reviews:  make(map[string][]models.Review),
	}
	for i, s := range services {
		svc.services[i] = cloneService(s)
		svc.byID[s.ID] = i
	}
	for _, r := range reviews {
		svc.reviews[r.ServiceID] = append(svc.reviews[r.ServiceID], r)
	}
	return svc
}

// NewSeedCatalogService serves the built-in sample catalog.
func NewSeedCatalogService() *DefaultCatalogService {
	return NewCatalogService(SeedServices(), SeedReviews())
}

func (c *DefaultCatalogService) All() []models.Service {
	out := make([]models.Service, len(c.services))
	for i, s := range c.services {
		out[i] = cloneService(s)
	}
	return out
}

func (c *DefaultCatalogService) Get(id string) (models.Service, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Service{}, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
	}
	return cloneService(c.services[i]), nil
}

func (c *DefaultCatalogService) Reviews(serviceID string) []models.Review {
	out := make([]models.Review, len(c.reviews[serviceID]))
	copy(out, c.reviews[serviceID])
	return out
}

func (c *DefaultCatalogService) Details(id string) (*models.ServiceDetails, error) {
	s, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	details := &models.ServiceDetails{
		Service:      s,
		Reviews:      c.Reviews(id),
		DisplayPrice: FormatPrice(s),
	}
	if len(s.Availability) > 0 {
		details.NextAvailable = s.Availability[0]
	}
	return details, nil
}

// Search runs Query over the catalog and wraps the result for listing.
func (c *DefaultCatalogService) Search(params models.QueryParameters) models.CatalogPage {
	return NewPage(Query(c.services, params), params)
}

// NewPage builds the listing payload for an already queried result.
func NewPage(result []models.Service, params models.QueryParameters) models.CatalogPage {
	services := make([]models.Service, len(result))
	for i, s := range result {
		services[i] = cloneService(s)
	}
	return models.CatalogPage{
		Services:      services,
		Count:         len(services),
		Summary:       ResultSummary(len(services)),
		ActiveFilters: ActiveFilters(params),
		Query:         params,
	}
}

// ParseQuery reads catalog parameters from a URL query string. Missing
// selectors default to "all" and a missing sort key to rating.
func ParseQuery(values url.Values) models.QueryParameters {
	params := models.DefaultQuery()
	params.Search = strings.TrimSpace(values.Get("q"))
	params.Location = strings.TrimSpace(values.Get("location"))
	if v := strings.TrimSpace(values.Get("category")); v != "" {
		params.Category = v
	}
	if v := strings.TrimSpace(values.Get("price")); v != "" {
		params.Price = models.PriceBand(strings.ToLower(v))
	}
	if v := strings.TrimSpace(values.Get("rating")); v != "" {
		params.Rating = v
	}
	if v := strings.TrimSpace(values.Get("sort")); v != "" {
		params.Sort = models.SortKey(strings.ToLower(v))
	}
	return params
}
