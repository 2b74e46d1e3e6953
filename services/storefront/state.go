// Package storefront holds the browse-page state a host view renders from:
// filter inputs, the selected service, and which panel is open.
package storefront

import (
	"evently/models"
	"evently/services/catalog"
)

// Panel is the overlay currently shown over the listing.
type Panel string

const (
	PanelNone    Panel = ""
	PanelDetail  Panel = "detail"
	PanelBooking Panel = "booking"
)

// State is owned by a single view; it is not safe for concurrent use.
type State struct {
	services []models.Service
	params   models.QueryParameters
	selected *models.Service
	panel    Panel
}

// NewState starts with no filters and rating order.
func NewState(services []models.Service) *State {
	return &State{
		services: services,
		params:   models.DefaultQuery(),
	}
}

func (s *State) SetSearchQuery(q string) { s.params.Search = q }
func (s *State) SetLocationFilter(location string) { s.params.Location = location }
func (s *State) SetCategoryFilter(category string) { s.params.Category = orAll(category) }
func (s *State) SetPriceFilter(band models.PriceBand) {
	if band == "" {
		band = models.PriceAll
	}
	s.params.Price = band
}
func (s *State) SetRatingFilter(rating string) { s.params.Rating = orAll(rating) }
func (s *State) SetSortKey(key models.SortKey) {
	if key == "" {
		key = models.SortRating
	}
	s.params.Sort = key
}

// Apply replaces every filter and the sort key at once.
func (s *State) Apply(params models.QueryParameters) {
	s.SetSearchQuery(params.Search)
	s.SetLocationFilter(params.Location)
	s.SetCategoryFilter(params.Category)
	s.SetPriceFilter(params.Price)
	s.SetRatingFilter(params.Rating)
	s.SetSortKey(params.Sort)
}

// ResetFilters clears every filter and restores rating order.
func (s *State) ResetFilters() { s.params = models.DefaultQuery() }

func (s *State) Params() models.QueryParameters { return s.params }

// Visible recomputes the listing from the current inputs.
func (s *State) Visible() []models.Service {
	return catalog.Query(s.services, s.params)
}

// Page is Visible wrapped with the summary line and filter chips.
func (s *State) Page() models.CatalogPage {
	return catalog.NewPage(s.Visible(), s.params)
}

// SelectService opens the detail panel for the service with id.
func (s *State) SelectService(id string) bool {
	for i := range s.services {
		if s.services[i].ID == id {
			svc := s.services[i]
			s.selected = &svc
			s.panel = PanelDetail
			return true
		}
	}
	return false
}

// OpenBooking swaps the detail panel for the booking panel. It requires a
// selected service.
func (s *State) OpenBooking() bool {
	if s.selected == nil {
		return false
	}
	s.panel = PanelBooking
	return true
}

// CloseModals hides any panel and drops the selection.
func (s *State) CloseModals() {
	s.panel = PanelNone
	s.selected = nil
}

func (s *State) Selected() (models.Service, bool) {
	if s.selected == nil {
		return models.Service{}, false
	}
	return *s.selected, true
}

func (s *State) Panel() Panel { return s.panel }

func orAll(v string) string {
	if v == "" {
		return models.SelectAll
	}
	return v
}
