// models/service.go
package models

// Category is the closed set of service kinds offered in the catalog.
type Category string

const (
	CategoryDJ           Category = "DJ"
	CategoryPhotographer Category = "Photographer"
	CategoryCaterer      Category = "Caterer"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryDJ, CategoryPhotographer, CategoryCaterer}

// ParseCategory returns the category matching raw exactly, or false.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// PerGuest reports whether the price of this category is charged per guest.
func (c Category) PerGuest() bool {
	return c == CategoryCaterer
}

// Service is an immutable catalog entry.
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Price        float64  `json:"price"` // flat fee, or per guest for caterers
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Availability []string `json:"availability"` // "YYYY-MM-DD"
	Features     []string `json:"features"`
	Experience   int      `json:"experience"` // years
}

// IsAvailableOn reports whether date is one of the service's open dates.
func (s Service) IsAvailableOn(date string) bool {
	for _, d := range s.Availability {
		if d == date {
			return true
		}
	}
	return false
}

// Review is a customer review attached to a service.
type Review struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"serviceId"`
	UserName  string  `json:"userName"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	Date      string  `json:"date"`
	Avatar    string  `json:"avatar,omitempty"`
}

// ServiceDetails is the detail view payload for a single service.
type ServiceDetails struct {
	Service       Service  `json:"service"`
	Reviews       []Review `json:"reviews"`
	DisplayPrice  string   `json:"displayPrice"`
	NextAvailable string   `json:"nextAvailable,omitempty"`
}
