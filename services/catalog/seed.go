package catalog

import (
	"fmt"

	"evently/models"
)

func unsplash(id string, w, h int) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?w=%d&h=%d&fit=crop", id, w, h)
}

// seedServices is the catalog loaded at startup.
var seedServices = []models.Service{
	{
		ID:          "1",
		Name:        "Elite Sound Productions",
		Category:    models.CategoryDJ,
		Price:       1200,
		Rating:      4.9,
		ReviewCount: 127,
		Location:    "Los Angeles, CA",
		Description: "Premium DJ services for weddings and corporate events with state-of-the-art sound systems and lighting.",
		Images: []string{
			unsplash("1516450360452-9312f5e86fc7", 800, 600),
			unsplash("1493225457124-a3eb161ffa5f", 800, 600),
			unsplash("1571266028243-d220c9c5d99c", 800, 600),
		},
		Availability: []string{"2024-03-15", "2024-03-20", "2024-03-25", "2024-04-01", "2024-04-10"},
		Features:     []string{"Professional Sound System", "LED Lighting", "Microphone Setup", "Music Library Access"},
		Experience:   8,
	},
	{
		ID:          "2",
		Name:        "Lens & Light Photography",
		Category:    models.CategoryPhotographer,
		Price:       2500,
		Rating:      4.8,
		ReviewCount: 89,
		Location:    "San Francisco, CA",
		Description: "Award-winning wedding and event photographer capturing your most precious moments with artistic flair.",
		Images: []string{
			unsplash("1606800052052-a08af7148866", 800, 600),
			unsplash("1511285560929-80b456fea0bc", 800, 600),
			unsplash("1542038784456-1ea8e0c7412e", 800, 600),
		},
		Availability: []string{"2024-03-18", "2024-03-22", "2024-04-05", "2024-04-12", "2024-04-20"},
		Features:     []string{"Full Day Coverage", "Digital Gallery", "Print Rights", "Engagement Session"},
		Experience:   12,
	},
	{
		ID:          "3",
		Name:        "Gourmet Occasions Catering",
		Category:    models.CategoryCaterer,
		Price:       85,
		Rating:      4.7,
		ReviewCount: 156,
		Location:    "New York, NY",
		Description: "Exquisite catering services with farm-to-table ingredients and customizable menus for any occasion.",
		Images: []string{
			unsplash("1414235077428-338989a2e8c0", 800, 600),
			unsplash("1504674900247-0877df9cc836", 800, 600),
			unsplash("1565299624946-b28f40a0ca4b", 800, 600),
		},
		Availability: []string{"2024-03-16", "2024-03-21", "2024-04-02", "2024-04-08", "2024-04-15"},
		Features:     []string{"Custom Menus", "Dietary Accommodations", "Service Staff", "Presentation Setup"},
		Experience:   15,
	},
	{
		ID:          "4",
		Name:        "Rhythm & Beats Entertainment",
		Category:    models.CategoryDJ,
		Price:       800,
		Rating:      4.6,
		ReviewCount: 93,
		Location:    "Miami, FL",
		Description: "High-energy DJ services specializing in Latin, Pop, and Hip-Hop music for unforgettable celebrations.",
		Images: []string{
			unsplash("1571266028243-d220c9c5d99c", 800, 600),
			unsplash("1516450360452-9312f5e86fc7", 800, 600),
		},
		Availability: []string{"2024-03-19", "2024-03-26", "2024-04-03", "2024-04-11"},
		Features:     []string{"Dance Floor Lighting", "Wireless Mics", "Song Requests", "4-Hour Service"},
		Experience:   6,
	},
	{
		ID:          "5",
		Name:        "Candid Moments Studio",
		Category:    models.CategoryPhotographer,
		Price:       1800,
		Rating:      4.9,
		ReviewCount: 72,
		Location:    "Chicago, IL",
		Description: "Specializing in candid, natural photography that tells your unique story with authentic emotion.",
		Images: []string{
			unsplash("1542038784456-1ea8e0c7412e", 800, 600),
			unsplash("1606800052052-a08af7148866", 800, 600),
		},
		Availability: []string{"2024-03-17", "2024-03-24", "2024-04-07", "2024-04-14"},
		Features:     []string{"Natural Light Photography", "Edited Gallery", "USB with Images", "Online Proofing"},
		Experience:   9,
	},
	{
		ID:          "6",
		Name:        "Artisan Feast Catering",
		Category:    models.CategoryCaterer,
		Price:       120,
		Rating:      4.8,
		ReviewCount: 104,
		Location:    "Portland, OR",
		Description: "Artisan catering with locally-sourced ingredients and creative presentation for memorable dining experiences.",
		Images: []string{
			unsplash("1565299624946-b28f40a0ca4b", 800, 600),
			unsplash("1414235077428-338989a2e8c0", 800, 600),
		},
		Availability: []string{"2024-03-20", "2024-03-27", "2024-04-04", "2024-04-13"},
		Features:     []string{"Organic Ingredients", "Plated Service", "Bartender Service", "Cleanup Included"},
		Experience:   11,
	},
}

var seedReviews = []models.Review{
	{
		ID:        "1",
		ServiceID: "1",
		UserName:  "Sarah Johnson",
		Rating:    5,
		Comment:   "Absolutely phenomenal! The DJ kept everyone dancing all night and the sound quality was perfect.",
		Date:      "2024-02-15",
		Avatar:    unsplash("1494790108755-2616b612b786", 150, 150) + "&crop=face",
	},
	{
		ID:        "2",
		ServiceID: "1",
		UserName:  "Mike Chen",
		Rating:    5,
		Comment:   "Professional, punctual, and amazing music selection. Highly recommend!",
		Date:      "2024-02-08",
		Avatar:    unsplash("1507003211169-0a1dd7228f2d", 150, 150) + "&crop=face",
	},
	{
		ID:        "3",
		ServiceID: "2",
		UserName:  "Emily Rodriguez",
		Rating:    5,
		Comment:   "Beautiful photography that captured every special moment. The quality exceeded our expectations!",
		Date:      "2024-02-10",
		Avatar:    unsplash("1438761681033-6461ffad8d80", 150, 150) + "&crop=face",
	},
}

// SeedServices returns a fresh copy of the built-in catalog.
func SeedServices() []models.Service {
	out := make([]models.Service, len(seedServices))
	for i, s := range seedServices {
		out[i] = cloneService(s)
	}
	return out
}

// SeedReviews returns a fresh copy of the built-in reviews.
func SeedReviews() []models.Review {
	out := make([]models.Review, len(seedReviews))
	copy(out, seedReviews)
	return out
}

func cloneService(s models.Service) models.Service {
	s.Images = append([]string(nil), s.Images...)
	s.Availability = append([]string(nil), s.Availability...)
	s.Features = append([]string(nil), s.Features...)
	return s
}
