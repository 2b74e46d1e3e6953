package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"evently/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders a service's base price for display. Caterers are shown
// per person without grouping; everything else as a grouped dollar amount.
func FormatPrice(s models.Service) string {
	if s.Category.PerGuest() {
		return "$" + strconv.FormatFloat(s.Price, 'f', -1, 64) + "/person"
	}
	return FormatAmount(s.Price)
}

// FormatAmount renders a dollar amount with thousands separators and at most
// three fraction digits.
func FormatAmount(amount float64) string {
	raw := strconv.FormatFloat(amount, 'f', -1, 64)
	decimals := 0
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		decimals = len(raw) - i - 1
	}
	if decimals == 0 {
		return printer.Sprintf("$%d", int64(amount))
	}
	if decimals > 3 {
		decimals = 3
	}
	return printer.Sprintf(fmt.Sprintf("$%%.%df", decimals), amount)
}

// ActiveFilters returns the chip labels for every filter that is in effect.
// Search text is not listed.
func ActiveFilters(params models.QueryParameters) []string {
	labels := []string{}
	if c, ok := categorySelector(params.Category); ok {
		labels = append(labels, string(c))
	}
	switch params.Price {
	case models.PriceLow, models.PriceMedium, models.PriceHigh:
		labels = append(labels, string(params.Price)+" price")
	}
	if _, ok := ratingSelector(params.Rating); ok {
		labels = append(labels, strings.TrimSpace(params.Rating)+"+ rating")
	}
	if params.Location != "" {
		labels = append(labels, "in "+params.Location)
	}
	return labels
}

// ResultSummary is the line shown above the result grid.
func ResultSummary(n int) string {
	noun := "services"
	if n == 1 {
		noun = "service"
	}
	return fmt.Sprintf("Found %d %s matching your criteria", n, noun)
}
