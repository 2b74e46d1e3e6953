package booking

import (
	"strconv"
	"strings"
	"unicode"

	"evently/models"
	"evently/services/catalog"
)

// ParseGuestCount reads the leading integer of raw ("50", " 50 guests",
// "12.5"). Text without a leading number, and negative numbers, count as zero.
func ParseGuestCount(raw string) int {
	raw = strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CalculateTotal is guests × price for caterers and the flat price otherwise.
func CalculateTotal(service models.Service, draft models.BookingDraft) float64 {
	if service.Category.PerGuest() {
		return service.Price * float64(ParseGuestCount(draft.GuestCount))
	}
	return service.Price
}

// NewQuote builds the price summary for a draft.
func NewQuote(service models.Service, draft models.BookingDraft) models.Quote {
	total := CalculateTotal(service, draft)
	return models.Quote{
		Guests:       ParseGuestCount(draft.GuestCount),
		UnitPrice:    service.Price,
		PerGuest:     service.Category.PerGuest(),
		Total:        total,
		DisplayTotal: catalog.FormatAmount(total),
	}
}
