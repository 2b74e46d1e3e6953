package booking

import (
	"regexp"

	"evently/models"
)

// Loose shape check: something@something.something, no RFC parsing.
// Unicode spaces (U+00A0, U+2028, U+FEFF and the rest of \p{Z}) count as
// whitespace, not only the ASCII set RE2 puts in \s.
const nonSpace = `[^\s\p{Z}\x{FEFF}]`

var emailPattern = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

// stepFields lists the draft fields each step owns.
var stepFields = map[models.BookingStep][]string{
	models.StepDateTime:     {"date", "time"},
	models.StepEventDetails: {"guestCount", "specialRequirements"},
	models.StepContactInfo:  {"name", "email", "phone"},
}

// ValidateStep returns a message for every field of step that fails. An empty
// map means the step may be left.
func ValidateStep(step models.BookingStep, draft models.BookingDraft, service models.Service) map[string]string {
	errs := map[string]string{}

	switch step {
	case models.StepDateTime:
		switch {
		case draft.Date == "":
			errs["date"] = "Please select a date"
		case !service.IsAvailableOn(draft.Date):
			errs["date"] = "Please select an available date"
		}
		switch {
		case draft.Time == "":
			errs["time"] = "Please select a time"
		case !models.IsTimeSlot(draft.Time):
			errs["time"] = "Please select a valid time slot"
		}
	case models.StepEventDetails:
		// Only emptiness fails; non-numeric text counts as zero guests when pricing.
		if draft.GuestCount == "" {
			errs["guestCount"] = "Please enter guest count"
		}
	case models.StepContactInfo:
		if draft.Name == "" {
			errs["name"] = "Name is required"
		}
		switch {
		case draft.Email == "":
			errs["email"] = "Email is required"
		case !emailPattern.MatchString(draft.Email):
			errs["email"] = "Please enter a valid email"
		}
		if draft.Phone == "" {
			errs["phone"] = "Phone is required"
		}
	}

	return errs
}
