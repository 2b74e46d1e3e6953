package models

import "time"

// BookingStep is a position in the booking wizard.
type BookingStep int

const (
	StepDateTime     BookingStep = 1
	StepEventDetails BookingStep = 2
	StepContactInfo  BookingStep = 3
	StepConfirmed    BookingStep = 4
)

func (s BookingStep) String() string {
	switch s {
	case StepDateTime:
		return "date-time"
	case StepEventDetails:
		return "event-details"
	case StepContactInfo:
		return "contact-info"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// TimeSlots are the bookable start times, hourly from 9 AM to 8 PM.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
	"5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM",
}

// IsTimeSlot reports whether slot is one of TimeSlots.
func IsTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// BookingDraft holds what the user has entered so far.
type BookingDraft struct {
	Date                string `json:"date"`
	Time                string `json:"time"`
	GuestCount          string `json:"guestCount"`
	SpecialRequirements string `json:"specialRequirements"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
}

// DraftPatch is a partial update; nil fields are left untouched.
type DraftPatch struct {
	Date                *string `json:"date,omitempty"`
	Time                *string `json:"time,omitempty"`
	GuestCount          *string `json:"guestCount,omitempty"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`
	Name                *string `json:"name,omitempty"`
	Email               *string `json:"email,omitempty"`
	Phone               *string `json:"phone,omitempty"`
}

// Apply copies every non-nil field of p onto d.
func (p DraftPatch) Apply(d *BookingDraft) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.Date, p.Date)
	set(&d.Time, p.Time)
	set(&d.GuestCount, p.GuestCount)
	set(&d.SpecialRequirements, p.SpecialRequirements)
	set(&d.Name, p.Name)
	set(&d.Email, p.Email)
	set(&d.Phone, p.Phone)
}

// BookingSession is the snapshot of one wizard run.
type BookingSession struct {
	SessionID  string            `json:"sessionId"`
	ServiceID  string            `json:"serviceId"`
	Step       BookingStep       `json:"step"`
	Draft      BookingDraft      `json:"draft"`
	Errors     map[string]string `json:"errors,omitempty"`
	Submitting bool              `json:"submitting"`
	Attempt    string            `json:"attempt,omitempty"`
	Reference  string            `json:"reference,omitempty"` // display only, not unique
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Quote is the price summary shown alongside the wizard.
type Quote struct {
	Guests       int     `json:"guests"`
	UnitPrice    float64 `json:"unitPrice"`
	PerGuest     bool    `json:"perGuest"`
	Total        float64 `json:"total"`
	DisplayTotal string  `json:"displayTotal"`
}

// BookingResponse is what the booking endpoints return.
type BookingResponse struct {
	Session   BookingSession `json:"session"`
	Service   Service        `json:"service"`
	Quote     Quote          `json:"quote"`
	TimeSlots []string       `json:"timeSlots"`
}
