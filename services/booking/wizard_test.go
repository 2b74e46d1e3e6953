package booking

import (
	"testing"
	"time"

	"evently/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func djService() models.Service {
	return models.Service{
		ID:           "dj",
		Name:         "Night Owl",
		Category:     models.CategoryDJ,
		Price:        1200,
		Availability: []string{"2024-03-15", "2024-03-20"},
	}
}

func catererService() models.Service {
	return models.Service{
		ID:           "cater",
		Name:         "Feast",
		Category:     models.CategoryCaterer,
		Price:        85,
		Availability: []string{"2024-03-16"},
	}
}

func newWizard(service models.Service) *Wizard {
	return &Wizard{Session: NewSession("s1", service, time.Unix(0, 0)), Service: service}
}

func validDraft() models.DraftPatch {
	return models.DraftPatch{
		Date:       strp("2024-03-15"),
		Time:       strp("7:00 PM"),
		GuestCount: strp("120"),
		Name:       strp("Ada Lovelace"),
		Email:      strp("ada@example.com"),
		Phone:      strp("555-0100"),
	}
}

func TestWizard_NextWithEmptyDateStays(t *testing.T) {
	w := newWizard(djService())

	err := w.Next()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.StepDateTime, w.Session.Step)
	assert.Equal(t, "Please select a date", w.Session.Errors["date"])
	assert.Equal(t, "Please select a time", w.Session.Errors["time"])
	assert.Equal(t, w.Session.Errors, verr.Fields)
}

func TestWizard_StepOneRejectsUnknownDateAndSlot(t *testing.T) {
	w := newWizard(djService())
	require.NoError(t, w.Update(models.DraftPatch{Date: strp("2030-01-01"), Time: strp("9:30 AM")}))

	require.Error(t, w.Next())
	assert.Equal(t, "Please select an available date", w.Session.Errors["date"])
	assert.Equal(t, "Please select a valid time slot", w.Session.Errors["time"])
}

func TestWizard_FieldErrorsCoverOnlyFailures(t *testing.T) {
	w := newWizard(djService())
	require.NoError(t, w.Update(models.DraftPatch{Date: strp("2024-03-15")}))

	require.Error(t, w.Next())

	assert.Equal(t, map[string]string{"time": "Please select a time"}, w.Session.Errors)
}

func TestWizard_GuestCountOnlyNeedsText(t *testing.T) {
	w := newWizard(djService())
	require.NoError(t, w.Update(models.DraftPatch{Date: strp("2024-03-15"), Time: strp("9:00 AM")}))
	require.NoError(t, w.Next())
	require.Equal(t, models.StepEventDetails, w.Session.Step)

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, "Please enter guest count", w.Session.Errors["guestCount"])

	require.NoError(t, w.Update(models.DraftPatch{GuestCount: strp("lots")}))
	require.NoError(t, w.Next())
	assert.Equal(t, models.StepContactInfo, w.Session.Step)
	assert.Empty(t, w.Session.Errors)
}

func TestWizard_ContactValidation(t *testing.T) {
	tests := []struct {
		name  string
		patch models.DraftPatch
		want  map[string]string
	}{
		{
			name:  "all empty",
			patch: models.DraftPatch{},
			want: map[string]string{
				"name":  "Name is required",
				"email": "Email is required",
				"phone": "Phone is required",
			},
		},
		{
			name:  "bad email",
			patch: models.DraftPatch{Name: strp("Ada"), Email: strp("ada@example"), Phone: strp("1")},
			want:  map[string]string{"email": "Please enter a valid email"},
		},
		{
			name:  "unicode space after dot",
			patch: models.DraftPatch{Name: strp("Ada"), Email: strp("a@b.\u00a0"), Phone: strp("1")},
			want:  map[string]string{"email": "Please enter a valid email"},
		},
		{
			name:  "byte order mark domain",
			patch: models.DraftPatch{Name: strp("Ada"), Email: strp("a@\ufeff.co"), Phone: strp("1")},
			want:  map[string]string{"email": "Please enter a valid email"},
		},
		{
			name:  "ok",
			patch: models.DraftPatch{Name: strp("Ada"), Email: strp("a@b.co"), Phone: strp("1")},
			want:  map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := models.BookingDraft{}
			tt.patch.Apply(&draft)
			assert.Equal(t, tt.want, ValidateStep(models.StepContactInfo, draft, djService()))
		})
	}
}

func TestWizard_PreviousKeepsDataClearsErrors(t *testing.T) {
	w := newWizard(djService())
	require.ErrorIs(t, w.Previous(), ErrInvalidTransition)

	require.NoError(t, w.Update(models.DraftPatch{Date: strp("2024-03-20"), Time: strp("8:00 PM")}))
	require.NoError(t, w.Next())
	require.Error(t, w.Next())
	require.NotEmpty(t, w.Session.Errors)

	require.NoError(t, w.Previous())

	assert.Equal(t, models.StepDateTime, w.Session.Step)
	assert.Empty(t, w.Session.Errors)
	assert.Equal(t, "2024-03-20", w.Session.Draft.Date)
	assert.Equal(t, "8:00 PM", w.Session.Draft.Time)
}

func TestWizard_NextNotAllowedOnContactStep(t *testing.T) {
	w := newWizard(djService())
	require.NoError(t, w.Update(validDraft()))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), ErrInvalidTransition)
}

func TestWizard_SubmitFlow(t *testing.T) {
	w := newWizard(djService())
	require.ErrorIs(t, w.BeginSubmit("a1"), ErrInvalidTransition)

	require.NoError(t, w.Update(validDraft()))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	require.NoError(t, w.BeginSubmit("a1"))
	assert.True(t, w.Session.Submitting)
	assert.ErrorIs(t, w.BeginSubmit("a2"), ErrSubmissionInProgress)
	assert.ErrorIs(t, w.Update(models.DraftPatch{Name: strp("x")}), ErrSubmissionInProgress)
	assert.ErrorIs(t, w.Previous(), ErrSubmissionInProgress)

	assert.ErrorIs(t, w.CompleteSubmit("stale", time.Now()), ErrSessionClosed)

	require.NoError(t, w.CompleteSubmit("a1", time.UnixMilli(1710000123456)))
	assert.Equal(t, models.StepConfirmed, w.Session.Step)
	assert.False(t, w.Session.Submitting)
	assert.Equal(t, "123456", w.Session.Reference)

	// Confirmed is terminal.
	assert.ErrorIs(t, w.Next(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Previous(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Update(models.DraftPatch{Name: strp("x")}), ErrInvalidTransition)
}

func TestWizard_SubmitRevalidatesContact(t *testing.T) {
	w := newWizard(djService())
	require.NoError(t, w.Update(validDraft()))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Update(models.DraftPatch{Email: strp("nope")}))

	var verr *ValidationError
	require.ErrorAs(t, w.BeginSubmit("a1"), &verr)
	assert.False(t, w.Session.Submitting)
	assert.Equal(t, models.StepContactInfo, w.Session.Step)
	assert.Equal(t, "Please enter a valid email", w.Session.Errors["email"])
}

func TestWizard_AbortSubmit(t *testing.T) {
	w := newWizard(djService())
	require.NoError(t, w.Update(validDraft()))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.BeginSubmit("a1"))

	w.AbortSubmit("a1")

	assert.False(t, w.Session.Submitting)
	assert.Equal(t, models.StepContactInfo, w.Session.Step)
}

func TestCalculateTotal(t *testing.T) {
	assert.Equal(t, 4250.0, CalculateTotal(catererService(), models.BookingDraft{GuestCount: "50"}))
	assert.Equal(t, 1200.0, CalculateTotal(djService(), models.BookingDraft{GuestCount: "50"}))
	assert.Equal(t, 1200.0, CalculateTotal(djService(), models.BookingDraft{GuestCount: "abc"}))
	assert.Equal(t, 0.0, CalculateTotal(catererService(), models.BookingDraft{GuestCount: "abc"}))
}

func TestParseGuestCount(t *testing.T) {
	tests := map[string]int{
		"50":         50,
		" 50 guests": 50,
		"12.7":       12,
		"+3":         3,
		"-4":         0,
		"":           0,
		"about 40":   0,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseGuestCount(in), in)
	}
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(catererService(), models.BookingDraft{GuestCount: "50"})

	assert.Equal(t, 50, q.Guests)
	assert.True(t, q.PerGuest)
	assert.Equal(t, 4250.0, q.Total)
	assert.Equal(t, "$4,250", q.DisplayTotal)
}

func TestDisplayReference(t *testing.T) {
	assert.Equal(t, "000042", DisplayReference(time.UnixMilli(3_000_042)))
	assert.Len(t, DisplayReference(time.Now()), 6)
}
