package booking

import (
	"time"

	"evently/models"
)

// Wizard applies the booking wizard transitions to a session snapshot.
// Each call mutates the session in place; callers persist it afterwards.
//
//	DateTime(1) -> EventDetails(2) -> ContactInfo(3) -> Confirmed(4)
type Wizard struct {
	Session *models.BookingSession
	Service models.Service
}

// NewSession returns an empty draft on the first step.
func NewSession(id string, service models.Service, now time.Time) *models.BookingSession {
	return &models.BookingSession{
		SessionID: id,
		ServiceID: service.ID,
		Step:      models.StepDateTime,
		Errors:    map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (w *Wizard) editable() bool {
	return !w.Session.Submitting && w.Session.Step >= models.StepDateTime && w.Session.Step <= models.StepContactInfo
}

// Update merges patch into the draft. Errors already shown are kept until
// the step is validated again.
func (w *Wizard) Update(patch models.DraftPatch) error {
	if w.Session.Submitting {
		return ErrSubmissionInProgress
	}
	if !w.editable() {
		return ErrInvalidTransition
	}
	patch.Apply(&w.Session.Draft)
	return nil
}

// validate replaces the current step's messages with fresh ones and reports
// whether the step passed. Messages for other steps are untouched.
func (w *Wizard) validate(step models.BookingStep) error {
	if w.Session.Errors == nil {
		w.Session.Errors = map[string]string{}
	}
	for _, f := range stepFields[step] {
		delete(w.Session.Errors, f)
	}
	failed := ValidateStep(step, w.Session.Draft, w.Service)
	if len(failed) == 0 {
		return nil
	}
	for f, msg := range failed {
		w.Session.Errors[f] = msg
	}
	return NewValidationError(failed)
}

// Next leaves step 1 or 2 when its fields validate. On failure the step is
// unchanged and a *ValidationError is returned.
func (w *Wizard) Next() error {
	if w.Session.Submitting {
		return ErrSubmissionInProgress
	}
	if w.Session.Step != models.StepDateTime && w.Session.Step != models.StepEventDetails {
		return ErrInvalidTransition
	}
	if err := w.validate(w.Session.Step); err != nil {
		return err
	}
	w.Session.Step++
	return nil
}

// Previous steps back from 2 or 3, clearing every field message but no data.
func (w *Wizard) Previous() error {
	if w.Session.Submitting {
		return ErrSubmissionInProgress
	}
	if w.Session.Step != models.StepEventDetails && w.Session.Step != models.StepContactInfo {
		return ErrInvalidTransition
	}
	w.Session.Step--
	w.Session.Errors = map[string]string{}
	return nil
}

// BeginSubmit re-validates contact info and marks the session as submitting
// under attempt.
func (w *Wizard) BeginSubmit(attempt string) error {
	if w.Session.Submitting {
		return ErrSubmissionInProgress
	}
	if w.Session.Step != models.StepContactInfo {
		return ErrInvalidTransition
	}
	if err := w.validate(models.StepContactInfo); err != nil {
		return err
	}
	w.Session.Submitting = true
	w.Session.Attempt = attempt
	return nil
}

// CompleteSubmit moves a submitting session to the terminal step. A stale
// attempt is rejected with ErrSessionClosed.
func (w *Wizard) CompleteSubmit(attempt string, now time.Time) error {
	if !w.Session.Submitting || w.Session.Attempt != attempt {
		return ErrSessionClosed
	}
	w.Session.Submitting = false
	w.Session.Attempt = ""
	w.Session.Step = models.StepConfirmed
	w.Session.Errors = map[string]string{}
	w.Session.Reference = DisplayReference(now)
	return nil
}

// AbortSubmit returns a failed submission to the contact step.
func (w *Wizard) AbortSubmit(attempt string) {
	if w.Session.Submitting && w.Session.Attempt == attempt {
		w.Session.Submitting = false
		w.Session.Attempt = ""
	}
}
