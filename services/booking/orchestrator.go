package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"evently/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingSessionService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *DefaultBookingSessionService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func outcome(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrSubmissionInProgress):
		return "rejected"
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionClosed):
		return "missing"
	default:
		return "error"
	}
}

func respond(session *models.BookingSession, service models.Service) *models.BookingResponse {
	return &models.BookingResponse{
		Session:   *session,
		Service:   service,
		Quote:     NewQuote(service, session.Draft),
		TimeSlots: models.TimeSlots,
	}
}

// load must be called with s.mu held.
func (s *DefaultBookingSessionService) load(ctx context.Context, sessionID string) (*Wizard, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	service, err := s.Catalog.Get(session.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return &Wizard{Session: session, Service: service}, nil
}

// OpenSession starts a fresh, empty draft for serviceID.
func (s *DefaultBookingSessionService) OpenSession(ctx context.Context, serviceID string) (*models.BookingResponse, error) {
	service, err := s.Catalog.Get(serviceID)
	if err != nil {
		s.Metrics.ObserveTransition("open", outcome(err))
		return nil, err
	}

	session := NewSession(s.newID(), service, s.now())
	if err := s.Store.Save(ctx, session); err != nil {
		s.logger().Error("OpenSession: failed to store session", zap.String("serviceID", serviceID), zap.Error(err))
		s.Metrics.ObserveTransition("open", "error")
		return nil, err
	}

	s.logger().Info("booking session opened",
		zap.String("sessionID", session.SessionID),
		zap.String("serviceID", serviceID),
	)
	s.Metrics.ObserveTransition("open", "ok")
	return respond(session, service), nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return respond(w.Session, w.Service), nil
}

// apply runs one synchronous transition. The snapshot is saved when the
// transition succeeds or fails validation, so field messages survive.
func (s *DefaultBookingSessionService) apply(ctx context.Context, action, sessionID string, transition func(w *Wizard) error) (*models.BookingResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, sessionID)
	if err != nil {
		s.Metrics.ObserveTransition(action, outcome(err))
		return nil, err
	}

	terr := transition(w)
	var verr *ValidationError
	if terr == nil || errors.As(terr, &verr) {
		w.Session.UpdatedAt = s.now()
		if err := s.Store.Save(ctx, w.Session); err != nil {
			s.logger().Error("failed to save booking session",
				zap.String("action", action),
				zap.String("sessionID", sessionID),
				zap.Error(err),
			)
			s.Metrics.ObserveTransition(action, "error")
			return nil, err
		}
	}

	s.logger().Debug("booking transition",
		zap.String("action", action),
		zap.String("sessionID", sessionID),
		zap.Stringer("step", w.Session.Step),
		zap.String("outcome", outcome(terr)),
	)
	s.Metrics.ObserveTransition(action, outcome(terr))
	return respond(w.Session, w.Service), terr
}

func (s *DefaultBookingSessionService) UpdateDraft(ctx context.Context, sessionID string, patch models.DraftPatch) (*models.BookingResponse, error) {
	return s.apply(ctx, "update", sessionID, func(w *Wizard) error { return w.Update(patch) })
}

func (s *DefaultBookingSessionService) Next(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	return s.apply(ctx, "next", sessionID, func(w *Wizard) error { return w.Next() })
}

func (s *DefaultBookingSessionService) Previous(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	return s.apply(ctx, "previous", sessionID, func(w *Wizard) error { return w.Previous() })
}

// Submit validates contact info, waits for the finalizer and moves the
// session to the confirmed step. The wait is detached from ctx cancellation.
// If the session is closed while waiting, the completion is dropped and
// ErrSessionClosed returned.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	attempt := s.newID()
	resp, err := s.apply(ctx, "submit", sessionID, func(w *Wizard) error { return w.BeginSubmit(attempt) })
	if err != nil {
		return resp, err
	}

	// The rest of the submission outlives the request.
	dctx := context.WithoutCancel(ctx)

	started := s.now()
	finalizer := s.Finalizer
	if finalizer == nil {
		finalizer = SimulatedFinalizer{}
	}
	ferr := finalizer.Finalize(dctx, resp.Session, resp.Service)
	s.Metrics.ObserveSubmit(s.now().Sub(started).Seconds())

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(dctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		s.logger().Info("booking session closed during submission; completion ignored", zap.String("sessionID", sessionID))
		s.Metrics.ObserveTransition("complete", "missing")
		return nil, ErrSessionClosed
	}
	if err != nil {
		s.Metrics.ObserveTransition("complete", "error")
		return nil, err
	}

	if ferr != nil {
		w.AbortSubmit(attempt)
		if err := s.Store.Save(dctx, w.Session); err != nil {
			s.logger().Error("Submit: failed to save aborted session", zap.String("sessionID", sessionID), zap.Error(err))
		}
		s.logger().Error("Submit: finalize failed", zap.String("sessionID", sessionID), zap.Error(ferr))
		s.Metrics.ObserveTransition("complete", "error")
		return respond(w.Session, w.Service), fmt.Errorf("failed to finalize booking: %w", ferr)
	}

	if err := w.CompleteSubmit(attempt, s.now()); err != nil {
		s.logger().Info("stale booking completion ignored", zap.String("sessionID", sessionID))
		s.Metrics.ObserveTransition("complete", outcome(err))
		return nil, err
	}
	w.Session.UpdatedAt = s.now()
	if err := s.Store.Save(dctx, w.Session); err != nil {
		s.Metrics.ObserveTransition("complete", "error")
		return nil, err
	}

	s.logger().Info("booking submitted",
		zap.String("sessionID", sessionID),
		zap.String("serviceID", w.Service.ID),
		zap.String("reference", w.Session.Reference),
	)
	s.Metrics.ObserveTransition("complete", "ok")
	return respond(w.Session, w.Service), nil
}

// CloseSession discards the draft, including one that is mid-submission.
func (s *DefaultBookingSessionService) CloseSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		s.Metrics.ObserveTransition("close", outcome(err))
		return err
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Metrics.ObserveTransition("close", "error")
		return err
	}
	s.logger().Info("booking session closed", zap.String("sessionID", sessionID))
	s.Metrics.ObserveTransition("close", "ok")
	return nil
}
