package booking

import (
	"context"
	"time"

	"evently/models"
)

// Finalizer completes a submitted booking. There is no backend behind the
// default implementation.
type Finalizer interface {
	Finalize(ctx context.Context, session models.BookingSession, service models.Service) error
}

// SimulatedFinalizer waits a fixed delay to stand in for network latency and
// always succeeds.
type SimulatedFinalizer struct {
	Delay time.Duration
}

func (f SimulatedFinalizer) Finalize(ctx context.Context, _ models.BookingSession, _ models.Service) error {
	if f.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(f.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FinalizerFunc adapts a function to Finalizer.
type FinalizerFunc func(ctx context.Context, session models.BookingSession, service models.Service) error

func (f FinalizerFunc) Finalize(ctx context.Context, session models.BookingSession, service models.Service) error {
	return f(ctx, session, service)
}
