package booking

import (
	"context"
	"sync"
	"time"

	"evently/models"
	"evently/services/catalog"
	"evently/utils"

	"go.uber.org/zap"
)

// BookingSessionService defines the interface for managing a stateful booking wizard.
// Operations that fail validation return the updated snapshot together with a
// *ValidationError.
type BookingSessionService interface {
	OpenSession(ctx context.Context, serviceID string) (*models.BookingResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	UpdateDraft(ctx context.Context, sessionID string, patch models.DraftPatch) (*models.BookingResponse, error)
	Next(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	Previous(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	Submit(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Catalog   catalog.CatalogService
	Store     SessionStore
	Finalizer Finalizer
	Logger    *zap.Logger
	Metrics   *utils.BookingMetrics

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string

	// mu serializes load-modify-save; it is never held across Finalize.
	mu sync.Mutex
}
