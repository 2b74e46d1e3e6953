// File: evently/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListServices   gin.HandlerFunc
	GetServiceByID gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	NextStep        gin.HandlerFunc
	PreviousStep    gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Operational endpoints
	Health  gin.HandlerFunc
	Metrics gin.HandlerFunc
}

// NewHandlerBundle wires the catalog and booking handlers into a bundle.
func NewHandlerBundle(ch *CatalogHandler, bh *BookingHandler, health, metrics gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		ListServices:   ch.ListServices,
		GetServiceByID: ch.GetServiceByID,

		InitiateSession: bh.InitiateSession,
		GetSession:      bh.GetSession,
		UpdateSession:   bh.UpdateSession,
		NextStep:        bh.NextStep,
		PreviousStep:    bh.PreviousStep,
		ConfirmBooking:  bh.ConfirmBooking,
		CancelSession:   bh.CancelSession,

		Health:  health,
		Metrics: metrics,
	}
}
