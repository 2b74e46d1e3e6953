package handlers

import (
	"errors"
	"net/http"

	"evently/services/catalog"
	"evently/services/storefront"
	"evently/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the service listing and detail views.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Metrics    *utils.BookingMetrics
	Logger     *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, metrics *utils.BookingMetrics, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Metrics: metrics, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	params := catalog.ParseQuery(c.Request.URL.Query())

	// State normalises empty selectors; the catalog runs the query.
	st := storefront.NewState(nil)
	st.Apply(params)
	page := h.CatalogSvc.Search(st.Params())

	h.Metrics.ObserveQuery(string(st.Params().Sort))
	h.Logger.Debug("ListServices",
		zap.String("search", params.Search),
		zap.String("sort", string(params.Sort)),
		zap.Int("count", page.Count),
	)
	c.JSON(http.StatusOK, page)
}

// GetServiceByID handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	id := c.Param("id")

	details, err := h.CatalogSvc.Details(id)
	if errors.Is(err, catalog.ErrServiceNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found", err.Error())
		return
	}
	if err != nil {
		h.Logger.Error("GetServiceByID: failed to fetch service details", zap.String("serviceID", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", err.Error())
		return
	}

	c.JSON(http.StatusOK, details)
}
