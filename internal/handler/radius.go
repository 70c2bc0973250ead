package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"jobsearch-api/internal/models"
	"jobsearch-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RadiusHandler handles radius search requests
type RadiusHandler struct {
	service RadiusService
}

// RadiusService interface for dependency injection
type RadiusService interface {
	Search(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusResult, error)
}

// NewRadiusHandler creates a new radius handler
func NewRadiusHandler(svc RadiusService) *RadiusHandler {
	return &RadiusHandler{service: svc}
}

var invalidRadiusMessage = func() string {
	radii := make([]string, len(models.ValidRadiiKm))
	for i, r := range models.ValidRadiiKm {
		radii[i] = strconv.Itoa(r)
	}
	return fmt.Sprintf("Invalid radius. Valid values: %s", strings.Join(radii, ", "))
}()

// RadiusSearch handles GET /api/radius-search requests
//
//	@Summary	Places within a radius of a postal code
//	@Tags		places
//	@Produce	json
//	@Param		plz		query		string	true	"Source postal code"
//	@Param		radius	query		int		false	"Radius in km (5, 10, 25, 50 or 100)"	default(25)
//	@Success	200		{object}	models.RadiusResult
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Router		/api/radius-search [get]
func (h *RadiusHandler) RadiusSearch(c *gin.Context) {
	plz := strings.TrimSpace(c.Query("plz"))
	if plz == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PLZ parameter required"})
		return
	}

	radiusKm, ok := queryInt(c.Query("radius"), service.DefaultRadiusKm)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRadiusMessage})
		return
	}

	result, err := h.service.Search(c.Request.Context(), plz, radiusKm)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRadiusMessage})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "PLZ not found",
			"plz":      plz,
			"radiusKm": radiusKm,
			"count":    0,
			"results":  []models.RadiusPlace{},
		})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("plz", plz).Int("radius_km", radiusKm).Msg("radius search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search radius"})
	}
}
