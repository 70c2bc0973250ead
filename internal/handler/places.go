package handler

import (
	"context"
	"net/http"

	"jobsearch-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PlaceHandler handles place autocomplete requests
type PlaceHandler struct {
	service PlaceService
}

// PlaceService interface for dependency injection
type PlaceService interface {
	Search(ctx context.Context, query string, limit int) ([]models.Place, error)
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(svc PlaceService) *PlaceHandler {
	return &PlaceHandler{service: svc}
}

// SearchPlaces handles GET /api/locations requests
//
//	@Summary	Autocomplete places by postal code or name
//	@Tags		places
//	@Produce	json
//	@Param		q		query		string	false	"Partial postal code or place name"
//	@Param		limit	query		int		false	"Maximum number of places (max 50)"	default(20)
//	@Success	200		{array}		models.Place
//	@Failure	500		{object}	errorResponse
//	@Router		/api/locations [get]
func (h *PlaceHandler) SearchPlaces(c *gin.Context) {
	// an unparsable limit falls back to the service default
	limit, _ := queryInt(c.Query("limit"), 0)

	places, err := h.service.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("q", c.Query("q")).Msg("place search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search locations"})
		return
	}

	c.JSON(http.StatusOK, places)
}
