package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"jobsearch-api/internal/models"
	"jobsearch-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// JobHandler handles job search and statistics requests
type JobHandler struct {
	service JobService
	stats   StatsService
}

// JobService interface for dependency injection
type JobService interface {
	Search(ctx context.Context, q models.JobQuery) ([]models.Job, error)
}

// StatsService interface for dependency injection
type StatsService interface {
	Stats(ctx context.Context) (models.JobStats, error)
}

// NewJobHandler creates a new job handler
func NewJobHandler(svc JobService, stats StatsService) *JobHandler {
	return &JobHandler{service: svc, stats: stats}
}

// SearchJobs handles GET /api/jobs requests
//
//	@Summary	Job postings by profession and postal codes
//	@Tags		jobs
//	@Produce	json
//	@Param		profession	query		string	false	"Profession keyword"
//	@Param		plz			query		string	false	"Single postal code"
//	@Param		plzs		query		string	false	"Comma separated postal codes"
//	@Param		limit		query		int		false	"Maximum number of jobs (max 500)"	default(200)
//	@Success	200			{array}		models.Job
//	@Failure	400			{object}	errorResponse
//	@Failure	500			{object}	errorResponse
//	@Router		/api/jobs [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	q := models.JobQuery{Profession: strings.TrimSpace(c.Query("profession"))}
	if plzs := splitList(c.Query("plzs")); len(plzs) > 0 {
		q.PostalCodes = plzs
	} else if plz := strings.TrimSpace(c.Query("plz")); plz != "" {
		q.PostalCodes = []string{plz}
	}
	q.Limit, _ = queryInt(c.Query("limit"), 0)

	if q.Profession == "" && len(q.PostalCodes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profession or plz parameter required"})
		return
	}

	jobs, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profession or plz parameter required"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("profession", q.Profession).Int("postal_codes", len(q.PostalCodes)).Msg("job search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// JobStats handles GET /api/jobs-stats requests
//
//	@Summary	Number of postings and companies
//	@Tags		jobs
//	@Produce	json
//	@Success	200	{object}	models.JobStats
//	@Failure	500	{object}	errorResponse
//	@Router		/api/jobs-stats [get]
func (h *JobHandler) JobStats(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("loading job stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
