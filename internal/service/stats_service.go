package service

import (
	"context"
	"fmt"

	"jobsearch-api/internal/models"
)

// StatsService reports the size of the job listing.
type StatsService struct {
	repo StatsRepository
}

// StatsRepository interface for dependency injection
type StatsRepository interface {
	JobStats(ctx context.Context) (models.JobStats, error)
}

// NewStatsService creates a new stats service
func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Stats counts postings with a company and the number of distinct companies.
func (s *StatsService) Stats(ctx context.Context) (models.JobStats, error) {
	stats, err := s.repo.JobStats(ctx)
	if err != nil {
		return models.JobStats{}, fmt.Errorf("service: failed to load job stats: %w", err)
	}
	return stats, nil
}
