package service

import (
	"context"
	"testing"

	"jobsearch-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Stats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		mockRepo.On("JobStats", mock.Anything).Return(models.JobStats{JobCount: 120, CompanyCount: 17}, nil)

		stats, err := NewStatsService(mockRepo).Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.JobStats{JobCount: 120, CompanyCount: 17}, stats)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		mockRepo.On("JobStats", mock.Anything).Return(models.JobStats{}, assert.AnError)

		_, err := NewStatsService(mockRepo).Stats(context.Background())

		assert.ErrorIs(t, err, assert.AnError)
	})
}
