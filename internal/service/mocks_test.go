package service

import (
	"context"

	"jobsearch-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPlaceRepository is a mock implementation of the PlaceRepository interface
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) SearchPlaces(ctx context.Context, query, normalizedQuery string, limit int) ([]models.Place, error) {
	args := m.Called(ctx, query, normalizedQuery, limit)
	places, _ := args.Get(0).([]models.Place)
	return places, args.Error(1)
}

// MockRadiusRepository is a mock implementation of the RadiusRepository interface
type MockRadiusRepository struct {
	mock.Mock
}

func (m *MockRadiusRepository) FindRadiusEntry(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusEntry, error) {
	args := m.Called(ctx, postalCode, radiusKm)
	entry, _ := args.Get(0).(*models.RadiusEntry)
	return entry, args.Error(1)
}

func (m *MockRadiusRepository) FindPlacesByPostalCodes(ctx context.Context, postalCodes []string) ([]models.Place, error) {
	args := m.Called(ctx, postalCodes)
	places, _ := args.Get(0).([]models.Place)
	return places, args.Error(1)
}

// MockJobRepository is a mock implementation of the JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobs(ctx context.Context, profession string, postalCodes []string, limit int) ([]models.JobRecord, error) {
	args := m.Called(ctx, profession, postalCodes, limit)
	records, _ := args.Get(0).([]models.JobRecord)
	return records, args.Error(1)
}

// MockStatsRepository is a mock implementation of the StatsRepository interface
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) JobStats(ctx context.Context) (models.JobStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.JobStats), args.Error(1)
}

func ptr[T any](v T) *T {
	return &v
}
