package service

import (
	"context"
	"fmt"
	"strings"

	"jobsearch-api/internal/models"
	"jobsearch-api/internal/textnorm"
)

const (
	DefaultPlaceLimit = 20
	MaxPlaceLimit     = 50
)

// PlaceService resolves partial postal codes and place names to places.
type PlaceService struct {
	repo PlaceRepository
}

// PlaceRepository interface for dependency injection
type PlaceRepository interface {
	SearchPlaces(ctx context.Context, query, normalizedQuery string, limit int) ([]models.Place, error)
}

// NewPlaceService creates a new place service
func NewPlaceService(repo PlaceRepository) *PlaceService {
	return &PlaceService{repo: repo}
}

// Search returns up to limit places matching query, best matches first. An
// empty query yields an empty list without touching storage.
func (s *PlaceService) Search(ctx context.Context, query string, limit int) ([]models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Place{}, nil
	}

	limit = clampLimit(limit, DefaultPlaceLimit, MaxPlaceLimit)

	places, err := s.repo.SearchPlaces(ctx, query, textnorm.Normalize(query), limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search places: %w", err)
	}
	if places == nil {
		places = []models.Place{}
	}

	return places, nil
}
