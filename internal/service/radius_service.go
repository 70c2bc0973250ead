package service

import (
	"context"
	"fmt"
	"strings"

	"jobsearch-api/internal/models"
)

// DefaultRadiusKm is used when a request does not name a radius.
const DefaultRadiusKm = models.DefaultRadiusKm

// RadiusService expands a postal code to every place within a radius using
// the precomputed radius index.
type RadiusService struct {
	repo RadiusRepository
}

// RadiusRepository interface for dependency injection
type RadiusRepository interface {
	FindRadiusEntry(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusEntry, error)
	FindPlacesByPostalCodes(ctx context.Context, postalCodes []string) ([]models.Place, error)
}

// NewRadiusService creates a new radius service
func NewRadiusService(repo RadiusRepository) *RadiusService {
	return &RadiusService{repo: repo}
}

// Search returns the places of postalCode and of every postal code within
// radiusKm of it, ordered by postal code. It fails with ErrInvalidInput for
// radii outside models.ValidRadiiKm and with ErrNotFound when the postal code
// has no radius entry.
func (s *RadiusService) Search(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusResult, error) {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return nil, fmt.Errorf("service: %w: postal code cannot be empty", ErrInvalidInput)
	}
	if !models.IsValidRadius(radiusKm) {
		return nil, fmt.Errorf("service: %w: radius %d km is not supported", ErrInvalidInput, radiusKm)
	}

	entry, err := s.repo.FindRadiusEntry(ctx, postalCode, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load radius entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("service: %w: no radius entry for %s", ErrNotFound, postalCode)
	}

	result := &models.RadiusResult{
		PostalCode: postalCode,
		RadiusKm:   radiusKm,
		Results:    []models.RadiusPlace{},
	}

	codes := workingSet(postalCode, entry.TargetPostalCodes)
	if len(codes) == 0 {
		return result, nil
	}

	places, err := s.repo.FindPlacesByPostalCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load places in radius: %w", err)
	}

	for _, p := range places {
		result.Results = append(result.Results, models.RadiusPlace{
			PostalCode: p.PostalCode,
			City:       p.Name,
			Longitude:  p.Longitude,
			Latitude:   p.Latitude,
		})
	}
	result.Count = len(result.Results)

	return result, nil
}

// workingSet is the source postal code plus its targets, without blanks or
// duplicates.
func workingSet(source string, targets []string) []string {
	seen := make(map[string]struct{}, len(targets)+1)
	codes := make([]string, 0, len(targets)+1)
	for _, code := range append([]string{source}, targets...) {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
