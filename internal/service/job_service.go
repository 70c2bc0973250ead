package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"jobsearch-api/internal/models"
)

const (
	DefaultJobLimit = 200
	MaxJobLimit     = 500

	// PostalCodeBatchSize bounds the number of postal codes per query so a
	// statement stays well below the driver's bind parameter limit.
	PostalCodeBatchSize = 400
)

// JobService looks up job postings by profession and postal code.
type JobService struct {
	repo JobRepository
}

// JobRepository interface for dependency injection
type JobRepository interface {
	FindJobs(ctx context.Context, profession string, postalCodes []string, limit int) ([]models.JobRecord, error)
}

// NewJobService creates a new job service
func NewJobService(repo JobRepository) *JobService {
	return &JobService{repo: repo}
}

// Search returns postings matching the query, newest first, deduplicated by
// id and truncated to the query limit. Large postal code sets are split into
// batches of PostalCodeBatchSize whose results are merged.
func (s *JobService) Search(ctx context.Context, q models.JobQuery) ([]models.Job, error) {
	profession := strings.TrimSpace(q.Profession)
	codes := cleanPostalCodes(q.PostalCodes)
	if profession == "" && len(codes) == 0 {
		return nil, fmt.Errorf("service: %w: profession or postal code required", ErrInvalidInput)
	}

	limit := clampLimit(q.Limit, DefaultJobLimit, MaxJobLimit)

	var records []models.JobRecord
	if len(codes) == 0 {
		batch, err := s.repo.FindJobs(ctx, profession, nil, limit)
		if err != nil {
			return nil, fmt.Errorf("service: failed to search jobs: %w", err)
		}
		records = batch
	} else {
		batches := 0
		for start := 0; start < len(codes); start += PostalCodeBatchSize {
			end := min(start+PostalCodeBatchSize, len(codes))
			batch, err := s.repo.FindJobs(ctx, profession, codes[start:end], limit)
			if err != nil {
				return nil, fmt.Errorf("service: failed to search jobs (batch %d): %w", batches, err)
			}
			records = append(records, batch...)
			batches++
		}
		if batches > 1 {
			sortByPublishedDesc(records)
		}
	}

	jobs := make([]models.Job, 0, min(len(records), limit))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		job := toJob(rec)
		if _, ok := seen[job.ID]; ok {
			continue
		}
		seen[job.ID] = struct{}{}
		jobs = append(jobs, job)
		if len(jobs) == limit {
			break
		}
	}

	return jobs, nil
}

func cleanPostalCodes(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, code := range in {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// sortByPublishedDesc restores newest-first order across merged batches.
// Records without a parseable publication time go last; ties keep scan order.
func sortByPublishedDesc(records []models.JobRecord) {
	times := make([]time.Time, len(records))
	for i, rec := range records {
		times[i], _ = models.ParsePublishedAt(str(rec.PublishedAt))
	}
	sort.Stable(byPublished{records: records, times: times})
}

type byPublished struct {
	records []models.JobRecord
	times   []time.Time
}

func (b byPublished) Len() int { return len(b.records) }

func (b byPublished) Less(i, j int) bool {
	a, c := b.times[i], b.times[j]
	switch {
	case a.IsZero():
		return false
	case c.IsZero():
		return true
	default:
		return a.After(c)
	}
}

func (b byPublished) Swap(i, j int) {
	b.records[i], b.records[j] = b.records[j], b.records[i]
	b.times[i], b.times[j] = b.times[j], b.times[i]
}
