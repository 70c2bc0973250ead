package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jobsearch-api/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the static reference data from PostgreSQL. It holds a
// shared pool and is safe for concurrent use.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// SearchPlaces finds places whose postal code starts with query or whose
// name contains query (as typed or accent-folded), best matches first.
func (r *Repository) SearchPlaces(ctx context.Context, query, normalizedQuery string, limit int) ([]models.Place, error) {
	sql := `
		WITH grouped AS (
			SELECT
				postal_code,
				name,
				normalized_name,
				AVG(longitude) AS longitude,
				AVG(latitude) AS latitude
			FROM postal_codes
			GROUP BY postal_code, name, normalized_name
		)
		SELECT name, postal_code, longitude, latitude
		FROM grouped
		WHERE postal_code LIKE $1 || '%'
			OR name ILIKE '%' || $1 || '%'
			OR normalized_name ILIKE '%' || $2 || '%'
		ORDER BY
			CASE
				WHEN postal_code = $3 THEN 0
				WHEN postal_code LIKE $1 || '%' THEN 1
				WHEN name ILIKE $1 || '%' THEN 2
				WHEN normalized_name ILIKE $2 || '%' THEN 3
				ELSE 4
			END,
			postal_code ASC,
			name ASC
		LIMIT $4
	`

	rows, err := r.db.Query(ctx, sql, escapeLike(query), escapeLike(normalizedQuery), query, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute place search query: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// FindRadiusEntry returns the precomputed neighbours of postalCode for the
// given radius, or nil if no entry exists.
func (r *Repository) FindRadiusEntry(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusEntry, error) {
	sql := `
		SELECT target_plzs
		FROM plz_radius
		WHERE source_plz = $1 AND radius_km = $2
	`

	var targets string
	err := r.db.QueryRow(ctx, sql, postalCode, radiusKm).Scan(&targets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute radius query: %w", err)
	}

	return &models.RadiusEntry{
		SourcePostalCode:  postalCode,
		RadiusKm:          radiusKm,
		TargetPostalCodes: splitPostalCodes(targets),
	}, nil
}

// FindPlacesByPostalCodes returns one place per (postal code, name) pair for
// the given codes, ordered by postal code and name.
func (r *Repository) FindPlacesByPostalCodes(ctx context.Context, postalCodes []string) ([]models.Place, error) {
	sql := `
		SELECT
			name,
			postal_code,
			AVG(longitude) AS longitude,
			AVG(latitude) AS latitude
		FROM postal_codes
		WHERE postal_code = ANY($1)
		GROUP BY postal_code, name
		ORDER BY postal_code ASC, name ASC
	`

	rows, err := r.db.Query(ctx, sql, postalCodes)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute places query: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// FindJobs runs a single job query, newest postings first. Postal codes are
// matched as substrings of the posting's postal code.
func (r *Repository) FindJobs(ctx context.Context, profession string, postalCodes []string, limit int) ([]models.JobRecord, error) {
	var (
		conditions []string
		args       []any
	)

	if profession != "" {
		args = append(args, escapeLike(profession))
		conditions = append(conditions, "profession ILIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
	}

	if len(postalCodes) > 0 {
		ors := make([]string, 0, len(postalCodes))
		for _, code := range postalCodes {
			args = append(args, escapeLike(code))
			ors = append(ors, "postal_code LIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conditions) == 0 {
		return nil, fmt.Errorf("repository: job query needs at least one filter")
	}

	args = append(args, limit)
	sql := `
		SELECT
			id,
			published_at,
			title,
			work_location,
			postal_code,
			city,
			country,
			workload_min,
			workload_max,
			contract_type,
			company,
			link,
			profession,
			salary
		FROM jobs
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY published_at DESC NULLS LAST, row_id ASC
		LIMIT $` + strconv.Itoa(len(args))

	var records []models.JobRecord
	if err := pgxscan.Select(ctx, r.db, &records, sql, args...); err != nil {
		return nil, fmt.Errorf("repository: failed to execute job query: %w", err)
	}

	return records, nil
}

// JobStats counts postings with a company and the distinct companies.
func (r *Repository) JobStats(ctx context.Context) (models.JobStats, error) {
	sql := `
		SELECT
			COUNT(*) AS job_count,
			COUNT(DISTINCT company) AS company_count
		FROM jobs
		WHERE company IS NOT NULL AND TRIM(company) <> ''
	`

	var stats models.JobStats
	if err := pgxscan.Get(ctx, r.db, &stats, sql); err != nil {
		return models.JobStats{}, fmt.Errorf("repository: failed to execute stats query: %w", err)
	}

	return stats, nil
}

func scanPlaces(rows pgx.Rows) ([]models.Place, error) {
	places := []models.Place{}
	for rows.Next() {
		var p models.Place
		err := rows.Scan(
			&p.Name,
			&p.PostalCode,
			&p.Longitude,
			&p.Latitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan place: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return places, nil
}

func splitPostalCodes(s string) []string {
	var codes []string
	for _, part := range strings.Split(s, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input safe to embed in a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
