package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"jobsearch-api/internal/config"
	"jobsearch-api/internal/logging"
	"jobsearch-api/internal/models"
	"jobsearch-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	placesFile := flag.String("places", "", "Path to the postal code CSV (plz,name,longitude,latitude)")
	radiusFile := flag.String("radius", "", "Path to the precomputed radius CSV (source_plz,radius_km,target_plzs)")
	jobsFile := flag.String("jobs", "", "Path to the job listing CSV")
	configDir := flag.String("config", "configs", "Directory containing app.env")
	flag.Parse()

	logging.SetupDefault("info", "console")

	if *placesFile == "" && *radiusFile == "" && *jobsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of --places, --radius or --jobs is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*configDir, *placesFile, *radiusFile, *jobsFile); err != nil {
		log.Error().Err(err).Msg("import failed")
		os.Exit(1)
	}
}

func run(configDir, placesFile, radiusFile, jobsFile string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	logging.SetupDefault(cfg.LogLevel, "console")

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}

	if placesFile != "" {
		records, err := readFile(placesFile, parsePlaces)
		if err != nil {
			return fmt.Errorf("error parsing places from %s: %w", placesFile, err)
		}
		if err := importPlaces(ctx, conn, records); err != nil {
			return fmt.Errorf("error importing places: %w", err)
		}
		log.Info().Int("count", len(records)).Msg("imported places")
	}

	if radiusFile != "" {
		entries, err := readFile(radiusFile, parseRadius)
		if err != nil {
			return fmt.Errorf("error parsing radius index from %s: %w", radiusFile, err)
		}
		if err := importRadius(ctx, conn, entries); err != nil {
			return fmt.Errorf("error importing radius index: %w", err)
		}
		log.Info().Int("count", len(entries)).Msg("imported radius entries")
	}

	if jobsFile != "" {
		records, err := readFile(jobsFile, parseJobs)
		if err != nil {
			return fmt.Errorf("error parsing jobs from %s: %w", jobsFile, err)
		}
		if err := importJobs(ctx, conn, records); err != nil {
			return fmt.Errorf("error importing jobs: %w", err)
		}
		log.Info().Int("count", len(records)).Msg("imported jobs")
	}

	return nil
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parse(file)
}

// replaceTable empties table and bulk loads rows in one transaction so the
// API never sees a half-loaded data set.
func replaceTable(ctx context.Context, conn *pgx.Conn, table string, columns []string, rows [][]interface{}) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE "+pgx.Identifier{table}.Sanitize()); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy into %s: %w", table, err)
	}
	if int(n) != len(rows) {
		return fmt.Errorf("record count mismatch in %s: expected %d, got %d", table, len(rows), n)
	}

	return tx.Commit(ctx)
}

func importPlaces(ctx context.Context, conn *pgx.Conn, records []PlaceRecord) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.PostalCode, r.Name, r.NormalizedName, r.Lon, r.Lat}
	}
	return replaceTable(ctx, conn, "postal_codes",
		[]string{"postal_code", "name", "normalized_name", "longitude", "latitude"}, rows)
}

func importRadius(ctx context.Context, conn *pgx.Conn, entries []models.RadiusEntry) error {
	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		rows[i] = []interface{}{e.SourcePostalCode, e.RadiusKm, strings.Join(e.TargetPostalCodes, ",")}
	}
	return replaceTable(ctx, conn, "plz_radius",
		[]string{"source_plz", "radius_km", "target_plzs"}, rows)
}

func importJobs(ctx context.Context, conn *pgx.Conn, records []models.JobRecord) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{
			r.ID, r.PublishedAt, r.Title, r.WorkLocation, r.PostalCode, r.City, r.Country,
			r.WorkloadMin, r.WorkloadMax, r.ContractType, r.Company, r.Link, r.Profession, r.Salary,
		}
	}
	return replaceTable(ctx, conn, "jobs", []string{
		"id", "published_at", "title", "work_location", "postal_code", "city", "country",
		"workload_min", "workload_max", "contract_type", "company", "link", "profession", "salary",
	}, rows)
}
