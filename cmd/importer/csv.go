package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"jobsearch-api/internal/models"
	"jobsearch-api/internal/textnorm"
)

// PlaceRecord is one row of the postal code reference file.
type PlaceRecord struct {
	PostalCode     string
	Name           string
	NormalizedName string
	Lon            float64
	Lat            float64
}

// csvTable reads a CSV file with a header row and gives access to columns
// by name.
type csvTable struct {
	reader  *csv.Reader
	columns map[string]int
	line    int
}

func newCSVTable(r io.Reader, required ...string) (*csvTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	return &csvTable{reader: reader, columns: columns, line: 1}, nil
}

// next returns the next record, or io.EOF when the file is exhausted.
func (t *csvTable) next() ([]string, error) {
	record, err := t.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	t.line++
	return record, nil
}

func (t *csvTable) get(record []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (t *csvTable) float(record []string, column string) (float64, error) {
	raw := t.get(record, column)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s: %q", t.line, column, raw)
	}
	return v, nil
}

// optionalString returns nil for empty cells.
func (t *csvTable) optionalString(record []string, column string) *string {
	v := t.get(record, column)
	if v == "" {
		return nil
	}
	return &v
}

// optionalInt returns nil for empty cells and rejects non-numeric values.
func (t *csvTable) optionalInt(record []string, column string) (*int, error) {
	raw := t.get(record, column)
	if raw == "" {
		return nil, nil
	}
	// workloads are sometimes exported as "80.0"
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid %s: %q", t.line, column, raw)
	}
	v := int(f)
	return &v, nil
}

func parsePlaces(r io.Reader) ([]PlaceRecord, error) {
	table, err := newCSVTable(r, "plz", "name", "longitude", "latitude")
	if err != nil {
		return nil, err
	}

	var records []PlaceRecord
	for {
		record, err := table.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		lon, err := table.float(record, "longitude")
		if err != nil {
			return nil, err
		}
		lat, err := table.float(record, "latitude")
		if err != nil {
			return nil, err
		}

		name := table.get(record, "name")
		plz := table.get(record, "plz")
		if plz == "" || name == "" {
			return nil, fmt.Errorf("line %d: plz and name are required", table.line)
		}

		records = append(records, PlaceRecord{
			PostalCode:     plz,
			Name:           name,
			NormalizedName: textnorm.Normalize(name),
			Lon:            lon,
			Lat:            lat,
		})
	}

	return records, nil
}

func parseRadius(r io.Reader) ([]models.RadiusEntry, error) {
	table, err := newCSVTable(r, "source_plz", "radius_km", "target_plzs")
	if err != nil {
		return nil, err
	}

	var entries []models.RadiusEntry
	for {
		record, err := table.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		radius, err := strconv.Atoi(table.get(record, "radius_km"))
		if err != nil || !models.IsValidRadius(radius) {
			return nil, fmt.Errorf("line %d: invalid radius_km: %q", table.line, table.get(record, "radius_km"))
		}

		source := table.get(record, "source_plz")
		var targets []string
		for _, code := range strings.Split(table.get(record, "target_plzs"), ",") {
			// the source is never part of its own target list
			if code = strings.TrimSpace(code); code != "" && code != source {
				targets = append(targets, code)
			}
		}

		entries = append(entries, models.RadiusEntry{
			SourcePostalCode:  source,
			RadiusKm:          radius,
			TargetPostalCodes: targets,
		})
	}

	return entries, nil
}

func parseJobs(r io.Reader) ([]models.JobRecord, error) {
	table, err := newCSVTable(r)
	if err != nil {
		return nil, err
	}

	var records []models.JobRecord
	for {
		record, err := table.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		workloadMin, err := table.optionalInt(record, "workload_min")
		if err != nil {
			return nil, err
		}
		workloadMax, err := table.optionalInt(record, "workload_max")
		if err != nil {
			return nil, err
		}

		records = append(records, models.JobRecord{
			ID:           table.optionalString(record, "id"),
			PublishedAt:  publishedAt(table.optionalString(record, "published_at")),
			Title:        table.optionalString(record, "title"),
			WorkLocation: table.optionalString(record, "work_location"),
			PostalCode:   table.optionalString(record, "postal_code"),
			City:         table.optionalString(record, "city"),
			Country:      table.optionalString(record, "country"),
			WorkloadMin:  workloadMin,
			WorkloadMax:  workloadMax,
			ContractType: table.optionalString(record, "contract_type"),
			Company:      table.optionalString(record, "company"),
			Link:         table.optionalString(record, "link"),
			Profession:   table.optionalString(record, "profession"),
			Salary:       table.optionalString(record, "salary"),
		})
	}

	return records, nil
}

// publishedAt rewrites a publication time as RFC 3339 UTC so the stored text
// sorts chronologically. Unparseable values are stored as NULL.
func publishedAt(raw *string) *string {
	if raw == nil {
		return nil
	}
	t, ok := models.ParsePublishedAt(*raw)
	if !ok {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
