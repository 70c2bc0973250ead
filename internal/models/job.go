package models

import (
	"strings"
	"time"
)

var publishedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// ParsePublishedAt parses a posting's publication time in any of the formats
// found in the source listings. Times without a zone are taken as UTC.
func ParsePublishedAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Job is a job posting as served to clients.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	PostalCode   string   `json:"plz"`
	Workload     string   `json:"workload"`
	ContractType string   `json:"contractType"`
	PostedDate   string   `json:"postedDate"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Salary       string   `json:"salary,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// JobRecord mirrors a row of the jobs table. Every column except the
// surrogate row id is nullable.
type JobRecord struct {
	ID           *string `db:"id"`
	PublishedAt  *string `db:"published_at"`
	Title        *string `db:"title"`
	WorkLocation *string `db:"work_location"`
	PostalCode   *string `db:"postal_code"`
	City         *string `db:"city"`
	Country      *string `db:"country"`
	WorkloadMin  *int    `db:"workload_min"`
	WorkloadMax  *int    `db:"workload_max"`
	ContractType *string `db:"contract_type"`
	Company      *string `db:"company"`
	Link         *string `db:"link"`
	Profession   *string `db:"profession"`
	Salary       *string `db:"salary"`
}

// JobQuery filters job postings. At least one of Profession or PostalCodes
// must be set.
type JobQuery struct {
	Profession  string
	PostalCodes []string
	Limit       int
}

// JobStats summarizes the job listing.
type JobStats struct {
	JobCount     int `json:"jobCount" db:"job_count"`
	CompanyCount int `json:"companyCount" db:"company_count"`
}
