package service

import (
	"fmt"
	"strings"

	"jobsearch-api/internal/models"
)

const (
	NoData          = "no data"
	Unknown         = "unknown"
	UnknownPosting  = "unknown posting"
	descriptionLink = "See the job posting for details."
	descriptionNone = "No description available."
	requirementLink = "See job posting."
)

// toJob turns a raw listing row into the served representation, filling
// every missing field with a readable fallback.
func toJob(rec models.JobRecord) models.Job {
	title := firstNonBlank(str(rec.Title), str(rec.Profession), UnknownPosting)
	company := firstNonBlank(str(rec.Company), Unknown)
	location := firstNonBlank(str(rec.WorkLocation), joinNonBlank(", ", str(rec.City), str(rec.Country)), Unknown)
	postedDate := formatPostedDate(rec.PublishedAt)
	link := strings.TrimSpace(str(rec.Link))

	job := models.Job{
		ID:           firstNonBlank(str(rec.ID), fmt.Sprintf("%s-%s-%s", title, company, postedDate)),
		Title:        title,
		Company:      company,
		Location:     location,
		PostalCode:   strings.TrimSpace(str(rec.PostalCode)),
		Workload:     formatWorkload(rec.WorkloadMin, rec.WorkloadMax),
		ContractType: firstNonBlank(str(rec.ContractType), NoData),
		PostedDate:   postedDate,
		Description:  descriptionNone,
		Requirements: []string{},
		Benefits:     []string{},
		Salary:       strings.TrimSpace(str(rec.Salary)),
		Link:         link,
	}
	if link != "" {
		job.Description = descriptionLink
		job.Requirements = []string{requirementLink}
	}

	return job
}

// formatWorkload renders a min/max percentage pair; zero counts as absent.
func formatWorkload(minPct, maxPct *int) string {
	lo, hi := positive(minPct), positive(maxPct)
	switch {
	case lo > 0 && hi > 0:
		return fmt.Sprintf("%d – %d%%", lo, hi)
	case lo > 0:
		return fmt.Sprintf("%d%%", lo)
	case hi > 0:
		return fmt.Sprintf("%d%%", hi)
	default:
		return NoData
	}
}

// formatPostedDate returns the calendar date of value as YYYY-MM-DD.
func formatPostedDate(value *string) string {
	t, ok := models.ParsePublishedAt(str(value))
	if !ok {
		return Unknown
	}
	return t.Format("2006-01-02")
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func positive(p *int) int {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func joinNonBlank(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
