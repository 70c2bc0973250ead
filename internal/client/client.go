// Package client is a typed HTTP client for the job search API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jobsearch-api/internal/models"
)

// ErrEmptyResponse is returned when the server answers without a body.
var ErrEmptyResponse = errors.New("client: empty response body")

// APIError is a non-2xx answer. Message is the server's error text, or the
// HTTP status text when the body carried none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 answer, e.g. a postal code without
// radius data.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client calls the job search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Places returns place suggestions for a partial postal code or name.
func (c *Client) Places(ctx context.Context, query string, limit int) ([]models.Place, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var places []models.Place
	if err := c.get(ctx, "/api/locations", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// RadiusSearch returns the places within radiusKm of postalCode.
func (c *Client) RadiusSearch(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusResult, error) {
	params := url.Values{}
	params.Set("plz", postalCode)
	params.Set("radius", strconv.Itoa(radiusKm))

	var result models.RadiusResult
	if err := c.get(ctx, "/api/radius-search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Jobs returns job postings for a profession and/or postal codes.
func (c *Client) Jobs(ctx context.Context, q models.JobQuery) ([]models.Job, error) {
	params := url.Values{}
	if q.Profession != "" {
		params.Set("profession", q.Profession)
	}
	if len(q.PostalCodes) > 0 {
		params.Set("plzs", strings.Join(q.PostalCodes, ","))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var jobs []models.Job
	if err := c.get(ctx, "/api/jobs", params, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Stats returns the number of postings and companies.
func (c *Client) Stats(ctx context.Context) (models.JobStats, error) {
	var stats models.JobStats
	if err := c.get(ctx, "/api/jobs-stats", nil, &stats); err != nil {
		return models.JobStats{}, err
	}
	return stats, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("client: decode %s: %w", path, err)
	}
	return nil
}
