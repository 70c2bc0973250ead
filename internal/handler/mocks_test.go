package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"jobsearch-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlaceService is a mock implementation of the PlaceService interface
type MockPlaceService struct {
	mock.Mock
}

func (m *MockPlaceService) Search(ctx context.Context, query string, limit int) ([]models.Place, error) {
	args := m.Called(ctx, query, limit)
	places, _ := args.Get(0).([]models.Place)
	return places, args.Error(1)
}

// MockRadiusService is a mock implementation of the RadiusService interface
type MockRadiusService struct {
	mock.Mock
}

func (m *MockRadiusService) Search(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusResult, error) {
	args := m.Called(ctx, postalCode, radiusKm)
	result, _ := args.Get(0).(*models.RadiusResult)
	return result, args.Error(1)
}

// MockJobService is a mock implementation of the JobService interface
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Search(ctx context.Context, q models.JobQuery) ([]models.Job, error) {
	args := m.Called(ctx, q)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Error(1)
}

// MockStatsService is a mock implementation of the StatsService interface
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Stats(ctx context.Context) (models.JobStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.JobStats), args.Error(1)
}

// serve runs h against a GET request with the given query parameters and
// returns the recorder.
func serve(h gin.HandlerFunc, path string, params url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.URL.RawQuery = params.Encode()
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h(c)
	return w
}

// jsonOf round-trips v through JSON so it can be compared with a decoded body.
func jsonOf(t *testing.T, v interface{}) interface{} {
	t.Helper()
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
