package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"jobsearch-api/internal/models"
	"jobsearch-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRadiusHandler_RadiusSearch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	found := &models.RadiusResult{
		PostalCode: "8001",
		RadiusKm:   25,
		Count:      2,
		Results: []models.RadiusPlace{
			{PostalCode: "8001", City: "Zürich", Longitude: 8.54, Latitude: 47.37},
			{PostalCode: "8002", City: "Zürich", Longitude: 8.53, Latitude: 47.36},
		},
	}

	tests := []struct {
		name           string
		params         url.Values
		callService    bool
		serviceRadius  int
		mockResult     *models.RadiusResult
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing plz",
			params:         url.Values{"radius": {"25"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "PLZ parameter required"},
		},
		{
			name:           "non numeric radius",
			params:         url.Values{"plz": {"8001"}, "radius": {"far"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Invalid radius. Valid values: 5, 10, 25, 50, 100"},
		},
		{
			name:           "unsupported radius",
			params:         url.Values{"plz": {"8001"}, "radius": {"30"}},
			callService:    true,
			serviceRadius:  30,
			mockError:      fmt.Errorf("service: %w", service.ErrInvalidInput),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Invalid radius. Valid values: 5, 10, 25, 50, 100"},
		},
		{
			name:           "default radius",
			params:         url.Values{"plz": {"8001"}},
			callService:    true,
			serviceRadius:  25,
			mockResult:     found,
			expectedStatus: http.StatusOK,
			expectedBody: gin.H{
				"plz":      "8001",
				"radiusKm": 25,
				"count":    2,
				"results": []gin.H{
					{"plz": "8001", "city": "Zürich", "longitude": 8.54, "latitude": 47.37},
					{"plz": "8002", "city": "Zürich", "longitude": 8.53, "latitude": 47.36},
				},
			},
		},
		{
			name:           "postal code not found",
			params:         url.Values{"plz": {"1234"}, "radius": {"10"}},
			callService:    true,
			serviceRadius:  10,
			mockError:      fmt.Errorf("service: %w", service.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody: gin.H{
				"error":    "PLZ not found",
				"plz":      "1234",
				"radiusKm": 10,
				"count":    0,
				"results":  []interface{}{},
			},
		},
		{
			name:           "service error",
			params:         url.Values{"plz": {"8001"}, "radius": {"50"}},
			callService:    true,
			serviceRadius:  50,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "failed to search radius"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockRadiusService)
			handler := NewRadiusHandler(mockSvc)

			if tt.callService {
				mockSvc.On("Search", mock.Anything, tt.params.Get("plz"), tt.serviceRadius).Return(tt.mockResult, tt.mockError)
			}

			// Execute
			w := serve(handler.RadiusSearch, "/api/radius-search", tt.params)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, jsonOf(t, tt.expectedBody), actualBody)

			if tt.callService {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
