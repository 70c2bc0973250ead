package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"jobsearch-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlaceHandler_SearchPlaces(t *testing.T) {
	gin.SetMode(gin.TestMode)

	zurich := models.Place{Name: "Zürich", PostalCode: "8001", Longitude: 8.54, Latitude: 47.37}

	tests := []struct {
		name           string
		params         url.Values
		serviceQuery   string
		serviceLimit   int
		mockPlaces     []models.Place
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "empty query",
			params:         url.Values{},
			serviceQuery:   "",
			mockPlaces:     []models.Place{},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.Place{},
		},
		{
			name:           "successful search with results",
			params:         url.Values{"q": {"Zür"}, "limit": {"15"}},
			serviceQuery:   "Zür",
			serviceLimit:   15,
			mockPlaces:     []models.Place{zurich},
			expectedStatus: http.StatusOK,
			expectedBody:   []gin.H{{"city": "Zürich", "zip": "8001", "longitude": 8.54, "latitude": 47.37}},
		},
		{
			name:           "unparsable limit uses default",
			params:         url.Values{"q": {"999"}, "limit": {"many"}},
			serviceQuery:   "999",
			mockPlaces:     []models.Place{},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.Place{},
		},
		{
			name:           "service error",
			params:         url.Values{"q": {"8001"}},
			serviceQuery:   "8001",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "failed to search locations"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockPlaceService)
			handler := NewPlaceHandler(mockSvc)
			mockSvc.On("Search", mock.Anything, tt.serviceQuery, tt.serviceLimit).Return(tt.mockPlaces, tt.mockError)

			// Execute
			w := serve(handler.SearchPlaces, "/api/locations", tt.params)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, jsonOf(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}
