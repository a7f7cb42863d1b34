package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"uule-converter/internal/models"
	"uule-converter/internal/service"
	"uule-converter/internal/uule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEncodeService is a mock implementation of the EncodeService interface
type MockEncodeService struct {
	mock.Mock
}

func (m *MockEncodeService) EncodePlace(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockEncodeService) EncodePoint(req models.PointRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func int32Ptr(v int32) *int32 { return &v }

func stringPtr(v string) *string { return &v }

func TestEncodeHandler_EncodePlace(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tooLong := &uule.Error{Format: "uulev1", Kind: uule.NameTooLong, Length: 300}

	tests := []struct {
		name           string
		place          string
		mockToken      string
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			place:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'name'"},
		},
		{
			name:           "successful encoding",
			place:          "Queens County,New York,United States",
			mockToken:      "w+CAIQICIkUXVlZW5zIENvdW50eSxOZXcgWW9yayxVbml0ZWQgU3RhdGVz",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"token": "w+CAIQICIkUXVlZW5zIENvdW50eSxOZXcgWW9yayxVbml0ZWQgU3RhdGVz"},
		},
		{
			name:           "name too long",
			place:          "very long",
			mockError:      fmt.Errorf("service: failed to encode place: %w", tooLong),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": tooLong.Error()},
		},
		{
			name:           "service error",
			place:          "Queens County,New York,United States",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockEncodeService)
			handler := NewEncodeHandler(mockSvc)

			if tt.place != "" {
				mockSvc.On("EncodePlace", tt.place).Return(tt.mockToken, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/v1/encode", nil)
			if tt.place != "" {
				q := req.URL.Query()
				q.Add("name", tt.place)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.EncodePlace(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			if tt.place != "" {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}

func TestEncodeHandler_EncodePoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          url.Values
		mockRequest    *models.PointRequest
		mockToken      string
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing coordinates",
			query:          url.Values{"lat": {"37.421"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "invalid latitude",
			query:          url.Values{"lat": {"north"}, "lon": {"1"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid latitude format"},
		},
		{
			name:           "invalid longitude",
			query:          url.Values{"lat": {"1"}, "lon": {"east"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid longitude format"},
		},
		{
			name:           "invalid radius",
			query:          url.Values{"lat": {"1"}, "lon": {"1"}, "radius": {"1.5"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid radius format"},
		},
		{
			name:           "invalid provenance",
			query:          url.Values{"lat": {"1"}, "lon": {"1"}, "provenance": {"x"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid provenance format"},
		},
		{
			name:           "coordinates only",
			query:          url.Values{"lat": {"37.421"}, "lon": {"-12.2084"}},
			mockRequest:    &models.PointRequest{Latitude: 37.421, Longitude: -12.2084},
			mockToken:      "a+token",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"token": "a+token"},
		},
		{
			name: "all fields",
			query: url.Values{
				"lat":        {"37.421"},
				"lon":        {"-12.2084"},
				"radius":     {"6200"},
				"provenance": {"6"},
				"timestamp":  {"1591521249034000"},
			},
			mockRequest: &models.PointRequest{
				Latitude:   37.421,
				Longitude:  -12.2084,
				Radius:     int32Ptr(6200),
				Provenance: int32Ptr(6),
				Timestamp:  stringPtr("1591521249034000"),
			},
			mockToken:      "a+token",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"token": "a+token"},
		},
		{
			name:           "out of range latitude",
			query:          url.Values{"lat": {"95"}, "lon": {"0"}},
			mockRequest:    &models.PointRequest{Latitude: 95, Longitude: 0},
			mockError:      fmt.Errorf("service: %w: latitude 95.000000 out of range", service.ErrInvalidInput),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "service: invalid input: latitude 95.000000 out of range"},
		},
		{
			name:           "service error",
			query:          url.Values{"lat": {"1"}, "lon": {"1"}},
			mockRequest:    &models.PointRequest{Latitude: 1, Longitude: 1},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockEncodeService)
			handler := NewEncodeHandler(mockSvc)

			if tt.mockRequest != nil {
				mockSvc.On("EncodePoint", *tt.mockRequest).Return(tt.mockToken, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/v2/encode?"+tt.query.Encode(), nil)
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.EncodePoint(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			if tt.mockRequest != nil {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "EncodePoint", mock.Anything)
			}
		})
	}
}
