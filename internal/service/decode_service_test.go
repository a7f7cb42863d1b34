package service

import (
	"testing"

	"uule-converter/internal/models"
	"uule-converter/internal/uule"

	"github.com/stretchr/testify/assert"
)

func TestDecodeService_Decode(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		expected    *models.DecodedToken
		expectError error
	}{
		{
			name:        "empty token",
			token:       "",
			expectError: assert.AnError,
		},
		{
			name:  "uulev1 token",
			token: "w+CAIQICIkUXVlZW5zIENvdW50eSxOZXcgWW9yayxVbml0ZWQgU3RhdGVz",
			expected: &models.DecodedToken{
				Version: 1,
				V1: &models.PlaceLocation{
					Role:          2,
					Producer:      32,
					CanonicalName: "Queens County,New York,United States",
				},
			},
		},
		{
			name:  "uulev2 token",
			token: "a+cm9sZToxCnByb2R1Y2VyOjEyCnByb3ZlbmFuY2U6Ngp0aW1lc3RhbXA6MTU5MTUyMTI0OTAzNDAwMApsYXRsbmd7CmxhdGl0dWRlX2U3OjM3NDIxMDAwMApsb25naXR1ZGVfZTc6LTEyMjA4NDAwMAp9CnJhZGl1czotMQ",
			expected: &models.DecodedToken{
				Version: 2,
				V2: &models.PointLocation{
					Role:         1,
					Producer:     12,
					Provenance:   6,
					Timestamp:    "1591521249034000",
					Latitude:     37.421,
					Longitude:    -12.2084,
					Radius:       -1,
					RadiusMeters: -1,
				},
			},
		},
		{
			name:        "unknown prefix",
			token:       "asdf",
			expectError: uule.ErrInvalidPrefix,
		},
		{
			name:        "truncated uulev1 token",
			token:       "w+CAIQ",
			expectError: uule.ErrMalformedRecord,
		},
		{
			name:        "truncated uulev2 token",
			token:       "a+cm9sZToxCg",
			expectError: uule.ErrUnexpectedEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewDecodeService()

			result, err := service.Decode(tt.token)

			if tt.expectError != nil {
				assert.Error(t, err)
				if tt.expectError != assert.AnError {
					assert.ErrorIs(t, err, tt.expectError)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
