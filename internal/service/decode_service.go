package service

import (
	"fmt"

	"uule-converter/internal/models"
	"uule-converter/internal/uule"
	"uule-converter/internal/uulev1"
	"uule-converter/internal/uulev2"
)

// DecodeService turns UULE tokens of either version back into locations
type DecodeService struct{}

// NewDecodeService creates a new decode service
func NewDecodeService() *DecodeService {
	return &DecodeService{}
}

// Decode detects the token version from its prefix and decodes it
func (s *DecodeService) Decode(token string) (*models.DecodedToken, error) {
	if token == "" {
		return nil, fmt.Errorf("service: %w: token cannot be empty", ErrInvalidInput)
	}

	switch uule.DetectVersion(token) {
	case 1:
		r, err := uulev1.Decode(token)
		if err != nil {
			return nil, fmt.Errorf("service: failed to decode token: %w", err)
		}
		return &models.DecodedToken{Version: 1, V1: PlaceFromRecord(r)}, nil
	case 2:
		r, err := uulev2.Decode(token)
		if err != nil {
			return nil, fmt.Errorf("service: failed to decode token: %w", err)
		}
		return &models.DecodedToken{Version: 2, V2: PointFromRecord(r)}, nil
	}

	return nil, fmt.Errorf("service: failed to decode token: %w", &uule.Error{Kind: uule.InvalidPrefix, Input: token})
}

// PlaceFromRecord converts a decoded UULEv1 record to its API form
func PlaceFromRecord(r uulev1.Record) *models.PlaceLocation {
	return &models.PlaceLocation{
		Role:          r.Role,
		Producer:      r.Producer,
		CanonicalName: r.CanonicalName,
	}
}

// PointFromRecord converts a decoded UULEv2 record to its API form
func PointFromRecord(r uulev2.Record) *models.PointLocation {
	return &models.PointLocation{
		Role:         r.Role,
		Producer:     r.Producer,
		Provenance:   r.Provenance,
		Timestamp:    r.Timestamp.String(),
		Latitude:     r.Lat,
		Longitude:    r.Long,
		Radius:       r.Radius,
		RadiusMeters: uule.RadiusToMeters(r.Radius),
	}
}
