package service

import (
	"errors"
	"fmt"
	"math"

	"uule-converter/internal/models"
	"uule-converter/internal/uulev1"
	"uule-converter/internal/uulev2"
)

// ErrInvalidInput marks failures caused by the caller's input
var ErrInvalidInput = errors.New("invalid input")

// EncodeService builds UULE tokens from caller supplied locations
type EncodeService struct {
	clock    uulev2.Clock
	defaults Defaults
}

// Defaults holds the configured fallbacks for optional UULEv2 fields
type Defaults struct {
	Radius     int32
	Provenance int32
}

// NewEncodeService creates a new encode service
func NewEncodeService(clock uulev2.Clock, defaults Defaults) *EncodeService {
	return &EncodeService{clock: clock, defaults: defaults}
}

// EncodePlace encodes a canonical place name as a UULEv1 token
func (s *EncodeService) EncodePlace(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("service: %w: place name cannot be empty", ErrInvalidInput)
	}

	token, err := uulev1.New(name).Encode()
	if err != nil {
		return "", fmt.Errorf("service: failed to encode place: %w", err)
	}

	return token, nil
}

// EncodePoint encodes coordinates as a UULEv2 token
func (s *EncodeService) EncodePoint(req models.PointRequest) (string, error) {
	if math.IsNaN(req.Latitude) || req.Latitude < -90 || req.Latitude > 90 {
		return "", fmt.Errorf("service: %w: latitude %f out of range", ErrInvalidInput, req.Latitude)
	}
	if math.IsNaN(req.Longitude) || req.Longitude < -180 || req.Longitude > 180 {
		return "", fmt.Errorf("service: %w: longitude %f out of range", ErrInvalidInput, req.Longitude)
	}

	record := uulev2.Default(s.clock).
		WithLat(req.Latitude).
		WithLong(req.Longitude).
		WithRadius(s.defaults.Radius).
		WithProvenance(s.defaults.Provenance)

	if req.Radius != nil {
		record = record.WithRadius(*req.Radius)
	}
	if req.Provenance != nil {
		record = record.WithProvenance(*req.Provenance)
	}
	if req.Timestamp != nil {
		ts, err := uulev2.ParseTimestamp(*req.Timestamp)
		if err != nil {
			return "", fmt.Errorf("service: %w: timestamp: %w", ErrInvalidInput, err)
		}
		record = record.WithTimestamp(ts)
	}

	return record.Encode(), nil
}
