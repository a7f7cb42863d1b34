package uule

import "math"

// Default field values observed in the wild. None of them are officially documented.
const (
	// V1Role is the role written by uulev1.New.
	V1Role uint8 = 2
	// V1Producer is the producer written by uulev1.New.
	V1Producer uint8 = 32

	// UserSpecifiedForRequest is the default UULEv2 role.
	UserSpecifiedForRequest uint8 = 1
	// LoggedInUserSpecified is the default UULEv2 producer.
	LoggedInUserSpecified uint8 = 12

	// ExactRadius marks a UULEv2 point with no radius.
	ExactRadius int32 = -1
)

// Token prefixes.
const (
	V1Prefix = "w+"
	V2Prefix = "a+"
)

// radiusPerMeter is the empirical ratio between the encoded UULEv2 radius and meters.
const radiusPerMeter = 620

// RadiusFromMeters converts meters to the encoded UULEv2 radius unit.
// Results outside the int32 range are clamped to it.
func RadiusFromMeters(meters int32) int32 {
	r := int64(meters) * radiusPerMeter
	switch {
	case r > math.MaxInt32:
		return math.MaxInt32
	case r < math.MinInt32:
		return math.MinInt32
	}
	return int32(r)
}

// RadiusToMeters converts an encoded UULEv2 radius back to meters. ExactRadius is returned unchanged.
func RadiusToMeters(radius int32) int32 {
	if radius == ExactRadius {
		return radius
	}
	return radius / radiusPerMeter
}
