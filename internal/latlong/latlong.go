package latlong

import "math"

// scale is the fixed-point factor used by UULE for latitude and longitude.
const scale = 10_000_000.0

// ToE7 converts a latitude or longitude in degrees to its e7 integer form,
// rounding half away from zero.
func ToE7(degrees float64) int64 {
	return int64(math.Round(degrees * scale))
}

// FromE7 converts an e7 integer back to degrees.
func FromE7(e7 int64) float64 {
	return float64(e7) / scale
}
