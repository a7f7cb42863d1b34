package models

// PlaceLocation is a UULEv1 location: a canonical place name such as "Queens County,New York,United States".
type PlaceLocation struct {
	Role          uint8  `json:"role"`
	Producer      uint8  `json:"producer"`
	CanonicalName string `json:"canonical_name"`
}

// PointLocation is a UULEv2 location. Timestamp is a decimal string since it may exceed 64 bits.
type PointLocation struct {
	Role         uint8   `json:"role"`
	Producer     uint8   `json:"producer"`
	Provenance   int32   `json:"provenance"`
	Timestamp    string  `json:"timestamp"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Radius       int32   `json:"radius"`
	RadiusMeters int32   `json:"radius_meters"`
}

// PointRequest carries the caller supplied fields of a UULEv2 location. Nil fields take defaults.
type PointRequest struct {
	Latitude   float64
	Longitude  float64
	Radius     *int32
	Provenance *int32
	Timestamp  *string
}

// Token is an encoded UULE parameter.
type Token struct {
	Token string `json:"token"`
}

// DecodedToken is the result of decoding a token of either version.
type DecodedToken struct {
	Version int            `json:"version"`
	V1      *PlaceLocation `json:"v1,omitempty"`
	V2      *PointLocation `json:"v2,omitempty"`
}
