// Package uulev2 encodes and decodes UULEv2 tokens, which carry a point
// (latitude/longitude), a radius and some undocumented metadata.
//
// A token is "a+" followed by the unpadded base64-URL encoding of a text block:
//
//	role:1
//	producer:12
//	provenance:6
//	timestamp:1591521249034000
//	latlng{
//	latitude_e7:374210000
//	longitude_e7:-122084000
//	}
//	radius:-1
//
// Values are read up to the end of the line, so a value containing ':' is
// not supported.
package uulev2

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"uule-converter/internal/latlong"
	"uule-converter/internal/uule"

	"lukechampine.com/uint128"
)

const format = "uulev2"

const (
	fieldRole       = "role"
	fieldProducer   = "producer"
	fieldProvenance = "provenance"
	fieldTimestamp  = "timestamp"
	fieldLatitude   = "latitude_e7"
	fieldLongitude  = "longitude_e7"
	fieldRadius     = "radius"
	latLngOpen      = "latlng{"
	latLngClose     = "}"
)

// Record is the data carried by a UULEv2 token.
//
// Radius is stored as encoded. Observed tokens use meters * 620; see
// uule.RadiusFromMeters. uule.ExactRadius (-1) means an exact point.
type Record struct {
	Role       uint8
	Producer   uint8
	Provenance int32
	// Timestamp is the Unix time in milliseconds.
	Timestamp uint128.Uint128
	Lat       float64
	Long      float64
	Radius    int32
}

// Default returns a Record with the default role and producer, an exact
// radius at 0,0 and a timestamp read from clock. Times before the Unix
// epoch give a zero timestamp.
func Default(clock Clock) Record {
	ms := clock.Now().UnixMilli()
	if ms < 0 {
		ms = 0
	}
	return Record{
		Role:      uule.UserSpecifiedForRequest,
		Producer:  uule.LoggedInUserSpecified,
		Timestamp: uint128.From64(uint64(ms)),
		Radius:    uule.ExactRadius,
	}
}

func (r Record) WithLat(lat float64) Record {
	r.Lat = lat
	return r
}

func (r Record) WithLong(long float64) Record {
	r.Long = long
	return r
}

func (r Record) WithRadius(radius int32) Record {
	r.Radius = radius
	return r
}

func (r Record) WithRole(role uint8) Record {
	r.Role = role
	return r
}

func (r Record) WithProducer(producer uint8) Record {
	r.Producer = producer
	return r
}

func (r Record) WithProvenance(provenance int32) Record {
	r.Provenance = provenance
	return r
}

func (r Record) WithTimestamp(timestamp uint128.Uint128) Record {
	r.Timestamp = timestamp
	return r
}

// String renders the text block that Encode base64-encodes.
func (r Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d\n", fieldRole, r.Role)
	fmt.Fprintf(&b, "%s:%d\n", fieldProducer, r.Producer)
	fmt.Fprintf(&b, "%s:%d\n", fieldProvenance, r.Provenance)
	fmt.Fprintf(&b, "%s:%s\n", fieldTimestamp, r.Timestamp.String())
	b.WriteString(latLngOpen + "\n")
	fmt.Fprintf(&b, "%s:%d\n", fieldLatitude, latlong.ToE7(r.Lat))
	fmt.Fprintf(&b, "%s:%d\n", fieldLongitude, latlong.ToE7(r.Long))
	b.WriteString(latLngClose + "\n")
	fmt.Fprintf(&b, "%s:%d", fieldRadius, r.Radius)
	return b.String()
}

// Encode returns the "a+" token for r.
func (r Record) Encode() string {
	return uule.Wrap(uule.V2Prefix, []byte(r.String()))
}

// Decode parses an "a+" token.
func Decode(token string) (Record, error) {
	payload, err := uule.Unwrap(format, uule.V2Prefix, token)
	if err != nil {
		return Record{}, err
	}
	if !utf8.Valid(payload) {
		return Record{}, &uule.Error{Format: format, Kind: uule.UTF8Decoding}
	}

	p := newParser(string(payload))
	var r Record

	role, err := p.parseUint(fieldRole, 8)
	if err != nil {
		return Record{}, err
	}
	producer, err := p.parseUint(fieldProducer, 8)
	if err != nil {
		return Record{}, err
	}
	provenance, err := p.parseInt(fieldProvenance, 32)
	if err != nil {
		return Record{}, err
	}
	if r.Timestamp, err = p.parseUint128(fieldTimestamp); err != nil {
		return Record{}, err
	}
	if err := p.literal(latLngOpen); err != nil {
		return Record{}, err
	}
	lat, err := p.parseInt(fieldLatitude, 64)
	if err != nil {
		return Record{}, err
	}
	long, err := p.parseInt(fieldLongitude, 64)
	if err != nil {
		return Record{}, err
	}
	if err := p.literal(latLngClose); err != nil {
		return Record{}, err
	}
	radius, err := p.parseInt(fieldRadius, 32)
	if err != nil {
		return Record{}, err
	}

	r.Role = uint8(role)
	r.Producer = uint8(producer)
	r.Provenance = int32(provenance)
	r.Lat = latlong.FromE7(lat)
	r.Long = latlong.FromE7(long)
	r.Radius = int32(radius)
	return r, nil
}

// TryDecode is Decode with every failure collapsed into ok == false.
func TryDecode(token string) (Record, bool) {
	r, err := Decode(token)
	return r, err == nil
}
