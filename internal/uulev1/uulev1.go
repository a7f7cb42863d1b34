// Package uulev1 encodes and decodes UULEv1 tokens, which carry a canonical
// place name such as "Queens County,New York,United States".
//
// The wire form is "w+" followed by the unpadded base64-URL encoding of
//
//	0x08 role 0x10 producer 0x22 len(name) name...
//
// The tag bytes at offsets 0, 2 and 4 are written but not checked on decode.
package uulev1

import (
	"unicode/utf8"

	"uule-converter/internal/uule"
)

const format = "uulev1"

const (
	tagRole     = 0x08
	tagProducer = 0x10
	tagName     = 0x22

	headerLen  = 6
	maxNameLen = 255
)

// Record is the data carried by a UULEv1 token.
type Record struct {
	Role          uint8
	Producer      uint8
	CanonicalName string
}

// New returns a Record for place with the default role and producer.
func New(place string) Record {
	return Record{Role: uule.V1Role, Producer: uule.V1Producer, CanonicalName: place}
}

// Encode returns the "w+" token for r. Names longer than 255 bytes are rejected.
func (r Record) Encode() (string, error) {
	name := []byte(r.CanonicalName)
	if len(name) > maxNameLen {
		return "", &uule.Error{Format: format, Kind: uule.NameTooLong, Length: len(name)}
	}

	buf := make([]byte, 0, headerLen+len(name))
	buf = append(buf, tagRole, r.Role, tagProducer, r.Producer, tagName, byte(len(name)))
	buf = append(buf, name...)
	return uule.Wrap(uule.V1Prefix, buf), nil
}

// Decode parses a "w+" token. Bytes after the name are ignored.
func Decode(token string) (Record, error) {
	buf, err := uule.Unwrap(format, uule.V1Prefix, token)
	if err != nil {
		return Record{}, err
	}
	if len(buf) < headerLen {
		return Record{}, &uule.Error{Format: format, Kind: uule.MalformedRecord, Length: len(buf)}
	}

	nameLen := int(buf[5])
	if len(buf) < headerLen+nameLen {
		return Record{}, &uule.Error{Format: format, Kind: uule.MalformedRecord, Length: len(buf)}
	}
	name := buf[headerLen : headerLen+nameLen]
	if !utf8.Valid(name) {
		return Record{}, &uule.Error{Format: format, Kind: uule.UTF8Decoding}
	}

	return Record{Role: buf[1], Producer: buf[3], CanonicalName: string(name)}, nil
}

// TryDecode is Decode with every failure collapsed into ok == false.
func TryDecode(token string) (Record, bool) {
	r, err := Decode(token)
	return r, err == nil
}
