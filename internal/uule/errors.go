package uule

import (
	"errors"
	"fmt"
)

// Kind identifies a class of encode/decode failure.
type Kind int

const (
	InvalidPrefix Kind = iota + 1
	Base64Decoding
	UTF8Decoding
	MalformedRecord
	UnexpectedEnd
	UnexpectedLine
	MissingValue
	InvalidIntegerValue
	InvalidFloatValue
	NameTooLong
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrInvalidPrefix       = errors.New("invalid prefix")
	ErrBase64Decoding      = errors.New("invalid base64-url string")
	ErrUTF8Decoding        = errors.New("invalid utf-8 string")
	ErrMalformedRecord     = errors.New("malformed record")
	ErrUnexpectedEnd       = errors.New("unexpected end of record")
	ErrUnexpectedLine      = errors.New("unexpected line")
	ErrMissingValue        = errors.New("missing value")
	ErrInvalidIntegerValue = errors.New("invalid integer value")
	ErrInvalidFloatValue   = errors.New("invalid float value")
	ErrNameTooLong         = errors.New("name too long")
)

var sentinels = map[Kind]error{
	InvalidPrefix:       ErrInvalidPrefix,
	Base64Decoding:      ErrBase64Decoding,
	UTF8Decoding:        ErrUTF8Decoding,
	MalformedRecord:     ErrMalformedRecord,
	UnexpectedEnd:       ErrUnexpectedEnd,
	UnexpectedLine:      ErrUnexpectedLine,
	MissingValue:        ErrMissingValue,
	InvalidIntegerValue: ErrInvalidIntegerValue,
	InvalidFloatValue:   ErrInvalidFloatValue,
	NameTooLong:         ErrNameTooLong,
}

// Error describes why a UULE token could not be encoded or decoded.
// Only the fields relevant to Kind are set.
type Error struct {
	// Format is "uulev1" or "uulev2".
	Format string
	Kind   Kind
	// Input is the rejected token (InvalidPrefix).
	Input string
	// Field is the field being parsed (UnexpectedEnd, MissingValue, InvalidIntegerValue).
	Field string
	// Expected and Actual describe an UnexpectedLine.
	Expected string
	Actual   string
	// Length is the offending byte length (MalformedRecord, NameTooLong).
	Length int
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case InvalidPrefix:
		if p := prefixOf(e.Format); p != "" {
			msg = fmt.Sprintf("invalid prefix, token must start with %q: %s", p, e.Input)
		} else {
			msg = fmt.Sprintf("invalid prefix, token must start with %q or %q: %s", V1Prefix, V2Prefix, e.Input)
		}
	case Base64Decoding:
		msg = fmt.Sprintf("invalid base64-url string: %v", e.Err)
	case UTF8Decoding:
		msg = "invalid utf-8 string"
	case MalformedRecord:
		msg = fmt.Sprintf("malformed record of %d bytes", e.Length)
	case UnexpectedEnd:
		msg = fmt.Sprintf("unexpected end of record, expected line %s", e.Field)
	case UnexpectedLine:
		msg = fmt.Sprintf("unexpected line: %s - expected: %s", e.Actual, e.Expected)
	case MissingValue:
		msg = fmt.Sprintf("missing value for field %s", e.Field)
	case InvalidIntegerValue:
		msg = fmt.Sprintf("invalid integer value for field %s: %v", e.Field, e.Err)
	case InvalidFloatValue:
		msg = fmt.Sprintf("invalid float value for field %s: %v", e.Field, e.Err)
	case NameTooLong:
		msg = fmt.Sprintf("name is %d bytes, at most 255 allowed", e.Length)
	default:
		msg = "unknown error"
	}
	if e.Format == "" {
		return msg
	}
	return e.Format + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func prefixOf(format string) string {
	switch format {
	case "uulev1":
		return V1Prefix
	case "uulev2":
		return V2Prefix
	}
	return ""
}
