package uulev2

import (
	"strconv"
	"strings"

	"uule-converter/internal/uule"

	"lukechampine.com/uint128"
)

// parser walks the decoded text block line by line.
type parser struct {
	lines []string
	pos   int
}

func newParser(text string) *parser {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &parser{lines: lines}
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.lines) {
		return "", false
	}
	line := p.lines[p.pos]
	p.pos++
	return line, true
}

// literal consumes a line that must equal want exactly.
func (p *parser) literal(want string) error {
	line, ok := p.next()
	if !ok {
		return &uule.Error{Format: format, Kind: uule.UnexpectedEnd, Field: want}
	}
	if line != want {
		return &uule.Error{Format: format, Kind: uule.UnexpectedLine, Expected: want, Actual: line}
	}
	return nil
}

// value consumes a "field:value" line and returns value.
func (p *parser) value(field string) (string, error) {
	line, ok := p.next()
	if !ok {
		return "", &uule.Error{Format: format, Kind: uule.UnexpectedEnd, Field: field}
	}
	key, value, found := strings.Cut(line, ":")
	if key != field {
		return "", &uule.Error{Format: format, Kind: uule.UnexpectedLine, Expected: field, Actual: line}
	}
	if !found || value == "" {
		return "", &uule.Error{Format: format, Kind: uule.MissingValue, Field: field}
	}
	return value, nil
}

func (p *parser) parseUint(field string, bitSize int) (uint64, error) {
	v, err := p.value(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, bitSize)
	if err != nil {
		return 0, invalidInteger(field, err)
	}
	return n, nil
}

func (p *parser) parseInt(field string, bitSize int) (int64, error) {
	v, err := p.value(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, bitSize)
	if err != nil {
		return 0, invalidInteger(field, err)
	}
	return n, nil
}

func (p *parser) parseUint128(field string) (uint128.Uint128, error) {
	v, err := p.value(field)
	if err != nil {
		return uint128.Zero, err
	}
	n, err := ParseTimestamp(v)
	if err != nil {
		return uint128.Zero, invalidInteger(field, err)
	}
	return n, nil
}

// ParseTimestamp parses a decimal unsigned 128-bit timestamp.
func ParseTimestamp(s string) (uint128.Uint128, error) {
	// uint128.FromString scans leniently, so only plain decimal digits get that far.
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return uint128.Zero, &strconv.NumError{Func: "ParseTimestamp", Num: s, Err: strconv.ErrSyntax}
	}
	n, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, &strconv.NumError{Func: "ParseTimestamp", Num: s, Err: strconv.ErrRange}
	}
	return n, nil
}

func invalidInteger(field string, err error) error {
	return &uule.Error{Format: format, Kind: uule.InvalidIntegerValue, Field: field, Err: err}
}
