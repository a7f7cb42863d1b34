// Package batch transcodes CSV files of locations to UULE tokens and back.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"uule-converter/internal/models"
	"uule-converter/internal/service"
)

// Encoder is satisfied by service.EncodeService.
type Encoder interface {
	EncodePlace(string) (string, error)
	EncodePoint(models.PointRequest) (string, error)
}

// Decoder is satisfied by service.DecodeService.
type Decoder interface {
	Decode(string) (*models.DecodedToken, error)
}

var decodeHeader = []string{
	"token", "version", "role", "producer", "canonical_name",
	"provenance", "timestamp", "latitude", "longitude", "radius",
}

// Encode reads rows of either "name" or "lat,lon[,radius]" and writes each row with its token appended.
// The first row is a header and gets a "token" column. It returns the number of encoded rows.
func Encode(r io.Reader, w io.Writer, enc Encoder) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	writer := csv.NewWriter(w)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("batch: failed to read header: %w", err)
	}
	if err := writer.Write(append(header, "token")); err != nil {
		return 0, fmt.Errorf("batch: failed to write header: %w", err)
	}

	count := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("batch: failed to read record: %w", err)
		}

		token, err := encodeRecord(record, enc)
		if err != nil {
			return count, fmt.Errorf("batch: line %d: %w", line, err)
		}

		if err := writer.Write(append(record, token)); err != nil {
			return count, fmt.Errorf("batch: failed to write record: %w", err)
		}
		count++
	}

	writer.Flush()
	return count, writer.Error()
}

func encodeRecord(record []string, enc Encoder) (string, error) {
	switch len(record) {
	case 1:
		return enc.EncodePlace(record[0])
	case 2, 3:
		lat, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return "", fmt.Errorf("invalid latitude: %s", record[0])
		}
		lon, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return "", fmt.Errorf("invalid longitude: %s", record[1])
		}
		req := models.PointRequest{Latitude: lat, Longitude: lon}
		if len(record) == 3 && record[2] != "" {
			radius, err := strconv.ParseInt(record[2], 10, 32)
			if err != nil {
				return "", fmt.Errorf("invalid radius: %s", record[2])
			}
			r := int32(radius)
			req.Radius = &r
		}
		return enc.EncodePoint(req)
	}
	return "", fmt.Errorf("invalid record length: %d, expected 1 to 3 columns", len(record))
}

// Decode reads a header row followed by one token per row (first column) and writes the decoded fields.
// It returns the number of decoded rows.
func Decode(r io.Reader, w io.Writer, dec Decoder) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(w)

	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("batch: failed to read header: %w", err)
	}
	if err := writer.Write(decodeHeader); err != nil {
		return 0, fmt.Errorf("batch: failed to write header: %w", err)
	}

	count := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("batch: failed to read record: %w", err)
		}

		decoded, err := dec.Decode(record[0])
		if err != nil {
			return count, fmt.Errorf("batch: line %d: %w", line, err)
		}

		if err := writer.Write(decodedRow(record[0], decoded)); err != nil {
			return count, fmt.Errorf("batch: failed to write record: %w", err)
		}
		count++
	}

	writer.Flush()
	return count, writer.Error()
}

func decodedRow(token string, d *models.DecodedToken) []string {
	row := make([]string, len(decodeHeader))
	row[0] = token
	row[1] = strconv.Itoa(d.Version)
	switch {
	case d.V1 != nil:
		row[2] = strconv.Itoa(int(d.V1.Role))
		row[3] = strconv.Itoa(int(d.V1.Producer))
		row[4] = d.V1.CanonicalName
	case d.V2 != nil:
		row[2] = strconv.Itoa(int(d.V2.Role))
		row[3] = strconv.Itoa(int(d.V2.Producer))
		row[5] = strconv.Itoa(int(d.V2.Provenance))
		row[6] = d.V2.Timestamp
		row[7] = strconv.FormatFloat(d.V2.Latitude, 'f', -1, 64)
		row[8] = strconv.FormatFloat(d.V2.Longitude, 'f', -1, 64)
		row[9] = strconv.Itoa(int(d.V2.Radius))
	}
	return row
}

var (
	_ Encoder = (*service.EncodeService)(nil)
	_ Decoder = (*service.DecodeService)(nil)
)
