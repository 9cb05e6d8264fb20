package formats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/point"
)

// DecodeLocation reads a bare location string or Maidenhead locator, one
// per line. Blank lines and # comments are skipped.
func DecodeLocation(record string) (point.Point, error) {
	record = strings.TrimSpace(record)
	if record == "" || strings.HasPrefix(record, "#") {
		return point.Point{}, collection.ErrSkip
	}
	return point.Parse(record)
}

// DecodeNamedLocation reads "name = location" lines.
func DecodeNamedLocation(record string) (string, point.Point, error) {
	record = strings.TrimSpace(record)
	if record == "" || strings.HasPrefix(record, "#") {
		return "", point.Point{}, collection.ErrSkip
	}

	name, loc, ok := strings.Cut(record, "=")
	if !ok {
		return "", point.Point{}, fmt.Errorf("expected name = location")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", point.Point{}, fmt.Errorf("empty location name")
	}

	p, err := point.Parse(strings.TrimSpace(loc))
	if err != nil {
		return "", point.Point{}, err
	}
	return name, p, nil
}

// EncodeLocation writes a "lat;lon" pair without losing precision.
func EncodeLocation(p point.Point) (string, error) {
	return strconv.FormatFloat(p.Latitude(), 'f', -1, 64) + ";" +
		strconv.FormatFloat(p.Longitude(), 'f', -1, 64), nil
}

// EncodeNamedLocation writes the line DecodeNamedLocation reads.
func EncodeNamedLocation(name string, p point.Point) (string, error) {
	loc, err := EncodeLocation(p)
	if err != nil {
		return "", err
	}
	return name + " = " + loc, nil
}

// ImportLocations reads a "name = location" file.
func ImportLocations(r io.Reader) (*collection.Keyed[string, point.Point], error) {
	c := collection.NewKeyed[string, point.Point]()
	if err := c.Import(r, DecodeNamedLocation); err != nil {
		return nil, err
	}
	return c, nil
}

// ImportRoute reads one location per line as an ordered journey.
func ImportRoute(r io.Reader) (*collection.Ordered[point.Point], error) {
	c := collection.NewOrdered[point.Point]()
	if err := c.Import(r, DecodeLocation); err != nil {
		return nil, err
	}
	return c, nil
}
