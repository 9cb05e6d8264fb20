package formats

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/point"
)

// Xearth is a marker from an xearth or xplanet marker file.
type Xearth struct {
	point.Point
	Comment string
}

func (x Xearth) String() string {
	if x.Comment == "" {
		return x.Point.String()
	}
	return fmt.Sprintf("%s (%s)", x.Comment, x.Point.String())
}

// Properties describes the marker for GeoJSON output.
func (x Xearth) Properties() map[string]any {
	props := map[string]any{"type": "xearth"}
	if x.Comment != "" {
		props["comment"] = x.Comment
	}
	return props
}

var errMarkerName = errors.New("marker name must be quoted")

// DecodeXearth reads one marker line such as
//
//	52.015     -0.221 "Home"          # comment
//
// keyed by the quoted name. Blank lines and lines starting with # are
// skipped. xplanet keywords after the name are ignored.
func DecodeXearth(record string) (string, Xearth, error) {
	record = strings.TrimSpace(record)
	if record == "" || strings.HasPrefix(record, "#") {
		return "", Xearth{}, collection.ErrSkip
	}

	fields := strings.Fields(record)
	if len(fields) < 3 || strings.HasPrefix(fields[2], "#") {
		return "", Xearth{}, errors.New("expected latitude, longitude and name")
	}

	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", Xearth{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", Xearth{}, fmt.Errorf("longitude: %w", err)
	}

	// the name may contain whitespace or #, so cut it from the raw text
	rest := record
	for _, f := range fields[:2] {
		rest = strings.TrimLeftFunc(rest[len(f):], unicode.IsSpace)
	}
	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return "", Xearth{}, errMarkerName
	}
	end := strings.IndexByte(rest[1:], quote)
	if end < 0 {
		return "", Xearth{}, errMarkerName
	}
	name := strings.TrimSpace(rest[1 : end+1])

	var comment string
	if _, after, ok := strings.Cut(rest[end+2:], "#"); ok {
		comment = strings.TrimSpace(after)
	}

	p, err := point.New(lat, lon)
	if err != nil {
		return "", Xearth{}, err
	}
	return name, Xearth{Point: p, Comment: comment}, nil
}

// EncodeXearth writes the marker line DecodeXearth reads.
func EncodeXearth(name string, x Xearth) (string, error) {
	if strings.ContainsAny(name, "\"\n") {
		return "", fmt.Errorf("marker name %q cannot be quoted", name)
	}
	line := fmt.Sprintf("%f %f \"%s\"", x.Latitude(), x.Longitude(), name)
	if x.Comment != "" {
		line += " # " + x.Comment
	}
	return line, nil
}

// ImportXearth reads an xearth marker file keyed by marker name.
func ImportXearth(r io.Reader) (*collection.Keyed[string, Xearth], error) {
	c := collection.NewKeyed[string, Xearth]()
	if err := c.Import(r, DecodeXearth); err != nil {
		return nil, err
	}
	return c, nil
}

// ExportXearth renders a marker file sorted by marker name.
func ExportXearth(c *collection.Keyed[string, Xearth]) ([]string, error) {
	keys := c.Keys()
	sort.Strings(keys)

	sorted := collection.NewKeyed[string, Xearth]()
	for _, k := range keys {
		v, _ := c.Get(k)
		sorted.Set(k, v)
	}
	return sorted.Export(EncodeXearth)
}
