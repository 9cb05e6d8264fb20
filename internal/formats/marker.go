// Package formats reads and writes the marker file formats a location
// collection can be loaded from or exported to.
package formats

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/point"
)

// Marker is a named location from any supported marker file, carrying
// whatever extra attributes that format provides.
type Marker struct {
	point.Point
	Name  string
	Props map[string]any
}

// Properties describes the marker for GeoJSON output.
func (m Marker) Properties() map[string]any {
	props := make(map[string]any, len(m.Props)+1)
	for k, v := range m.Props {
		props[k] = v
	}
	props["name"] = m.Name
	return props
}

func (m Marker) String() string {
	if m.Name == "" {
		return m.Point.String()
	}
	return fmt.Sprintf("%s (%s)", m.Name, m.Point.String())
}

// Format names a marker file layout.
type Format string

const (
	FormatTrigpoint Format = "trigpoint"
	FormatXearth    Format = "xearth"
	FormatLocations Format = "locations"
	FormatJSON      Format = "json"
	FormatGeoJSON   Format = "geojson"
)

// ParseFormat validates a marker format name. The empty name selects
// GeoJSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return FormatGeoJSON, nil
	case FormatTrigpoint, FormatXearth, FormatLocations, FormatJSON, FormatGeoJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown marker format %q", name)
}

// Load reads a marker file from a local path or an http(s) URL.
func Load(client *http.Client, source string, format Format) (*collection.Keyed[string, Marker], error) {
	log.Info().
		Str("source", source).
		Str("format", string(format)).
		Msg("Loading markers")

	rc, err := Open(client, source)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = rc.Close() }()

	c, err := Decode(rc, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	log.Debug().
		Str("source", source).
		Int("markers", c.Len()).
		Msg("Markers loaded")
	return c, nil
}

// Decode reads markers of the given format from r.
func Decode(r io.Reader, format Format) (*collection.Keyed[string, Marker], error) {
	switch format {
	case FormatTrigpoint:
		src, err := ImportTrigpoints(r)
		if err != nil {
			return nil, err
		}
		return convert(src, func(id int, t Trigpoint) (string, Marker) {
			return strconv.Itoa(id), Marker{Point: t.Point, Name: t.Name, Props: t.Properties()}
		}), nil

	case FormatXearth:
		src, err := ImportXearth(r)
		if err != nil {
			return nil, err
		}
		return convert(src, func(name string, x Xearth) (string, Marker) {
			return name, Marker{Point: x.Point, Name: name, Props: x.Properties()}
		}), nil

	case FormatLocations:
		src, err := ImportLocations(r)
		if err != nil {
			return nil, err
		}
		return convert(src, func(name string, p point.Point) (string, Marker) {
			return name, Marker{Point: p, Name: name}
		}), nil

	case FormatJSON:
		return DecodeJSON(r)

	case FormatGeoJSON:
		return DecodeGeoJSON(r)
	}
	return nil, fmt.Errorf("unknown marker format %q", format)
}

func convert[K comparable, V point.Coordinate](src *collection.Keyed[K, V], fn func(K, V) (string, Marker)) *collection.Keyed[string, Marker] {
	dst := collection.NewKeyed[string, Marker]()
	for k, v := range src.All() {
		dst.Set(fn(k, v))
	}
	return dst
}

// Open reads a local file, or fetches source when it is an http(s) URL.
func Open(client *http.Client, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.Open(source)
	}

	resp, err := client.Get(source)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
