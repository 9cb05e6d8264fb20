package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"
)

// Propertied is a location carrying its own GeoJSON properties.
type Propertied interface {
	point.Coordinate
	Properties() map[string]any
}

// ToGeoJSON builds one Point feature per member. The key is stored in the
// "id" property, merged with the member's own properties when it has any.
func ToGeoJSON[K comparable, V point.Coordinate](c *collection.Keyed[K, V]) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(c.Len())
	for k, v := range c.All() {
		props := map[string]any{}
		if p, ok := any(v).(Propertied); ok {
			maps.Copy(props, p.Properties())
		}
		props["id"] = k
		if _, ok := props["name"]; !ok {
			props["name"] = fmt.Sprint(k)
		}
		fc.Features = append(fc.Features, geo.NewPointFeature(v.Latitude(), v.Longitude(), props))
	}
	return fc
}

// RouteToGeoJSON renders an ordered journey as a LineString plus one
// Point feature per stop, numbered from 1.
func RouteToGeoJSON[V point.Coordinate](c *collection.Ordered[V], opts ...point.Option) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(c.Len() + 1)

	line := make([][2]float64, 0, c.Len())
	for _, v := range c.All() {
		line = append(line, [2]float64{v.Latitude(), v.Longitude()})
	}
	if len(line) > 1 {
		fc.Features = append(fc.Features, geo.NewLineFeature(line, map[string]any{
			"distance": c.TotalDistance(opts...),
		}))
	}

	for i, v := range c.All() {
		fc.Features = append(fc.Features, geo.NewPointFeature(v.Latitude(), v.Longitude(), map[string]any{
			"name": strconv.Itoa(i + 1),
		}))
	}
	return fc
}

// DecodeGeoJSON reads the Point features of a FeatureCollection, keyed by
// their "name" property or, failing that, their position in the file.
// Other geometry types are skipped.
func DecodeGeoJSON(r io.Reader) (*collection.Keyed[string, Marker], error) {
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
			Geometry   struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, err
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected FeatureCollection, got %q", fc.Type)
	}

	c := collection.NewKeyed[string, Marker]()
	for i, f := range fc.Features {
		if f.Geometry.Type != "Point" {
			continue
		}
		var coords []float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &coords); err != nil {
			return nil, &collection.DecodeError{Line: i + 1, Err: err}
		}
		if len(coords) < 2 {
			return nil, &collection.DecodeError{Line: i + 1, Err: fmt.Errorf("point needs two coordinates")}
		}

		p, err := point.New(coords[1], coords[0])
		if err != nil {
			return nil, &collection.DecodeError{Line: i + 1, Err: err}
		}

		name, _ := f.Properties["name"].(string)
		if name == "" {
			name = strconv.Itoa(i + 1)
		}
		if _, ok := c.Get(name); ok {
			log.Warn().Str("name", name).Int("feature", i+1).Msg("duplicate marker name, replacing earlier feature")
		}
		c.Set(name, Marker{Point: p, Name: name, Props: f.Properties})
	}
	return c, nil
}

// WriteGeoJSON encodes fc to w, indented or minified.
func WriteGeoJSON(w io.Writer, fc geo.GeoJSONFeatureCollection, minified bool) error {
	if !minified {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fc)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}

	m := minify.New()
	// leading zeros must survive for strict JSON readers
	m.Add("application/json", &minjson.Minifier{KeepNumbers: true})
	return m.Minify("application/json", w, bytes.NewReader(data))
}

// WriteYAML encodes fc to w as YAML.
func WriteYAML(w io.Writer, fc geo.GeoJSONFeatureCollection) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return err
	}
	return enc.Close()
}
