// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/formats"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// Locations are named places usable wherever a location is expected.
	Locations map[string]Location `yaml:"locations,omitempty"`

	Units  string `yaml:"units,omitempty"`  // km, sm or nm
	Format string `yaml:"format,omitempty"` // dd, dm, dms or locator
	Method string `yaml:"method,omitempty"` // haversine or sloc
	Zenith string `yaml:"zenith,omitempty"`

	// Radius overrides the body radius in kilometres. Body selects a
	// radius by name (Mars, Moon, ...) and Ellipsoid fits a local radius at
	// the mean latitude of Locations. At most one of them may be set.
	Radius    float64 `yaml:"radius,omitempty"`
	Body      string  `yaml:"body,omitempty"`
	Ellipsoid string  `yaml:"ellipsoid,omitempty"`

	Markers Markers `yaml:"markers,omitempty"`
}

// Markers points at a marker file served or converted by the tools.
type Markers struct {
	Source string `yaml:"source,omitempty"` // path or http(s) URL
	Format string `yaml:"format,omitempty"`
}

// Location is a config entry given either as a location string or
// locator, or as a mapping with latitude/longitude or locator keys:
//
//	home: 52.015;-0.221
//	club: IO92va
//	work: {latitude: 52.168, longitude: 0.040}
type Location struct {
	point.Point
}

// UnmarshalYAML accepts the scalar and mapping forms of a location.
func (l *Location) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		p, err := point.Parse(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		l.Point = p
		return nil

	case yaml.MappingNode:
		var raw struct {
			Latitude  *float64 `yaml:"latitude"`
			Longitude *float64 `yaml:"longitude"`
			Locator   string   `yaml:"locator"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}

		var (
			p   point.Point
			err error
		)
		switch {
		case raw.Locator != "":
			p, err = point.Parse(raw.Locator)
		case raw.Latitude != nil && raw.Longitude != nil:
			p, err = point.New(*raw.Latitude, *raw.Longitude)
		default:
			err = errors.New("expected latitude and longitude, or locator")
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		l.Point = p
		return nil
	}
	return fmt.Errorf("line %d: unsupported location value", node.Line)
}

// MarshalYAML writes the location as a "lat;lon" string.
func (l Location) MarshalYAML() (any, error) {
	return fmt.Sprintf("%g;%g", l.Latitude(), l.Longitude()), nil
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOptional is Load, except that a missing file yields an empty config.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := geo.ParseUnits(c.Units); err != nil {
		return err
	}
	if _, err := point.ParseStyle(c.Format); err != nil {
		return err
	}
	if _, err := point.ParseMethod(c.Method); err != nil {
		return err
	}
	if _, err := point.ParseZenith(c.Zenith); err != nil {
		return err
	}

	if _, err := formats.ParseFormat(c.Markers.Format); err != nil {
		return err
	}

	set := 0
	for _, v := range []bool{c.Radius != 0, c.Body != "", c.Ellipsoid != ""} {
		if v {
			set++
		}
	}
	if set > 1 {
		return errors.New("radius, body and ellipsoid are mutually exclusive")
	}
	if c.Radius < 0 {
		return fmt.Errorf("radius %g must be positive", c.Radius)
	}
	if c.Body != "" {
		if _, ok := bodyRadius(c.Body); !ok {
			return fmt.Errorf("unknown body %q", c.Body)
		}
	}
	if c.Ellipsoid != "" {
		if _, ok := geo.EllipsoidByName(c.Ellipsoid); !ok {
			return fmt.Errorf("unknown ellipsoid %q", c.Ellipsoid)
		}
	}
	return nil
}

// NamedLocations returns Locations as a collection in name order.
func (c *Config) NamedLocations() *collection.Keyed[string, point.Point] {
	names := make([]string, 0, len(c.Locations))
	for name := range c.Locations {
		names = append(names, name)
	}
	sort.Strings(names)

	out := collection.NewKeyed[string, point.Point]()
	for _, name := range names {
		out.Set(name, c.Locations[name].Point)
	}
	return out
}

// PointOptions converts the computation settings to point options.
func (c *Config) PointOptions() ([]point.Option, error) {
	var opts []point.Option

	method, err := point.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	opts = append(opts, point.WithMethod(method))

	zenith, err := point.ParseZenith(c.Zenith)
	if err != nil {
		return nil, err
	}
	opts = append(opts, point.WithZenith(zenith))

	switch {
	case c.Radius > 0:
		opts = append(opts, point.WithRadius(c.Radius))
	case c.Body != "":
		r, ok := bodyRadius(c.Body)
		if !ok {
			return nil, fmt.Errorf("unknown body %q", c.Body)
		}
		opts = append(opts, point.WithRadius(r))
	case c.Ellipsoid != "":
		e, ok := geo.EllipsoidByName(c.Ellipsoid)
		if !ok {
			return nil, fmt.Errorf("unknown ellipsoid %q", c.Ellipsoid)
		}
		opts = append(opts, point.WithRadius(geo.CalcRadius(c.meanLatitude(), e)))
	}

	return opts, nil
}

func (c *Config) meanLatitude() float64 {
	if len(c.Locations) == 0 {
		return 0
	}
	var sum float64
	for _, l := range c.Locations {
		sum += l.Latitude()
	}
	return sum / float64(len(c.Locations))
}

func bodyRadius(name string) (float64, bool) {
	for body, r := range geo.BodyRadius {
		if strings.EqualFold(body, name) {
			return r, true
		}
	}
	return 0, false
}
