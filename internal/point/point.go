// Package point implements a location on a spherical Earth and the
// great-circle geometry between locations.
package point

import (
	"encoding/json"
	"math"

	"github.com/woozymasta/upoints/internal/geo"
)

// Coordinate is anything with a position in decimal degrees. Point and
// every record type embedding it satisfy Coordinate.
type Coordinate interface {
	Latitude() float64
	Longitude() float64
}

// Point is a latitude/longitude pair in decimal degrees. The zero value is
// the intersection of the equator and the prime meridian.
type Point struct {
	lat float64
	lon float64
}

// New validates latitude and wraps longitude into [-180, 180].
func New(latitude, longitude float64) (Point, error) {
	var p Point
	if err := p.SetLatitude(latitude); err != nil {
		return Point{}, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return Point{}, err
	}
	return p, nil
}

// MustNew is New for values known to be valid. It panics on error.
func MustNew(latitude, longitude float64) Point {
	p, err := New(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return p
}

// NewRadians is New with angles given in radians.
func NewRadians(latitude, longitude float64) (Point, error) {
	return New(geo.Degrees(latitude), geo.Degrees(longitude))
}

// NewDMS is New with angles given as degrees, minutes and seconds.
func NewDMS(latitude, longitude geo.DMS) (Point, error) {
	return New(latitude.Decimal(), longitude.Decimal())
}

// From copies the position of any Coordinate.
func From(c Coordinate) Point {
	if p, ok := c.(Point); ok {
		return p
	}
	return Point{lat: c.Latitude(), lon: c.Longitude()}
}

// Parse reads a location string as accepted by geo.ParseLocation, falling
// back to a Maidenhead locator.
func Parse(s string) (Point, error) {
	lat, lon, err := geo.ParseLocation(s)
	if err != nil {
		var locErr error
		if lat, lon, locErr = geo.FromGridLocator(s); locErr != nil {
			return Point{}, err
		}
	}
	return New(lat, lon)
}

func (p Point) Latitude() float64  { return p.lat }
func (p Point) Longitude() float64 { return p.lon }

// SetLatitude replaces the latitude, rejecting values outside [-90, 90].
func (p *Point) SetLatitude(latitude float64) error {
	if !(latitude >= -90 && latitude <= 90) {
		return &geo.ValidationError{Field: "latitude", Value: formatFloat(latitude), Reason: "must be within [-90, 90]"}
	}
	p.lat = latitude
	return nil
}

// SetLongitude replaces the longitude, wrapping it into [-180, 180].
func (p *Point) SetLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return &geo.ValidationError{Field: "longitude", Value: formatFloat(longitude), Reason: "not a finite number"}
	}
	p.lon = geo.WrapLongitude(longitude)
	return nil
}

// IsNear reports whether other lies within km kilometres of p. Coincident
// points are near for any non-negative threshold.
func (p Point) IsNear(other Coordinate, km float64, opts ...Option) bool {
	return Distance(p, other, opts...) <= km
}

type jsonPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPoint{p.lat, p.lon})
}

// UnmarshalJSON applies the same validation as New.
func (p *Point) UnmarshalJSON(data []byte) error {
	var v jsonPoint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	np, err := New(v.Latitude, v.Longitude)
	if err != nil {
		return err
	}
	*p = np
	return nil
}
