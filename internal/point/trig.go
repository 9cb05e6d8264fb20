package point

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/woozymasta/upoints/internal/geo"
)

// Distance returns the great-circle distance between a and b in kilometres.
func Distance(a, b Coordinate, opts ...Option) float64 {
	o := buildOptions(opts)

	lat1, lat2 := geo.Radians(a.Latitude()), geo.Radians(b.Latitude())
	dLat := lat2 - lat1
	dLon := geo.Radians(b.Longitude() - a.Longitude())

	var angle float64
	switch o.method {
	case LawOfCosines:
		angle = math.Acos(geo.ClampUnit(
			math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon)))
	default:
		sLat, sLon := math.Sin(dLat/2), math.Sin(dLon/2)
		h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLon*sLon
		angle = 2 * math.Asin(math.Sqrt(geo.ClampUnit(h)))
	}

	return angle * o.radius
}

// Bearing returns the initial bearing from a to b in degrees [0, 360).
// Coincident points give 0.
func Bearing(a, b Coordinate) float64 {
	lat1, lat2 := geo.Radians(a.Latitude()), geo.Radians(b.Latitude())
	dLon := geo.Radians(b.Longitude() - a.Longitude())

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return geo.Wrap360(geo.Degrees(math.Atan2(y, x)))
}

// FinalBearing returns the bearing on arrival at b when travelling the
// great circle from a.
func FinalBearing(a, b Coordinate) float64 {
	return geo.Wrap360(Bearing(b, a) + 180)
}

// Destination solves the forward problem: the point reached from c after
// travelling km kilometres along the initial bearing.
func Destination(c Coordinate, bearing, km float64, opts ...Option) Point {
	o := buildOptions(opts)

	lat1, lon1 := geo.Radians(c.Latitude()), geo.Radians(c.Longitude())
	theta := geo.Radians(bearing)
	delta := km / o.radius

	lat2 := math.Asin(geo.ClampUnit(
		math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta)))
	lon2 := lon1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return Point{lat: geo.Degrees(lat2), lon: geo.WrapLongitude(geo.Degrees(lon2))}
}

// Inverse solves the inverse problem, returning the initial bearing and
// distance from a to b.
func Inverse(a, b Coordinate, opts ...Option) (bearing, km float64) {
	return Bearing(a, b), Distance(a, b, opts...)
}

// Midpoint returns the point halfway along the great circle from a to b.
// Antipodal points have no unique midpoint; the result is then some point
// on the great circle equidistant from both, or (0, 0) when the unit
// vectors cancel exactly.
func Midpoint(a, b Coordinate) Point {
	pa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Latitude(), a.Longitude()))
	pb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Latitude(), b.Longitude()))

	mid := s2.Point{Vector: pa.Add(pb.Vector).Normalize()}
	ll := s2.LatLngFromPoint(mid)

	return Point{lat: ll.Lat.Degrees(), lon: geo.WrapLongitude(ll.Lng.Degrees())}
}

func (p Point) Distance(other Coordinate, opts ...Option) float64 {
	return Distance(p, other, opts...)
}

func (p Point) Bearing(other Coordinate) float64 {
	return Bearing(p, other)
}

func (p Point) FinalBearing(other Coordinate) float64 {
	return FinalBearing(p, other)
}

func (p Point) Destination(bearing, km float64, opts ...Option) Point {
	return Destination(p, bearing, km, opts...)
}

func (p Point) Inverse(other Coordinate, opts ...Option) (bearing, km float64) {
	return Inverse(p, other, opts...)
}

func (p Point) Midpoint(other Coordinate) Point {
	return Midpoint(p, other)
}
