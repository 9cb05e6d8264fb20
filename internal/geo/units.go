package geo

import (
	"fmt"
	"math"
	"strings"
)

// EarthRadius is the mean radius of the Earth in kilometres (IUGG).
const EarthRadius = 6371.0088

// BodyRadius holds mean radii in kilometres for bodies other than the
// Earth, for use as a radius override.
var BodyRadius = map[string]float64{
	"Sun":     696000,
	"Mercury": 2440,
	"Venus":   6052,
	"Earth":   EarthRadius,
	"Mars":    3390,
	"Jupiter": 69911,
	"Saturn":  58232,
	"Uranus":  25362,
	"Neptune": 24622,
	"Moon":    1738,
	"Pluto":   1153,
	"Ceres":   475,
	"Eris":    1200,
}

// Lengths of the non-metric distance units in kilometres.
const (
	NauticalMile = 1.852
	StatuteMile  = 1.609344
)

// Units is a distance unit used for input and display. All computations
// work in kilometres.
type Units int

const (
	Kilometres Units = iota
	StatuteMiles
	NauticalMiles
)

// ParseUnits accepts the short (km, sm, nm) and long (metric, imperial,
// nautical) unit names.
func ParseUnits(name string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "km", "metric":
		return Kilometres, nil
	case "sm", "imperial", "us customary":
		return StatuteMiles, nil
	case "nm", "nautical":
		return NauticalMiles, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownUnits, name)
}

func (u Units) String() string {
	switch u {
	case StatuteMiles:
		return "sm"
	case NauticalMiles:
		return "nm"
	}
	return "km"
}

// Label is the long, plural unit name used in sentences.
func (u Units) Label() string {
	switch u {
	case StatuteMiles:
		return "miles"
	case NauticalMiles:
		return "nautical miles"
	}
	return "kilometres"
}

// FromKilometres converts a distance in kilometres to u.
func (u Units) FromKilometres(km float64) float64 {
	switch u {
	case StatuteMiles:
		return km / StatuteMile
	case NauticalMiles:
		return km / NauticalMile
	}
	return km
}

// ToKilometres converts a distance in u to kilometres.
func (u Units) ToKilometres(d float64) float64 {
	switch u {
	case StatuteMiles:
		return d * StatuteMile
	case NauticalMiles:
		return d * NauticalMile
	}
	return d
}

// AngleToDistance converts an angle at the centre of the Earth to the
// length of the great-circle arc it subtends.
func AngleToDistance(angle float64, units Units) float64 {
	return units.FromKilometres(Radians(angle) * EarthRadius)
}

// DistanceToAngle converts a great-circle arc length to the angle it
// subtends at the centre of the Earth.
func DistanceToAngle(distance float64, units Units) float64 {
	return Degrees(units.ToKilometres(distance) / EarthRadius)
}

// Ellipsoid is a reference ellipsoid given by its semi-axes in kilometres.
type Ellipsoid struct {
	Name  string
	Major float64
	Minor float64
}

// Ellipsoids usable with CalcRadius.
var (
	Airy1830      = Ellipsoid{"Airy (1830)", 6377.563, 6356.257}
	Bessel        = Ellipsoid{"Bessel", 6377.397, 6356.079}
	Clarke1880    = Ellipsoid{"Clarke (1880)", 6378.249145, 6356.51486955}
	FAISphere     = Ellipsoid{"FAI sphere", 6371, 6371}
	GRS67         = Ellipsoid{"GRS-67", 6378.160, 6356.775}
	International = Ellipsoid{"International", 6378.388, 6356.912}
	Krasovsky     = Ellipsoid{"Krasovsky", 6378.245, 6356.863}
	NAD27         = Ellipsoid{"NAD27", 6378.206, 6356.584}
	WGS66         = Ellipsoid{"WGS66", 6378.145, 6356.758}
	WGS72         = Ellipsoid{"WGS72", 6378.135, 6356.751}
	WGS84         = Ellipsoid{"WGS84", 6378.137, 6356.752}
)

// EllipsoidByName looks up one of the predefined ellipsoids, ignoring case.
func EllipsoidByName(name string) (Ellipsoid, bool) {
	for _, e := range []Ellipsoid{
		Airy1830, Bessel, Clarke1880, FAISphere, GRS67, International,
		Krasovsky, NAD27, WGS66, WGS72, WGS84,
	} {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Ellipsoid{}, false
}

// CalcRadius returns the meridional radius of curvature of e at the given
// latitude. It is a drop-in radius for datasets localised enough that a
// single sphere fitted to the ellipsoid is more accurate than EarthRadius.
func CalcRadius(latitude float64, e Ellipsoid) float64 {
	ecc := 1 - (e.Minor*e.Minor)/(e.Major*e.Major)
	sl := math.Sin(Radians(latitude))
	return (e.Major * (1 - ecc)) / math.Pow(1-ecc*sl*sl, 1.5)
}
