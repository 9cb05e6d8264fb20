package geo

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * degToRad
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * radToDeg
}

// Wrap360 normalises an angle into the [0, 360) range.
func Wrap360(deg float64) float64 {
	if deg >= 0 && deg < 360 {
		return deg
	}

	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-15 + 360 rounds back up to 360
	if deg >= 360 {
		deg = 0
	}

	return deg
}

// WrapLongitude normalises a longitude into the [-180, 180] range by
// wrapping it modulo 360.
func WrapLongitude(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}

	return math.Remainder(lon, 360)
}

// ClampUnit limits v to [-1, 1], absorbing the rounding error that would
// otherwise push asin/acos arguments out of their domain.
func ClampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
