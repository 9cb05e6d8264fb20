package geo

import "math"

// DMS is an angle split into whole degrees, whole minutes and seconds.
// Every non-zero component carries the sign of the angle, so -0.221 is
// {0, -13, -15.6}.
type DMS struct {
	Degrees int
	Minutes int
	Seconds float64
}

// DM is an angle split into whole degrees and fractional minutes, signed
// like DMS.
type DM struct {
	Degrees int
	Minutes float64
}

// Decimal converts the angle back to decimal degrees.
func (d DMS) Decimal() float64 {
	return ToDecimal(float64(d.Degrees), float64(d.Minutes), d.Seconds)
}

// Decimal converts the angle back to decimal degrees.
func (d DM) Decimal() float64 {
	return ToDecimal(float64(d.Degrees), d.Minutes, 0)
}

// ToDecimal converts degrees, minutes and seconds to decimal degrees.
//
// Magnitudes are summed and the result is negative when any component is
// negative, so (52, -10, -30), (-52, 10, 30) and (-52, -10, -30) all give
// -52.175. Use ToDecimalStrict to reject inputs whose signs disagree.
func ToDecimal(degrees, minutes, seconds float64) float64 {
	sign := 1.0
	if degrees < 0 || minutes < 0 || seconds < 0 {
		sign = -1
	}

	return sign * (math.Abs(degrees) + math.Abs(minutes)/60 + math.Abs(seconds)/3600)
}

// ToDecimalStrict is ToDecimal with domain checks: minutes and seconds must
// have a magnitude in [0, 60), and non-zero minutes and seconds must not
// carry opposite signs.
func ToDecimalStrict(degrees, minutes, seconds float64) (float64, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return 0, invalid("degrees", degrees, "not a finite number")
	}
	if !(math.Abs(minutes) < 60) {
		return 0, invalid("minutes", minutes, "must be within [0, 60)")
	}
	if !(math.Abs(seconds) < 60) {
		return 0, invalid("seconds", seconds, "must be within [0, 60)")
	}
	if minutes != 0 && seconds != 0 && (minutes < 0) != (seconds < 0) {
		return 0, invalid("angle", [3]float64{degrees, minutes, seconds}, "minutes and seconds have mixed signs")
	}

	return ToDecimal(degrees, minutes, seconds), nil
}

// ToDMS splits decimal degrees into degrees, minutes and seconds.
func ToDMS(angle float64) DMS {
	sign, total := splitSign(angle)
	seconds := math.Mod(total, 60)
	minutes := (total - seconds) / 60
	degrees := math.Floor(minutes / 60)
	minutes -= degrees * 60

	return DMS{
		Degrees: int(sign * degrees),
		Minutes: int(sign * minutes),
		Seconds: sign * seconds,
	}
}

// ToDM splits decimal degrees into degrees and fractional minutes.
func ToDM(angle float64) DM {
	dms := ToDMS(angle)
	return DM{
		Degrees: dms.Degrees,
		Minutes: float64(dms.Minutes) + dms.Seconds/60,
	}
}

// splitSign returns the sign of angle and its magnitude in arc seconds.
func splitSign(angle float64) (float64, float64) {
	sign := 1.0
	if angle < 0 {
		sign = -1
	}
	return sign, math.Abs(angle) * 3600
}
