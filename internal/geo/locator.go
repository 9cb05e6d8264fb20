package geo

import (
	"strings"
	"unicode/utf8"
)

// Precision selects the length of a Maidenhead locator.
type Precision int

const (
	// Square is a 4 character locator such as IO92.
	Square Precision = 4
	// Subsquare is a 6 character locator such as IO92va.
	Subsquare Precision = 6
	// ExtSquare is an 8 character locator such as IO92va33.
	ExtSquare Precision = 8
)

// Maidenhead cell sizes in degrees.
const (
	lonField     = 20.0
	latField     = 10.0
	lonSquare    = lonField / 10
	latSquare    = latField / 10
	lonSubsquare = lonSquare / 24
	latSubsquare = latSquare / 24
	lonExtSquare = lonSubsquare / 10
	latExtSquare = latSubsquare / 10
)

// ParsePrecision maps the names square, subsquare and extsquare to a Precision.
func ParsePrecision(name string) (Precision, error) {
	switch strings.ToLower(name) {
	case "square":
		return Square, nil
	case "subsquare":
		return Subsquare, nil
	case "extsquare":
		return ExtSquare, nil
	}
	return 0, invalid("precision", name, "expected square, subsquare or extsquare")
}

func (p Precision) String() string {
	switch p {
	case Square:
		return "square"
	case Subsquare:
		return "subsquare"
	case ExtSquare:
		return "extsquare"
	}
	return "unknown"
}

// ToGridLocator encodes a position as a Maidenhead locator. Fields are
// written in upper case and subsquares in lower case.
func ToGridLocator(latitude, longitude float64, precision Precision) (string, error) {
	if precision != Square && precision != Subsquare && precision != ExtSquare {
		return "", invalid("precision", int(precision), "expected 4, 6 or 8 characters")
	}
	if !(latitude >= -90 && latitude <= 90) {
		return "", invalid("latitude", latitude, "must be within [-90, 90]")
	}
	if !(longitude >= -180 && longitude <= 180) {
		return "", invalid("longitude", longitude, "must be within [-180, 180]")
	}

	lat := latitude + 90
	lon := longitude + 180

	var b strings.Builder
	b.Grow(int(precision))

	var n int
	n, lon = cell(lon, lonField, 18)
	b.WriteByte(byte('A' + n))
	n, lat = cell(lat, latField, 18)
	b.WriteByte(byte('A' + n))

	n, lon = cell(lon, lonSquare, 10)
	b.WriteByte(byte('0' + n))
	n, lat = cell(lat, latSquare, 10)
	b.WriteByte(byte('0' + n))

	if precision >= Subsquare {
		n, lon = cell(lon, lonSubsquare, 24)
		b.WriteByte(byte('a' + n))
		n, lat = cell(lat, latSubsquare, 24)
		b.WriteByte(byte('a' + n))
	}

	if precision == ExtSquare {
		n, _ = cell(lon, lonExtSquare, 10)
		b.WriteByte(byte('0' + n))
		n, _ = cell(lat, latExtSquare, 10)
		b.WriteByte(byte('0' + n))
	}

	return b.String(), nil
}

// cell returns the index of the cell of the given size containing v and
// the remainder of v within it. The index is clamped to count-1 so the
// upper edges (90N, 180E) stay inside the alphabet.
func cell(v, size float64, count int) (int, float64) {
	n := int(v / size)
	if n >= count {
		n = count - 1
	}
	if n < 0 {
		n = 0
	}
	return n, v - float64(n)*size
}

// FromGridLocator decodes a 4, 6 or 8 character Maidenhead locator. Case is
// ignored. Four and six character locators decode to the centre of their
// first (south-west) subsquare, eight character locators to the centre of
// the extended square.
func FromGridLocator(locator string) (latitude, longitude float64, err error) {
	if n := len(locator); n != 4 && n != 6 && n != 8 {
		return 0, 0, invalid("locator", locator, "must be 4, 6 or 8 characters long")
	}
	for i := 0; i < len(locator); i++ {
		if locator[i] >= utf8.RuneSelf {
			return 0, 0, invalid("locator", locator, "non-ASCII character")
		}
	}

	upper := strings.ToUpper(locator)
	lower := strings.ToLower(locator)

	digits := make([]int, len(locator))
	for i := range locator {
		var (
			v     int
			valid bool
		)
		switch i {
		case 0, 1:
			v = int(upper[i]) - 'A'
			valid = v >= 0 && v < 18
		case 4, 5:
			v = int(lower[i]) - 'a'
			valid = v >= 0 && v < 24
		default:
			v = int(locator[i]) - '0'
			valid = v >= 0 && v < 10
		}
		if !valid {
			return 0, 0, invalid("locator", locator, "character "+string(locator[i])+" out of range")
		}
		digits[i] = v
	}

	longitude = lonField*float64(digits[0]) + lonSquare*float64(digits[2])
	latitude = latField*float64(digits[1]) + latSquare*float64(digits[3])

	if len(digits) >= 6 {
		longitude += lonSubsquare * float64(digits[4])
		latitude += latSubsquare * float64(digits[5])
	}

	if len(digits) == 8 {
		longitude += lonExtSquare*float64(digits[6]) + lonExtSquare/2
		latitude += latExtSquare*float64(digits[7]) + latExtSquare/2
	} else {
		longitude += lonExtSquare * 5
		latitude += latExtSquare * 5
	}

	return latitude - 90, longitude - 180, nil
}
