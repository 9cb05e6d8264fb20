package geo

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ISOFormat selects the layout of an ISO 6709 string.
type ISOFormat int

const (
	// ISODecimal writes fractional degrees, ±DD.DDDD±DDD.DDDD.
	ISODecimal ISOFormat = iota
	// ISODegrees writes whole degrees, ±DD±DDD.
	ISODegrees
	// ISODegreesMinutes writes ±DDMM±DDDMM.
	ISODegreesMinutes
	// ISODegreesMinutesSeconds writes ±DDMMSS±DDDMMSS.
	ISODegreesMinutesSeconds
)

// DefaultISOPrecision is the number of decimal places ISODecimal uses
// unless told otherwise.
const DefaultISOPrecision = 4

// Capture groups: 1=latitude, 2=longitude, 3=altitude (optional)
var iso6709Regex = regexp.MustCompile(`^([-+][\d.]+)([-+][\d.]+)([-+][\d.]+)?/$`)

// ToISO6709 produces an ISO 6709 location string terminated by "/". The
// altitude, when given and non-zero, is written as a signed integer if it
// is whole and with three decimals otherwise.
func ToISO6709(latitude, longitude float64, altitude *float64, format ISOFormat, precision int) (string, error) {
	if !(latitude >= -90 && latitude <= 90) {
		return "", invalid("latitude", latitude, "must be within [-90, 90]")
	}
	if !(longitude >= -180 && longitude <= 180) {
		return "", invalid("longitude", longitude, "must be within [-180, 180]")
	}
	if precision < 0 {
		return "", invalid("precision", precision, "must not be negative")
	}

	var b strings.Builder

	switch format {
	case ISODegrees:
		fmt.Fprintf(&b, "%+03d%+04d", int(latitude), int(longitude))
	case ISODecimal:
		// sign, degree digits and, with a fraction, the point
		latWidth, lonWidth := 3, 4
		if precision > 0 {
			latWidth, lonWidth = precision+4, precision+5
		}
		fmt.Fprintf(&b, "%+0*.*f%+0*.*f", latWidth, precision, latitude, lonWidth, precision, longitude)
	case ISODegreesMinutes:
		lat, lon := ToDM(latitude), ToDM(longitude)
		fmt.Fprintf(&b, "%s%02d%02d", signOf(latitude), abs(lat.Degrees), int(math.Abs(lat.Minutes)))
		fmt.Fprintf(&b, "%s%03d%02d", signOf(longitude), abs(lon.Degrees), int(math.Abs(lon.Minutes)))
	case ISODegreesMinutesSeconds:
		lat, lon := ToDMS(latitude), ToDMS(longitude)
		fmt.Fprintf(&b, "%s%02d%02d%02d", signOf(latitude), abs(lat.Degrees), abs(lat.Minutes), int(math.Abs(lat.Seconds)))
		fmt.Fprintf(&b, "%s%03d%02d%02d", signOf(longitude), abs(lon.Degrees), abs(lon.Minutes), int(math.Abs(lon.Seconds)))
	default:
		return "", invalid("format", int(format), "unknown ISO 6709 format")
	}

	if altitude != nil && *altitude != 0 {
		if *altitude == math.Trunc(*altitude) {
			fmt.Fprintf(&b, "%+d", int64(*altitude))
		} else {
			fmt.Fprintf(&b, "%+.3f", *altitude)
		}
	}

	b.WriteByte('/')
	return b.String(), nil
}

// FromISO6709 parses an ISO 6709 location string. Each axis may be given as
// degrees, degrees and minutes or degrees, minutes and seconds, optionally
// with a fractional part. The altitude is nil when absent.
func FromISO6709(s string) (latitude, longitude float64, altitude *float64, err error) {
	match := iso6709Regex.FindStringSubmatch(s)
	if match == nil {
		return 0, 0, nil, invalid("ISO 6709 string", s, "expected ±DD.D±DDD.D[±A]/")
	}

	latitude, err = parseISOAxis("latitude", match[1], 2)
	if err != nil {
		return 0, 0, nil, err
	}
	longitude, err = parseISOAxis("longitude", match[2], 3)
	if err != nil {
		return 0, 0, nil, err
	}

	if match[3] != "" {
		alt, err := strconv.ParseFloat(match[3], 64)
		if err != nil {
			return 0, 0, nil, invalid("altitude", match[3], err.Error())
		}
		altitude = &alt
	}

	if latitude < -90 || latitude > 90 {
		return 0, 0, nil, invalid("latitude", match[1], "must be within [-90, 90]")
	}
	if longitude < -180 || longitude > 180 {
		return 0, 0, nil, invalid("longitude", match[2], "must be within [-180, 180]")
	}

	return latitude, longitude, altitude, nil
}

// parseISOAxis decodes one signed axis value whose integer part holds
// width degree digits, optionally followed by two minute and two second
// digits.
func parseISOAxis(field, value string, width int) (float64, error) {
	head := len(strings.SplitN(value, ".", 2)[0]) - 1 // without sign
	sign := 1.0
	if value[0] == '-' {
		sign = -1
	}

	parse := func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, invalid(field, value, err.Error())
		}
		return v, nil
	}

	var degrees, minutes, seconds float64
	var err error
	switch head {
	case width:
		return parse(value)
	case width + 2:
		if degrees, err = parse(value[:width+1]); err != nil {
			return 0, err
		}
		if minutes, err = parse(value[width+1:]); err != nil {
			return 0, err
		}
	case width + 4:
		if degrees, err = parse(value[:width+1]); err != nil {
			return 0, err
		}
		if minutes, err = parse(value[width+1 : width+3]); err != nil {
			return 0, err
		}
		if seconds, err = parse(value[width+3:]); err != nil {
			return 0, err
		}
	default:
		return 0, invalid(field, value, "unexpected number of digits")
	}

	return degrees + sign*minutes/60 + sign*seconds/3600, nil
}

func signOf(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
