package geo

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLocation reads a latitude/longitude pair from free text. Accepted
// forms include:
//
//	52.015;-0.221
//	52.015,-0.221
//	52.015 -0.221
//	52.015N 0.221W
//	52.015 N 0.221 W
//	52d00m54s N 0d13m15s W
//	52d0'54" N 000d13'15" W
//	52°0′54″ N 000°13′15″ W
func ParseLocation(location string) (latitude, longitude float64, err error) {
	location = strings.TrimSpace(location)

	for _, sep := range []string{";", ",", " "} {
		chunks := strings.Split(location, sep)
		if sep == " " {
			chunks = strings.Fields(location)
		}

		switch len(chunks) {
		case 2:
			if latitude, err = parseHemisphereValue("latitude", chunks[0], 'N', 'S'); err != nil {
				return 0, 0, err
			}
			if longitude, err = parseHemisphereValue("longitude", chunks[1], 'E', 'W'); err != nil {
				return 0, 0, err
			}
			return latitude, longitude, nil
		case 4:
			if latitude, err = parseSplitValue("latitude", chunks[0], chunks[1], "N", "S"); err != nil {
				return 0, 0, err
			}
			if longitude, err = parseSplitValue("longitude", chunks[2], chunks[3], "E", "W"); err != nil {
				return 0, 0, err
			}
			return latitude, longitude, nil
		}
	}

	return 0, 0, invalid("location", location, "unrecognised location format")
}

// parseHemisphereValue handles "52.015", "52.015N" and "0.221W".
func parseHemisphereValue(field, s string, positive, negative byte) (float64, error) {
	s = strings.TrimSpace(s)
	sign := 1.0
	if n := len(s); n > 0 {
		switch s[n-1] {
		case positive:
			s = s[:n-1]
		case negative:
			s = s[:n-1]
			sign = -1
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid(field, s, "not a number")
	}
	return sign * v, nil
}

// parseSplitValue handles a value followed by a separate hemisphere letter,
// where the value is either decimal degrees or a DMS string.
func parseSplitValue(field, value, hemisphere, positive, negative string) (float64, error) {
	if hemisphere != positive && hemisphere != negative {
		return 0, invalid(field, value+" "+hemisphere, "unknown hemisphere "+hemisphere)
	}

	if strings.HasSuffix(value, "s") || strings.HasSuffix(value, `"`) || strings.HasSuffix(value, "″") {
		return splitDMS(field, value, hemisphere == negative)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, invalid(field, value, "not a number")
	}
	if hemisphere == negative {
		v = -v
	}
	return v, nil
}

// splitDMS reads the three numeric runs of strings such as 52d00m54s or
// 52°0′54″, ignoring whatever separates them.
func splitDMS(field, value string, negative bool) (float64, error) {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	if len(parts) != 3 {
		return 0, invalid(field, value, "expected degrees, minutes and seconds")
	}

	var dms [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, invalid(field, value, "not a number")
		}
		if negative {
			v = -v
		}
		dms[i] = v
	}

	return ToDecimal(dms[0], dms[1], dms[2]), nil
}
