package geo

import (
	"strings"
)

// compassNames lists the 16 points of the compass clockwise from north.
var compassNames = [16]string{
	"North", "North-north-east", "North-east", "East-north-east",
	"East", "East-south-east", "South-east", "South-south-east",
	"South", "South-south-west", "South-west", "West-south-west",
	"West", "West-north-west", "North-west", "North-north-west",
}

// CompassName converts an angle to a direction name, splitting the compass
// into 4, 8 or 16 equal sectors centred on the named directions. With abbr
// set the initials are returned, e.g. "WNW" instead of "West-north-west".
func CompassName(angle float64, segments int, abbr bool) (string, error) {
	angle = Wrap360(angle)

	var idx int
	switch segments {
	case 4:
		idx = int((angle+45)/90) % 4 * 4
	case 8:
		idx = int((angle+22.5)/45) % 8 * 2
	case 16:
		idx = int((angle+11.25)/22.5) % 16
	default:
		return "", invalid("segments", segments, "must be 4, 8 or 16")
	}

	name := compassNames[idx]
	if !abbr {
		return name, nil
	}

	var b strings.Builder
	for _, word := range strings.Split(name, "-") {
		b.WriteString(strings.ToUpper(word[:1]))
	}
	return b.String(), nil
}

// BearingName returns the 16-point abbreviated name (N, NNE, NE, ...) for
// a bearing. Sector i covers [i*22.5-11.25, i*22.5+11.25).
func BearingName(angle float64) string {
	name, _ := CompassName(angle, 16, true)
	return name
}
