package point

import (
	"fmt"
	"math"
	"strconv"

	"github.com/woozymasta/upoints/internal/geo"
)

// Style is a human readable location layout.
type Style string

const (
	// DD is hemisphere-prefixed decimal degrees, N52.015°; W000.221°.
	DD Style = "dd"
	// DM is degrees and decimal minutes, 52°00.90′N, 000°13.26′W.
	DM Style = "dm"
	// DMS is degrees, minutes and seconds, 52°00′54″N, 000°13′15″W.
	DMS Style = "dms"
	// Locator is the four character Maidenhead square, IO92.
	Locator Style = "locator"
)

// ParseStyle validates a style name. The empty string selects DD.
func ParseStyle(name string) (Style, error) {
	switch s := Style(name); s {
	case "":
		return DD, nil
	case DD, DM, DMS, Locator:
		return s, nil
	}
	return "", fmt.Errorf("unknown format style %q", name)
}

// Format renders c in the given style.
func Format(c Coordinate, style Style) (string, error) {
	lat, lon := c.Latitude(), c.Longitude()

	switch style {
	case DD, "":
		return fmt.Sprintf("%s%06.3f°; %s%07.3f°",
			hemisphere(lat, "N", "S"), math.Abs(lat),
			hemisphere(lon, "E", "W"), math.Abs(lon)), nil
	case DM:
		la, lo := geo.ToDM(lat), geo.ToDM(lon)
		return fmt.Sprintf("%02d°%05.2f′%s, %03d°%05.2f′%s",
			absInt(la.Degrees), math.Abs(la.Minutes), hemisphere(lat, "N", "S"),
			absInt(lo.Degrees), math.Abs(lo.Minutes), hemisphere(lon, "E", "W")), nil
	case DMS:
		la, lo := geo.ToDMS(lat), geo.ToDMS(lon)
		return fmt.Sprintf("%02d°%02d′%02d″%s, %03d°%02d′%02d″%s",
			absInt(la.Degrees), absInt(la.Minutes), int(math.Abs(la.Seconds)), hemisphere(lat, "N", "S"),
			absInt(lo.Degrees), absInt(lo.Minutes), int(math.Abs(lo.Seconds)), hemisphere(lon, "E", "W")), nil
	case Locator:
		return geo.ToGridLocator(lat, lon, geo.Square)
	}
	return "", fmt.Errorf("unknown format style %q", style)
}

func (p Point) Format(style Style) (string, error) {
	return Format(p, style)
}

func (p Point) String() string {
	s, _ := Format(p, DD)
	return s
}

// GridLocator encodes p as a Maidenhead locator.
func (p Point) GridLocator(precision geo.Precision) (string, error) {
	return geo.ToGridLocator(p.lat, p.lon, precision)
}

// ISO6709 encodes p as an ISO 6709 string. altitude may be nil.
func (p Point) ISO6709(altitude *float64, format geo.ISOFormat, precision int) (string, error) {
	return geo.ToISO6709(p.lat, p.lon, altitude, format, precision)
}

func hemisphere(v float64, positive, negative string) string {
	if v < 0 {
		return negative
	}
	return positive
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
