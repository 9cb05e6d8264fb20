package point

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/woozymasta/upoints/internal/geo"
)

// Zenith is the depression of the Sun's centre below the horizon, in
// degrees, that defines a rise or set event.
type Zenith float64

const (
	// Official sunrise and sunset: 34' of refraction plus 16' for the
	// Sun's upper limb.
	Official     Zenith = 50.0 / 60
	Civil        Zenith = 6
	Nautical     Zenith = 12
	Astronomical Zenith = 18
)

// ParseZenith maps official, civil, nautical and astronomical to a Zenith.
func ParseZenith(name string) (Zenith, error) {
	switch strings.ToLower(name) {
	case "", "official":
		return Official, nil
	case "civil":
		return Civil, nil
	case "nautical":
		return Nautical, nil
	case "astronomical":
		return Astronomical, nil
	}
	return 0, fmt.Errorf("unknown zenith %q", name)
}

func (z Zenith) String() string {
	switch z {
	case Official:
		return "official"
	case Civil:
		return "civil"
	case Nautical:
		return "nautical"
	case Astronomical:
		return "astronomical"
	}
	return fmt.Sprintf("%g°", float64(z))
}

// Events holds the sunrise and sunset of one day. A missing event (polar
// day or night) leaves the time zero and the matching flag false.
type Events struct {
	Sunrise    time.Time
	Sunset     time.Time
	HasSunrise bool
	HasSunset  bool
}

// Sunrise returns the UTC time of sunrise at c on the UTC calendar day of
// date. ok is false when the Sun does not rise that day.
func Sunrise(c Coordinate, date time.Time, opts ...Option) (t time.Time, ok bool) {
	return sunEvent(c, date, true, buildOptions(opts).zenith)
}

// Sunset is the setting counterpart of Sunrise.
func Sunset(c Coordinate, date time.Time, opts ...Option) (t time.Time, ok bool) {
	return sunEvent(c, date, false, buildOptions(opts).zenith)
}

// SunEvents computes both events for the day.
func SunEvents(c Coordinate, date time.Time, opts ...Option) Events {
	var e Events
	e.Sunrise, e.HasSunrise = Sunrise(c, date, opts...)
	e.Sunset, e.HasSunset = Sunset(c, date, opts...)
	return e
}

func (p Point) Sunrise(date time.Time, opts ...Option) (time.Time, bool) {
	return Sunrise(p, date, opts...)
}

func (p Point) Sunset(date time.Time, opts ...Option) (time.Time, bool) {
	return Sunset(p, date, opts...)
}

func (p Point) SunEvents(date time.Time, opts ...Option) Events {
	return SunEvents(p, date, opts...)
}

// sunEvent follows the Almanac for Computers (1990) sunrise algorithm. The
// resulting time of day is wrapped into [0h, 24h) on the requested date, so
// far from Greenwich an event may belong to the neighbouring local day.
func sunEvent(c Coordinate, date time.Time, rising bool, zenith Zenith) (time.Time, bool) {
	date = date.UTC()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	lat := geo.Radians(c.Latitude())
	lngHour := c.Longitude() / 15

	approx := 18.0
	if rising {
		approx = 6
	}
	t := float64(day.YearDay()) + (approx-lngHour)/24

	// Sun's mean anomaly and true longitude
	m := 0.9856*t - 3.289
	mr := geo.Radians(m)
	l := geo.Wrap360(m + 1.916*math.Sin(mr) + 0.020*math.Sin(2*mr) + 282.634)
	lr := geo.Radians(l)

	// right ascension, in the same quadrant as l, in hours
	ra := geo.Degrees(math.Atan(0.91764 * math.Tan(lr)))
	ra += math.Floor(l/90)*90 - math.Floor(ra/90)*90
	ra /= 15

	sinDec := 0.39782 * math.Sin(lr)
	cosDec := math.Cos(math.Asin(sinDec))

	cosH := (math.Cos(geo.Radians(90+float64(zenith))) - sinDec*math.Sin(lat)) / (cosDec * math.Cos(lat))
	if cosH > 1 || cosH < -1 || math.IsNaN(cosH) {
		return time.Time{}, false
	}

	h := geo.Degrees(math.Acos(cosH))
	if rising {
		h = 360 - h
	}
	h /= 15

	local := h + ra - 0.06571*t - 6.622
	ut := math.Mod(local-lngHour, 24)
	if ut < 0 {
		ut += 24
	}

	return day.Add(time.Duration(ut * float64(time.Hour))), true
}
