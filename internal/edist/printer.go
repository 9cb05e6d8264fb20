package edist

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"
)

// Printer writes command results for a list of locations. Verbose output
// is in sentences, quiet output is one bare value per line.
type Printer struct {
	Out       io.Writer
	Locations *collection.Ordered[Location]
	Style     point.Style
	Units     geo.Units
	Verbose   bool
	Options   []point.Option
}

// TimeUnit selects how flight plan elapsed times are shown.
type TimeUnit string

const (
	Hours   TimeUnit = "h"
	Minutes TimeUnit = "m"
	Seconds TimeUnit = "s"
)

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) format(c point.Coordinate, locator geo.Precision) (string, error) {
	if locator != 0 {
		return geo.ToGridLocator(c.Latitude(), c.Longitude(), locator)
	}
	return point.Format(c, p.Style)
}

// Display prints each location, as a Maidenhead locator when locator is
// non-zero.
func (p *Printer) Display(locator geo.Precision) error {
	for _, loc := range p.Locations.All() {
		out, err := p.format(loc, locator)
		if err != nil {
			return err
		}
		if p.Verbose {
			p.printf("Location %s is %s", loc.Name, out)
		} else {
			p.printf("%s", out)
		}
	}
	return nil
}

// Distance prints the length of each leg and, for more than one leg, the
// total.
func (p *Printer) Distance() error {
	legs, err := p.legs()
	if err != nil {
		return err
	}

	var total float64
	for _, leg := range legs {
		d := p.Units.FromKilometres(leg.Distance)
		total += d
		if p.Verbose {
			p.printf("Location %s to %s is %d %s", p.name(leg.From), p.name(leg.To), int(d), p.Units.Label())
		}
	}

	switch {
	case !p.Verbose:
		p.printf("%s", strconv.FormatFloat(total, 'f', 3, 64))
	case len(legs) > 1:
		p.printf("Total distance is %d %s", int(total), p.Units.Label())
	}
	return nil
}

// Bearing prints the initial bearing of each leg, or the final bearing
// when final is set. With named set bearings are shown as 8 point compass
// names.
func (p *Printer) Bearing(final, named bool) error {
	legs, err := p.legs()
	if err != nil {
		return err
	}

	for _, leg := range legs {
		angle := leg.Bearing
		if final {
			angle = leg.FinalBearing
		}

		out := fmt.Sprintf("%d°", int(angle))
		if named {
			if out, err = geo.CompassName(angle, 8, false); err != nil {
				return err
			}
		}

		switch {
		case !p.Verbose:
			p.printf("%s", out)
		case final:
			p.printf("Final bearing from location %s to %s is %s", p.name(leg.From), p.name(leg.To), out)
		default:
			p.printf("Location %s to %s is %s", p.name(leg.From), p.name(leg.To), out)
		}
	}
	return nil
}

// Range reports whether each location is within distance, in display
// units, of the first.
func (p *Printer) Range(distance float64) error {
	if p.Locations.Len() < 2 {
		return fmt.Errorf("range: %w", ErrNeedTwo)
	}

	first := p.Locations.At(0)
	km := p.Units.ToKilometres(distance)
	for i, loc := range p.Locations.All() {
		if i == 0 {
			continue
		}

		in := first.IsNear(loc, km, p.Options...)
		if !p.Verbose {
			p.printf("%t", in)
			continue
		}

		not := ""
		if !in {
			not = "not "
		}
		p.printf("Location %s is %swithin %d %s of location %s",
			loc.Name, not, int(distance), p.Units.Label(), first.Name)
	}
	return nil
}

// Destination prints where travelling distance, in display units, on the
// given bearing from each location ends up.
func (p *Printer) Destination(distance, bearing float64, locator geo.Precision) error {
	dests := p.Locations.Destinations(bearing, p.Units.ToKilometres(distance), p.Options...)
	for i, dest := range dests {
		out, err := p.format(dest, locator)
		if err != nil {
			return err
		}
		if p.Verbose {
			p.printf("Destination from location %s is %s", p.name(i), out)
		} else {
			p.printf("%s", out)
		}
	}
	return nil
}

// SunEvents prints the sunrise, or sunset when rising is false, for each
// location on date in UTC.
func (p *Printer) SunEvents(date time.Time, rising bool) {
	mode, verb := "Sunset", "set"
	if rising {
		mode, verb = "Sunrise", "rise"
	}

	for i, ev := range p.Locations.SunEvents(date, p.Options...) {
		t, ok := ev.Sunset, ev.HasSunset
		if rising {
			t, ok = ev.Sunrise, ev.HasSunrise
		}

		switch {
		case !p.Verbose && ok:
			p.printf("%s", t.Format("15:04"))
		case !p.Verbose:
			p.printf("-")
		case ok:
			p.printf("%s at %s UTC in location %s", mode, t.Format("15:04"), p.name(i))
		default:
			p.printf("The sun doesn't %s at location %s on this date", verb, p.name(i))
		}
	}
}

// FlightPlan prints a CSV flight plan of the journey. Elapsed times are
// computed from speed, in display units per hour, and left empty when
// speed is zero.
func (p *Printer) FlightPlan(speed float64, unit TimeUnit) error {
	legs, err := p.legs()
	if err != nil {
		return fmt.Errorf("flight plan: %w", err)
	}

	scale := 1.0
	switch unit {
	case Hours, "":
		unit = Hours
	case Minutes:
		scale = 60
	case Seconds:
		scale = 3600
	default:
		return fmt.Errorf("unknown time unit %q", unit)
	}

	elapsed := func(d float64) string {
		if speed == 0 {
			return ""
		}
		return strconv.FormatFloat(d/speed*scale, 'f', 1, 64)
	}

	if p.Verbose {
		p.printf("WAYPOINT,BEARING[°],DISTANCE[%s],ELAPSED_TIME[%s],LATITUDE[d.dd],LONGITUDE[d.dd]", p.Units, unit)
	}

	first := p.Locations.At(0)
	p.printf("%s,,,,%f,%f", first.Name, first.Latitude(), first.Longitude())

	var overall float64
	for _, leg := range legs {
		loc := p.Locations.At(leg.To)
		d := p.Units.FromKilometres(leg.Distance)
		overall += d
		p.printf("%s,%d,%.1f,%s,%f,%f", loc.Name, int(leg.Bearing), d, elapsed(d), loc.Latitude(), loc.Longitude())
	}

	if p.Verbose {
		last := p.Locations.At(p.Locations.Len() - 1)
		bearing, km := point.Inverse(first, last, p.Options...)
		direct := p.Units.FromKilometres(km)

		marker := ""
		if speed == 0 {
			marker = "#"
		}
		p.printf("-- OVERALL --%s,,%.1f,%s,,", marker, overall, elapsed(overall))
		p.printf("-- DIRECT --%s,%d,%.1f,%s,,", marker, int(bearing), direct, elapsed(direct))
	}
	return nil
}

func (p *Printer) legs() ([]collection.Leg, error) {
	legs, err := p.Locations.Legs(p.Options...)
	if err != nil {
		return nil, ErrNeedTwo
	}
	return legs, nil
}

func (p *Printer) name(i int) string {
	return p.Locations.At(i).Name
}
