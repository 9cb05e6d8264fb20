package edist

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"
)

func named() *collection.Keyed[string, point.Point] {
	c := collection.NewKeyed[string, point.Point]()
	c.Set("home", point.MustNew(52.015, -0.221))
	return c
}

func printer(t *testing.T, args ...string) (*Printer, *strings.Builder) {
	t.Helper()
	if len(args) == 0 {
		args = []string{"home", "52.168;0.040", "52.855 N 0.657 E"}
	}
	locs, err := Resolve(args, named())
	require.NoError(t, err)

	var out strings.Builder
	return &Printer{
		Out:       &out,
		Locations: locs,
		Style:     point.DMS,
		Verbose:   true,
		Options:   []point.Option{point.WithRadius(6367)},
	}, &out
}

func lines(out *strings.Builder) []string {
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestResolve(t *testing.T) {
	locs, err := Resolve([]string{"home", "IO92va33", "52.855;0.657"}, named())
	require.NoError(t, err)
	assert.Equal(t, "home", locs.At(0).Name)
	assert.Equal(t, "2", locs.At(1).Name)
	assert.Equal(t, "3", locs.At(2).Name)

	_, err = Resolve([]string{"home", "work"}, named())
	var locErr *LocationError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, 1, locErr.Index)
	assert.Equal(t, `location 2 "work": `+locErr.Err.Error(), err.Error())

	_, err = Resolve([]string{"home"}, nil)
	assert.Error(t, err)
}

func TestDisplay(t *testing.T) {
	p, out := printer(t)
	require.NoError(t, p.Display(0))
	assert.Equal(t, []string{
		"Location home is 52°00′54″N, 000°13′15″W",
		"Location 2 is 52°10′04″N, 000°02′24″E",
		"Location 3 is 52°51′18″N, 000°39′25″E",
	}, lines(out))

	p, out = printer(t)
	p.Verbose = false
	p.Style = point.DM
	require.NoError(t, p.Display(0))
	assert.Equal(t, "52°00.90′N, 000°13.26′W", lines(out)[0])

	p, out = printer(t)
	require.NoError(t, p.Display(geo.ExtSquare))
	assert.Equal(t, "Location home is IO92va33", lines(out)[0])
}

func TestDistance(t *testing.T) {
	p, out := printer(t)
	require.NoError(t, p.Distance())
	assert.Equal(t, []string{
		"Location home to 2 is 24 kilometres",
		"Location 2 to 3 is 87 kilometres",
		"Total distance is 111 kilometres",
	}, lines(out))

	p, out = printer(t)
	p.Units = geo.NauticalMiles
	require.NoError(t, p.Distance())
	assert.Equal(t, "Location home to 2 is 13 nautical miles", lines(out)[0])
	assert.Equal(t, "Total distance is 60 nautical miles", lines(out)[2])

	p, out = printer(t)
	p.Verbose = false
	require.NoError(t, p.Distance())
	assert.Equal(t, []string{"111.632"}, lines(out))

	p, out = printer(t, "home", "IO92va33")
	require.NoError(t, p.Distance())
	assert.Len(t, lines(out), 1)

	p, _ = printer(t, "home")
	assert.ErrorIs(t, p.Distance(), ErrNeedTwo)
}

func TestBearing(t *testing.T) {
	p, out := printer(t)
	require.NoError(t, p.Bearing(false, false))
	assert.Equal(t, []string{
		"Location home to 2 is 46°",
		"Location 2 to 3 is 28°",
	}, lines(out))

	p, out = printer(t)
	require.NoError(t, p.Bearing(true, false))
	assert.Equal(t, []string{
		"Final bearing from location home to 2 is 46°",
		"Final bearing from location 2 to 3 is 28°",
	}, lines(out))

	p, out = printer(t)
	p.Verbose = false
	require.NoError(t, p.Bearing(false, true))
	assert.Equal(t, []string{"North-east", "North-east"}, lines(out))
}

func TestRange(t *testing.T) {
	p, out := printer(t)
	require.NoError(t, p.Range(50))
	assert.Equal(t, []string{
		"Location 2 is within 50 kilometres of location home",
		"Location 3 is not within 50 kilometres of location home",
	}, lines(out))

	p, out = printer(t)
	p.Verbose = false
	p.Units = geo.StatuteMiles
	require.NoError(t, p.Range(70))
	assert.Equal(t, []string{"true", "true"}, lines(out))

	p, _ = printer(t, "home")
	assert.ErrorIs(t, p.Range(10), ErrNeedTwo)
}

func TestDestination(t *testing.T) {
	p, out := printer(t)
	require.NoError(t, p.Destination(20, 45, geo.Subsquare))
	assert.Equal(t, []string{
		"Destination from location home is IO92xd",
		"Destination from location 2 is JO02ch",
		"Destination from location 3 is JO02kx",
	}, lines(out))

	p, out = printer(t, "home")
	p.Style = point.DD
	p.Verbose = false
	require.NoError(t, p.Destination(20, 45, 0))
	assert.Equal(t, []string{"N52.142°; W000.014°"}, lines(out))
}

func TestSunEvents(t *testing.T) {
	date := time.Date(2008, 5, 2, 0, 0, 0, 0, time.UTC)

	p, out := printer(t)
	p.SunEvents(date, true)
	assert.Equal(t, "Sunrise at 04:28 UTC in location home", lines(out)[0])

	p, out = printer(t)
	p.Verbose = false
	p.SunEvents(date, false)
	assert.Equal(t, "19:27", lines(out)[2])

	p, out = printer(t, "89;0")
	p.SunEvents(time.Date(2007, 12, 21, 0, 0, 0, 0, time.UTC), true)
	assert.Equal(t, []string{"The sun doesn't rise at location 1 on this date"}, lines(out))

	p, out = printer(t, "89;0")
	p.Verbose = false
	p.SunEvents(time.Date(2007, 12, 21, 0, 0, 0, 0, time.UTC), false)
	assert.Equal(t, []string{"-"}, lines(out))
}

func TestFlightPlan(t *testing.T) {
	p, out := printer(t)
	require.NoError(t, p.FlightPlan(100, Minutes))
	assert.Equal(t, []string{
		"WAYPOINT,BEARING[°],DISTANCE[km],ELAPSED_TIME[m],LATITUDE[d.dd],LONGITUDE[d.dd]",
		"home,,,,52.015000,-0.221000",
		"2,46,24.6,14.8,52.168000,0.040000",
		"3,28,87.0,52.2,52.855000,0.657000",
		"-- OVERALL --,,111.6,67.0,,",
		"-- DIRECT --,32,110.7,66.4,,",
	}, lines(out))

	p, out = printer(t)
	require.NoError(t, p.FlightPlan(0, ""))
	got := lines(out)
	assert.Equal(t, "2,46,24.6,,52.168000,0.040000", got[2])
	assert.Equal(t, "-- OVERALL --#,,111.6,,,", got[4])

	p, _ = printer(t)
	assert.Error(t, p.FlightPlan(100, "d"))

	p, _ = printer(t, "home")
	assert.ErrorIs(t, p.FlightPlan(100, Hours), ErrNeedTwo)
}

func TestReadCSV(t *testing.T) {
	named, order, err := ReadCSV(strings.NewReader(
		"# gpsbabel\n52.015, -0.221, Home\n52.168, 0.040, Carol\n52.015, -0.221, Home\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"01:Home", "02:Carol", "03:Home"}, order)
	assert.Equal(t, 3, named.Len())

	locs, err := Resolve(order, named)
	require.NoError(t, err)
	assert.Equal(t, "02:Carol", locs.At(1).Name)

	_, _, err = ReadCSV(strings.NewReader("52.015, west, Home\n"))
	var decodeErr *collection.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 1, decodeErr.Line)

	_, _, err = ReadCSV(strings.NewReader("52.015, -0.221\n"))
	assert.Error(t, err)
}
