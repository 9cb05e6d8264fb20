package point

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(t *testing.T, ts time.Time, ok bool) string {
	t.Helper()
	require.True(t, ok)
	return ts.Format("15:04")
}

func TestSunEvents(t *testing.T) {
	day := date(2007, 6, 15)
	tests := []struct {
		name            string
		p               Point
		sunrise, sunset string
	}{
		{"home", home, "03:40", "20:22"},
		{"telford", telford, "03:45", "20:35"},
		{"nashville", nashville, "10:29", "01:05"},
		{"lax", lax, "12:41", "03:06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rise, ok := tt.p.Sunrise(day)
			assert.Equal(t, tt.sunrise, clock(t, rise, ok))
			set, ok := tt.p.Sunset(day)
			assert.Equal(t, tt.sunset, clock(t, set, ok))

			e := tt.p.SunEvents(day)
			assert.True(t, e.HasSunrise)
			assert.True(t, e.HasSunset)
			assert.Equal(t, rise, e.Sunrise)
			assert.Equal(t, set, e.Sunset)

			y, m, d := e.Sunset.Date()
			assert.Equal(t, []int{2007, 6, 15}, []int{y, int(m), d})
		})
	}
}

func TestSunriseDates(t *testing.T) {
	for day, want := range map[time.Time]string{
		date(1993, 12, 11): "07:58",
		date(2007, 2, 21):  "07:04",
		date(2007, 1, 21):  "07:56",
	} {
		rise, ok := home.Sunrise(day)
		assert.Equal(t, want, clock(t, rise, ok), day.String())
	}

	set, ok := home.Sunset(date(1993, 12, 11))
	assert.Equal(t, "15:49", clock(t, set, ok))
}

func TestSunriseIgnoresTimeOfDay(t *testing.T) {
	local := time.Date(2007, 6, 15, 13, 30, 0, 0, time.FixedZone("BST", 3600))
	a, _ := home.Sunrise(local)
	b, _ := home.Sunrise(date(2007, 6, 15))
	assert.Equal(t, b, a)
}

func TestSunEventsTwilight(t *testing.T) {
	day := date(2007, 6, 15)
	jfk := MustNew(40.638611, -73.762222)
	haneda := MustNew(35.549999, 139.78333333)

	// civil and nautical twilight land within a minute of the
	// small-angle approximation tables
	within := func(t *testing.T, want string, got time.Time, ok bool) {
		t.Helper()
		require.True(t, ok)
		w, err := time.Parse("15:04", want)
		require.NoError(t, err)
		g, err := time.Parse("15:04", got.Format("15:04"))
		require.NoError(t, err)
		assert.InDelta(t, 0, g.Sub(w).Minutes(), 1, "want %s got %s", want, got.Format("15:04:05"))
	}

	e := home.SunEvents(day, WithZenith(Civil))
	within(t, "02:51", e.Sunrise, e.HasSunrise)
	within(t, "21:11", e.Sunset, e.HasSunset)

	e = jfk.SunEvents(day, WithZenith(Civil))
	within(t, "08:50", e.Sunrise, e.HasSunrise)
	within(t, "01:00", e.Sunset, e.HasSunset)

	e = haneda.SunEvents(day, WithZenith(Civil))
	within(t, "18:54", e.Sunrise, e.HasSunrise)
	within(t, "10:27", e.Sunset, e.HasSunset)

	e = home.SunEvents(day, WithZenith(Astronomical))
	assert.False(t, e.HasSunrise)
	assert.False(t, e.HasSunset)
	assert.True(t, e.Sunrise.IsZero())

	e = haneda.SunEvents(day, WithZenith(Nautical))
	assert.True(t, e.HasSunrise)
	assert.True(t, e.Sunrise.Before(haneda.SunEvents(day, WithZenith(Civil)).Sunrise))
}

func TestSunPolar(t *testing.T) {
	_, ok := MustNew(89, 0).Sunrise(date(2007, 12, 21))
	assert.False(t, ok)

	e := MustNew(89, 0).SunEvents(date(2007, 6, 21))
	assert.False(t, e.HasSunrise)
	assert.False(t, e.HasSunset)

	_, ok = MustNew(90, 0).Sunset(date(2007, 3, 1))
	assert.False(t, ok)
}

func TestParseZenith(t *testing.T) {
	z, err := ParseZenith("Civil")
	require.NoError(t, err)
	assert.Equal(t, Civil, z)

	z, err = ParseZenith("")
	require.NoError(t, err)
	assert.Equal(t, Official, z)
	assert.Equal(t, "official", z.String())

	_, err = ParseZenith("dusk")
	assert.Error(t, err)
}
