package point

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/upoints/internal/geo"
)

var (
	home      = MustNew(52.015, -0.221)
	telford   = MustNew(52.6333, -2.5)
	nashville = MustNew(36.12, -86.67)
	lax       = MustNew(33.94, -118.4)
)

func TestNew(t *testing.T) {
	p, err := NewRadians(math.Pi/4, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 45, p.Latitude(), 1e-12)
	assert.InDelta(t, 90, p.Longitude(), 1e-12)

	p, err = NewDMS(geo.DMS{Degrees: 50, Minutes: 20, Seconds: 10}, geo.DMS{Degrees: -1, Minutes: -3, Seconds: -12})
	require.NoError(t, err)
	assert.InEpsilon(t, 50.336, p.Latitude(), 0.001)
	assert.InEpsilon(t, -1.053, p.Longitude(), 0.001)

	p, err = New(10, 190)
	require.NoError(t, err)
	assert.InDelta(t, -170, p.Longitude(), 1e-9)

	p, err = New(10, -540)
	require.NoError(t, err)
	assert.InDelta(t, 180, math.Abs(p.Longitude()), 1e-9)
}

func TestNewInvalid(t *testing.T) {
	var verr *geo.ValidationError

	_, err := New(-92, -0.221)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "latitude", verr.Field)

	_, err = New(math.NaN(), 0)
	assert.ErrorAs(t, err, &verr)

	_, err = New(0, math.Inf(1))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "longitude", verr.Field)

	assert.Panics(t, func() { MustNew(91, 0) })
}

func TestSetters(t *testing.T) {
	p := home
	require.NoError(t, p.SetLatitude(-45))
	assert.Equal(t, -45.0, p.Latitude())

	assert.Error(t, p.SetLatitude(90.5))
	assert.Equal(t, -45.0, p.Latitude(), "failed assignment must not change the point")

	require.NoError(t, p.SetLongitude(181))
	assert.InDelta(t, -179, p.Longitude(), 1e-9)
}

func TestParse(t *testing.T) {
	p, err := Parse("52.015;-0.221")
	require.NoError(t, err)
	assert.Equal(t, home, p)

	p, err = Parse("IO92va")
	require.NoError(t, err)
	assert.InDelta(t, 52.021, p.Latitude(), 0.001)
	assert.InDelta(t, -0.208, p.Longitude(), 0.001)

	_, err = Parse("somewhere")
	assert.Error(t, err)

	_, err = Parse("95;0")
	assert.Error(t, err)
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(home)
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude":52.015,"longitude":-0.221}`, string(data))

	var p Point
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, home, p)

	assert.Error(t, json.Unmarshal([]byte(`{"latitude":100,"longitude":0}`), &p))
}

func TestIsNear(t *testing.T) {
	assert.True(t, home.IsNear(home, 0))
	assert.False(t, home.IsNear(telford, 100))
	assert.True(t, home.IsNear(telford, 170))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{DD, "N52.015°; W000.221°"},
		{DM, "52°00.90′N, 000°13.26′W"},
		{DMS, "52°00′54″N, 000°13′15″W"},
		{Locator, "IO92"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got, err := home.Format(tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "S33.940°; E118.400°", MustNew(-33.94, 118.4).String())

	_, err := home.Format("fancy")
	assert.Error(t, err)

	_, err = ParseStyle("fancy")
	assert.Error(t, err)
	s, err := ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, DD, s)
}

func TestGridLocator(t *testing.T) {
	for precision, want := range map[geo.Precision]string{
		geo.Square:    "IO92",
		geo.Subsquare: "IO92va",
		geo.ExtSquare: "IO92va33",
	} {
		got, err := home.GridLocator(precision)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestISO6709(t *testing.T) {
	alt := 120.0
	s, err := home.ISO6709(&alt, geo.ISODecimal, geo.DefaultISOPrecision)
	require.NoError(t, err)
	assert.Equal(t, "+52.0150-000.2210+120/", s)
}
