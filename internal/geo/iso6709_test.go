package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestFromISO6709(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		lat, lon float64
		alt      *float64
	}{
		{"Atlantic Ocean", "+00-025/", 0, -25, nil},
		{"France", "+46+002/", 46, 2, nil},
		{"Paris", "+4852+00220/", 48.86666666666667, 2.3333333333333335, nil},
		{"Eiffel Tower", "+48.8577+002.295/", 48.8577, 2.295, nil},
		{"Mount Everest", "+27.5916+086.5640+8850/", 27.5916, 86.564, ptr(8850)},
		{"North Pole", "+90+000/", 90, 0, nil},
		{"South Pole", "-90+000+2800/", -90, 0, ptr(2800)},
		{"New York City", "+40.75-074.00/", 40.75, -74, nil},
		{"Statue of Liberty", "+40.6894-074.0447/", 40.6894, -74.0447, nil},
		{"Mount Fuji", "+352139+1384339+3776/", 35.36083333333333, 138.7275, ptr(3776)},
		{"Tokyo Tower", "+35.658632+139.745411/", 35.658632, 139.745411, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, alt, err := FromISO6709(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, lat, 1e-9)
			assert.InDelta(t, tt.lon, lon, 1e-9)
			if tt.alt == nil {
				assert.Nil(t, alt)
			} else {
				require.NotNil(t, alt)
				assert.Equal(t, *tt.alt, *alt)
			}
		})
	}
}

func TestFromISO6709Errors(t *testing.T) {
	for _, in := range []string{
		"+35.658632+1/",
		"+35.658632+139.745411",
		"35.658632+139.745411/",
		"+95+000/",
		"+00+190/",
		"",
	} {
		t.Run(in, func(t *testing.T) {
			_, _, _, err := FromISO6709(in)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestToISO6709(t *testing.T) {
	tests := []struct {
		name      string
		lat, lon  float64
		alt       *float64
		format    ISOFormat
		precision int
		want      string
	}{
		{"Atlantic Ocean", 0, -25, nil, ISODegrees, DefaultISOPrecision, "+00-025/"},
		{"France", 46, 2, nil, ISODegrees, DefaultISOPrecision, "+46+002/"},
		{"Paris", 48.866666666666667, 2.3333333333333335, nil, ISODegreesMinutes, DefaultISOPrecision, "+4852+00220/"},
		{"Mount Everest", 27.5916, 86.563999999999993, ptr(8850), ISODecimal, DefaultISOPrecision, "+27.5916+086.5640+8850/"},
		{"South Pole", -90, 0, ptr(2800), ISODegrees, DefaultISOPrecision, "-90+000+2800/"},
		{"Statue of Liberty", 40.689399999999999, -74.044700000000006, nil, ISODecimal, DefaultISOPrecision, "+40.6894-074.0447/"},
		{"New York City", 40.75, -74, nil, ISODecimal, 2, "+40.75-074.00/"},
		{"Mount Fuji", 35.360833333333332, 138.72749999999999, ptr(3776), ISODegreesMinutesSeconds, DefaultISOPrecision, "+352139+1384339+3776/"},
		{"Tokyo Tower", 35.658631999999997, 139.74541099999999, nil, ISODecimal, 6, "+35.658632+139.745411/"},
		{"fractional altitude", 1, 2, ptr(10.5), ISODegrees, 0, "+01+002+10.500/"},
		{"zero altitude", 1, 2, ptr(0), ISODegrees, 0, "+01+002/"},
		{"whole decimal degrees", 52.015, -0.221, nil, ISODecimal, 0, "+52-000/"},
		{"whole decimal degrees south", -33.8675, 151.207, nil, ISODecimal, 0, "-34+151/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToISO6709(tt.lat, tt.lon, tt.alt, tt.format, tt.precision)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISO6709DecimalRoundTrip(t *testing.T) {
	for precision := range 7 {
		s, err := ToISO6709(-33.8675, 151.207, nil, ISODecimal, precision)
		require.NoError(t, err)

		lat, lon, _, err := FromISO6709(s)
		require.NoError(t, err, s)
		assert.InDelta(t, -33.8675, lat, 0.5, s)
		assert.InDelta(t, 151.207, lon, 0.5, s)
	}
}

func TestToISO6709Errors(t *testing.T) {
	_, err := ToISO6709(91, 0, nil, ISODecimal, 4)
	assert.Error(t, err)
	_, err = ToISO6709(0, 0, nil, ISOFormat(42), 4)
	assert.Error(t, err)
	_, err = ToISO6709(0, 0, nil, ISODecimal, -1)
	assert.Error(t, err)
}

func TestISO6709RoundTrip(t *testing.T) {
	s, err := ToISO6709(52.015, -0.221, ptr(120), ISODecimal, 6)
	require.NoError(t, err)

	lat, lon, alt, err := FromISO6709(s)
	require.NoError(t, err)
	assert.InDelta(t, 52.015, lat, 1e-6)
	assert.InDelta(t, -0.221, lon, 1e-6)
	require.NotNil(t, alt)
	assert.Equal(t, 120.0, *alt)
}
