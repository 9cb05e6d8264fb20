package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"
	"gopkg.in/yaml.v3"
)

const sample = `
units: nm
format: dm
locations:
  home: 52.015;-0.221
  Telford: IO82vp
  Carol:
    latitude: 52.168
    longitude: 0.040
  club:
    locator: IO92va33
markers:
  source: https://example.com/markers.txt
  format: xearth
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "nm", cfg.Units)
	assert.Equal(t, "dm", cfg.Format)
	assert.Equal(t, Markers{Source: "https://example.com/markers.txt", Format: "xearth"}, cfg.Markers)

	named := cfg.NamedLocations()
	assert.Equal(t, []string{"Carol", "Telford", "club", "home"}, named.Keys())

	home, _ := named.Get("home")
	assert.Equal(t, point.MustNew(52.015, -0.221), home)

	carol, _ := named.Get("Carol")
	assert.Equal(t, point.MustNew(52.168, 0.040), carol)

	club, _ := named.Get("club")
	loc, err := club.GridLocator(geo.ExtSquare)
	require.NoError(t, err)
	assert.Equal(t, "IO92va33", loc)
}

func TestLoadErrors(t *testing.T) {
	for name, body := range map[string]string{
		"bad location":  "locations:\n  home: somewhere\n",
		"empty mapping": "locations:\n  home: {latitude: 52}\n",
		"sequence":      "locations:\n  home: [52, 0]\n",
		"units":         "units: furlongs\n",
		"format":        "format: utm\n",
		"method":        "method: vincenty\n",
		"zenith":        "zenith: dusk\n",
		"body":          "body: Vulcan\n",
		"ellipsoid":     "ellipsoid: Hayford\n",
		"exclusive":     "radius: 6367\nbody: Mars\n",
		"negative":      "radius: -1\n",
		"markers":       "markers:\n  format: kml\n",
	} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.NamedLocations().Len())

	_, err = LoadOptional(writeConfig(t, "units: furlongs\n"))
	assert.Error(t, err)
}

func TestPointOptions(t *testing.T) {
	home := point.MustNew(52.015, -0.221)
	telford := point.MustNew(52.6333, -2.5)

	distance := func(cfg Config) float64 {
		t.Helper()
		opts, err := cfg.PointOptions()
		require.NoError(t, err)
		return home.Distance(telford, opts...)
	}

	earth := distance(Config{})
	assert.InDelta(t, home.Distance(telford), earth, 1e-9)
	assert.InDelta(t, earth*6367/geo.EarthRadius, distance(Config{Radius: 6367}), 1e-9)
	assert.InDelta(t, earth*3390/geo.EarthRadius, distance(Config{Body: "mars"}), 1e-9)

	cfg := Config{
		Ellipsoid: "WGS84",
		Locations: map[string]Location{"home": {home}, "telford": {telford}},
	}
	r := geo.CalcRadius((52.015+52.6333)/2, geo.WGS84)
	assert.InDelta(t, earth*r/geo.EarthRadius, distance(cfg), 1e-9)
}

func TestLocationYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Location{"home": {point.MustNew(52.015, -0.221)}})
	require.NoError(t, err)
	assert.Equal(t, "home: 52.015;-0.221\n", string(out))

	var back map[string]Location
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, point.MustNew(52.015, -0.221), back["home"].Point)
}
