package formats

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"
	"gopkg.in/yaml.v3"
)

func TestToGeoJSON(t *testing.T) {
	fc := ToGeoJSON(trigpoints(t))
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "FeatureCollection", fc.Type)

	f := fc.Features[1]
	assert.Equal(t, "Point", f.Geometry.Type)
	assert.Equal(t, []float64{-0.173443, 52.010585}, f.Geometry.Coordinates)
	assert.Equal(t, 501097, f.Properties["id"])
	assert.Equal(t, "Bygrave", f.Properties["name"])
	assert.Equal(t, 97.0, f.Properties["altitude"])
	assert.Equal(t, "trigpoint", f.Properties["type"])
}

func TestRouteToGeoJSON(t *testing.T) {
	route, err := ImportRoute(strings.NewReader("52.015;-0.221\n52.168;0.040\n52.855;0.657\n"))
	require.NoError(t, err)

	fc := RouteToGeoJSON(route, point.WithRadius(6367))
	require.Len(t, fc.Features, 4)
	assert.Equal(t, "LineString", fc.Features[0].Geometry.Type)
	assert.InDelta(t, 111.632, fc.Features[0].Properties["distance"], 0.01)
	assert.Equal(t, "3", fc.Features[3].Properties["name"])
}

func TestWriteGeoJSON(t *testing.T) {
	fc := ToGeoJSON(trigpoints(t))

	var pretty, small bytes.Buffer
	require.NoError(t, WriteGeoJSON(&pretty, fc, false))
	require.NoError(t, WriteGeoJSON(&small, fc, true))

	assert.Contains(t, pretty.String(), "\n  ")
	assert.NotContains(t, small.String(), "\n")
	assert.NotContains(t, small.String(), `": `)
	assert.Less(t, small.Len(), pretty.Len())

	var a, b any
	require.NoError(t, json.Unmarshal(pretty.Bytes(), &a))
	require.NoError(t, json.Unmarshal(small.Bytes(), &b))
	assert.Equal(t, a, b)

	c, err := DecodeGeoJSON(&small)
	require.NoError(t, err)
	assert.Equal(t, []string{"Broom Farm", "Bygrave", "Sish Lane"}, c.Keys())
	m, _ := c.Get("Sish Lane")
	assert.InDelta(t, 51.910886, m.Latitude(), 1e-9)
	assert.Equal(t, 136.0, m.Props["altitude"])
}

func TestDecodeGeoJSON(t *testing.T) {
	c, err := DecodeGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[-0.221,52.015]}},
		{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]}},
		{"type":"Feature","properties":{"name":"area"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, c.Keys())

	_, err = DecodeGeoJSON(strings.NewReader(`{"type":"Feature"}`))
	assert.Error(t, err)

	_, err = DecodeGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[0,95]}}]}`))
	assert.Error(t, err)

	_, err = DecodeGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[[0,1]]}}]}`))
	assert.Error(t, err)
}

func TestRouteGeoJSONRoundTrip(t *testing.T) {
	route, err := ImportRoute(strings.NewReader("52.015;-0.221\n52.168;0.040\n52.855;0.657\n"))
	require.NoError(t, err)

	for _, minified := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, WriteGeoJSON(&buf, RouteToGeoJSON(route), minified))

		c, err := DecodeGeoJSON(&buf)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, c.Keys())
		for i, want := range route.Values() {
			got, ok := c.Get(strconv.Itoa(i + 1))
			require.True(t, ok)
			assert.InDelta(t, want.Latitude(), got.Latitude(), 1e-9)
			assert.InDelta(t, want.Longitude(), got.Longitude(), 1e-9)
		}
	}
}

func TestKeyedGeoJSONRoundTrip(t *testing.T) {
	fc := ToGeoJSON(trigpoints(t))
	fc.Features = append(fc.Features, geo.NewLineFeature([][2]float64{{52, 0}, {53, 1}}, nil))

	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, fc, true))

	c, err := DecodeGeoJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Broom Farm", "Bygrave", "Sish Lane"}, c.Keys())

	m, _ := c.Get("Bygrave")
	assert.InDelta(t, 52.010585, m.Latitude(), 1e-9)
	assert.InDelta(t, -0.173443, m.Longitude(), 1e-9)
}

func TestDecodeGeoJSONDuplicateName(t *testing.T) {
	var logs bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&logs)
	t.Cleanup(func() { log.Logger = prev })

	c, err := DecodeGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"name":"Home"},"geometry":{"type":"Point","coordinates":[-0.221,52.015]}},
		{"type":"Feature","properties":{"name":"Home"},"geometry":{"type":"Point","coordinates":[0.040,52.168]}}
	]}`))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	m, _ := c.Get("Home")
	assert.InDelta(t, 52.168, m.Latitude(), 1e-9)
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"name":"Home"`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, ToGeoJSON(trigpoints(t))))

	var doc struct {
		Type     string `yaml:"type"`
		Features []struct {
			Properties map[string]any `yaml:"properties"`
		} `yaml:"features"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 3)
	assert.Equal(t, "Broom Farm", doc.Features[0].Properties["name"])
}
