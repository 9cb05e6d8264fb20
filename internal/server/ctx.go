package server

import (
	"bytes"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/formats"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"
)

// ServerContext holds dependencies for request handlers. It is built once
// at start-up and only read afterwards.
type ServerContext struct {
	Markers *collection.Keyed[string, formats.Marker]
	Units   geo.Units
	Options []point.Option

	// pre-rendered /api/locations body
	locations []byte
	etag      string
}

// NewServerContext renders the marker collection once so every
// /api/locations request can share the same body and ETag.
func NewServerContext(markers *collection.Keyed[string, formats.Marker], units geo.Units, opts ...point.Option) (*ServerContext, error) {
	log.Info().Int("markers", markers.Len()).Msg("Initializing server context")

	var buf bytes.Buffer
	if err := formats.WriteGeoJSON(&buf, formats.ToGeoJSON(markers), true); err != nil {
		return nil, err
	}

	h := fnv.New64a()
	_, _ = h.Write(buf.Bytes())

	markersLoaded.Set(float64(markers.Len()))

	log.Debug().
		Int("bytes", buf.Len()).
		Str("units", units.String()).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Markers:   markers,
		Units:     units,
		Options:   opts,
		locations: buf.Bytes(),
		etag:      fmt.Sprintf(`"%x"`, h.Sum64()),
	}, nil
}
