package formats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/point"
)

// jsonMarker is one entry of a plain JSON marker list:
//
//	[{"name": "Home", "type": "house", "lat": 52.015, "lng": -0.221}]
type jsonMarker struct {
	Name string  `json:"name"`
	Type string  `json:"type,omitempty"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// DecodeJSON reads a JSON marker list keyed by name.
func DecodeJSON(r io.Reader) (*collection.Keyed[string, Marker], error) {
	var list []jsonMarker
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, err
	}

	c := collection.NewKeyed[string, Marker]()
	for i, m := range list {
		if m.Name == "" {
			return nil, &collection.DecodeError{Line: i + 1, Err: fmt.Errorf("missing name")}
		}
		p, err := point.New(m.Lat, m.Lng)
		if err != nil {
			return nil, &collection.DecodeError{Line: i + 1, Record: m.Name, Err: err}
		}

		var props map[string]any
		if m.Type != "" {
			props = map[string]any{"type": strings.ToLower(m.Type)}
		}
		if _, ok := c.Get(m.Name); ok {
			log.Warn().Str("name", m.Name).Int("entry", i+1).Msg("duplicate marker name, replacing earlier entry")
		}
		c.Set(m.Name, Marker{Point: p, Name: m.Name, Props: props})
	}
	return c, nil
}

// WriteJSON writes c as a JSON marker list in collection order.
func WriteJSON(w io.Writer, c *collection.Keyed[string, Marker]) error {
	list := make([]jsonMarker, 0, c.Len())
	for name, m := range c.All() {
		typ, _ := m.Props["type"].(string)
		list = append(list, jsonMarker{Name: name, Type: typ, Lat: m.Latitude(), Lng: m.Longitude()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
