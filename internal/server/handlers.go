// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/upoints/internal/formats"
	"github.com/woozymasta/upoints/internal/point"
)

// DistanceResponse is the body of /api/distance.
type DistanceResponse struct {
	From         point.Point `json:"from"`
	To           point.Point `json:"to"`
	Distance     float64     `json:"distance"`
	Bearing      float64     `json:"bearing"`
	FinalBearing float64     `json:"final_bearing"`
	Units        string      `json:"units"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleLocations serves every loaded marker as GeoJSON.
func (s *ServerContext) HandleLocations(w http.ResponseWriter, r *http.Request) {
	if match := r.Header.Get("If-None-Match"); match == s.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("ETag", s.etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.locations)
}

// HandleDistance answers /api/distance?from=<loc>&to=<loc>. Either end
// may be a marker name, a location string or a Maidenhead locator.
func (s *ServerContext) HandleDistance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := s.resolve(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("from: %w", err))
		return
	}
	to, err := s.resolve(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("to: %w", err))
		return
	}

	bearing, km := from.Inverse(to, s.Options...)
	writeJSON(w, http.StatusOK, DistanceResponse{
		From:         from,
		To:           to,
		Distance:     s.Units.FromKilometres(km),
		Bearing:      bearing,
		FinalBearing: from.FinalBearing(to),
		Units:        s.Units.String(),
	})
}

// HandleNear answers /api/near?location=<loc>&range=<distance> with the
// markers within range, in display units, as GeoJSON.
func (s *ServerContext) HandleNear(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ref, err := s.resolve(q.Get("location"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("location: %w", err))
		return
	}
	distance, err := strconv.ParseFloat(q.Get("range"), 64)
	if err != nil || distance < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("range: expected a non-negative number, got %q", q.Get("range")))
		return
	}

	near := s.Markers.WithinRange(ref, s.Units.ToKilometres(distance), s.Options...)

	w.Header().Set("Content-Type", "application/geo+json")
	if err := formats.WriteGeoJSON(w, formats.ToGeoJSON(near), true); err != nil {
		log.Error().Err(err).Msg("Failed to write GeoJSON")
	}
}

// resolve prefers a marker name over parsing the value as a location.
func (s *ServerContext) resolve(value string) (point.Point, error) {
	if value == "" {
		return point.Point{}, fmt.Errorf("missing value")
	}
	if m, ok := s.Markers.Get(value); ok {
		return m.Point, nil
	}
	return point.Parse(value)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
