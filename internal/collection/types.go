// Package collection holds groups of locations, either keyed by an
// identifier or ordered as a journey, and runs the point queries over a
// whole group at once.
package collection

import (
	"github.com/woozymasta/upoints/internal/point"
)

// Decoder turns one input record into a value for an Ordered collection.
type Decoder[V any] func(record string) (V, error)

// KeyedDecoder turns one input record into an entry for a Keyed collection.
type KeyedDecoder[K comparable, V any] func(record string) (K, V, error)

// Encoder renders one value as an output record.
type Encoder[V any] func(v V) (string, error)

// KeyedEncoder renders one keyed entry as an output record.
type KeyedEncoder[K comparable, V any] func(k K, v V) (string, error)

// Result pairs a batch query answer with the key (or index) of the member
// it was computed for.
type Result[K comparable, T any] struct {
	Key   K
	Value T
}

// Leg is one hop of a journey between consecutive members.
type Leg struct {
	From         int     `json:"from"`
	To           int     `json:"to"`
	Bearing      float64 `json:"bearing"`
	FinalBearing float64 `json:"final_bearing"`
	Distance     float64 `json:"distance"`
}

func legs[V point.Coordinate](points []V, opts ...point.Option) ([]Leg, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	out := make([]Leg, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		out = append(out, Leg{
			From:         i - 1,
			To:           i,
			Bearing:      point.Bearing(a, b),
			FinalBearing: point.FinalBearing(a, b),
			Distance:     point.Distance(a, b, opts...),
		})
	}
	return out, nil
}

func midpoints[V point.Coordinate](points []V) []point.Point {
	if len(points) < 2 {
		return nil
	}

	out := make([]point.Point, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, point.Midpoint(points[i-1], points[i]))
	}
	return out
}
