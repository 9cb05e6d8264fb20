package collection

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"time"

	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"
)

// Ordered is a sequence of locations where order matters, such as a route
// or a track. The zero value is ready to use.
type Ordered[V point.Coordinate] struct {
	items []V
}

// NewOrdered returns a collection holding items in the given order.
func NewOrdered[V point.Coordinate](items ...V) *Ordered[V] {
	return &Ordered[V]{items: slices.Clone(items)}
}

func (c *Ordered[V]) Append(items ...V) {
	c.items = append(c.items, items...)
}

// At returns the i-th member. It panics when i is out of range.
func (c *Ordered[V]) At(i int) V {
	return c.items[i]
}

func (c *Ordered[V]) Len() int {
	return len(c.items)
}

// Values returns a copy of the members.
func (c *Ordered[V]) Values() []V {
	return slices.Clone(c.items)
}

// All iterates over the members with their indices.
func (c *Ordered[V]) All() iter.Seq2[int, V] {
	return slices.All(c.items)
}

// Import appends one member per decoded record of r. It stops at the first
// record decode rejects with anything but ErrSkip; members decoded before
// that record stay in the collection.
func (c *Ordered[V]) Import(r io.Reader, decode Decoder[V]) error {
	return scanRecords(r, func(record string) error {
		v, err := decode(record)
		if err != nil {
			return err
		}
		c.items = append(c.items, v)
		return nil
	})
}

// Export renders every member with encode.
func (c *Ordered[V]) Export(encode Encoder[V]) ([]string, error) {
	out := make([]string, 0, len(c.items))
	for i, v := range c.items {
		line, err := encode(v)
		if err != nil {
			return nil, fmt.Errorf("encode member %d: %w", i, err)
		}
		out = append(out, line)
	}
	return out, nil
}

// DistancesFrom returns the distance in kilometres from ref to each member,
// keyed by index.
func (c *Ordered[V]) DistancesFrom(ref point.Coordinate, opts ...point.Option) []Result[int, float64] {
	return mapOrdered(c, func(v V) float64 { return point.Distance(ref, v, opts...) })
}

// BearingsFrom returns the initial bearing from ref to each member.
func (c *Ordered[V]) BearingsFrom(ref point.Coordinate) []Result[int, float64] {
	return mapOrdered(c, func(v V) float64 { return point.Bearing(ref, v) })
}

// WithinRange returns the members no more than km kilometres from ref,
// preserving their relative order.
func (c *Ordered[V]) WithinRange(ref point.Coordinate, km float64, opts ...point.Option) *Ordered[V] {
	out := &Ordered[V]{}
	for _, v := range c.items {
		if point.Distance(ref, v, opts...) <= km {
			out.items = append(out.items, v)
		}
	}
	return out
}

// Destinations moves every member km kilometres along bearing.
func (c *Ordered[V]) Destinations(bearing, km float64, opts ...point.Option) []point.Point {
	out := make([]point.Point, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, point.Destination(v, bearing, km, opts...))
	}
	return out
}

// SunEvents computes sunrise and sunset at every member.
func (c *Ordered[V]) SunEvents(date time.Time, opts ...point.Option) []point.Events {
	out := make([]point.Events, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, point.SunEvents(v, date, opts...))
	}
	return out
}

// Locators encodes every member as a Maidenhead locator.
func (c *Ordered[V]) Locators(precision geo.Precision) ([]string, error) {
	out := make([]string, 0, len(c.items))
	for i, v := range c.items {
		loc, err := geo.ToGridLocator(v.Latitude(), v.Longitude(), precision)
		if err != nil {
			return nil, fmt.Errorf("locator for member %d: %w", i, err)
		}
		out = append(out, loc)
	}
	return out, nil
}

// Legs returns the bearing and distance of each hop between consecutive
// members.
func (c *Ordered[V]) Legs(opts ...point.Option) ([]Leg, error) {
	return legs(c.items, opts...)
}

// TotalDistance sums the leg distances. It is 0 for fewer than two members.
func (c *Ordered[V]) TotalDistance(opts ...point.Option) float64 {
	var total float64
	for i := 1; i < len(c.items); i++ {
		total += point.Distance(c.items[i-1], c.items[i], opts...)
	}
	return total
}

// Midpoints returns the great-circle midpoint of each leg.
func (c *Ordered[V]) Midpoints() []point.Point {
	return midpoints(c.items)
}

// Speeds returns the average speed in km/h over each leg of a timed track.
func Speeds[V point.TimedCoordinate](c *Ordered[V], opts ...point.Option) ([]float64, error) {
	if c.Len() < 2 {
		return nil, ErrTooFewPoints
	}

	out := make([]float64, 0, c.Len()-1)
	for i := 1; i < c.Len(); i++ {
		a, b := c.items[i-1], c.items[i]
		elapsed := b.Timestamp().Sub(a.Timestamp())
		if elapsed <= 0 {
			return nil, fmt.Errorf("%w: member %d at %s", ErrTimeOrder, i, b.Timestamp().Format(time.RFC3339))
		}
		out = append(out, point.Distance(a, b, opts...)/elapsed.Hours())
	}
	return out, nil
}

func mapOrdered[V point.Coordinate, T any](c *Ordered[V], fn func(V) T) []Result[int, T] {
	out := make([]Result[int, T], 0, len(c.items))
	for i, v := range c.items {
		out = append(out, Result[int, T]{Key: i, Value: fn(v)})
	}
	return out
}
