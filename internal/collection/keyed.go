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

// Keyed maps unique identifiers to locations. Iteration follows insertion
// order so batch results are deterministic. The zero value is ready to use.
type Keyed[K comparable, V point.Coordinate] struct {
	items map[K]V
	order []K
}

// NewKeyed returns an empty collection.
func NewKeyed[K comparable, V point.Coordinate]() *Keyed[K, V] {
	return &Keyed[K, V]{}
}

// Set adds or replaces the entry for k. A replaced entry keeps its position.
func (c *Keyed[K, V]) Set(k K, v V) {
	if c.items == nil {
		c.items = make(map[K]V)
	}
	if _, ok := c.items[k]; !ok {
		c.order = append(c.order, k)
	}
	c.items[k] = v
}

func (c *Keyed[K, V]) Get(k K) (V, bool) {
	v, ok := c.items[k]
	return v, ok
}

// Delete removes k and reports whether it was present.
func (c *Keyed[K, V]) Delete(k K) bool {
	if _, ok := c.items[k]; !ok {
		return false
	}
	delete(c.items, k)
	if i := slices.Index(c.order, k); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return true
}

func (c *Keyed[K, V]) Len() int {
	return len(c.order)
}

// Keys returns a copy of the keys in insertion order.
func (c *Keyed[K, V]) Keys() []K {
	return slices.Clone(c.order)
}

// All iterates over the entries in insertion order.
func (c *Keyed[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range c.order {
			if !yield(k, c.items[k]) {
				return
			}
		}
	}
}

// Import reads r line by line, adding one entry per decoded record. It
// stops at the first record decode rejects with anything but ErrSkip;
// entries decoded before that record stay in the collection.
func (c *Keyed[K, V]) Import(r io.Reader, decode KeyedDecoder[K, V]) error {
	return scanRecords(r, func(record string) error {
		k, v, err := decode(record)
		if err != nil {
			return err
		}
		c.Set(k, v)
		return nil
	})
}

// Export renders every entry with encode, in insertion order.
func (c *Keyed[K, V]) Export(encode KeyedEncoder[K, V]) ([]string, error) {
	out := make([]string, 0, c.Len())
	for k, v := range c.All() {
		line, err := encode(k, v)
		if err != nil {
			return nil, fmt.Errorf("encode %v: %w", k, err)
		}
		out = append(out, line)
	}
	return out, nil
}

// DistancesFrom returns the distance in kilometres from ref to each member.
func (c *Keyed[K, V]) DistancesFrom(ref point.Coordinate, opts ...point.Option) []Result[K, float64] {
	return mapKeyed(c, func(v V) float64 { return point.Distance(ref, v, opts...) })
}

// BearingsFrom returns the initial bearing from ref to each member.
func (c *Keyed[K, V]) BearingsFrom(ref point.Coordinate) []Result[K, float64] {
	return mapKeyed(c, func(v V) float64 { return point.Bearing(ref, v) })
}

// WithinRange returns the members no more than km kilometres from ref.
func (c *Keyed[K, V]) WithinRange(ref point.Coordinate, km float64, opts ...point.Option) *Keyed[K, V] {
	out := NewKeyed[K, V]()
	for k, v := range c.All() {
		if point.Distance(ref, v, opts...) <= km {
			out.Set(k, v)
		}
	}
	return out
}

// Destinations moves every member km kilometres along bearing.
func (c *Keyed[K, V]) Destinations(bearing, km float64, opts ...point.Option) []Result[K, point.Point] {
	return mapKeyed(c, func(v V) point.Point { return point.Destination(v, bearing, km, opts...) })
}

// SunEvents computes sunrise and sunset at every member.
func (c *Keyed[K, V]) SunEvents(date time.Time, opts ...point.Option) []Result[K, point.Events] {
	return mapKeyed(c, func(v V) point.Events { return point.SunEvents(v, date, opts...) })
}

// Locators encodes every member as a Maidenhead locator.
func (c *Keyed[K, V]) Locators(precision geo.Precision) ([]Result[K, string], error) {
	out := make([]Result[K, string], 0, c.Len())
	for k, v := range c.All() {
		loc, err := geo.ToGridLocator(v.Latitude(), v.Longitude(), precision)
		if err != nil {
			return nil, fmt.Errorf("locator for %v: %w", k, err)
		}
		out = append(out, Result[K, string]{Key: k, Value: loc})
	}
	return out, nil
}

// Legs treats the members named by order as a journey. Leg indices refer
// to positions in order.
func (c *Keyed[K, V]) Legs(order []K, opts ...point.Option) ([]Leg, error) {
	points, err := c.lookup(order)
	if err != nil {
		return nil, err
	}
	return legs(points, opts...)
}

// Midpoints returns the midpoint of each leg of the journey through order,
// nil when order names fewer than two members.
func (c *Keyed[K, V]) Midpoints(order []K) ([]point.Point, error) {
	points, err := c.lookup(order)
	if err != nil {
		return nil, err
	}
	return midpoints(points), nil
}

func (c *Keyed[K, V]) lookup(keys []K) ([]V, error) {
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		v, ok := c.items[k]
		if !ok {
			return nil, fmt.Errorf("%w %v", ErrUnknownKey, k)
		}
		out = append(out, v)
	}
	return out, nil
}

func mapKeyed[K comparable, V point.Coordinate, T any](c *Keyed[K, V], fn func(V) T) []Result[K, T] {
	out := make([]Result[K, T], 0, c.Len())
	for k, v := range c.All() {
		out = append(out, Result[K, T]{Key: k, Value: fn(v)})
	}
	return out
}
