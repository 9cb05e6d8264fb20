package point

import (
	"fmt"
	"strings"

	"github.com/woozymasta/upoints/internal/geo"
)

// Method selects the great-circle distance formula.
type Method int

const (
	// Haversine is well conditioned for small separations.
	Haversine Method = iota
	// LawOfCosines is the spherical law of cosines.
	LawOfCosines
)

func (m Method) String() string {
	if m == LawOfCosines {
		return "sloc"
	}
	return "haversine"
}

// ParseMethod maps "haversine" (or "") and "sloc" to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "", "haversine":
		return Haversine, nil
	case "sloc", "law-of-cosines":
		return LawOfCosines, nil
	}
	return 0, fmt.Errorf("unknown distance method %q", name)
}

type options struct {
	method Method
	radius float64
	zenith Zenith
}

// Option tunes Distance, Destination, the sun event queries and everything
// built on them. Options that do not apply to a call are ignored.
type Option func(*options)

// WithMethod selects the distance formula.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithRadius replaces geo.EarthRadius as the sphere radius in kilometres.
// Non-positive values are ignored.
func WithRadius(km float64) Option {
	return func(o *options) {
		if km > 0 {
			o.radius = km
		}
	}
}

// WithZenith selects the solar depression used by the sun event queries.
func WithZenith(z Zenith) Option {
	return func(o *options) { o.zenith = z }
}

func buildOptions(opts []Option) options {
	o := options{method: Haversine, radius: geo.EarthRadius, zenith: Official}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
