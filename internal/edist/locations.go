// Package edist implements the commands of the edist tool over an ordered
// list of locations taken from the command line.
package edist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/point"
)

// Location is a command line location. Name is the config entry it was
// looked up from, or its 1-based position on the command line.
type Location struct {
	point.Point
	Name string
}

// LocationError reports an argument that is neither a known name nor a
// parsable location.
type LocationError struct {
	Index int
	Value string
	Err   error
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("location %d %q: %v", e.Index+1, e.Value, e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// ErrNeedTwo is returned by commands that work on pairs of locations.
var ErrNeedTwo = errors.New("more than one location is required")

// Resolve turns arguments into locations, preferring entries of named over
// parsing the argument as a location string or locator.
func Resolve(args []string, named *collection.Keyed[string, point.Point]) (*collection.Ordered[Location], error) {
	out := collection.NewOrdered[Location]()
	for i, arg := range args {
		if named != nil {
			if p, ok := named.Get(arg); ok {
				out.Append(Location{Point: p, Name: arg})
				continue
			}
		}

		p, err := point.Parse(arg)
		if err != nil {
			return nil, &LocationError{Index: i, Value: arg, Err: err}
		}
		out.Append(Location{Point: p, Name: strconv.Itoa(i + 1)})
	}
	return out, nil
}

// ReadCSV reads a gpsbabel style "latitude, longitude, name" CSV route. It
// returns the rows as named locations together with their names in file
// order; names are prefixed with the row number so repeats stay distinct.
func ReadCSV(r io.Reader) (*collection.Keyed[string, point.Point], []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 3
	cr.Comment = '#'

	named := collection.NewKeyed[string, point.Point]()
	var order []string
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, nil, &collection.DecodeError{Line: row, Record: strings.Join(rec, ","), Err: err}
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, nil, &collection.DecodeError{Line: row, Record: strings.Join(rec, ","), Err: err}
		}
		p, err := point.New(lat, lon)
		if err != nil {
			return nil, nil, &collection.DecodeError{Line: row, Record: strings.Join(rec, ","), Err: err}
		}

		name := fmt.Sprintf("%02d:%s", row, strings.TrimSpace(rec[2]))
		named.Set(name, p)
		order = append(order, name)
	}
	return named, order, nil
}
