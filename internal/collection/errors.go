package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrSkip is returned by a decoder for records that carry no location,
	// such as comments or headers. Import moves on to the next record.
	ErrSkip = errors.New("skip record")

	// ErrTooFewPoints is returned by journey queries on collections with
	// fewer than two members.
	ErrTooFewPoints = errors.New("at least two points are required")

	// ErrUnknownKey is returned when a requested key is not in the collection.
	ErrUnknownKey = errors.New("unknown key")

	// ErrTimeOrder is returned by Speeds when timestamps do not increase.
	ErrTimeOrder = errors.New("timestamps must increase along the journey")
)

// DecodeError reports the record that stopped an import.
type DecodeError struct {
	Line   int
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("record %d %q: %v", e.Line, e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
