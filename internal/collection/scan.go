package collection

import (
	"bufio"
	"errors"
	"io"
)

// maxRecord bounds a single input line.
const maxRecord = 1 << 20

// scanRecords feeds r to fn one line at a time, numbering lines from 1.
// Records for which fn returns ErrSkip are ignored; any other error stops
// the scan and is returned as a *DecodeError.
func scanRecords(r io.Reader, fn func(record string) error) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxRecord)

	line := 0
	for s.Scan() {
		line++
		record := s.Text()
		if err := fn(record); err != nil {
			if errors.Is(err, ErrSkip) {
				continue
			}
			return &DecodeError{Line: line, Record: record, Err: err}
		}
	}

	if err := s.Err(); err != nil {
		return &DecodeError{Line: line + 1, Err: err}
	}
	return nil
}
