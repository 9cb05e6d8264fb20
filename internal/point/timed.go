package point

import (
	"encoding/json"
	"time"
)

// TimedCoordinate is a Coordinate with an observation time, such as a GPS
// fix.
type TimedCoordinate interface {
	Coordinate
	Timestamp() time.Time
}

// Timed is a Point observed at a specific time.
type Timed struct {
	Point
	Time time.Time
}

// NewTimed is New with an observation time attached.
func NewTimed(latitude, longitude float64, t time.Time) (Timed, error) {
	p, err := New(latitude, longitude)
	if err != nil {
		return Timed{}, err
	}
	return Timed{Point: p, Time: t}, nil
}

func (t Timed) Timestamp() time.Time { return t.Time }

func (t Timed) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Time      time.Time `json:"time"`
	}{t.lat, t.lon, t.Time})
}

func (t *Timed) UnmarshalJSON(data []byte) error {
	var v struct {
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Time      time.Time `json:"time"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	nt, err := NewTimed(v.Latitude, v.Longitude, v.Time)
	if err != nil {
		return err
	}
	*t = nt
	return nil
}
