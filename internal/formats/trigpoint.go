package formats

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/point"
)

// unknownAltitude marks a trigpoint whose altitude was never surveyed.
const unknownAltitude = "8888.0"

// Trigpoint is a survey pillar from a trigpoint marker file.
type Trigpoint struct {
	point.Point
	Altitude *float64
	Name     string
	Identity int
}

// Format renders the trigpoint as "Name (location alt 97m)".
func (t Trigpoint) Format(style point.Style) (string, error) {
	loc, err := t.Point.Format(style)
	if err != nil {
		return "", err
	}
	if t.Altitude != nil && *t.Altitude != 0 {
		loc += fmt.Sprintf(" alt %dm", int(*t.Altitude))
	}
	if t.Name == "" {
		return loc, nil
	}
	return fmt.Sprintf("%s (%s)", t.Name, loc), nil
}

func (t Trigpoint) String() string {
	s, _ := t.Format(point.DMS)
	return s
}

// Properties describes the trigpoint for GeoJSON output.
func (t Trigpoint) Properties() map[string]any {
	props := map[string]any{
		"name":     t.Name,
		"identity": t.Identity,
		"type":     "trigpoint",
	}
	if t.Altitude != nil {
		props["altitude"] = *t.Altitude
	}
	return props
}

// DecodeTrigpoint reads one line of a GPSU style marker file such as
//
//	W,500936,N52.066035,W000.281449,    37.0,Broom Farm
//
// Lines not tagged W are skipped. Fields past the sixth are ignored.
func DecodeTrigpoint(record string) (int, Trigpoint, error) {
	fields := strings.Split(record, ",")
	if strings.TrimSpace(fields[0]) != "W" {
		return 0, Trigpoint{}, collection.ErrSkip
	}
	if len(fields) < 6 {
		return 0, Trigpoint{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, Trigpoint{}, fmt.Errorf("identity: %w", err)
	}
	lat, err := parseHemisphere(fields[2], 'N', 'S')
	if err != nil {
		return 0, Trigpoint{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseHemisphere(fields[3], 'E', 'W')
	if err != nil {
		return 0, Trigpoint{}, fmt.Errorf("longitude: %w", err)
	}

	var alt *float64
	if a := strings.TrimSpace(fields[4]); a != unknownAltitude {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return 0, Trigpoint{}, fmt.Errorf("altitude: %w", err)
		}
		alt = &v
	}

	p, err := point.New(lat, lon)
	if err != nil {
		return 0, Trigpoint{}, err
	}

	return id, Trigpoint{
		Point:    p,
		Altitude: alt,
		Name:     strings.TrimSpace(fields[5]),
		Identity: id,
	}, nil
}

// EncodeTrigpoint writes the marker file line DecodeTrigpoint reads.
func EncodeTrigpoint(id int, t Trigpoint) (string, error) {
	alt := unknownAltitude
	if t.Altitude != nil {
		alt = strconv.FormatFloat(*t.Altitude, 'f', 1, 64)
	}
	return fmt.Sprintf("W,%d,%s%09.6f,%s%010.6f,%8s,%s", id,
		hemisphere(t.Latitude(), 'N', 'S'), abs(t.Latitude()),
		hemisphere(t.Longitude(), 'E', 'W'), abs(t.Longitude()),
		alt, t.Name), nil
}

// ImportTrigpoints reads a trigpoint marker file keyed by identity.
func ImportTrigpoints(r io.Reader) (*collection.Keyed[int, Trigpoint], error) {
	c := collection.NewKeyed[int, Trigpoint]()
	if err := c.Import(r, DecodeTrigpoint); err != nil {
		return nil, err
	}
	return c, nil
}

// TrigpointLabel picks the text xearth shows next to a trigpoint marker.
type TrigpointLabel string

const (
	LabelIdentity TrigpointLabel = "identity"
	LabelName     TrigpointLabel = "name"
)

// TrigpointXearth renders trigpoints as xearth marker lines sorted by label,
// with the other identifier and the altitude in the trailing comment:
//
//	52.066035 -0.281449 "500936" # Broom Farm, alt 37m
func TrigpointXearth(c *collection.Keyed[int, Trigpoint], label TrigpointLabel) ([]string, error) {
	type line struct{ key, text string }
	var lines []line

	for id, t := range c.All() {
		var key, comment string
		switch label {
		case LabelIdentity, "":
			key, comment = strconv.Itoa(id), t.Name
		case LabelName:
			key, comment = t.Name, strconv.Itoa(id)
		default:
			return nil, fmt.Errorf("unknown xearth label %q", label)
		}
		if t.Name == "" {
			key, comment = strconv.Itoa(id), ""
		}

		text := fmt.Sprintf("%f %f %q", t.Latitude(), t.Longitude(), key)
		if comment != "" {
			text += " # " + comment
			if t.Altitude != nil && *t.Altitude != 0 {
				text += fmt.Sprintf(", alt %dm", int(*t.Altitude))
			}
		}
		lines = append(lines, line{key, text})
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].key < lines[j].key })

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out, nil
}

var errHemisphere = errors.New("missing hemisphere prefix")

// parseHemisphere reads values such as N52.066035 or W000.281449.
func parseHemisphere(s string, positive, negative byte) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != positive && s[0] != negative) {
		return 0, fmt.Errorf("%w in %q", errHemisphere, s)
	}
	v, err := strconv.ParseFloat(s[1:], 64)
	if err != nil {
		return 0, err
	}
	if s[0] == negative {
		v = -v
	}
	return v, nil
}

func hemisphere(v float64, positive, negative byte) string {
	if v < 0 {
		return string(negative)
	}
	return string(positive)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
