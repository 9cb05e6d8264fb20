// Command markers2geojson converts marker files (trigpoint, xearth,
// location lists, JSON or GeoJSON) to GeoJSON, YAML or xearth markers.
package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/woozymasta/upoints/internal/collection"
	"github.com/woozymasta/upoints/internal/formats"
	"github.com/woozymasta/upoints/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input       string `short:"i" long:"in"           description:"Input file path or http(s) URL. Reads from stdin if empty"`
	InputFormat string `short:"I" long:"in-format"    description:"Input marker format" choice:"trigpoint" choice:"xearth" choice:"locations" choice:"json" choice:"geojson" default:"trigpoint"`
	Output      string `short:"o" long:"out"          description:"Output file path. Writes to stdout if empty"`
	Format      string `short:"f" long:"format"       description:"Output format" choice:"json" choice:"yaml" choice:"xearth" default:"json"`
	Minify      bool   `short:"m" long:"minify"       description:"Minify JSON output"`
	Label       string `long:"xearth-label"           description:"Label of trigpoints in xearth output" choice:"identity" choice:"name" default:"identity"`
	Timeout     int    `long:"timeout"                description:"HTTP timeout in seconds" default:"30"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	format, err := formats.ParseFormat(opts.InputFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid input format")
	}

	// Read Input
	var input []byte
	if opts.Input != "" {
		client := &http.Client{Timeout: time.Duration(opts.Timeout) * time.Second}
		rc, err := formats.Open(client, opts.Input)
		if err != nil {
			log.Fatal().Err(err).Str("source", opts.Input).Msg("Failed to open input")
		}
		input, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			log.Fatal().Err(err).Str("source", opts.Input).Msg("Failed to read input")
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read stdin")
		}
	}

	if format == formats.FormatTrigpoint && opts.Format == "xearth" {
		trigs, err := formats.ImportTrigpoints(bytes.NewReader(input))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to parse trigpoints")
		}
		lines, err := formats.TrigpointXearth(trigs, formats.TrigpointLabel(opts.Label))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render xearth markers")
		}
		write(opts, []byte(strings.Join(lines, "\n")+"\n"))
		return
	}

	markers, err := formats.Decode(bytes.NewReader(input), format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse markers")
	}
	write(opts, convert(opts, markers))
}

func convert(opts Options, markers *collection.Keyed[string, formats.Marker]) []byte {
	var buf bytes.Buffer
	var err error

	switch opts.Format {
	case "yaml":
		err = formats.WriteYAML(&buf, formats.ToGeoJSON(markers))
	case "xearth":
		var lines []string
		lines, err = formats.ExportXearth(toXearth(markers))
		buf.WriteString(strings.Join(lines, "\n") + "\n")
	default:
		err = formats.WriteGeoJSON(&buf, formats.ToGeoJSON(markers), opts.Minify)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal markers")
	}

	log.Info().
		Int("markers", markers.Len()).
		Str("format", opts.Format).
		Msg("Markers converted")
	return buf.Bytes()
}

func toXearth(markers *collection.Keyed[string, formats.Marker]) *collection.Keyed[string, formats.Xearth] {
	out := collection.NewKeyed[string, formats.Xearth]()
	for name, m := range markers.All() {
		comment, _ := m.Props["comment"].(string)
		out.Set(name, formats.Xearth{Point: m.Point, Comment: comment})
	}
	return out
}

func write(opts Options, data []byte) {
	if opts.Output == "" {
		_, _ = os.Stdout.Write(data)
		return
	}

	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
	}
	fmt.Fprintf(os.Stderr, "Successfully converted markers to %s (format: %s)\n", opts.Output, opts.Format)
}
