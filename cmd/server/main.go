package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/upoints/internal/config"
	"github.com/woozymasta/upoints/internal/formats"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/logger"
	"github.com/woozymasta/upoints/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string `short:"c" long:"config"         env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Addr         string `short:"a" long:"addr"           env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port         int    `short:"p" long:"port"           env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
	Markers      string `short:"m" long:"markers"        env:"MARKERS"        description:"Marker file path or URL, overrides the config"`
	MarkerFormat string `short:"f" long:"markers-format" env:"MARKERS_FORMAT" description:"Marker file format, overrides the config"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.LoadOptional(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.Markers != "" {
		cfg.Markers.Source = opts.Markers
	}
	if opts.MarkerFormat != "" {
		cfg.Markers.Format = opts.MarkerFormat
	}
	if cfg.Markers.Source == "" {
		log.Fatal().Msg("No marker source, set markers.source in config or --markers")
	}

	format, err := formats.ParseFormat(cfg.Markers.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid marker format")
	}
	units, err := geo.ParseUnits(cfg.Units)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid units")
	}
	pointOpts, err := cfg.PointOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid point options")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	markers, err := formats.Load(client, cfg.Markers.Source, format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load markers")
	}

	// config locations are served alongside the marker file
	for name, p := range cfg.NamedLocations().All() {
		if _, ok := markers.Get(name); !ok {
			markers.Set(name, formats.Marker{Point: p, Name: name, Props: map[string]any{"type": "config"}})
		}
	}

	srvCtx, err := server.NewServerContext(markers, units, pointOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server context")
	}

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("markers_loaded", markers.Len()).
		Str("units", units.String()).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, srvCtx.Routes()); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
