package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/woozymasta/upoints/internal/config"
	"github.com/woozymasta/upoints/internal/edist"
	"github.com/woozymasta/upoints/internal/geo"
	"github.com/woozymasta/upoints/internal/point"

	"github.com/rs/zerolog/log"
)

var errNoLocations = errors.New("no locations given, use --location or --csv-file")

// printer loads the config and resolves the locations shared by every
// command.
func (o *Options) printer() (*edist.Printer, error) {
	path := o.Config
	optional := path == ""
	if optional {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".edist.yaml")
		}
	}

	cfg := &config.Config{}
	if path != "" {
		var err error
		if optional {
			cfg, err = config.LoadOptional(path)
		} else {
			cfg, err = config.Load(path)
		}
		if err != nil {
			return nil, err
		}
		log.Debug().
			Str("path", path).
			Int("locations", len(cfg.Locations)).
			Msg("Config loaded")
	}

	named := cfg.NamedLocations()
	args := o.Locations
	if o.CSVFile != "" {
		f, err := os.Open(o.CSVFile)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()

		var order []string
		named, order, err = edist.ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.CSVFile, err)
		}
		args = append(order, args...)
	}
	if len(args) == 0 {
		return nil, errNoLocations
	}

	locs, err := edist.Resolve(args, named)
	if err != nil {
		return nil, err
	}

	style, err := point.ParseStyle(first(o.Format, cfg.Format, string(point.DMS)))
	if err != nil {
		return nil, err
	}
	units, err := geo.ParseUnits(first(o.Units, cfg.Units))
	if err != nil {
		return nil, err
	}
	pointOpts, err := cfg.PointOptions()
	if err != nil {
		return nil, err
	}

	return &edist.Printer{
		Out:       os.Stdout,
		Locations: locs,
		Style:     style,
		Units:     units,
		Verbose:   !o.Quiet,
		Options:   pointOpts,
	}, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseLocator(name string) (geo.Precision, error) {
	if name == "" {
		return 0, nil
	}
	return geo.ParsePrecision(name)
}

type DisplayCommand struct {
	Locator string `long:"locator" description:"Show Maidenhead locators of this accuracy" choice:"square" choice:"subsquare" choice:"extsquare"`
}

func (c *DisplayCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}
	locator, err := parseLocator(c.Locator)
	if err != nil {
		return err
	}
	return p.Display(locator)
}

type DistanceCommand struct{}

func (c *DistanceCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}
	return p.Distance()
}

type BearingCommand struct {
	String bool `short:"g" long:"string" description:"Display named bearings"`
}

func (c *BearingCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}
	return p.Bearing(false, c.String)
}

type FinalBearingCommand struct {
	String bool `short:"g" long:"string" description:"Display named bearings"`
}

func (c *FinalBearingCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}
	return p.Bearing(true, c.String)
}

type RangeCommand struct {
	Args struct {
		Distance float64 `positional-arg-name:"DISTANCE" description:"Range in display units"`
	} `positional-args:"yes" required:"yes"`
}

func (c *RangeCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}
	return p.Range(c.Args.Distance)
}

type DestinationCommand struct {
	Locator string `long:"locator" description:"Maidenhead locator accuracy" choice:"square" choice:"subsquare" choice:"extsquare" default:"subsquare"`
	Args    struct {
		Distance float64 `positional-arg-name:"DISTANCE" description:"Distance to travel in display units"`
		Bearing  float64 `positional-arg-name:"BEARING" description:"Direction of travel in degrees"`
	} `positional-args:"yes" required:"yes"`
}

func (c *DestinationCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}
	locator, err := parseLocator(c.Locator)
	if err != nil {
		return err
	}
	return p.Destination(c.Args.Distance, c.Args.Bearing, locator)
}

// SunCommand serves both sunrise and sunset; setting tells them apart.
type SunCommand struct {
	Date string `short:"d" long:"date" description:"Date as YYYY-MM-DD (default today, UTC)"`

	setting bool
}

func (c *SunCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}

	date := time.Now().UTC()
	if c.Date != "" {
		if date, err = time.Parse(time.DateOnly, c.Date); err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	p.SunEvents(date, !c.setting)
	return nil
}

type FlightPlanCommand struct {
	Speed float64 `short:"s" long:"speed" description:"Speed in display units per hour to calculate elapsed time" default:"0"`
	Time  string  `short:"t" long:"time"  description:"Display time in hours, minutes or seconds" choice:"h" choice:"m" choice:"s" default:"h"`
}

func (c *FlightPlanCommand) Execute([]string) error {
	p, err := opts.printer()
	if err != nil {
		return err
	}
	return p.FlightPlan(c.Speed, edist.TimeUnit(c.Time))
}
