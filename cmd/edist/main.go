// Command edist runs simple coordinate calculations on locations given on
// the command line or named in a config file:
//
//	edist -l '52.015;-0.221' sunrise
//	edist -l home -l IO92va33 distance
//	edist -l '52.015;0.221' destination 20 45
package main

import (
	"os"

	"github.com/woozymasta/upoints/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Config    string   `short:"c" long:"config"   env:"EDIST_CONFIG" description:"Config file with named locations (default ~/.edist.yaml)"`
	CSVFile   string   `long:"csv-file"                              description:"gpsbabel CSV file to read the route from"`
	Format    string   `short:"o" long:"format"                      description:"Location output format" choice:"dms" choice:"dm" choice:"dd" choice:"locator"`
	Units     string   `short:"u" long:"units"                       description:"Distance units" choice:"km" choice:"sm" choice:"nm"`
	Quiet     bool     `short:"q" long:"quiet"                       description:"Print bare values instead of sentences"`
	Locations []string `short:"l" long:"location"                    description:"Location to operate on, repeatable"`

	Display      DisplayCommand      `command:"display"       description:"Pretty print the locations"`
	Distance     DistanceCommand     `command:"distance"      description:"Calculate distance between locations"`
	Bearing      BearingCommand      `command:"bearing"       description:"Calculate initial bearing between locations"`
	FinalBearing FinalBearingCommand `command:"final-bearing" description:"Calculate final bearing between locations"`
	Range        RangeCommand        `command:"range"         description:"Check locations are within a given range of the first"`
	Destination  DestinationCommand  `command:"destination"   description:"Calculate destination from locations"`
	Sunrise      SunCommand          `command:"sunrise"       description:"Calculate the sunrise time for locations"`
	Sunset       SunCommand          `command:"sunset"        description:"Calculate the sunset time for locations"`
	FlightPlan   FlightPlanCommand   `command:"flight-plan"   description:"Calculate flight plan for locations"`
}

var opts Options

func main() {
	opts.Sunset.setting = true

	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Debug().Err(err).Msg("edist failed")
		os.Exit(1)
	}
}
