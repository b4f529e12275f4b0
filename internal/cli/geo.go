package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/geo"
)

// DistanceResult is the output of the distance command.
type DistanceResult struct {
	From geo.LatLng `json:"from"`
	To   geo.LatLng `json:"to"`
	Km   float64    `json:"km"`
}

// DMSResult is the output of the dms command.
type DMSResult struct {
	Degrees int    `json:"degrees"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Text    string `json:"text"`
}

// NewDistanceCommand creates the distance command.
func NewDistanceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <lat1> <lng1> <lat2> <lng2>",
		Short: "Great-circle distance between two points in km",
		Long: `Compute the haversine distance in kilometres between two points given
in decimal degrees.

Examples:
  helpers distance 51.5074 -0.1278 48.8566 2.3522`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(rootOpts, args, cmd)
		},
	}

	return cmd
}

// NewDMSCommand creates the dms command.
func NewDMSCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dms <coord>",
		Short: "Convert decimal degrees to degrees, minutes and seconds",
		Long: `Convert a decimal coordinate to whole degrees, minutes and seconds.
The sign is dropped.

Examples:
  helpers dms -- -33.8688`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDMS(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDistance(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	coords := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("invalid coordinate %q", arg), nil)
		}
		coords[i] = f
	}

	from := geo.LatLng{Lat: coords[0], Lng: coords[1]}
	to := geo.LatLng{Lat: coords[2], Lng: coords[3]}
	for _, p := range []geo.LatLng{from, to} {
		if err := p.Validate(); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeInvalidArg, err.Error(), nil)
		}
	}

	result := DistanceResult{From: from, To: to, Km: geo.Distance(from, to)}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("%.2f km", result.Km))
}

func runDMS(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	coord, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("invalid coordinate %q", arg), nil)
	}

	dms := geo.ToDMS(coord)
	if opts.Format == "json" {
		return formatter.Success(DMSResult{
			Degrees: dms.Degrees,
			Minutes: dms.Minutes,
			Seconds: dms.Seconds,
			Text:    dms.String(),
		})
	}
	return formatter.Success(dms.String())
}
