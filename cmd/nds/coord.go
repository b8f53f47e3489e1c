package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapgrid/nds/internal/bitfmt"
	"github.com/mapgrid/nds/internal/nds"
)

var coordCmd = &cobra.Command{
	Use:   "coord",
	Short: "Convert NDS coordinates",
	Long: `Convert between WGS84 degrees, NDS fixed-point units and Morton codes.

Examples:
  nds coord --lon 2.1734 --lat 41.3851
  nds coord --lon-units 25927920 --lat-units 493506240
  nds coord --morton 864691128455135232`,
	RunE: runCoord,
}

func init() {
	coordCmd.Flags().Float64("lon", 0, "WGS84 longitude in degrees")
	coordCmd.Flags().Float64("lat", 0, "WGS84 latitude in degrees")
	coordCmd.Flags().Int64("lon-units", 0, "longitude in fixed-point units")
	coordCmd.Flags().Int64("lat-units", 0, "latitude in fixed-point units")
	coordCmd.Flags().Uint64("morton", 0, "Morton code to decode")

	rootCmd.AddCommand(coordCmd)
}

func runCoord(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	var c nds.Coordinate
	switch {
	case cmd.Flags().Changed("morton"):
		code, _ := cmd.Flags().GetUint64("morton")
		logger.Debug("decoding morton code", "bits", bitfmt.Format(code))
		c, err = nds.FromMorton(code)

	case cmd.Flags().Changed("lon-units") || cmd.Flags().Changed("lat-units"):
		lon, _ := cmd.Flags().GetInt64("lon-units")
		lat, _ := cmd.Flags().GetInt64("lat-units")
		c, err = nds.FromUnits(lon, lat)

	case cmd.Flags().Changed("lon") || cmd.Flags().Changed("lat"):
		lon, _ := cmd.Flags().GetFloat64("lon")
		lat, _ := cmd.Flags().GetFloat64("lat")
		c, err = nds.FromDegrees(lon, lat)

	default:
		return fmt.Errorf("specify --lon/--lat, --lon-units/--lat-units or --morton")
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	geo := c.ToWGS84()
	code := c.MortonCode()
	logger.Debug("encoded morton code", "bits", bitfmt.Format(code))

	fmt.Fprintf(out, "NDS units: %d, %d\n", c.Longitude, c.Latitude)
	fmt.Fprintf(out, "WGS84: %.7f, %.7f\n", geo.Longitude, geo.Latitude)
	fmt.Fprintf(out, "Morton code: %d\n", code)

	if cfg.Output.GeoJSON {
		g, err := geo.GeoJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, g)
	}
	return nil
}
