package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapgrid/nds/internal/index"
	"github.com/mapgrid/nds/internal/wgs84"
)

var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "Find tiles of a tile list intersecting a geodetic box",
	Long: `Load a YAML tile list, build a spatial index over the tiles' WGS84
bounding boxes and report every tile intersecting the given box.

The tile list file holds packed IDs:

  tiles:
    - 262154
    - 539636700

Example:
  nds cover --tiles tiles.yaml --west 2.0 --south 41.0 --east 2.4 --north 41.6`,
	RunE: runCover,
}

func init() {
	coverCmd.Flags().String("tiles", "", "path to a YAML tile list (required)")
	coverCmd.Flags().Float64("west", -180, "western boundary in degrees")
	coverCmd.Flags().Float64("south", -90, "southern boundary in degrees")
	coverCmd.Flags().Float64("east", 180, "eastern boundary in degrees")
	coverCmd.Flags().Float64("north", 90, "northern boundary in degrees")
	_ = coverCmd.MarkFlagRequired("tiles")

	rootCmd.AddCommand(coverCmd)
}

func runCover(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("tiles")
	tiles, err := index.LoadTileList(path)
	if err != nil {
		return err
	}
	logger.Info("tile list loaded", "path", path, "tiles", len(tiles))

	// Corner validation only; the box itself may legally touch the
	// antimeridian on either side.
	west, _ := cmd.Flags().GetFloat64("west")
	south, _ := cmd.Flags().GetFloat64("south")
	east, _ := cmd.Flags().GetFloat64("east")
	north, _ := cmd.Flags().GetFloat64("north")
	if _, err := wgs84.NewCoordinate(west, south); err != nil {
		return err
	}
	if _, err := wgs84.NewCoordinate(east, north); err != nil {
		return err
	}

	box := wgs84.BBox{North: north, East: east, South: south, West: west}
	matches := index.New(tiles...).SearchRect(box)
	logger.Debug("search finished", "box", box.String(), "matches", len(matches))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d of %d tiles intersect %s\n", len(matches), len(tiles), box)
	for _, t := range matches {
		if err := printTile(out, cfg, t); err != nil {
			return err
		}
	}
	return nil
}
