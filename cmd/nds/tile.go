package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mapgrid/nds/internal/bitfmt"
	"github.com/mapgrid/nds/internal/config"
	"github.com/mapgrid/nds/internal/nds"
	"github.com/mapgrid/nds/internal/wgs84"
)

var tileCmd = &cobra.Command{
	Use:   "tile [packed-id...]",
	Short: "Inspect NDS tiles",
	Long: `Inspect NDS tiles given as packed IDs, or constructed from a level
plus a tile number or a WGS84 position.

Examples:
  nds tile 262154
  nds tile 65536 65537
  nds tile --level 2 --number 10
  nds tile --level 13 --lon 2.1734 --lat 41.3851
  nds tile 539636700 --geojson`,
	RunE: runTile,
}

func init() {
	tileCmd.Flags().Int("level", -1, "tile level (0-15)")
	tileCmd.Flags().Int64("number", 0, "tile number within the level")
	tileCmd.Flags().Float64("lon", 0, "WGS84 longitude of a position inside the tile")
	tileCmd.Flags().Float64("lat", 0, "WGS84 latitude of a position inside the tile")

	rootCmd.AddCommand(tileCmd)
}

func runTile(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	tiles, err := collectTiles(cmd, args, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, t := range tiles {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printTile(out, cfg, t); err != nil {
			return err
		}
	}
	return nil
}

func collectTiles(cmd *cobra.Command, args []string, logger *slog.Logger) ([]nds.Tile, error) {
	level, _ := cmd.Flags().GetInt("level")

	switch {
	case len(args) > 0:
		tiles := make([]nds.Tile, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("packed id %q: %w", arg, err)
			}
			logger.Debug("decoding packed id", "id", id, "bits", bitfmt.Format32(int32(id)))
			t, err := nds.TileFromPackedID(int32(id))
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, t)
		}
		return tiles, nil

	case level >= 0 && cmd.Flags().Changed("number"):
		number, _ := cmd.Flags().GetInt64("number")
		t, err := nds.NewTile(level, number)
		if err != nil {
			return nil, err
		}
		return []nds.Tile{t}, nil

	case level >= 0 && cmd.Flags().Changed("lon"):
		lon, _ := cmd.Flags().GetFloat64("lon")
		lat, _ := cmd.Flags().GetFloat64("lat")
		c, err := wgs84.NewCoordinate(lon, lat)
		if err != nil {
			return nil, err
		}
		t, err := nds.TileFromWGS84(level, c)
		if err != nil {
			return nil, err
		}
		logger.Debug("tile from position", "morton", bitfmt.Format(t.SouthWestAsMorton()))
		return []nds.Tile{t}, nil

	default:
		return nil, errors.New("specify packed ids, or --level with --number or --lon/--lat")
	}
}

func printTile(out io.Writer, cfg *config.Config, t nds.Tile) error {
	col, row := t.GridCoordinates()
	center := t.Center()

	fmt.Fprintf(out, "Tile ID: %d, Level: %d, Tile Number: %d\n", t.PackedID(), t.Level, t.Number)
	fmt.Fprintf(out, "Tile Grid Coordinates: [%d, %d]\n", col, row)
	fmt.Fprintf(out, "Center in NDS units: %d, %d\n", center.Longitude, center.Latitude)

	if cfg.Output.GeoJSON {
		g, err := center.GeoJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Center: %s\n", g)

		g, err = t.GeoJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Bounding Box: %s\n", g)
		return nil
	}

	b := t.BBox().ToWGS84()
	c := center.ToWGS84()
	fmt.Fprintf(out, "Center: %.7f, %.7f\n", c.Longitude, c.Latitude)
	fmt.Fprintf(out, "Bounding Box: %s\n", b)
	return nil
}
