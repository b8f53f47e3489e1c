package index

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mapgrid/nds/internal/nds"
)

// TileList is the YAML schema for a set of packed tile IDs:
//
//	tiles:
//	  - 262154
//	  - 539636700
type TileList struct {
	Tiles []int32 `yaml:"tiles"`
}

// LoadTileList reads a YAML tile list and resolves every packed ID into a
// tile. The first malformed ID fails the whole load.
func LoadTileList(path string) ([]nds.Tile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tile list: %w", err)
	}

	var list TileList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing tile list: %w", err)
	}

	tiles := make([]nds.Tile, 0, len(list.Tiles))
	for _, id := range list.Tiles {
		t, err := nds.TileFromPackedID(id)
		if err != nil {
			return nil, fmt.Errorf("tile id %d: %w", id, err)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}
