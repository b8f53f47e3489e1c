package nds

import (
	"fmt"

	"github.com/mapgrid/nds/internal/wgs84"
)

// MaxLevel is the deepest tile subdivision level. Level 0 splits the globe
// into the two hemisphere tiles; each further level quadruples the count.
const MaxLevel = 15

// packedLevelShift is the bit position offset of the level marker in a
// packed tile ID: the marker for level L sits at bit 16+L.
const packedLevelShift = 16

// Tile addresses one cell of the NDS tiling scheme: a level in [0, 15] and
// a tile number that indexes the level's grid in compacted Morton order.
// Tiles are immutable values; the center is derived once at construction.
type Tile struct {
	Level  int
	Number int64

	center Coordinate
}

// NewTile builds a tile from a level and a tile number within that level.
func NewTile(level int, number int64) (Tile, error) {
	if level < 0 || level > MaxLevel {
		return Tile{}, &RangeError{Field: "level", Value: level, Constraint: fmt.Sprintf("[0, %d]", MaxLevel)}
	}
	if max := maxTileNumber(level); number < 0 || number > max {
		return Tile{}, &RangeError{
			Field:      "tile number",
			Value:      number,
			Constraint: fmt.Sprintf("[0, %d] at level %d", max, level),
		}
	}
	t := Tile{Level: level, Number: number}
	t.center = t.computeCenter()
	return t, nil
}

// TileFromPackedID builds a tile from its packed ID. The level is the
// position of the highest set marker bit at or above bit 16; an ID with the
// sign bit set resolves to the maximum level. IDs without any marker bit
// are malformed.
func TileFromPackedID(id int32) (Tile, error) {
	level := extractLevel(id)
	if level < 0 {
		return Tile{}, &PackedIDError{ID: id}
	}
	number := int64(uint32(id) ^ 1<<uint(packedLevelShift+level))
	return NewTile(level, number)
}

// TileFromCoordinate builds the tile of the given level that contains the
// coordinate: the coordinate's Morton code truncated to the level's
// 2·level+1 most significant payload bits.
func TileFromCoordinate(level int, c Coordinate) (Tile, error) {
	if level < 0 || level > MaxLevel {
		return Tile{}, &RangeError{Field: "level", Value: level, Constraint: fmt.Sprintf("[0, %d]", MaxLevel)}
	}
	return NewTile(level, int64(c.MortonCode()>>tileShift(level)))
}

// TileFromWGS84 builds the tile of the given level containing a geodetic
// coordinate.
func TileFromWGS84(level int, c wgs84.Coordinate) (Tile, error) {
	fixed, err := FromWGS84(c)
	if err != nil {
		return Tile{}, err
	}
	return TileFromCoordinate(level, fixed)
}

// Contains reports whether the coordinate lies within this tile. The check
// is exact under the quadtree partition; no floating comparison is
// involved.
func (t Tile) Contains(c Coordinate) bool {
	return t.Number == int64(c.MortonCode()>>tileShift(t.Level))
}

// PackedID returns the packed tile ID, combining level and number via the
// level marker bit. The ID of a level-15 tile has the sign bit set.
func (t Tile) PackedID() int32 {
	return int32(uint32(t.Number) | 1<<uint(packedLevelShift+t.Level))
}

// SouthWestAsMorton returns the Morton code of the tile's south-west
// corner. Shifting the tile number back to full code width zero-fills the
// dropped fine bits, which address the south-west corner by construction of
// the Z-order curve.
func (t Tile) SouthWestAsMorton() uint64 {
	return uint64(t.Number) << tileShift(t.Level)
}

// Center returns the center of this tile.
func (t Tile) Center() Coordinate {
	return t.center
}

// BBox returns the bounding box of this tile.
func (t Tile) BBox() BBox {
	if t.Level == 0 {
		if t.Number == 0 {
			return EastHemisphere
		}
		return WestHemisphere
	}

	sw := t.southWest()
	north := int64(sw.Latitude) + LatitudeRange/(1<<uint(t.Level))
	if sw.Latitude < 0 {
		north++
	}
	east := int64(sw.Longitude) + LongitudeRange/(1<<uint(t.Level+1))
	if sw.Longitude < 0 {
		east++
	}
	return BBox{North: ToSigned32(north), East: ToSigned32(east), South: sw.Latitude, West: sw.Longitude}
}

// GridCoordinates returns the (column, row) position of this tile in its
// level's grid, with column in [-2^level, 2^level) and row in
// [-2^(level-1), 2^(level-1)). For example, at level 1 the grid looks like
//
//	[-2,  0] [-1,  0] [0,  0] [1,  0]
//	[-2, -1] [-1, -1] [0, -1] [1, -1]
//
// with tile numbers 4, 5, 0, 1 in the upper row and 6, 7, 2, 3 in the
// lower.
func (t Tile) GridCoordinates() (col, row int) {
	if t.Level == 0 {
		if t.Number == 0 {
			return 0, 0
		}
		return -1, 0
	}

	// De-interleave the tile number directly: even bits form the column,
	// odd bits the row.
	var c, r int64
	for i := 0; i <= t.Level; i++ {
		if t.Number&(1<<uint(2*i)) != 0 {
			c |= 1 << uint(i)
		}
		if t.Number&(1<<uint(2*i+1)) != 0 {
			r |= 1 << uint(i)
		}
	}

	// Values in the upper half of the unsigned range are west/south tiles.
	if c >= 1<<uint(t.Level) {
		c -= 1 << uint(t.Level+1)
	}
	if r >= 1<<uint(t.Level-1) {
		r -= 1 << uint(t.Level)
	}
	return int(c), int(r)
}

// GeoJSON returns a GeoJSON "Polygon" feature of the tile's bounding box.
func (t Tile) GeoJSON() (string, error) {
	return t.BBox().GeoJSON()
}

// String returns a string representation of the tile.
func (t Tile) String() string {
	return fmt.Sprintf("tile %d/%d (packed id %d)", t.Level, t.Number, t.PackedID())
}

// southWest returns the tile's south-west corner coordinate. Decoded values
// are always within the coordinate domain, so no validation is needed here.
func (t Tile) southWest() Coordinate {
	lon, lat := Deinterleave(t.SouthWestAsMorton())
	return Coordinate{Longitude: lon, Latitude: lat}
}

// computeCenter derives the tile center. Level 0 is special-cased: the two
// hemisphere tiles are centered on the equator at half the longitude range.
// For deeper levels the center is the south-west corner plus half the tile
// span, with one extra unit on negative components to compensate for
// integer truncation asymmetry around zero.
func (t Tile) computeCenter() Coordinate {
	if t.Level == 0 {
		if t.Number == 0 {
			return Coordinate{Longitude: MaxLongitude / 2}
		}
		return Coordinate{Longitude: MinLongitude / 2}
	}

	sw := t.southWest()
	lat := int64(sw.Latitude) + LatitudeRange/(1<<uint(t.Level+1))
	if sw.Latitude < 0 {
		lat++
	}
	lon := int64(sw.Longitude) + LongitudeRange/(1<<uint(t.Level+2))
	if sw.Longitude < 0 {
		lon++
	}
	return Coordinate{Longitude: ToSigned32(lon), Latitude: ToSigned32(lat)}
}

// tileShift is the Morton-code shift that reduces a coordinate to a tile
// number at the given level.
func tileShift(level int) uint {
	return uint(32 + (MaxLevel-level)*2)
}

// maxTileNumber returns the largest valid tile number for a level.
func maxTileNumber(level int) int64 {
	return int64(1)<<uint(2*level+1) - 1
}

// extractLevel scans the marker bits from the highest level downward and
// returns the level of a packed ID, or -1 if no marker bit is present. The
// level-15 marker is the sign bit, so negative IDs resolve to MaxLevel on
// the first probe.
func extractLevel(id int32) int {
	for level := MaxLevel; level >= 0; level-- {
		if uint32(id)&(1<<uint(packedLevelShift+level)) != 0 {
			return level
		}
	}
	return -1
}
