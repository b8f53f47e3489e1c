// Package index provides an in-memory spatial index over NDS tiles using
// an R-tree, for intersection queries against geodetic boxes and points.
package index

import (
	"github.com/dhconnelly/rtreego"

	"github.com/mapgrid/nds/internal/nds"
	"github.com/mapgrid/nds/internal/wgs84"
)

// pointEpsilon pads degenerate query rectangles; the R-tree requires
// non-zero extents.
const pointEpsilon = 1e-9

// entry wraps a tile for R-tree storage.
type entry struct {
	tile nds.Tile
	rect rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// TileIndex is an R-tree over the WGS84 bounding boxes of a tile set.
// It is safe for concurrent reads once fully built.
type TileIndex struct {
	rtree *rtreego.Rtree
}

// New builds an index over the given tiles.
func New(tiles ...nds.Tile) *TileIndex {
	ix := &TileIndex{rtree: rtreego.NewTree(2, 25, 50)}
	for _, t := range tiles {
		ix.Add(t)
	}
	return ix
}

// Add inserts a tile into the index.
func (ix *TileIndex) Add(t nds.Tile) {
	ix.rtree.Insert(&entry{tile: t, rect: rectFor(t.BBox().ToWGS84())})
}

// Size returns the number of indexed tiles.
func (ix *TileIndex) Size() int {
	return ix.rtree.Size()
}

// SearchRect returns the tiles whose bounding box intersects the geodetic
// box.
func (ix *TileIndex) SearchRect(b wgs84.BBox) []nds.Tile {
	return ix.search(rectFor(b))
}

// At returns the tiles whose bounding box contains the geodetic point.
func (ix *TileIndex) At(c wgs84.Coordinate) []nds.Tile {
	return ix.search(rectFor(wgs84.BBox{
		North: c.Latitude,
		East:  c.Longitude,
		South: c.Latitude,
		West:  c.Longitude,
	}))
}

func (ix *TileIndex) search(rect rtreego.Rect) []nds.Tile {
	spatials := ix.rtree.SearchIntersect(rect)
	tiles := make([]nds.Tile, 0, len(spatials))
	for _, s := range spatials {
		tiles = append(tiles, s.(*entry).tile)
	}
	return tiles
}

// rectFor converts a geodetic box to an R-tree rectangle anchored at the
// south-west corner.
func rectFor(b wgs84.BBox) rtreego.Rect {
	lonLength := b.East - b.West
	latLength := b.North - b.South
	if lonLength < pointEpsilon {
		lonLength = pointEpsilon
	}
	if latLength < pointEpsilon {
		latLength = pointEpsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.West, b.South}, []float64{lonLength, latLength})
	return rect
}
