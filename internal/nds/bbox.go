package nds

import "github.com/mapgrid/nds/internal/wgs84"

// BBox is an axis-aligned bounding box in NDS fixed-point units. North is
// always >= South. West > East means the box crosses the antimeridian; such
// boxes are preserved as-is.
type BBox struct {
	North int32 // Northern boundary (latitude)
	East  int32 // Eastern boundary (longitude)
	South int32 // Southern boundary (latitude)
	West  int32 // Western boundary (longitude)
}

// Pre-built boxes for the two level-0 hemisphere tiles. These are pure
// functions of the range constants and are never mutated.
var (
	EastHemisphere = BBox{North: MaxLatitude, East: MaxLongitude, South: MinLatitude, West: 0}
	WestHemisphere = BBox{North: MaxLatitude, East: 0, South: MinLatitude, West: MinLongitude}
)

// SouthWest returns the south-west corner of the bounding box.
func (b BBox) SouthWest() Coordinate {
	return Coordinate{Longitude: b.West, Latitude: b.South}
}

// SouthEast returns the south-east corner of the bounding box.
func (b BBox) SouthEast() Coordinate {
	return Coordinate{Longitude: b.East, Latitude: b.South}
}

// NorthWest returns the north-west corner of the bounding box.
func (b BBox) NorthWest() Coordinate {
	return Coordinate{Longitude: b.West, Latitude: b.North}
}

// NorthEast returns the north-east corner of the bounding box.
func (b BBox) NorthEast() Coordinate {
	return Coordinate{Longitude: b.East, Latitude: b.North}
}

// Center returns the center of the bounding box. The arithmetic shift keeps
// the floor semantics of the reference implementation for negative sums.
func (b BBox) Center() Coordinate {
	return Coordinate{
		Longitude: int32((int64(b.East) + int64(b.West)) >> 1),
		Latitude:  int32((int64(b.North) + int64(b.South)) >> 1),
	}
}

// ToWGS84 converts this bounding box to a geodetic bounding box.
func (b BBox) ToWGS84() wgs84.BBox {
	ne := b.NorthEast().ToWGS84()
	sw := b.SouthWest().ToWGS84()
	return wgs84.BBox{North: ne.Latitude, East: ne.Longitude, South: sw.Latitude, West: sw.Longitude}
}

// GeoJSON returns a GeoJSON "Polygon" feature for this bounding box.
func (b BBox) GeoJSON() (string, error) {
	return b.ToWGS84().GeoJSON()
}
