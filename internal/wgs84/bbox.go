package wgs84

import "fmt"

// BBox is a geodetic bounding box in decimal degrees.
type BBox struct {
	North float64 // Northern boundary (latitude)
	East  float64 // Eastern boundary (longitude)
	South float64 // Southern boundary (latitude)
	West  float64 // Western boundary (longitude)
}

// Contains reports whether the point lies within the box.
func (b BBox) Contains(c Coordinate) bool {
	return c.Longitude >= b.West && c.Longitude <= b.East &&
		c.Latitude >= b.South && c.Latitude <= b.North
}

// Intersects reports whether the two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(other.East < b.West ||
		other.West > b.East ||
		other.North < b.South ||
		other.South > b.North)
}

// String returns a string representation of the bounding box.
func (b BBox) String() string {
	return fmt.Sprintf("[N %f, E %f, S %f, W %f]", b.North, b.East, b.South, b.West)
}
