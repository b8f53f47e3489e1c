// Package nds implements the NDS fixed-point coordinate encoding and the
// hierarchical tile addressing scheme of the Navigation Data Standard,
// following the NDS Format Specification, Version 2.5.4, §7.2.1 and §7.3.1.
//
// The encoding divides the 360° range into 2^32 steps, so a coordinate is a
// pair of signed integers where one unit corresponds to 360/2^32 degrees on
// both axes. Latitude only spans a 180° range and therefore uses only half
// of the integer range, keeping the unit size uniform along both axes.
package nds

import (
	"fmt"
	"math"

	"github.com/mapgrid/nds/internal/wgs84"
)

// Fixed range constants of the coordinate encoding.
const (
	MaxLongitude int32 = math.MaxInt32
	MinLongitude int32 = math.MinInt32
	MaxLatitude  int32 = MaxLongitude / 2
	MinLatitude  int32 = MinLongitude / 2

	LongitudeRange int64 = int64(MaxLongitude) - int64(MinLongitude)
	LatitudeRange  int64 = int64(MaxLatitude) - int64(MinLatitude)
)

// Coordinate is a geographic position in NDS fixed-point units. It is an
// immutable value; all operations return new instances.
type Coordinate struct {
	Longitude int32
	Latitude  int32
}

// FromUnits builds a coordinate from raw fixed-point units. Inputs wrap
// through the two's-complement 32-bit representation, values above the axis
// maximum clamp down to it, and values below the axis minimum are rejected.
func FromUnits(longitude, latitude int64) (Coordinate, error) {
	lon, err := clampUnits(longitude, MinLongitude, MaxLongitude, "longitude")
	if err != nil {
		return Coordinate{}, err
	}
	lat, err := clampUnits(latitude, MinLatitude, MaxLatitude, "latitude")
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Longitude: lon, Latitude: lat}, nil
}

// FromDegrees builds a coordinate from WGS84 degrees, with longitude in
// [-180, 180] and latitude in [-90, 90]. The scaling truncates toward zero,
// matching the reference encoding exactly.
func FromDegrees(longitude, latitude float64) (Coordinate, error) {
	if longitude < -180 || longitude > 180 {
		return Coordinate{}, &RangeError{Field: "longitude", Value: longitude, Constraint: "[-180, 180]"}
	}
	if latitude < -90 || latitude > 90 {
		return Coordinate{}, &RangeError{Field: "latitude", Value: latitude, Constraint: "[-90, 90]"}
	}
	lon := int64(longitude / 360.0 * float64(LongitudeRange))
	lat := int64(latitude / 180.0 * float64(LatitudeRange))
	return FromUnits(lon, lat)
}

// FromWGS84 builds a coordinate from a geodetic coordinate value.
func FromWGS84(c wgs84.Coordinate) (Coordinate, error) {
	return FromDegrees(c.Longitude, c.Latitude)
}

// FromMorton decodes a Morton code into a coordinate, applying the same
// clamp and validation rules as FromUnits.
func FromMorton(code uint64) (Coordinate, error) {
	lon, lat := Deinterleave(code)
	return FromUnits(int64(lon), int64(lat))
}

// Add returns a new coordinate offset by the given deltas, subject to the
// same wrap, clamp and validation rules as FromUnits. Useful for NDS
// coordinate decoding using tile offsets.
func (c Coordinate) Add(deltaLongitude, deltaLatitude int64) (Coordinate, error) {
	return FromUnits(int64(c.Longitude)+deltaLongitude, int64(c.Latitude)+deltaLatitude)
}

// MortonCode returns the unique Morton code for this coordinate.
func (c Coordinate) MortonCode() uint64 {
	return Interleave(c.Longitude, c.Latitude)
}

// ToWGS84 converts this coordinate to WGS84 degrees. Positive and negative
// values scale against their respective bound: the two domains are not
// symmetric around zero (|MIN| = |MAX|+1), and a single divisor would bias
// the result by up to one unit.
func (c Coordinate) ToWGS84() wgs84.Coordinate {
	var lon, lat float64
	if c.Longitude >= 0 {
		lon = float64(c.Longitude) / float64(MaxLongitude) * 180.0
	} else {
		lon = float64(c.Longitude) / float64(MinLongitude) * -180.0
	}
	if c.Latitude >= 0 {
		lat = float64(c.Latitude) / float64(MaxLatitude) * 90.0
	} else {
		lat = float64(c.Latitude) / float64(MinLatitude) * -90.0
	}
	return wgs84.Coordinate{Longitude: lon, Latitude: lat}
}

// GeoJSON returns a GeoJSON "Point" feature for this coordinate.
func (c Coordinate) GeoJSON() (string, error) {
	return c.ToWGS84().GeoJSON()
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Longitude, c.Latitude)
}

// clampUnits normalizes a raw unit value for one axis: wrap to 32 bits,
// clamp values above max down to max, reject values below min.
func clampUnits(v int64, min, max int32, field string) (int32, error) {
	n := ToSigned32(v)
	if n > max {
		n = max
	}
	if n < min {
		return 0, &RangeError{
			Field:      field,
			Value:      n,
			Constraint: fmt.Sprintf("[%d, %d]", min, max),
		}
	}
	return n, nil
}
