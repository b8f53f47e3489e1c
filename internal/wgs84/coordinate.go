// Package wgs84 provides plain geodetic coordinate and bounding box values
// in the WGS84 reference system, together with their GeoJSON renderings.
package wgs84

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the base error for geodetic range violations.
var ErrOutOfRange = errors.New("value out of range")

// RangeError reports a degree value outside its valid range.
type RangeError struct {
	Field      string  // Input that failed validation
	Value      float64 // The invalid value
	Constraint string  // The allowed range
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %v exceeds the valid range %s", e.Field, e.Value, e.Constraint)
}

// Unwrap returns the underlying error type.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Coordinate is an immutable geodetic position in decimal degrees.
type Coordinate struct {
	Longitude float64 // Within [-180, 180]
	Latitude  float64 // Within [-90, 90]
}

// NewCoordinate builds a validated geodetic coordinate.
func NewCoordinate(longitude, latitude float64) (Coordinate, error) {
	if longitude < -180 || longitude > 180 {
		return Coordinate{}, &RangeError{Field: "longitude", Value: longitude, Constraint: "[-180, 180]"}
	}
	if latitude < -90 || latitude > 90 {
		return Coordinate{}, &RangeError{Field: "latitude", Value: latitude, Constraint: "[-90, 90]"}
	}
	return Coordinate{Longitude: longitude, Latitude: latitude}, nil
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%f, %f)", c.Longitude, c.Latitude)
}
