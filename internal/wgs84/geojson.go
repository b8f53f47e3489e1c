package wgs84

import "encoding/json"

// feature is the GeoJSON feature envelope.
type feature struct {
	Type       string   `json:"type"`
	Properties struct{} `json:"properties"`
	Geometry   geometry `json:"geometry"`
}

type geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// GeoJSON returns a GeoJSON "Point" feature representation of this
// coordinate.
func (c Coordinate) GeoJSON() (string, error) {
	return renderFeature("Point", []float64{c.Longitude, c.Latitude})
}

// GeoJSON returns a GeoJSON "Polygon" feature representation of this
// bounding box. The ring runs counterclockwise from the south-west corner
// and closes on it.
func (b BBox) GeoJSON() (string, error) {
	ring := [][]float64{
		{b.West, b.South},
		{b.East, b.South},
		{b.East, b.North},
		{b.West, b.North},
		{b.West, b.South},
	}
	return renderFeature("Polygon", [][][]float64{ring})
}

func renderFeature(geomType string, coordinates interface{}) (string, error) {
	f := feature{
		Type:     "Feature",
		Geometry: geometry{Type: geomType, Coordinates: coordinates},
	}
	out, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
