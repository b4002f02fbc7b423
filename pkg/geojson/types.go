package geojson

const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// FeatureCollection is the outer document. Field order matches the encoded output.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single named point with its status.
type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// Properties carries the sensor attributes of a feature.
type Properties struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Geometry is a Point; Coordinates is [longitude, latitude].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewFeatureCollection wraps features in a collection. A nil slice becomes empty so
// the document always encodes "features": [].
func NewFeatureCollection(features []Feature) *FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return &FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: features,
	}
}

// NewPointFeature creates a Point feature at the given position.
func NewPointFeature(props Properties, lon, lat float64) Feature {
	return Feature{
		Type:       TypeFeature,
		Properties: props,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: [2]float64{lon, lat},
		},
	}
}

// Longitude returns the first coordinate.
func (g Geometry) Longitude() float64 { return g.Coordinates[0] }

// Latitude returns the second coordinate.
func (g Geometry) Latitude() float64 { return g.Coordinates[1] }
