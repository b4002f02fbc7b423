package geojson

import (
	"encoding/json"
	"fmt"
)

const indent = "  "

// Encode marshals a collection as indented JSON without a trailing newline
func Encode(fc *FeatureCollection) ([]byte, error) {
	if fc.Features == nil {
		empty := *fc
		empty.Features = []Feature{}
		fc = &empty
	}

	data, err := json.MarshalIndent(fc, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode GeoJSON: %w", err)
	}

	return data, nil
}

// Decode unmarshals a collection produced by Encode
func Decode(data []byte) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}

	return &fc, nil
}
