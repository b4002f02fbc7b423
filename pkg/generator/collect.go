package generator

import (
	"fmt"

	"pkg.jsn.cam/mocksensors/pkg/geojson"
	"pkg.jsn.cam/mocksensors/pkg/mocksensors"
)

// Collect generates count features in index order and wraps them in a collection.
// progress, if non-nil, is called with the number of records generated so far;
// an error from it stops generation.
func Collect(g Generator, count int, progress func(done int) error) (*geojson.FeatureCollection, error) {
	if count < 0 {
		return nil, mocksensors.ErrInvalidCount
	}

	features := make([]geojson.Feature, 0, count)
	for i := 1; i <= count; i++ {
		features = append(features, g.Feature(i))
		if progress != nil {
			if err := progress(i); err != nil {
				return nil, fmt.Errorf("report progress: %w", err)
			}
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
