package generator

import (
	"math/rand/v2"

	"pkg.jsn.cam/mocksensors/pkg/geojson"
)

// Generator produces the features of a mock dataset
type Generator interface {
	// Init initializes the generator with a per-run random source
	// so output is reproducible from a seed
	Init(r *rand.Rand)

	// Feature builds the record for the 1-based index
	Feature(index int) geojson.Feature

	// Description returns a human-readable description of the data
	Description() string

	// DefaultCount returns the number of records generated when none is given
	DefaultCount() int
}
