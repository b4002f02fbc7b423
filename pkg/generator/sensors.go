package generator

import (
	"math/rand/v2"
	"strconv"

	"pkg.jsn.cam/mocksensors/pkg/geojson"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const sensorPrefix = "Sensor "

// SensorGenerator places sensors uniformly over the globe with a coin-flip status
type SensorGenerator struct {
	rand *rand.Rand
}

func (g *SensorGenerator) Init(r *rand.Rand) {
	g.rand = r
}

// Feature draws longitude, latitude and status in that order.
func (g *SensorGenerator) Feature(index int) geojson.Feature {
	lon := g.rand.Float64()*360 - 180
	lat := g.rand.Float64()*180 - 90

	status := StatusInactive
	if g.rand.Float64() > 0.5 {
		status = StatusActive
	}

	props := geojson.Properties{
		Name:   sensorPrefix + strconv.Itoa(index),
		Status: status,
	}
	return geojson.NewPointFeature(props, lon, lat)
}

func (g *SensorGenerator) Description() string {
	return "Sensor points: uniform [lon, lat] with active/inactive status"
}

func (g *SensorGenerator) DefaultCount() int {
	return 200
}
