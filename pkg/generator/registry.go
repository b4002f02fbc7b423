package generator

import (
	"fmt"
	"sort"

	"pkg.jsn.cam/mocksensors/pkg/mocksensors"
)

// Registry maps generator names to generator factory functions
var Registry = map[string]func() Generator{
	"sensors": func() Generator { return &SensorGenerator{} },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", mocksensors.ErrUnknownGenerator, name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
