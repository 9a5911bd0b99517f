package screenshot

import (
	"fmt"
	"image"
	"os"

	"go.yaml.in/yaml/v3"

	"shotpress/internal/fault"
)

// Region is one rectangle to mask, in pixel coordinates from the image's
// top-left corner.
type Region struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// rect converts the region to an image.Rectangle.
func (r Region) rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// RegionMap maps a screenshot's base name to the regions masked in it.
// Images without an entry pass through unmasked.
type RegionMap map[string][]Region

// LoadRegions reads a YAML regions file. An empty path yields an empty map.
//
// File shape:
//
//	login.png:
//	  - {x: 120, y: 40, w: 300, h: 24}
//	  - {x: 0, y: 700, w: 1024, h: 60}
//	settings.png:
//	  - {x: 10, y: 10, w: 80, h: 80}
func LoadRegions(path string) (RegionMap, error) {
	if path == "" {
		return RegionMap{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Wrap(fault.IO, "reading regions file", path, err)
	}
	var m RegionMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fault.Wrap(fault.Config, "parsing regions file", path, err)
	}
	for name, regions := range m {
		for i, r := range regions {
			if r.W < 0 || r.H < 0 {
				return nil, fault.Wrap(fault.Config, "parsing regions file", path,
					fmt.Errorf("%s region %d has negative size", name, i))
			}
		}
	}
	if m == nil {
		m = RegionMap{}
	}
	return m, nil
}
