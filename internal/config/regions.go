package config

import (
	_ "embed"
	"fmt"

	"github.com/san-kum/mandelterm/internal/mandel"
	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var regionsYAML []byte

// Region is a named rectangle of the complex plane.
type Region struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	XMin        float64 `yaml:"x_min"`
	XMax        float64 `yaml:"x_max"`
	YMin        float64 `yaml:"y_min"`
	YMax        float64 `yaml:"y_max"`
}

type regionFile struct {
	Regions []Region `yaml:"regions"`
}

// Params returns default session parameters looking at r on a width x height raster.
func (r Region) Params(width, height int) mandel.Params {
	p := DefaultParams()
	p.XMin, p.XMax = r.XMin, r.XMax
	p.YMin, p.YMax = r.YMin, r.YMax
	p.Width, p.Height = width, height
	return p
}

func (r Region) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("region has no name")
	}
	if r.XMin >= r.XMax || r.YMin >= r.YMax {
		return fmt.Errorf("region %s: empty bounds [%g,%g]x[%g,%g]", r.Name, r.XMin, r.XMax, r.YMin, r.YMax)
	}
	return nil
}

// Regions returns the built-in landmark catalogue in file order.
func Regions() ([]Region, error) {
	return parseRegions(regionsYAML)
}

func parseRegions(data []byte) ([]Region, error) {
	var f regionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}
	seen := make(map[string]bool, len(f.Regions))
	for _, r := range f.Regions {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate region: %s", r.Name)
		}
		seen[r.Name] = true
	}
	return f.Regions, nil
}

// GetRegion returns nil when no region has that name.
func GetRegion(name string) *Region {
	regions, err := Regions()
	if err != nil {
		return nil
	}
	for i := range regions {
		if regions[i].Name == name {
			return &regions[i]
		}
	}
	return nil
}

func ListRegions() []string {
	regions, err := Regions()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	return names
}
