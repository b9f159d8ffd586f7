// Package catalog serves the option lists the intake form renders.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the select options for the form. Deployments override it
// with a YAML file; without one the stock lists apply.
type Catalog struct {
	VehicleCategories []string `yaml:"vehicleCategories" json:"vehicleCategories"`
	Suppliers         []string `yaml:"suppliers" json:"suppliers"`
}

// Default returns the stock option lists.
func Default() Catalog {
	return Catalog{
		VehicleCategories: []string{
			"Compact Sedan",
			"Mid-size Sedan",
			"Minivan",
			"SUV",
			"Luxury",
		},
		Suppliers: []string{
			"Enterprise Rent A Car",
			"Hertz",
			"Avis",
			"Budget",
			"National",
		},
	}
}

// Load reads a catalog YAML file. A missing path falls back to Default;
// a present but unreadable file is an error so a typo is not silently
// replaced by stock options.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.VehicleCategories) == 0 {
		c.VehicleCategories = Default().VehicleCategories
	}
	if len(c.Suppliers) == 0 {
		c.Suppliers = Default().Suppliers
	}
	return c, nil
}
