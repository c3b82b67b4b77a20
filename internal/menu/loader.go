package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type menuFile struct {
	Items []Item `yaml:"items"`
}

// LoadYAML reads catalog items from a file of the form:
//
//	items:
//	  - name: Spring Rolls
//	    price: "120.00"
//	    category: Appetizers
//	    variants: [Sweet Chili Sauce, Garlic Mayo]
func LoadYAML(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}

	return f.Items, nil
}
