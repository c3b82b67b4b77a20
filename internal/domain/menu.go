package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAppetizers Category = "Appetizers"
	CategoryMainCourse Category = "Main Course"
	CategoryDesserts   Category = "Desserts"
	CategoryBeverages  Category = "Beverages"
)

var categories = map[Category]bool{
	CategoryAppetizers: true,
	CategoryMainCourse: true,
	CategoryDesserts:   true,
	CategoryBeverages:  true,
}

func (c Category) Valid() bool {
	return categories[c]
}

// MenuEntry is one catalog item. Number is 1-based and matches what the operator types.
type MenuEntry struct {
	Number   int             `json:"number"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
	Variants []string        `json:"variants"`
}

// WithVariant returns the line-item name for an entry ordered with an add-on.
func WithVariant(name, variant string) string {
	if variant == "" {
		return name
	}
	return fmt.Sprintf("%s w/ %s", name, variant)
}
