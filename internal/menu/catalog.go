package menu

import (
	"fmt"
	"strings"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/shopspring/decimal"
)

// Item is a catalog row before numbering.
type Item struct {
	Name     string          `yaml:"name"`
	Price    decimal.Decimal `yaml:"price"`
	Category domain.Category `yaml:"category"`
	Variants []string        `yaml:"variants"`
}

// Catalog is the fixed menu for a run. Numbers are 1-based; storage is 0-based.
type Catalog struct {
	entries []domain.MenuEntry
}

// BoardRow is one category line of the menu board.
type BoardRow struct {
	Category domain.Category
	Entries  []domain.MenuEntry
}

func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("menu", "must contain at least one item")
	}

	entries := make([]domain.MenuEntry, 0, len(items))
	for i, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("item %d name", i+1), "must not be empty")
		}
		if item.Price.IsNegative() {
			return nil, domain.NewValidationError(fmt.Sprintf("item %d price", i+1), "must not be negative")
		}
		if !item.Category.Valid() {
			return nil, domain.NewValidationError(fmt.Sprintf("item %d category", i+1), fmt.Sprintf("unknown category %q", item.Category))
		}

		variants := make([]string, 0, len(item.Variants))
		for _, v := range item.Variants {
			if v = strings.TrimSpace(v); v != "" {
				variants = append(variants, v)
			}
		}

		entries = append(entries, domain.MenuEntry{
			Number:   i + 1,
			Name:     name,
			Price:    item.Price.Round(2),
			Category: item.Category,
			Variants: variants,
		})
	}

	return &Catalog{entries: entries}, nil
}

func (c *Catalog) Count() int {
	return len(c.entries)
}

// Lookup returns false for numbers outside [1, Count()].
func (c *Catalog) Lookup(number int) (domain.MenuEntry, bool) {
	idx := number - 1
	if idx < 0 || idx >= len(c.entries) {
		return domain.MenuEntry{}, false
	}
	return cloneEntry(c.entries[idx]), true
}

func (c *Catalog) VariantsOf(number int) []string {
	entry, ok := c.Lookup(number)
	if !ok {
		return []string{}
	}
	return entry.Variants
}

// ItemName resolves a variant choice for an entry: 0 is the plain item,
// 1..len(variants) picks an add-on.
func (c *Catalog) ItemName(number, variantChoice int) (string, error) {
	entry, ok := c.Lookup(number)
	if !ok {
		return "", domain.NewValidationError("item number", fmt.Sprintf("must be between 1 and %d", c.Count()))
	}
	if variantChoice == 0 {
		return entry.Name, nil
	}
	if variantChoice < 0 || variantChoice > len(entry.Variants) {
		return "", domain.NewValidationError("variant", fmt.Sprintf("must be between 0 and %d", len(entry.Variants)))
	}
	return domain.WithVariant(entry.Name, entry.Variants[variantChoice-1]), nil
}

func (c *Catalog) Entries() []domain.MenuEntry {
	out := make([]domain.MenuEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Categories lists categories in the order they first appear in the catalog.
func (c *Catalog) Categories() []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

func (c *Catalog) Board() []BoardRow {
	rows := make([]BoardRow, 0, 4)
	index := make(map[domain.Category]int)
	for _, e := range c.entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(rows)
			index[e.Category] = i
			rows = append(rows, BoardRow{Category: e.Category})
		}
		rows[i].Entries = append(rows[i].Entries, cloneEntry(e))
	}
	return rows
}

func cloneEntry(e domain.MenuEntry) domain.MenuEntry {
	variants := make([]string, len(e.Variants))
	copy(variants, e.Variants)
	e.Variants = variants
	return e
}
