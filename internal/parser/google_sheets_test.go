package parser

import (
	"testing"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/menu"
	"github.com/shopspring/decimal"
)

func TestParseRows(t *testing.T) {
	rows := [][]interface{}{
		{"Name", "Price", "Add-ons"},
		{"Appetizers"},
		{"Crispy Calamari", "220.00", "Garlic Aioli, Spicy Mayo"},
		{"Fries", "₱90.50"},
		{},
		{"Beverages", ""},
		{"Iced Tea", 65},
	}

	items, err := parseRows(rows)
	if err != nil {
		t.Fatalf("parseRows returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	calamari := items[0]
	if calamari.Category != domain.CategoryAppetizers || !calamari.Price.Equal(decimal.RequireFromString("220")) {
		t.Errorf("unexpected first item: %+v", calamari)
	}
	if len(calamari.Variants) != 2 || calamari.Variants[1] != "Spicy Mayo" {
		t.Errorf("unexpected add-ons: %v", calamari.Variants)
	}
	if !items[1].Price.Equal(decimal.RequireFromString("90.50")) || len(items[1].Variants) != 0 {
		t.Errorf("unexpected second item: %+v", items[1])
	}
	if items[2].Category != domain.CategoryBeverages || !items[2].Price.Equal(decimal.NewFromInt(65)) {
		t.Errorf("unexpected third item: %+v", items[2])
	}

	catalog, err := menu.New(items)
	if err != nil {
		t.Fatalf("parsed items rejected by catalog: %v", err)
	}
	if catalog.Count() != 3 {
		t.Errorf("expected catalog of 3, got %d", catalog.Count())
	}
}

func TestParseRows_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{"empty", nil},
		{"header only", [][]interface{}{{"Name", "Price"}}},
		{"item before category", [][]interface{}{{"Name", "Price"}, {"Fries", "90"}}},
		{"bad price", [][]interface{}{{"Name", "Price"}, {"Appetizers"}, {"Fries", "ninety"}}},
		{"categories only", [][]interface{}{{"Name", "Price"}, {"Appetizers"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseRows(tt.rows); err == nil {
				t.Error("expected error")
			}
		})
	}
}
