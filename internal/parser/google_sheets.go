package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/menu"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(ctx context.Context, cfg Config) (*GoogleSheetsParser, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseMenu reads the menu sheet. The first row is a header. A row with only
// column A set starts a category; item rows are name | price | add-ons, with
// add-ons separated by commas.
func (p *GoogleSheetsParser) ParseMenu(ctx context.Context, spreadsheetID string) ([]menu.Item, error) {
	readRange := "A:C"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return parseRows(resp.Values)
}

func parseRows(rows [][]interface{}) ([]menu.Item, error) {
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	var (
		items           []menu.Item
		currentCategory domain.Category
	)

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || cell(row, 0) == "" {
			continue
		}

		// category row
		if cell(row, 1) == "" {
			currentCategory = domain.Category(cell(row, 0))
			continue
		}

		if currentCategory == "" {
			return nil, fmt.Errorf("row %d: item %q appears before any category", i+1, cell(row, 0))
		}

		price, err := decimal.NewFromString(strings.TrimPrefix(cell(row, 1), "₱"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", i+1, cell(row, 1), err)
		}

		item := menu.Item{
			Name:     cell(row, 0),
			Price:    price,
			Category: currentCategory,
		}
		if addOns := cell(row, 2); addOns != "" {
			for _, v := range strings.Split(addOns, ",") {
				if v = strings.TrimSpace(v); v != "" {
					item.Variants = append(item.Variants, v)
				}
			}
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no menu items found in spreadsheet")
	}

	return items, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}
