package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := NewValidationError("quantity", "must be at least 1")

	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected errors.Is(err, ErrValidation) to be true")
	}
	if err.Error() != "invalid quantity: must be at least 1" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidateStruct_LineItem(t *testing.T) {
	tests := []struct {
		name    string
		item    LineItem
		field   string
		wantErr bool
	}{
		{name: "valid", item: LineItem{Name: "Fries", Quantity: 2}},
		{name: "empty name", item: LineItem{Name: "", Quantity: 2}, field: "name", wantErr: true},
		{name: "zero quantity", item: LineItem{Name: "Fries", Quantity: 0}, field: "quantity", wantErr: true},
		{name: "too many", item: LineItem{Name: "Fries", Quantity: 101}, field: "quantity", wantErr: true},
		{name: "upper bound", item: LineItem{Name: "Fries", Quantity: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.item)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestLineItemSubtotal(t *testing.T) {
	item := LineItem{Name: "Fries", UnitPrice: decimal.RequireFromString("90.00"), Quantity: 2}

	if !item.Subtotal().Equal(decimal.RequireFromString("180.00")) {
		t.Errorf("expected 180.00, got %s", item.Subtotal())
	}
}

func TestWithVariant(t *testing.T) {
	if got := WithVariant("Chicken Wings", "BBQ"); got != "Chicken Wings w/ BBQ" {
		t.Errorf("unexpected name %q", got)
	}
	if got := WithVariant("Chicken Wings", ""); got != "Chicken Wings" {
		t.Errorf("unexpected name %q", got)
	}
}
