package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
)

const (
	MinQuantity = 1
	MaxQuantity = 100
)

type PendingOrder struct {
	OrderNumber     int         `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	TableIdentifier string      `json:"table"`
	SubmittedAt     time.Time   `json:"submitted_at"`
	Status          OrderStatus `json:"status"`
}

// LineItem keeps the unit price captured when the item was added.
type LineItem struct {
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity" validate:"min=1,max=100"`
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CompletedOrder struct {
	OrderNumber     int             `json:"order_number"`
	CustomerName    string          `json:"customer_name"`
	TableIdentifier string          `json:"table"`
	Items           []LineItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	CompletedAt     time.Time       `json:"completed_at"`
}

// ItemCount is the number of line items, not the sum of quantities.
func (o CompletedOrder) ItemCount() int {
	return len(o.Items)
}

type SalesSummary struct {
	OrderCount        int             `json:"order_count"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalItemsSold    int             `json:"total_items_sold"`
}

// CopyItems returns a copy of items that shares no backing array with the input.
func CopyItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
