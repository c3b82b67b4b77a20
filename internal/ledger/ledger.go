package ledger

import (
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/shopspring/decimal"
)

// Ledger is the append-only record of completed orders, in completion order.
type Ledger struct {
	orders []domain.CompletedOrder
}

func New() *Ledger {
	return &Ledger{}
}

// Record appends a snapshot built from a copy of items. The caller may reuse
// or discard items afterwards.
func (l *Ledger) Record(
	orderNumber int,
	customerName string,
	tableIdentifier string,
	items []domain.LineItem,
	total decimal.Decimal,
	completedAt time.Time,
) domain.CompletedOrder {
	order := domain.CompletedOrder{
		OrderNumber:     orderNumber,
		CustomerName:    customerName,
		TableIdentifier: tableIdentifier,
		Items:           domain.CopyItems(items),
		Total:           total,
		CompletedAt:     completedAt,
	}
	l.orders = append(l.orders, order)

	return snapshot(order)
}

func (l *Ledger) All() []domain.CompletedOrder {
	out := make([]domain.CompletedOrder, len(l.orders))
	for i, o := range l.orders {
		out[i] = snapshot(o)
	}
	return out
}

func (l *Ledger) Len() int {
	return len(l.orders)
}

func (l *Ledger) Summary() domain.SalesSummary {
	return Summarize(l.orders)
}

// Summarize aggregates any set of completed orders. The average is zero when
// there are no orders.
func Summarize(orders []domain.CompletedOrder) domain.SalesSummary {
	summary := domain.SalesSummary{
		OrderCount:        len(orders),
		TotalSales:        decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}

	for _, o := range orders {
		summary.TotalSales = summary.TotalSales.Add(o.Total)
		summary.TotalItemsSold += o.ItemCount()
	}

	if summary.OrderCount > 0 {
		summary.AverageOrderValue = summary.TotalSales.Div(decimal.NewFromInt(int64(summary.OrderCount)))
	}

	return summary
}

func snapshot(o domain.CompletedOrder) domain.CompletedOrder {
	o.Items = domain.CopyItems(o.Items)
	return o
}
