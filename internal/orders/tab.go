package orders

import (
	"strings"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/shopspring/decimal"
)

// Tab is the order being built. Items are corrected last-in first-out.
type Tab struct {
	orderNumber int
	items       []domain.LineItem
}

func NewTab(orderNumber int) *Tab {
	return &Tab{orderNumber: orderNumber}
}

func (t *Tab) OrderNumber() int {
	return t.orderNumber
}

func (t *Tab) AddItem(name string, unitPrice decimal.Decimal, quantity int) error {
	item := domain.LineItem{
		Name:      strings.TrimSpace(name),
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
	if err := domain.ValidateStruct(item); err != nil {
		return err
	}
	if unitPrice.IsNegative() {
		return domain.NewValidationError("unit_price", "must not be negative")
	}

	t.items = append(t.items, item)
	return nil
}

// RemoveLast pops the most recently added item.
func (t *Tab) RemoveLast() (domain.LineItem, bool) {
	n := len(t.items)
	if n == 0 {
		return domain.LineItem{}, false
	}

	item := t.items[n-1]
	t.items = t.items[:n-1]
	return item, true
}

func (t *Tab) PeekLast() (domain.LineItem, bool) {
	n := len(t.items)
	if n == 0 {
		return domain.LineItem{}, false
	}
	return t.items[n-1], true
}

// Total is recomputed from the current items on every call.
func (t *Tab) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (t *Tab) ItemCount() int {
	return len(t.items)
}

// AllItems returns the items oldest first, the reverse of removal order.
func (t *Tab) AllItems() []domain.LineItem {
	return domain.CopyItems(t.items)
}

func (t *Tab) Clear() {
	t.items = nil
}
