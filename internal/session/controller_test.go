package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/menu"
	"github.com/shopspring/decimal"
)

type recordingSink struct {
	sessionIDs []string
	orders     []domain.CompletedOrder
	err        error
}

func (s *recordingSink) OrderCompleted(ctx context.Context, sessionID string, order domain.CompletedOrder) error {
	s.sessionIDs = append(s.sessionIDs, sessionID)
	s.orders = append(s.orders, order)
	return s.err
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testNow = time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)

func newController(opts ...Option) *Controller {
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return New(menu.Default(), opts...)
}

func TestScenario_SubmitProcessCorrectComplete(t *testing.T) {
	c := newController(WithAutoActivate(false))

	a, err := c.Submit("Alice", "T1")
	if err != nil || a.OrderNumber != 1001 || a.Activated {
		t.Fatalf("unexpected first submission: %+v (%v)", a, err)
	}
	b, _ := c.Submit("Bob", "T2")
	if b.OrderNumber != 1002 || b.Position != 2 {
		t.Fatalf("unexpected second submission: %+v", b)
	}

	order, err := c.ActivateNext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderNumber != 1001 || order.CustomerName != "Alice" || order.TableIdentifier != "T1" {
		t.Fatalf("expected Alice/T1/1001, got %+v", order)
	}

	if _, err := c.AddItem("Fries", d("90.00"), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, _ := c.Active()
	if !view.Total.Equal(d("180.00")) {
		t.Fatalf("expected total 180.00, got %s", view.Total)
	}

	if _, err := c.RemoveLastItem(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, _ = c.Active()
	if !view.Total.IsZero() || len(view.Items) != 0 {
		t.Fatalf("expected empty order, got %+v", view)
	}

	c.AddItem("Fries", d("90.00"), 2)
	completed, err := c.Complete(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed.OrderNumber != 1001 || !completed.CompletedAt.Equal(testNow) {
		t.Errorf("unexpected completed order: %+v", completed)
	}

	s := c.Summary()
	if s.OrderCount != 1 || !s.TotalSales.Equal(d("180")) || !s.AverageOrderValue.Equal(d("180")) {
		t.Errorf("unexpected summary: %+v", s)
	}
	if c.PendingCount() != 1 {
		t.Errorf("expected Bob still pending, got %d", c.PendingCount())
	}
}

func TestSubmit_AutoActivatesWhenIdle(t *testing.T) {
	c := newController()

	first, _ := c.Submit("Alice", "T1")
	if !first.Activated {
		t.Fatalf("expected first submission to activate")
	}
	second, _ := c.Submit("Bob", "T2")
	if second.Activated || second.Position != 1 {
		t.Fatalf("expected second submission to queue at position 1, got %+v", second)
	}

	active, ok := c.Active()
	if !ok || active.Order.OrderNumber != 1001 || active.Order.Status != domain.StatusInProgress {
		t.Fatalf("unexpected active order: %+v", active)
	}
}

func TestSubmit_AutoActivateKeepsFIFO(t *testing.T) {
	c := newController()

	c.Submit("Alice", "T1")
	c.Submit("Bob", "T2")
	c.AddMenuItem(1, 0, 1)
	c.Complete(context.Background())

	// Bob has waited longer than Cara, so Bob is activated.
	sub, err := c.Submit("Cara", "T3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Activated {
		t.Errorf("Cara must not jump the queue")
	}

	active, _ := c.Active()
	if active.Order.CustomerName != "Bob" {
		t.Errorf("expected Bob active, got %s", active.Order.CustomerName)
	}
}

func TestActivateNext_SingleActiveInvariant(t *testing.T) {
	c := newController(WithAutoActivate(false))

	if _, err := c.ActivateNext(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("expected ErrQueueEmpty, got %v", err)
	}

	c.Submit("Alice", "T1")
	c.Submit("Bob", "T2")
	c.ActivateNext()

	if _, err := c.ActivateNext(); !errors.Is(err, ErrOrderActive) {
		t.Fatalf("expected ErrOrderActive, got %v", err)
	}
	if c.PendingCount() != 1 {
		t.Errorf("failed activation must not dequeue, pending=%d", c.PendingCount())
	}
}

func TestOperationsWithoutActiveOrder(t *testing.T) {
	c := newController()

	if _, err := c.AddMenuItem(1, 0, 1); !errors.Is(err, ErrNoActiveOrder) {
		t.Errorf("AddMenuItem: expected ErrNoActiveOrder, got %v", err)
	}
	if _, err := c.RemoveLastItem(); !errors.Is(err, ErrNoActiveOrder) {
		t.Errorf("RemoveLastItem: expected ErrNoActiveOrder, got %v", err)
	}
	if _, err := c.Complete(context.Background()); !errors.Is(err, ErrNoActiveOrder) {
		t.Errorf("Complete: expected ErrNoActiveOrder, got %v", err)
	}
	if _, err := c.Abandon(); !errors.Is(err, ErrNoActiveOrder) {
		t.Errorf("Abandon: expected ErrNoActiveOrder, got %v", err)
	}
}

func TestAddMenuItem(t *testing.T) {
	c := newController()
	c.Submit("Alice", "T1")

	item, err := c.AddMenuItem(2, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Chicken Wings w/ BBQ" || !item.UnitPrice.Equal(d("150")) || item.Quantity != 3 {
		t.Errorf("unexpected item: %+v", item)
	}

	if _, err := c.AddMenuItem(0, 0, 1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := c.AddMenuItem(21, 0, 1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := c.AddMenuItem(1, 0, 101); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := c.AddMenuItem(1, 9, 1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for variant, got %v", err)
	}

	active, _ := c.Active()
	if len(active.Items) != 1 || !active.Total.Equal(d("450")) {
		t.Errorf("failed adds must not change the order: %+v", active)
	}
}

func TestComplete_RejectsEmptyOrder(t *testing.T) {
	c := newController()
	c.Submit("Alice", "T1")

	if _, err := c.Complete(context.Background()); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if _, ok := c.Active(); !ok {
		t.Errorf("order must remain active")
	}
	if len(c.Completed()) != 0 {
		t.Errorf("nothing must be recorded")
	}
}

func TestComplete_NotifiesSinks(t *testing.T) {
	ok := &recordingSink{}
	failing := &recordingSink{err: errors.New("broker down")}
	c := newController(WithSessionID("session-1"), WithSinks(failing, ok))

	c.Submit("Alice", "T1")
	c.AddMenuItem(5, 1, 2)

	completed, err := c.Complete(context.Background())
	if err != nil {
		t.Fatalf("sink failure must not fail completion: %v", err)
	}

	if len(ok.orders) != 1 || ok.orders[0].OrderNumber != completed.OrderNumber {
		t.Fatalf("sink did not receive the order: %+v", ok.orders)
	}
	if ok.sessionIDs[0] != "session-1" {
		t.Errorf("expected session id session-1, got %s", ok.sessionIDs[0])
	}
	if len(c.Completed()) != 1 {
		t.Errorf("expected order in ledger")
	}
	if _, active := c.Active(); active {
		t.Errorf("active slot must be free after completion")
	}
}

func TestAbandon(t *testing.T) {
	c := newController()
	c.Submit("Alice", "T1")
	c.Submit("Bob", "T2")
	c.AddMenuItem(1, 0, 1)

	order, err := c.Abandon()
	if err != nil || order.OrderNumber != 1001 {
		t.Fatalf("unexpected abandon result: %+v (%v)", order, err)
	}
	if len(c.Completed()) != 0 {
		t.Errorf("abandoned orders must not be recorded")
	}

	next, err := c.ActivateNext()
	if err != nil || next.CustomerName != "Bob" {
		t.Errorf("expected Bob next, got %+v (%v)", next, err)
	}
}

func TestSessionIDGenerated(t *testing.T) {
	a := New(menu.Default())
	b := New(menu.Default())

	if a.SessionID() == "" || a.SessionID() == b.SessionID() {
		t.Errorf("expected distinct session ids, got %q and %q", a.SessionID(), b.SessionID())
	}
}
