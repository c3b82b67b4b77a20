package orders

import (
	"errors"
	"testing"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestSubmit_NumbersIncreaseFrom1001(t *testing.T) {
	q := NewQueue(WithClock(fixedClock()))

	want := FirstOrderNumber
	for i := 0; i < 6; i++ {
		n, err := q.Submit("Guest", "T1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != want {
			t.Fatalf("expected order number %d, got %d", want, n)
		}
		want++

		// interleaved dequeues must not affect numbering
		if i%2 == 0 {
			q.ProcessNext()
		}
	}

	q.Clear()
	n, _ := q.Submit("Late", "T9")
	if n != want {
		t.Errorf("expected %d after clear, got %d", want, n)
	}
}

func TestSubmit_Validation(t *testing.T) {
	q := NewQueue()

	tests := []struct {
		customer string
		table    string
	}{
		{"", "T1"},
		{"   ", "T1"},
		{"Alice", ""},
		{"Alice", "\t"},
	}

	for _, tt := range tests {
		if _, err := q.Submit(tt.customer, tt.table); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Submit(%q, %q): expected validation error, got %v", tt.customer, tt.table, err)
		}
	}

	if q.Size() != 0 {
		t.Errorf("failed submissions must not enqueue, size=%d", q.Size())
	}

	n, _ := q.Submit("Alice", "T1")
	if n != FirstOrderNumber {
		t.Errorf("failed submissions must not consume numbers, got %d", n)
	}
}

func TestProcessNext_FIFO(t *testing.T) {
	q := NewQueue(WithClock(fixedClock()))
	q.Submit("Alice", "T1")
	q.Submit("Bob", "T2")
	q.Submit("Cara", "T3")

	peek, ok := q.PeekNext()
	if !ok || peek.CustomerName != "Alice" {
		t.Fatalf("expected Alice at head, got %+v", peek)
	}
	if q.Size() != 3 {
		t.Errorf("peek must not remove, size=%d", q.Size())
	}

	var prev time.Time
	for _, want := range []string{"Alice", "Bob", "Cara"} {
		order, ok := q.ProcessNext()
		if !ok {
			t.Fatalf("expected an order for %s", want)
		}
		if order.CustomerName != want {
			t.Errorf("expected %s, got %s", want, order.CustomerName)
		}
		if order.Status != domain.StatusInProgress {
			t.Errorf("expected status In Progress, got %s", order.Status)
		}
		if !order.SubmittedAt.After(prev) {
			t.Errorf("orders must come out in submission order")
		}
		prev = order.SubmittedAt
	}

	if _, ok := q.ProcessNext(); ok {
		t.Errorf("expected empty queue")
	}
	if !q.IsEmpty() {
		t.Errorf("expected IsEmpty to be true")
	}
}

func TestListAll_ReturnsCopy(t *testing.T) {
	q := NewQueue()
	q.Submit("Alice", "T1")
	q.Submit("Bob", "T2")

	list := q.ListAll()
	if len(list) != 2 || list[0].CustomerName != "Alice" || list[1].CustomerName != "Bob" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list[0].Status != domain.StatusPending {
		t.Errorf("expected pending status, got %s", list[0].Status)
	}

	list[0].CustomerName = "Mallory"
	if head, _ := q.PeekNext(); head.CustomerName != "Alice" {
		t.Errorf("queue was mutated through ListAll")
	}
}

func TestClear(t *testing.T) {
	q := NewQueue()
	q.Submit("Alice", "T1")
	q.Submit("Bob", "T2")

	if n := q.Clear(); n != 2 {
		t.Errorf("expected 2 cleared, got %d", n)
	}
	if n := q.Clear(); n != 0 {
		t.Errorf("expected 0 cleared, got %d", n)
	}
}
