package orders

import (
	"strings"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
)

const FirstOrderNumber = 1001

// Queue holds submitted orders in strict submission order.
type Queue struct {
	pending []domain.PendingOrder
	next    int
	now     func() time.Time
}

type QueueOption func(*Queue)

func WithClock(now func() time.Time) QueueOption {
	return func(q *Queue) {
		q.now = now
	}
}

func WithFirstNumber(n int) QueueOption {
	return func(q *Queue) {
		q.next = n
	}
}

func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		next: FirstOrderNumber,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

type submission struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	TableIdentifier string `json:"table" validate:"required"`
}

// Submit appends a new pending order and returns its number. Numbers are
// never reused, even after ProcessNext or Clear.
func (q *Queue) Submit(customerName, tableIdentifier string) (int, error) {
	s := submission{
		CustomerName:    strings.TrimSpace(customerName),
		TableIdentifier: strings.TrimSpace(tableIdentifier),
	}
	if err := domain.ValidateStruct(s); err != nil {
		return 0, err
	}

	order := domain.PendingOrder{
		OrderNumber:     q.next,
		CustomerName:    s.CustomerName,
		TableIdentifier: s.TableIdentifier,
		SubmittedAt:     q.now(),
		Status:          domain.StatusPending,
	}
	q.pending = append(q.pending, order)
	q.next++

	return order.OrderNumber, nil
}

// ProcessNext removes the head of the queue and marks it in progress.
func (q *Queue) ProcessNext() (domain.PendingOrder, bool) {
	if len(q.pending) == 0 {
		return domain.PendingOrder{}, false
	}

	order := q.pending[0]
	q.pending[0] = domain.PendingOrder{}
	q.pending = q.pending[1:]
	order.Status = domain.StatusInProgress

	return order, true
}

func (q *Queue) PeekNext() (domain.PendingOrder, bool) {
	if len(q.pending) == 0 {
		return domain.PendingOrder{}, false
	}
	return q.pending[0], true
}

func (q *Queue) Size() int {
	return len(q.pending)
}

func (q *Queue) IsEmpty() bool {
	return len(q.pending) == 0
}

// Clear drops every pending order and reports how many were dropped.
func (q *Queue) Clear() int {
	n := len(q.pending)
	q.pending = nil
	return n
}

func (q *Queue) ListAll() []domain.PendingOrder {
	out := make([]domain.PendingOrder, len(q.pending))
	copy(out, q.pending)
	return out
}
