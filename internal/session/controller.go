package session

import (
	"context"
	"errors"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/ledger"
	"github.com/Beka01247/sizzlesync-pos/internal/menu"
	"github.com/Beka01247/sizzlesync-pos/internal/orders"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoActiveOrder = errors.New("no active order")
	ErrOrderActive   = errors.New("an order is already active")
	ErrQueueEmpty    = errors.New("no pending orders")
	ErrEmptyOrder    = errors.New("order has no items")
	ErrItemNotFound  = errors.New("menu item not found")
)

// CompletionSink is told about every order recorded in the ledger.
type CompletionSink interface {
	OrderCompleted(ctx context.Context, sessionID string, order domain.CompletedOrder) error
}

type Submission struct {
	OrderNumber int
	// Activated is true when the submission went straight to the active slot.
	Activated bool
	Position  int
}

type ActiveOrder struct {
	Order domain.PendingOrder
	Items []domain.LineItem
	Total decimal.Decimal
}

type active struct {
	order domain.PendingOrder
	tab   *orders.Tab
}

// Controller owns all session state: one catalog, one queue, at most one
// active order and the ledger.
type Controller struct {
	id           string
	catalog      *menu.Catalog
	queue        *orders.Queue
	ledger       *ledger.Ledger
	current      *active
	autoActivate bool
	sinks        []CompletionSink
	now          func() time.Time
	logger       *zap.SugaredLogger
}

type Option func(*Controller)

// WithAutoActivate controls whether a submission made while no order is
// active becomes the active order immediately.
func WithAutoActivate(on bool) Option {
	return func(c *Controller) {
		c.autoActivate = on
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithSinks(sinks ...CompletionSink) Option {
	return func(c *Controller) {
		c.sinks = append(c.sinks, sinks...)
	}
}

func WithSessionID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

func New(catalog *menu.Catalog, opts ...Option) *Controller {
	c := &Controller{
		id:           uuid.New().String(),
		catalog:      catalog,
		ledger:       ledger.New(),
		autoActivate: true,
		now:          time.Now,
		logger:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.queue = orders.NewQueue(orders.WithClock(c.now))

	return c
}

func (c *Controller) SessionID() string {
	return c.id
}

func (c *Controller) Catalog() *menu.Catalog {
	return c.catalog
}

func (c *Controller) Submit(customerName, tableIdentifier string) (Submission, error) {
	number, err := c.queue.Submit(customerName, tableIdentifier)
	if err != nil {
		return Submission{}, err
	}

	c.logger.Infow("order submitted", "order_number", number, "queue_size", c.queue.Size())

	// Older queued orders are activated first, so the new order may still wait.
	if c.autoActivate && c.current == nil {
		order, err := c.ActivateNext()
		if err != nil {
			return Submission{}, err
		}
		if order.OrderNumber == number {
			return Submission{OrderNumber: number, Activated: true}, nil
		}
	}

	return Submission{OrderNumber: number, Position: c.queue.Size()}, nil
}

// ActivateNext moves the head of the queue into the active slot.
func (c *Controller) ActivateNext() (domain.PendingOrder, error) {
	if c.current != nil {
		return domain.PendingOrder{}, ErrOrderActive
	}

	order, ok := c.queue.ProcessNext()
	if !ok {
		return domain.PendingOrder{}, ErrQueueEmpty
	}

	c.current = &active{order: order, tab: orders.NewTab(order.OrderNumber)}
	c.logger.Infow("order activated", "order_number", order.OrderNumber, "remaining", c.queue.Size())

	return order, nil
}

func (c *Controller) Active() (ActiveOrder, bool) {
	if c.current == nil {
		return ActiveOrder{}, false
	}
	return ActiveOrder{
		Order: c.current.order,
		Items: c.current.tab.AllItems(),
		Total: c.current.tab.Total(),
	}, true
}

// AddMenuItem adds a catalog entry to the active order. The unit price is
// taken from the catalog now and not looked up again.
func (c *Controller) AddMenuItem(itemNumber, variantChoice, quantity int) (domain.LineItem, error) {
	if c.current == nil {
		return domain.LineItem{}, ErrNoActiveOrder
	}

	entry, ok := c.catalog.Lookup(itemNumber)
	if !ok {
		return domain.LineItem{}, ErrItemNotFound
	}

	name, err := c.catalog.ItemName(itemNumber, variantChoice)
	if err != nil {
		return domain.LineItem{}, err
	}

	return c.addItem(name, entry.Price, quantity)
}

func (c *Controller) AddItem(name string, unitPrice decimal.Decimal, quantity int) (domain.LineItem, error) {
	if c.current == nil {
		return domain.LineItem{}, ErrNoActiveOrder
	}
	return c.addItem(name, unitPrice, quantity)
}

func (c *Controller) addItem(name string, unitPrice decimal.Decimal, quantity int) (domain.LineItem, error) {
	if err := c.current.tab.AddItem(name, unitPrice, quantity); err != nil {
		return domain.LineItem{}, err
	}

	item, _ := c.current.tab.PeekLast()
	c.logger.Debugw("item added", "order_number", c.current.order.OrderNumber, "item", item.Name, "quantity", item.Quantity)

	return item, nil
}

func (c *Controller) RemoveLastItem() (domain.LineItem, error) {
	if c.current == nil {
		return domain.LineItem{}, ErrNoActiveOrder
	}

	item, ok := c.current.tab.RemoveLast()
	if !ok {
		return domain.LineItem{}, ErrEmptyOrder
	}

	c.logger.Debugw("item removed", "order_number", c.current.order.OrderNumber, "item", item.Name)

	return item, nil
}

// Complete records the active order in the ledger and frees the active slot.
// Sink errors are logged; the order stays completed.
func (c *Controller) Complete(ctx context.Context) (domain.CompletedOrder, error) {
	if c.current == nil {
		return domain.CompletedOrder{}, ErrNoActiveOrder
	}
	if c.current.tab.ItemCount() == 0 {
		return domain.CompletedOrder{}, ErrEmptyOrder
	}

	cur := c.current
	completed := c.ledger.Record(
		cur.order.OrderNumber,
		cur.order.CustomerName,
		cur.order.TableIdentifier,
		cur.tab.AllItems(),
		cur.tab.Total(),
		c.now(),
	)
	c.current = nil

	c.logger.Infow("order completed",
		"order_number", completed.OrderNumber,
		"total", completed.Total.StringFixed(2),
		"items", completed.ItemCount(),
	)

	for _, sink := range c.sinks {
		if err := sink.OrderCompleted(ctx, c.id, completed); err != nil {
			c.logger.Errorw("failed to notify completion sink", "order_number", completed.OrderNumber, "error", err)
		}
	}

	return completed, nil
}

// Abandon drops the active order without recording it.
func (c *Controller) Abandon() (domain.PendingOrder, error) {
	if c.current == nil {
		return domain.PendingOrder{}, ErrNoActiveOrder
	}

	order := c.current.order
	c.current = nil
	c.logger.Warnw("order abandoned", "order_number", order.OrderNumber)

	return order, nil
}

func (c *Controller) Pending() []domain.PendingOrder {
	return c.queue.ListAll()
}

func (c *Controller) NextPending() (domain.PendingOrder, bool) {
	return c.queue.PeekNext()
}

func (c *Controller) PendingCount() int {
	return c.queue.Size()
}

func (c *Controller) ClearQueue() int {
	n := c.queue.Clear()
	c.logger.Infow("queue cleared", "removed", n)
	return n
}

func (c *Controller) Completed() []domain.CompletedOrder {
	return c.ledger.All()
}

func (c *Controller) Summary() domain.SalesSummary {
	return c.ledger.Summary()
}
