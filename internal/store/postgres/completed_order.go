package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/repo"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CompletedOrderRepository struct {
	pool *pgxpool.Pool
}

func NewCompletedOrderRepository(pool *pgxpool.Pool) *CompletedOrderRepository {
	return &CompletedOrderRepository{pool: pool}
}

// Upsert replaces the stored order and its items in one transaction.
func (r *CompletedOrderRepository) Upsert(ctx context.Context, order *domain.ArchivedOrder) (err error) {
	if order.ArchivedAt.IsZero() {
		order.ArchivedAt = time.Now()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	o := order.Order
	upsertSQL := `
		INSERT INTO completed_orders
			(session_id, order_number, customer_name, table_identifier, total, completed_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id, order_number) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			table_identifier = EXCLUDED.table_identifier,
			total = EXCLUDED.total,
			completed_at = EXCLUDED.completed_at,
			archived_at = EXCLUDED.archived_at
	`
	if _, err = tx.Exec(ctx, upsertSQL,
		order.SessionID, o.OrderNumber, o.CustomerName, o.TableIdentifier,
		o.Total.StringFixed(2), o.CompletedAt, order.ArchivedAt,
	); err != nil {
		return fmt.Errorf("failed to upsert completed order: %w", err)
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM completed_order_items WHERE session_id = $1 AND order_number = $2`,
		order.SessionID, o.OrderNumber,
	); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}

	batch := &pgx.Batch{}
	for i, item := range o.Items {
		batch.Queue(`
			INSERT INTO completed_order_items (session_id, order_number, position, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.SessionID, o.OrderNumber, i, item.Name, item.UnitPrice.StringFixed(2), item.Quantity)
	}
	if batch.Len() > 0 {
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit completed order: %w", err)
	}

	return nil
}

func (r *CompletedOrderRepository) Get(ctx context.Context, sessionID string, orderNumber int) (*domain.ArchivedOrder, error) {
	q := `
		SELECT session_id, order_number, customer_name, table_identifier, total::text, completed_at, archived_at
		FROM completed_orders
		WHERE session_id = $1 AND order_number = $2
	`
	order, err := scanOrder(r.pool.QueryRow(ctx, q, sessionID, orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get completed order: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *CompletedOrderRepository) ListCompletedBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.ArchivedOrder, error) {
	q := `
		SELECT session_id, order_number, customer_name, table_identifier, total::text, completed_at, archived_at
		FROM completed_orders
		WHERE completed_at >= $1 AND completed_at < $2
		ORDER BY completed_at ASC, order_number ASC
	`
	args := []any{from, to}
	if limit > 0 {
		q += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed orders: %w", err)
	}

	var orders []domain.ArchivedOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan completed order: %w", err)
		}
		orders = append(orders, *order)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completed orders: %w", err)
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *CompletedOrderRepository) loadItems(ctx context.Context, order *domain.ArchivedOrder) error {
	q := `
		SELECT name, unit_price::text, quantity
		FROM completed_order_items
		WHERE session_id = $1 AND order_number = $2
		ORDER BY position ASC
	`
	rows, err := r.pool.Query(ctx, q, order.SessionID, order.Order.OrderNumber)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var (
			item  domain.LineItem
			price string
		)
		if err := rows.Scan(&item.Name, &price, &item.Quantity); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		if item.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return fmt.Errorf("failed to parse unit price %q: %w", price, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order items: %w", err)
	}

	order.Order.Items = items
	return nil
}

func scanOrder(row pgx.Row) (*domain.ArchivedOrder, error) {
	var (
		order domain.ArchivedOrder
		total string
	)
	err := row.Scan(
		&order.SessionID,
		&order.Order.OrderNumber,
		&order.Order.CustomerName,
		&order.Order.TableIdentifier,
		&total,
		&order.Order.CompletedAt,
		&order.ArchivedAt,
	)
	if err != nil {
		return nil, err
	}

	if order.Order.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("failed to parse total %q: %w", total, err)
	}

	return &order, nil
}
