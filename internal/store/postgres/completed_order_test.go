package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/repo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func TestCompletedOrderRepository(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	storage, err := New(ctx, Config{URL: url, MaxConns: 2, Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer storage.Close(ctx)

	r := NewCompletedOrderRepository(storage.Pool())
	sessionID := uuid.New().String()
	completedAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	order := &domain.ArchivedOrder{
		SessionID: sessionID,
		Order: domain.CompletedOrder{
			OrderNumber:     1001,
			CustomerName:    "Alice",
			TableIdentifier: "T1",
			Items: []domain.LineItem{
				{Name: "Calamari w/ Vinegar", UnitPrice: decimal.RequireFromString("180.00"), Quantity: 2},
				{Name: "Iced Tea", UnitPrice: decimal.RequireFromString("50.00"), Quantity: 1},
			},
			Total:       decimal.RequireFromString("410.00"),
			CompletedAt: completedAt,
		},
	}

	if err := r.Upsert(ctx, order); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	// redelivery with fewer items replaces the stored order
	order.Order.Items = order.Order.Items[:1]
	order.Order.Total = decimal.RequireFromString("360.00")
	if err := r.Upsert(ctx, order); err != nil {
		t.Fatalf("second Upsert returned error: %v", err)
	}

	got, err := r.Get(ctx, sessionID, 1001)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got.Order.Items) != 1 || !got.Order.Total.Equal(decimal.RequireFromString("360")) {
		t.Errorf("unexpected stored order: %+v", got.Order)
	}

	list, err := r.ListCompletedBetween(ctx, completedAt.Add(-time.Minute), completedAt.Add(time.Minute), 0)
	if err != nil {
		t.Fatalf("ListCompletedBetween returned error: %v", err)
	}
	found := false
	for _, o := range list {
		if o.SessionID == sessionID {
			found = true
		}
	}
	if !found {
		t.Error("archived order missing from range query")
	}

	if _, err := r.Get(ctx, sessionID, 9999); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
