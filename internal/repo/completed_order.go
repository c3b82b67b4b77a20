package repo

import (
	"context"
	"errors"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
)

var ErrNotFound = errors.New("archived order not found")

type CompletedOrderRepository interface {
	// Upsert stores the order keyed by session id and order number.
	// Storing the same order twice leaves one copy.
	Upsert(ctx context.Context, order *domain.ArchivedOrder) error
	Get(ctx context.Context, sessionID string, orderNumber int) (*domain.ArchivedOrder, error)
	// ListCompletedBetween returns orders completed in [from, to), oldest first.
	ListCompletedBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.ArchivedOrder, error)
}
