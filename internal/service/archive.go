package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/ledger"
	"github.com/Beka01247/sizzlesync-pos/internal/queue"
	"github.com/Beka01247/sizzlesync-pos/internal/repo"
	"go.uber.org/zap"
)

// MaxOrdersPerDay caps how many archived orders a single day query returns.
const MaxOrdersPerDay = 5000

type ArchiveService struct {
	repo   repo.CompletedOrderRepository
	broker queue.Broker
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewArchiveService(
	repo repo.CompletedOrderRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ArchiveService {
	return &ArchiveService{
		repo:   repo,
		broker: broker,
		logger: logger,
		now:    time.Now,
	}
}

// OrderCompleted publishes the completed order to the archive queue.
func (s *ArchiveService) OrderCompleted(ctx context.Context, sessionID string, order domain.CompletedOrder) error {
	if s.broker == nil {
		return fmt.Errorf("failed to publish order %d: no broker configured", order.OrderNumber)
	}

	event := domain.OrderCompletedEvent{
		EventType: domain.EventOrderCompleted,
		SessionID: sessionID,
		Order:     order,
		Timestamp: s.now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderCompleted, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order completed event", "order_number", order.OrderNumber, "error", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	s.logger.Infow("order completed event queued", "session_id", sessionID, "order_number", order.OrderNumber)

	return nil
}

func (s *ArchiveService) ProcessOrderCompletedEvent(ctx context.Context, event domain.OrderCompletedEvent) error {
	if err := domain.ValidateStruct(event); err != nil {
		return err
	}
	if event.Order.OrderNumber <= 0 {
		return domain.NewValidationError("order_number", "must be positive")
	}
	for _, item := range event.Order.Items {
		if err := domain.ValidateStruct(item); err != nil {
			return err
		}
	}

	archived := &domain.ArchivedOrder{
		SessionID:  event.SessionID,
		Order:      event.Order,
		ArchivedAt: s.now(),
	}

	if err := s.repo.Upsert(ctx, archived); err != nil {
		s.logger.Errorw("failed to archive order", "session_id", event.SessionID, "order_number", event.Order.OrderNumber, "error", err)
		return fmt.Errorf("failed to archive order: %w", err)
	}

	s.logger.Infow("order archived", "session_id", event.SessionID, "order_number", event.Order.OrderNumber)

	return nil
}

func (s *ArchiveService) Get(ctx context.Context, sessionID string, orderNumber int) (*domain.ArchivedOrder, error) {
	order, err := s.repo.Get(ctx, sessionID, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get archived order: %w", err)
	}

	return order, nil
}

// ListByDay returns the orders completed on day's calendar date, in day's location.
func (s *ArchiveService) ListByDay(ctx context.Context, day time.Time) ([]domain.ArchivedOrder, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	orders, err := s.repo.ListCompletedBetween(ctx, from, to, MaxOrdersPerDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived orders: %w", err)
	}

	return orders, nil
}

func (s *ArchiveService) DailySummary(ctx context.Context, day time.Time) (domain.SalesSummary, error) {
	archived, err := s.ListByDay(ctx, day)
	if err != nil {
		return domain.SalesSummary{}, err
	}

	completed := make([]domain.CompletedOrder, 0, len(archived))
	for _, a := range archived {
		completed = append(completed, a.Order)
	}

	return ledger.Summarize(completed), nil
}
