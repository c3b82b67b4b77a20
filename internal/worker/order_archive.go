package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/queue"
	"github.com/Beka01247/sizzlesync-pos/internal/service"
	"go.uber.org/zap"
)

type OrderArchiveWorker struct {
	archiveService *service.ArchiveService
	broker         queue.Broker
	logger         *zap.SugaredLogger
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewOrderArchiveWorker(
	archiveService *service.ArchiveService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderArchiveWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderArchiveWorker{
		archiveService: archiveService,
		broker:         broker,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

func (w *OrderArchiveWorker) Start() error {
	w.logger.Info("starting order archive worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderCompleted, w.handleMessage)
}

func (w *OrderArchiveWorker) Stop() {
	w.logger.Info("stopping order archive worker")
	w.cancel()
}

func (w *OrderArchiveWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderCompletedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing order completed event", "session_id", event.SessionID, "order_number", event.Order.OrderNumber)

	if err := w.archiveService.ProcessOrderCompletedEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process order completed event", "order_number", event.Order.OrderNumber, "error", err)
		return err
	}

	return nil
}
