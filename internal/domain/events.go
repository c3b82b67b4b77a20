package domain

import "time"

// OrderCompletedEvent is published for every order recorded in a session's ledger.
type OrderCompletedEvent struct {
	EventType string         `json:"event_type"`
	SessionID string         `json:"session_id" validate:"required"`
	Order     CompletedOrder `json:"order"`
	Timestamp time.Time      `json:"timestamp"`
}

const (
	EventOrderCompleted = "order.completed"
)

// ArchivedOrder is a completed order as kept by the sales archive.
type ArchivedOrder struct {
	SessionID  string         `json:"session_id"`
	Order      CompletedOrder `json:"order"`
	ArchivedAt time.Time      `json:"archived_at"`
}
