package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueOrderCompleted    = "order-completed"
	QueueOrderCompletedDLQ = "order-completed-dlq"
)

// DeadLetterQueue is where messages from queueName go once retries run out.
func DeadLetterQueue(queueName string) string {
	return queueName + "-dlq"
}
