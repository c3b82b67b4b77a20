package queue

import (
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestBackoff(t *testing.T) {
	base := 2 * time.Second

	for retry, want := range []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second} {
		if got := Backoff(base, retry); got != want {
			t.Errorf("retry %d: expected %v, got %v", retry, want, got)
		}
	}
}

func TestRetryCountOf(t *testing.T) {
	tests := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{name: "nil headers", headers: nil, want: 0},
		{name: "missing header", headers: amqp.Table{}, want: 0},
		{name: "int32", headers: amqp.Table{headerRetryCount: int32(2)}, want: 2},
		{name: "int64", headers: amqp.Table{headerRetryCount: int64(3)}, want: 3},
		{name: "wrong type", headers: amqp.Table{headerRetryCount: "1"}, want: 0},
	}

	for _, tt := range tests {
		if got := retryCountOf(tt.headers); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestDeadLetterQueue(t *testing.T) {
	if got := DeadLetterQueue(QueueOrderCompleted); got != QueueOrderCompletedDLQ {
		t.Errorf("expected %s, got %s", QueueOrderCompletedDLQ, got)
	}
}
