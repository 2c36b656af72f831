package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"

	"github.com/redis/go-redis/v9"
)

const EscalationQueueKey = "escalations:pending"

// EscalationQueue is a FIFO list: LPUSH on enqueue, BRPOP on dequeue.
type EscalationQueue struct {
	client redis.Cmdable
	key    string
}

func NewEscalationQueue(client redis.Cmdable, key string) *EscalationQueue {
	if key == "" {
		key = EscalationQueueKey
	}
	return &EscalationQueue{client: client, key: key}
}

func (q *EscalationQueue) Enqueue(ctx context.Context, event domain.EscalationEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// Dequeue blocks up to timeout and returns e.ErrQueueEmpty when nothing arrived.
func (q *EscalationQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.EscalationEvent, error) {
	var ev domain.EscalationEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}

func (q *EscalationQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
