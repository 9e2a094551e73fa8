package posting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const postingQueueKey = "posting_jobs"

// PostJob is one publish/update request queued for the posting worker.
type PostJob struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Kind     ItemKind  `json:"kind"`
	RecordID uuid.UUID `json:"record_id"`
}

// Publisher enqueues posting jobs.
type Publisher interface {
	Publish(ctx context.Context, job PostJob) error
}

// RedisPublisher is a Publisher backed by a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// Publish pushes the job onto the left end of the queue list.
func (p *RedisPublisher) Publish(ctx context.Context, job PostJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal post job: %w", err)
	}
	if err := p.redisClient.LPush(ctx, postingQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish post job to Redis: %w", err)
	}
	return nil
}
