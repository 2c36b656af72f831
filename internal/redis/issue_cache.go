package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cityDesk/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const issueSnapshotKey = "issues:all"

// IssueCache stores the whole issue list as one JSON blob. Writers
// invalidate it rather than patching entries in place.
type IssueCache struct {
	client goredis.Cmdable
	key    string
}

func NewIssueCache(client goredis.Cmdable) *IssueCache {
	return &IssueCache{
		client: client,
		key:    issueSnapshotKey,
	}
}

func (c *IssueCache) GetAll(ctx context.Context) ([]domain.Issue, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	issues := []domain.Issue{}
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, err
	}

	return issues, nil
}

func (c *IssueCache) SetAll(ctx context.Context, issues []domain.Issue, ttl time.Duration) error {
	if issues == nil {
		issues = []domain.Issue{}
	}
	b, err := json.Marshal(issues)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *IssueCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
