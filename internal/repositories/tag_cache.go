package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
)

// TagCacheRepository caches each owner's distinct tag list in Redis
type TagCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached tag lists
}

func NewTagCacheRepository(client *redis.Client, expiration time.Duration) *TagCacheRepository {
	return &TagCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func tagsKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("tags:%s", ownerID)
}

// Get returns the cached tags of the owner. A miss returns nil, false, nil.
func (r *TagCacheRepository) Get(ctx context.Context, ownerID uuid.UUID) ([]string, bool, error) {
	key := tagsKey(ownerID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Infow("key", key, "result", "miss")
			return nil, false, nil
		}
		logger.Log.Errorw("key", key, "error", err)
		return nil, false, err
	}

	var tags []string
	if err := json.Unmarshal([]byte(val), &tags); err != nil {
		logger.Log.Errorw("key", key, "value", val, "error", err)
		return nil, false, err
	}
	if tags == nil {
		tags = []string{}
	}

	logger.Log.Infow("key", key, "result", "hit", "count", len(tags))
	return tags, true, nil
}

// Set caches tags for the owner with the repository expiration.
func (r *TagCacheRepository) Set(ctx context.Context, ownerID uuid.UUID, tags []string) error {
	key := tagsKey(ownerID)
	if tags == nil {
		tags = []string{}
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, string(raw), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"count", len(tags),
		"error", err,
	)

	return err
}

// Invalidate drops the cached tags of the owner.
func (r *TagCacheRepository) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	key := tagsKey(ownerID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
