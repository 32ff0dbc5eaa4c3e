package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// feedCacheKey stores the whole aggregated feed under one key; the
// aggregate is identical for every user.
const feedCacheKey = "feed:aggregate"

// FeedCacheRepository caches the aggregated feed in Redis with a TTL.
type FeedCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewFeedCacheRepository creates a cache repository with the given TTL.
func NewFeedCacheRepository(client *redis.Client, expiration time.Duration) *FeedCacheRepository {
	return &FeedCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached feed, or nil on a cache miss.
func (r *FeedCacheRepository) Get(ctx context.Context) ([]models.FeedItem, error) {
	data, err := r.client.Get(ctx, feedCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read feed cache", "error", err)
		return nil, err
	}

	var items []models.FeedItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Log.Errorw("failed to decode cached feed", "error", err)
		return nil, err
	}
	return items, nil
}

// Set stores the aggregated feed with the configured TTL.
func (r *FeedCacheRepository) Set(ctx context.Context, items []models.FeedItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, feedCacheKey, data, r.exp).Err()
}
