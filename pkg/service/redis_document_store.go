package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/pkg/state"
)

const (
	// documentStoreKeyPrefix is the prefix for all user document keys
	documentStoreKeyPrefix = "santa_skill:user_doc:"
)

// RedisDocumentStore implements DocumentStore using Redis.
type RedisDocumentStore struct {
	client redis.UniversalClient
	cfg    RedisDocumentStoreConfig
}

type RedisDocumentStoreConfig struct {
	// TTL expires idle documents. Zero keeps them forever.
	TTL time.Duration
}

// NewRedisDocumentStore creates a new Redis-backed document store.
func NewRedisDocumentStore(
	client redis.UniversalClient,
	cfg RedisDocumentStoreConfig,
) *RedisDocumentStore {
	return &RedisDocumentStore{
		client: client,
		cfg:    cfg,
	}
}

// makeDocumentStoreKey creates a Redis key for a user
func makeDocumentStoreKey(userID string) string {
	return fmt.Sprintf("%s%s", documentStoreKeyPrefix, userID)
}

// Load retrieves the document for a user from Redis
func (r *RedisDocumentStore) Load(ctx context.Context, userID string) (*state.Document, error) {
	key := makeDocumentStoreKey(userID)

	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debugf("no existing document for user %s", userID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc state.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return &doc, nil
}

// Save writes the document for a user to Redis
func (r *RedisDocumentStore) Save(ctx context.Context, userID string, doc *state.Document) error {
	key := makeDocumentStoreKey(userID)

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.cfg.TTL).Err(); err != nil {
		logrus.Errorf("failed to set document for user %s: %v", userID, err)
		return fmt.Errorf("failed to set document: %w", err)
	}

	logrus.Debugf("saved document for user %s with TTL %v", userID, r.cfg.TTL)
	return nil
}
